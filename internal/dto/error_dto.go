package dto

// Machine-stable error codes surfaced alongside HTTP status codes.
const (
	CodeUnauthorized       = "unauthorized"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeQuotaExceeded      = "quota_exceeded"
	CodeValidation         = "validation_error"
	CodeVerificationFailed = "verification_failed"
	CodeInternal           = "internal"
)

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func Err(code, message string) ErrorResponse {
	return ErrorResponse{Error: true, Code: code, Message: message}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
