// Package identity talks to the external identity provider that owns user
// accounts and sessions. The provider's user record carries the role
// attribute consulted by the admin surface.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RoleAdmin is the role attribute value that unlocks admin endpoints.
const RoleAdmin = "admin"

// User is the subset of the provider's user record this service reads.
type User struct {
	ID             string `json:"id"`
	PublicMetadata struct {
		Role string `json:"role"`
	} `json:"public_metadata"`
}

func (u *User) IsAdmin() bool {
	return u.PublicMetadata.Role == RoleAdmin
}

// Client looks up user records on the identity provider. Calls are made per
// request and never cached; a cache would need an invalidation policy.
type Client interface {
	GetUser(ctx context.Context, id string) (*User, error)
}

type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user record: %w", err)
	}
	return &user, nil
}
