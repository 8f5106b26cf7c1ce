// Package resources holds the typed clients for each remote resource.
// Every client is a declarative operation → verb + path + shape mapping
// over the gateway; errors pass through untouched.
package resources

import (
	"context"

	"github.com/apextrack/go-admin-console/gateway"
	"github.com/apextrack/go-admin-console/session"
)

type AuthClient struct {
	gw *gateway.Gateway
}

func NewAuthClient(gw *gateway.Gateway) *AuthClient {
	return &AuthClient{gw: gw}
}

type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *session.User `json:"user"`
}

// Login exchanges credentials for a bearer token. Storing the returned
// session is the caller's job; the client stays side-effect free.
func (c *AuthClient) Login(ctx context.Context, credentials LoginCredentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.gw.Do(ctx, "POST", "/auth/login", credentials, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout ends the server-side session.
func (c *AuthClient) Logout(ctx context.Context) error {
	return c.gw.Do(ctx, "POST", "/auth/logout", nil, nil)
}
