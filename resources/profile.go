package resources

import (
	"context"

	"github.com/apextrack/go-admin-console/gateway"
	"github.com/apextrack/go-admin-console/session"
)

type ProfileClient struct {
	gw *gateway.Gateway
}

func NewProfileClient(gw *gateway.Gateway) *ProfileClient {
	return &ProfileClient{gw: gw}
}

type profileEnvelope struct {
	User *session.User `json:"user"`
}

type ProfileUpdateInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PasswordUpdateInput struct {
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (c *ProfileClient) Get(ctx context.Context) (*session.User, error) {
	var envelope profileEnvelope
	if err := c.gw.Do(ctx, "GET", "/profile", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.User, nil
}

func (c *ProfileClient) Update(ctx context.Context, input ProfileUpdateInput) (*Ack, error) {
	var ack Ack
	if err := c.gw.Do(ctx, "PUT", "/profile", input, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func (c *ProfileClient) UpdatePassword(ctx context.Context, input PasswordUpdateInput) (*Ack, error) {
	var ack Ack
	if err := c.gw.Do(ctx, "PUT", "/password", input, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}
