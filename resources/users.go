package resources

import (
	"context"
	"strconv"

	"github.com/apextrack/go-admin-console/gateway"
	"github.com/apextrack/go-admin-console/session"
)

type UsersClient struct {
	gw *gateway.Gateway
}

func NewUsersClient(gw *gateway.Gateway) *UsersClient {
	return &UsersClient{gw: gw}
}

type PageLink struct {
	Label  string  `json:"label"`
	URL    *string `json:"url"`
	Active bool    `json:"active"`
}

// UserPage is the paginated users envelope.
type UserPage struct {
	Data        []session.User `json:"data"`
	CurrentPage int            `json:"current_page"`
	LastPage    int            `json:"last_page"`
	Links       []PageLink     `json:"links"`
}

// NewUserInput carries the fields for user creation, password
// confirmation included.
type NewUserInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Role                 string `json:"role"`
	AccountStatus        string `json:"account_status,omitempty"`
	ExpiredAt            string `json:"expired_at,omitempty"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// UserUpdateInput carries writable user fields for partial updates.
type UserUpdateInput struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Role          *string `json:"role,omitempty"`
	AccountStatus *string `json:"account_status,omitempty"`
	ExpiredAt     *string `json:"expired_at,omitempty"`
}

func (c *UsersClient) List(ctx context.Context, page int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	var result UserPage
	if err := c.gw.Do(ctx, "GET", "/users?page="+strconv.Itoa(page), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *UsersClient) Get(ctx context.Context, id string) (*session.User, error) {
	var user session.User
	if err := c.gw.Do(ctx, "GET", "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *UsersClient) Create(ctx context.Context, input NewUserInput) (*Ack, error) {
	var ack Ack
	if err := c.gw.Do(ctx, "POST", "/users", input, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func (c *UsersClient) Update(ctx context.Context, id string, input UserUpdateInput) (*Ack, error) {
	var ack Ack
	if err := c.gw.Do(ctx, "PUT", "/users/"+id, input, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func (c *UsersClient) Delete(ctx context.Context, id string) (*Ack, error) {
	var ack Ack
	if err := c.gw.Do(ctx, "DELETE", "/users/"+id, nil, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// Roles lists the role tags users can be assigned.
func (c *UsersClient) Roles(ctx context.Context) ([]string, error) {
	var roles []string
	if err := c.gw.Do(ctx, "GET", "/user-roles", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}
