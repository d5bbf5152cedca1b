package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	domainauth "github.com/eventdesk/admin-ui/internal/domain/auth"
)

// Credentials are the login inputs.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest are the account creation inputs.
type RegisterRequest struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
}

// AuthResult is the outcome of a successful login or registration.
type AuthResult struct {
	User  domainauth.User `json:"user"`
	Token string          `json:"token"`
}

// Validate validates Credentials.
func (c *Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return errors.New("email is required and cannot be empty")
	}
	if c.Password == "" {
		return errors.New("password is required and cannot be empty")
	}
	return nil
}

// Validate validates RegisterRequest.
func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required and cannot be empty")
	}
	if r.Password == "" {
		return errors.New("password is required and cannot be empty")
	}
	if r.Password != r.PasswordConfirmation {
		return errors.New("password confirmation does not match")
	}
	return nil
}

// Login exchanges credentials for a user and a signed bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var out AuthResult
	body := map[string]any{"user": creds}
	if err := c.mutate(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns the user and a signed bearer token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var out AuthResult
	body := map[string]any{"user": req}
	if err := c.mutate(ctx, http.MethodPost, "/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*domainauth.User, error) {
	var out domainauth.User
	if _, err := c.get(ctx, "/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
