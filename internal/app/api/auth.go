package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

// RegistrationFields is the body of POST /auth/register/.
type RegistrationFields struct {
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	Password        string      `json:"password"`
	PasswordConfirm string      `json:"password_confirm"`
	Role            models.Role `json:"role"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the envelope of the register and login endpoints.
// Errors is left raw: depending on the failure it is a field map, a list or
// a plain string.
type AuthResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	User    *models.Identity `json:"user,omitempty"`
	Errors  json.RawMessage  `json:"errors,omitempty"`
}

type authEnvelope struct {
	Success *bool `json:"success"`
	AuthResponse
}

func (c *Client) Register(ctx context.Context, fields RegistrationFields) (*AuthResponse, error) {
	return c.postAuth(ctx, "/auth/register/", fields)
}

func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	return c.postAuth(ctx, "/auth/login/", credentials{Username: username, Password: password})
}

// postAuth treats any body carrying a "success" flag as a well-formed
// answer, whatever the status code: the backend rejects bad credentials with
// 401 and invalid registrations with 400, both with an envelope.
func (c *Client) postAuth(ctx context.Context, path string, payload any) (*AuthResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, path, nil, payload)
	var apiErr *Error
	if err != nil && !errors.As(err, &apiErr) {
		return nil, err
	}

	var env authEnvelope
	if decodeErr := decode(raw, &env); decodeErr != nil || env.Success == nil {
		if err != nil {
			return nil, err
		}
		if decodeErr != nil {
			return nil, decodeErr
		}
		return nil, errors.Join(models.ErrMalformedResponse, errors.New("auth response without success flag"))
	}

	resp := env.AuthResponse
	resp.Success = *env.Success
	if resp.Success && err != nil {
		// A success flag on an error status is not trustworthy.
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout/", nil, nil)
	return err
}

// CurrentUser returns the identity bound to this client's remote session.
// Any non-2xx answer means "not logged in".
func (c *Client) CurrentUser(ctx context.Context) (*models.Identity, error) {
	var identity models.Identity
	if err := c.doJSON(ctx, http.MethodGet, "/auth/current/", nil, nil, &identity); err != nil {
		return nil, err
	}
	if identity.Username == "" {
		return nil, errors.Join(models.ErrMalformedResponse, errors.New("identity without username"))
	}
	return &identity, nil
}
