// internal/apiclient/auth.go
package apiclient

import (
	"context"

	"hopegivers-web/internal/domain/account"
)

// Login authenticates against the backend and returns the user payload the
// session record is built from.
func (c *Client) Login(ctx context.Context, req *account.LoginRequest) (*account.AuthUser, error) {
	var user account.AuthUser
	if err := c.postJSON(ctx, "", "/auth/login", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a donor account. The backend logs the account in as part
// of registration, so the response carries the same payload as Login.
func (c *Client) Register(ctx context.Context, req *account.RegisterRequest) (*account.AuthUser, error) {
	var user account.AuthUser
	if err := c.postJSON(ctx, "", "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ConfirmEmail redeems an email confirmation token.
func (c *Client) ConfirmEmail(ctx context.Context, token string) error {
	return c.postJSON(ctx, "", "/auth/confirm-email", map[string]string{"token": token}, nil)
}

// Me fetches the authoritative profile for the bearer of token.
func (c *Client) Me(ctx context.Context, token string) (*account.Profile, error) {
	var profile account.Profile
	if err := c.get(ctx, token, "/auth/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile edits profile fields. The cached session record is refreshed
// by the caller afterwards; the backend does not push the change back.
func (c *Client) UpdateProfile(ctx context.Context, token string, req *account.UpdateProfileRequest) (*account.Profile, error) {
	var profile account.Profile
	if err := c.putJSON(ctx, token, "/auth/profile", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, token string, req *account.ChangePasswordRequest) error {
	return c.putJSON(ctx, token, "/auth/change-password", req, nil)
}
