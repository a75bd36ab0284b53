package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/netra-cyber/netra-portal/models"
)

// Login exchanges credentials for a bearer token using the backend's form login.
func (c *Client) Login(ctx context.Context, username, password string) (models.Token, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	var tok models.Token
	err := c.fetch(ctx, call{
		method:      http.MethodPost,
		path:        "/auth/token",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
		fallback:    "Login failed",
	}, &tok)
	return tok, err
}

// Me returns the signed-in user.
func (c *Client) Me(ctx context.Context, token string) (models.User, error) {
	var u models.User
	err := c.get(ctx, token, "/auth/me", nil, "Failed to fetch user", &u)
	return u, err
}

// Register creates an officer account. Only administrators may call it; the backend enforces that.
func (c *Client) Register(ctx context.Context, token string, reg models.Registration) (models.User, error) {
	if reg.Role == "" {
		reg.Role = "officer"
	}
	var u models.User
	err := c.sendJSON(ctx, http.MethodPost, token, "/auth/register", nil, reg, "Registration failed", &u)
	return u, err
}

// ChangePassword updates the signed-in user's password.
func (c *Client) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	body := models.PasswordChange{OldPassword: oldPassword, NewPassword: newPassword}
	return c.sendJSON(ctx, http.MethodPost, token, "/auth/change-password", nil, body, "Password update failed", nil)
}
