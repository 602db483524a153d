package backend

import (
	"context"
	"net/http"

	"github.com/Kariqs/amana-storefront/models"
)

// Login exchanges credentials for a bearer token and the user profile.
func (c *Client) Login(ctx context.Context, in models.LoginData) (string, *models.User, error) {
	const op = "backend.Login"
	var out struct {
		Token string       `json:"token" validate:"required"`
		User  *models.User `json:"user" validate:"required"`
	}
	if err := c.do(op, c.request(ctx, "").SetBody(in), http.MethodPost, "/api/user/login", &out); err != nil {
		return "", nil, err
	}
	if err := c.check(op, out); err != nil {
		return "", nil, err
	}
	if out.User.Role == "" {
		out.User.Role = models.RoleUser
	}
	return out.Token, out.User, nil
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	const op = "backend.ListUsers"
	var out struct {
		Users []models.User `json:"users" validate:"dive"`
	}
	if err := c.do(op, c.request(ctx, token), http.MethodGet, "/api/user/list", &out); err != nil {
		return nil, err
	}
	if err := c.check(op, out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, userID string, in models.UserUpdate) error {
	body := struct {
		UserID string `json:"userId"`
		models.UserUpdate
	}{userID, in}
	return c.do("backend.UpdateUser", c.request(ctx, token).SetBody(body), http.MethodPut, "/api/user/update", nil)
}

func (c *Client) DeleteUser(ctx context.Context, token, userID string) error {
	body := map[string]string{"userId": userID}
	return c.do("backend.DeleteUser", c.request(ctx, token).SetBody(body), http.MethodDelete, "/api/user/delete", nil)
}
