package api

import (
	"context"
	"net/url"
	"strconv"
)

// UserResponse is the envelope of the login, register and get-user
// endpoints. The backend is inconsistent about where it puts the
// account record (user vs data), so both fields are decoded and
// Account resolves whichever is present.
type UserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
	Data    *User  `json:"data,omitempty"`
}

// Account returns the user record regardless of which envelope field
// carried it, or nil when neither did.
func (r UserResponse) Account() *User {
	if r.User != nil {
		return r.User
	}
	return r.Data
}

// Login authenticates with a username or email address.
func (c *Client) Login(ctx context.Context, usernameOrEmail, password string) (UserResponse, error) {
	form := url.Values{
		"usernameOrEmail": {usernameOrEmail},
		"password":        {password},
	}
	var resp UserResponse
	return resp, c.postForm(ctx, "/api/users/login", form, &resp)
}

// Register creates a new account. fullName falls back to username when
// it is not separately collected.
func (c *Client) Register(ctx context.Context, username, email, fullName, password string) (UserResponse, error) {
	if fullName == "" {
		fullName = username
	}
	form := url.Values{
		"username": {username},
		"email":    {email},
		"fullName": {fullName},
		"password": {password},
	}
	var resp UserResponse
	return resp, c.postForm(ctx, "/api/users", form, &resp)
}

// GetUser fetches an account by id.
func (c *Client) GetUser(ctx context.Context, userID int64) (UserResponse, error) {
	var resp UserResponse
	return resp, c.get(ctx, "/api/users/"+strconv.FormatInt(userID, 10), nil, &resp)
}
