package platform

import "context"

// UserData is the profile record returned by the auth endpoints.
type UserData struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is the envelope returned by login and profile calls.
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    UserData `json:"data"`
	Token   string   `json:"token,omitempty"`
}

// StatusResponse is the minimal {success, message} envelope.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates the super admin. The call skips auth entirely: no
// bearer token is attached and no local expiry pre-check runs, so a
// logged-out user can always re-authenticate even when storage holds a
// stale or garbage token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.doRequest(ctx, "POST", "/api/superadmin/login", loginRequest{
		Email:    email,
		Password: password,
	}, &resp, requestOptions{skipAuth: true})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the super admin profile. Used as the lightweight
// "who am I" verification during session restore.
func (c *Client) Profile(ctx context.Context) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.get(ctx, "/api/superadmin/profile", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout asks the server to invalidate the current token. Callers treat
// failures as non-fatal; local cleanup happens regardless.
func (c *Client) Logout(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.post(ctx, "/api/superadmin/logout", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
