package upstream

import "context"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthSession is what the upstream auth service hands back on a successful
// login. The token is the bearer token attached to every later request.
type AuthSession struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	UserID    int    `json:"userId"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
}

// Login relays the operator's credentials to the upstream auth service. There
// is no refresh flow: when the returned token expires, a later 401 surfaces
// like any other failure and the operator logs in again.
func (c *Client) Login(ctx context.Context, email, password string) (AuthSession, error) {
	raw, err := c.post(ctx, "/auth/login", LoginRequest{Email: email, Password: password})
	if err != nil {
		return AuthSession{}, err
	}
	return decodeItem[AuthSession](raw)
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.post(ctx, "/auth/logout", struct{}{})
	return err
}
