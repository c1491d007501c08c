package api

import (
	"context"
	"net/http"

	"max.ks1230/finance-tracker/internal/entity/user"
)

const (
	loginPath  = "/api/auth/login"
	signupPath = "/api/auth/signup"
	updatePath = "/api/auth/update"
)

// Login returns an *APIError carrying the server's message on bad
// credentials.
func (c *Client) Login(ctx context.Context, email, password string) (user.User, error) {
	var res userEnvelope
	err := c.do(ctx, request{
		endpoint: "auth.login",
		method:   http.MethodPost,
		path:     loginPath,
		body:     loginRequest{Email: email, Password: password},
	}, &res)
	if err != nil {
		return user.User{}, err
	}
	return res.User.entity(), nil
}

func (c *Client) Signup(ctx context.Context, fullName, email, password string) error {
	return c.do(ctx, request{
		endpoint: "auth.signup",
		method:   http.MethodPost,
		path:     signupPath,
		body:     signupRequest{FullName: fullName, Email: email, Password: password},
	}, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, userID int64, fullName, email string) (user.User, error) {
	var res userEnvelope
	err := c.do(ctx, request{
		endpoint: "auth.update",
		method:   http.MethodPut,
		path:     idPath(updatePath, userID),
		body:     updateProfileRequest{FullName: fullName, Email: email},
	}, &res)
	if err != nil {
		return user.User{}, err
	}
	return res.User.entity(), nil
}
