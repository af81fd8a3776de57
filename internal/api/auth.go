package api

import (
	"context"
	"net/http"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a backend access token. Invalid
// credentials come back as *Error with the backend's message.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResp
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", nil, loginReq{Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", &DecodeError{Endpoint: "POST /api/v1/auth/login", Err: errNoToken}
	}
	return out.AccessToken, nil
}

var errNoToken = errString("response carried no access_token")

type errString string

func (e errString) Error() string { return string(e) }
