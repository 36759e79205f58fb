package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/bookshelf-web/internal/domain/model"
)

// AuthAPI covers sign-in and registration.
type AuthAPI struct{ c *Client }

// LoginPassword signs in with email and password.
func (a *AuthAPI) LoginPassword(ctx context.Context, form model.LoginForm) (model.LoginToken, error) {
	return call[model.LoginToken](ctx, a.c, request{method: http.MethodPost, path: "/user/login/password", body: form})
}

// VerifyCode checks a verification code.
func (a *AuthAPI) VerifyCode(ctx context.Context, code string) (model.CodeCheck, error) {
	return call[model.CodeCheck](ctx, a.c, request{
		method: http.MethodPost,
		path:   "/user/login/verify",
		body:   map[string]string{"code": code},
	})
}

// LoginCode signs in with an emailed verification code.
func (a *AuthAPI) LoginCode(ctx context.Context, form model.CodeLoginForm) (model.LoginToken, error) {
	return call[model.LoginToken](ctx, a.c, request{method: http.MethodPost, path: "/user/login/code", body: form})
}

// SendEmailCode asks the backend to email a verification code.
func (a *AuthAPI) SendEmailCode(ctx context.Context, email string) error {
	_, err := call[any](ctx, a.c, request{
		method: http.MethodPost,
		path:   "/user/login/send",
		query:  url.Values{"email": {email}},
	})
	return err
}

// Register creates an account and signs it in.
func (a *AuthAPI) Register(ctx context.Context, form model.RegisterForm) (model.LoginToken, error) {
	return call[model.LoginToken](ctx, a.c, request{method: http.MethodPost, path: "/user/register", body: form})
}
