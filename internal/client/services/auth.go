package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/checklist/internal/client/client"
	"github.com/dmitrijs2005/checklist/internal/logging"
)

// ErrInvalidResetLink is returned before any request when a password reset
// lacks its token or the new password.
var ErrInvalidResetLink = errors.New("Invalid link or missing new password.")

// Session is the part of the login context the auth service drives.
type Session interface {
	Start(ctx context.Context, username, token string, isAdmin bool) error
	End(ctx context.Context) error
	Restore(ctx context.Context) (bool, error)
}

// AuthService covers login/logout and the password flows.
//
// Login stores the credential only when the backend accepts it; a rejected
// login leaves the session untouched. There is no refresh and no expiry
// handling: a credential the backend later rejects surfaces as an ordinary
// error on that call.
type AuthService interface {
	Login(ctx context.Context, username, password string) (isAdmin bool, err error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (bool, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) (string, error)
}

type authService struct {
	client  client.Client
	session Session
	log     logging.Logger
}

func NewAuthService(c client.Client, s Session, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &authService{client: c, session: s, log: log.With("service", "auth")}
}

func (a *authService) Login(ctx context.Context, username, password string) (bool, error) {
	res, err := a.client.Login(ctx, username, password)
	if err != nil {
		a.log.Info(ctx, "login rejected", "username", username, "error", err)
		return false, err
	}
	if err := a.session.Start(ctx, username, res.Token, res.IsAdmin); err != nil {
		return false, fmt.Errorf("start session: %w", err)
	}
	a.log.Info(ctx, "logged in", "username", username, "admin", res.IsAdmin)
	return res.IsAdmin, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.End(ctx)
}

func (a *authService) Restore(ctx context.Context) (bool, error) {
	return a.session.Restore(ctx)
}

func (a *authService) ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error) {
	return a.client.ChangePassword(ctx, currentPassword, newPassword)
}

func (a *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	return a.client.ForgotPassword(ctx, email)
}

func (a *authService) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	if token == "" || newPassword == "" {
		return "", ErrInvalidResetLink
	}
	return a.client.ResetPassword(ctx, token, newPassword)
}
