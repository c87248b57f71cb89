package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/checklist/internal/client/client"
	"github.com/dmitrijs2005/checklist/internal/client/services"
	"github.com/dmitrijs2005/checklist/internal/client/view"
)

// Login prompts for credentials. On success the landing view is shown and
// the user-management entry follows the admin flag; on failure the server's
// message is printed and the login view stays.
func (a *App) Login(ctx context.Context, _ []string) error {
	a.show(view.Login)

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	isAdmin, err := a.auth.Login(ctx, username, password)
	if err != nil {
		printlnFn(client.Message(err, msgLoginUnavailable))
		return err
	}

	a.router.SetAdminVisible(isAdmin)
	a.show(view.Landing)
	printlnFn("Logged in as", username)
	return nil
}

// Logout forgets the credential and returns to the login view.
func (a *App) Logout(ctx context.Context, _ []string) error {
	err := a.auth.Logout(ctx)
	if err != nil {
		a.log.Warn(ctx, "clear stored credential", "error", err)
	}
	a.checklists.Editor().Discard()
	a.router.SetAdminVisible(false)
	a.show(view.Login)
	return err
}

func (a *App) ForgotPassword(ctx context.Context, _ []string) error {
	a.show(view.ForgotPassword)

	email, err := getSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.auth.ForgotPassword(ctx, email)
	if err != nil {
		printlnFn(client.Message(err, msgGenericFailure))
		return err
	}
	printlnFn(msg)
	return nil
}

// ResetPassword completes a reset link. The token comes from the -t flag
// or the first argument.
func (a *App) ResetPassword(ctx context.Context, args []string) error {
	token := a.router.ResetToken()
	if len(args) > 0 {
		token = args[0]
	}
	a.show(view.ResetPassword)

	newPassword, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.auth.ResetPassword(ctx, token, newPassword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidResetLink) {
			printlnFn(err.Error())
		} else {
			printlnFn(client.Message(err, msgGenericFailure))
		}
		return err
	}

	printlnFn(msg)
	a.show(view.Login)
	return nil
}

// ChangePassword runs the profile view.
func (a *App) ChangePassword(ctx context.Context, _ []string) error {
	a.show(view.Profile)

	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	next, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.auth.ChangePassword(ctx, current, next)
	if err != nil {
		printlnFn(client.Message(err, msgChangePasswordFailed))
		return err
	}

	printlnFn(msg)
	a.show(view.Landing)
	return nil
}
