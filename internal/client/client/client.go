package client

import (
	"context"

	"github.com/dmitrijs2005/checklist/internal/client/models"
)

// LoginResult is the body of a successful /login.
type LoginResult struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

// SaveResult is what the backend says after creating or updating a
// checklist. ID is set only when the backend echoes it.
type SaveResult struct {
	Message string     `json:"message"`
	ID      *models.ID `json:"id"`
}

// Client is the transport-agnostic contract of the checklist backend.
type Client interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) (string, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	RegisterUser(ctx context.Context, u models.NewUser) (string, error)

	ListChecklists(ctx context.Context) ([]models.Checklist, error)
	GetChecklist(ctx context.Context, id models.ID) (models.Checklist, error)
	CreateChecklist(ctx context.Context, c models.Checklist) (SaveResult, error)
	UpdateChecklist(ctx context.Context, id models.ID, c models.Checklist) (SaveResult, error)
	DeleteChecklist(ctx context.Context, id models.ID) (string, error)
}

// TokenSource supplies the bearer credential for authenticated calls. An
// empty token means the user is not logged in.
type TokenSource interface {
	Token() string
}
