package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/checklist/internal/client/client"
	"github.com/dmitrijs2005/checklist/internal/client/models"
)

// MissingFieldError reports an empty registration field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Please fill out the %s field.", e.Field)
}

// UserService is the admin-only account management.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, u models.NewUser) (string, error)
}

type userService struct {
	client client.Client
}

func NewUserService(c client.Client) UserService {
	return &userService{client: c}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.client.ListUsers(ctx)
}

// Create validates that every field is filled in, in form order, before
// calling the backend.
func (s *userService) Create(ctx context.Context, u models.NewUser) (string, error) {
	for _, f := range u.RequiredFields() {
		if f.Value == "" {
			return "", &MissingFieldError{Field: f.Name}
		}
	}
	return s.client.RegisterUser(ctx, u)
}
