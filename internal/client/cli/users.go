package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/checklist/internal/client/client"
	"github.com/dmitrijs2005/checklist/internal/client/models"
	"github.com/dmitrijs2005/checklist/internal/client/services"
	"github.com/dmitrijs2005/checklist/internal/client/view"
)

// Users shows the user-management view with the current account list. A
// refused or failed fetch returns to the landing view.
func (a *App) Users(ctx context.Context, _ []string) error {
	a.show(view.UserManagement)

	users, err := a.users.List(ctx)
	if err != nil {
		printlnFn(client.Message(err, msgFetchUsersFailed))
		a.show(view.Landing)
		return err
	}

	for _, u := range users {
		printlnFn(formatUser(u))
	}
	return nil
}

func formatUser(u models.User) string {
	admin := "no"
	if u.IsAdmin {
		admin = "yes"
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\tadmin: %s", u.ID, u.Username, u.FullName(), u.Email, u.JobRole, admin)
}

// AddUser prompts for every registration field and then reloads the list.
func (a *App) AddUser(ctx context.Context, _ []string) error {
	a.show(view.UserManagement)

	var (
		u   models.NewUser
		err error
	)
	for _, f := range u.RequiredFields() {
		var v string
		if f.Name == "password" {
			v, err = getPassword(f.Label, os.Stdout)
		} else {
			v, err = getSimpleText(a.reader, f.Label, os.Stdout)
		}
		if err != nil {
			return err
		}
		setNewUserField(&u, f.Name, v)
	}

	msg, err := a.users.Create(ctx, u)
	if err != nil {
		var missing *services.MissingFieldError
		if errors.As(err, &missing) {
			printlnFn(err.Error())
		} else {
			printlnFn(client.Message(err, msgCreateUserFailed))
		}
		return err
	}

	printlnFn(msg)
	return a.Users(ctx, nil)
}

func setNewUserField(u *models.NewUser, name, v string) {
	switch name {
	case "username":
		u.Username = v
	case "password":
		u.Password = v
	case "name":
		u.Name = v
	case "surname":
		u.Surname = v
	case "email":
		u.Email = v
	case "job_role":
		u.JobRole = v
	}
}
