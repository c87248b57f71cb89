package services

import (
	"context"

	"github.com/dmitrijs2005/checklist/internal/client/client"
	"github.com/dmitrijs2005/checklist/internal/client/models"
)

// fakeClient embeds client.Client so tests only implement what they use.
type fakeClient struct {
	client.Client

	loginRes  client.LoginResult
	loginErr  error
	loginUser string

	msg    string
	msgErr error

	resetCalls int
	users      []models.User
	registered []models.NewUser

	record  models.Checklist
	getErr  error
	saveErr error
	creates []models.Checklist
	updates map[models.ID]models.Checklist
	deleted []models.ID
}

func (f *fakeClient) Login(_ context.Context, username, _ string) (client.LoginResult, error) {
	f.loginUser = username
	return f.loginRes, f.loginErr
}

func (f *fakeClient) ChangePassword(context.Context, string, string) (string, error) {
	return f.msg, f.msgErr
}

func (f *fakeClient) ForgotPassword(context.Context, string) (string, error) {
	return f.msg, f.msgErr
}

func (f *fakeClient) ResetPassword(context.Context, string, string) (string, error) {
	f.resetCalls++
	return f.msg, f.msgErr
}

func (f *fakeClient) ListUsers(context.Context) ([]models.User, error) {
	return f.users, f.msgErr
}

func (f *fakeClient) RegisterUser(_ context.Context, u models.NewUser) (string, error) {
	f.registered = append(f.registered, u)
	return f.msg, f.msgErr
}

func (f *fakeClient) ListChecklists(context.Context) ([]models.Checklist, error) {
	return []models.Checklist{f.record}, f.getErr
}

func (f *fakeClient) GetChecklist(context.Context, models.ID) (models.Checklist, error) {
	return f.record, f.getErr
}

func (f *fakeClient) CreateChecklist(_ context.Context, c models.Checklist) (client.SaveResult, error) {
	f.creates = append(f.creates, c)
	return client.SaveResult{Message: "Checklist saved"}, f.saveErr
}

func (f *fakeClient) UpdateChecklist(_ context.Context, id models.ID, c models.Checklist) (client.SaveResult, error) {
	if f.updates == nil {
		f.updates = map[models.ID]models.Checklist{}
	}
	f.updates[id] = c
	return client.SaveResult{Message: "Checklist updated"}, f.saveErr
}

func (f *fakeClient) DeleteChecklist(_ context.Context, id models.ID) (string, error) {
	f.deleted = append(f.deleted, id)
	return "Checklist deleted", f.msgErr
}

type fakeSession struct {
	username string
	token    string
	admin    bool
	started  int
	ended    int
	startErr error
}

func (f *fakeSession) Start(_ context.Context, username, token string, isAdmin bool) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started++
	f.username, f.token, f.admin = username, token, isAdmin
	return nil
}

func (f *fakeSession) End(context.Context) error {
	f.ended++
	f.username, f.token, f.admin = "", "", false
	return nil
}

func (f *fakeSession) Restore(context.Context) (bool, error) {
	return f.token != "", nil
}
