package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/checklist/internal/client/checklist"
	"github.com/dmitrijs2005/checklist/internal/client/client"
	"github.com/dmitrijs2005/checklist/internal/client/config"
	"github.com/dmitrijs2005/checklist/internal/client/models"
	"github.com/dmitrijs2005/checklist/internal/client/services"
	"github.com/dmitrijs2005/checklist/internal/client/view"
	"github.com/dmitrijs2005/checklist/internal/logging"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

// captureOutput replaces printlnFn for the duration of the test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var (
		mu  sync.Mutex
		out []string
	)
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		line := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
		out = append(out, line)
		return len(line), nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

// stubPasswords feeds the given answers to getPassword in order.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	getPassword = func(string, io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func newTestApp(api *fakeAPI, r *bufio.Reader) (*App, *fakeSession) {
	sess := &fakeSession{}
	return &App{
		config:     &config.Config{},
		log:        logging.Discard(),
		session:    sess,
		auth:       services.NewAuthService(api, sess, nil),
		users:      services.NewUserService(api),
		checklists: services.NewChecklistService(api, checklist.NewEditor(), nil),
		router:     view.NewRouter(""),
		reader:     r,
	}, sess
}

// loggedInApp returns an app already past the login view.
func loggedInApp(api *fakeAPI, r *bufio.Reader, admin bool) *App {
	a, sess := newTestApp(api, r)
	sess.username, sess.token, sess.admin = "tech1", "tok", admin
	a.router.SetAdminVisible(admin)
	_ = a.router.Show(view.Landing)
	return a
}

// ------------ fakes ------------

type fakeSession struct {
	username string
	token    string
	admin    bool
}

func (f *fakeSession) Start(_ context.Context, username, token string, isAdmin bool) error {
	f.username, f.token, f.admin = username, token, isAdmin
	return nil
}

func (f *fakeSession) End(context.Context) error {
	f.username, f.token, f.admin = "", "", false
	return nil
}

func (f *fakeSession) Restore(context.Context) (bool, error) { return f.token != "", nil }
func (f *fakeSession) LoggedIn() bool                        { return f.token != "" }
func (f *fakeSession) Username() string                      { return f.username }
func (f *fakeSession) IsAdmin() bool                         { return f.admin }

// fakeAPI embeds client.Client; calls not overridden panic.
type fakeAPI struct {
	client.Client

	loginRes client.LoginResult
	loginErr error

	msg       string
	err       error
	resetTok  string
	resetPass string

	users      []models.User
	usersErr   error
	registered []models.NewUser

	list    []models.Checklist
	record  models.Checklist
	getErr  error
	saveErr error
	creates []models.Checklist
	updates []models.ID
	deleted []models.ID
}

func (f *fakeAPI) Login(context.Context, string, string) (client.LoginResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeAPI) ChangePassword(context.Context, string, string) (string, error) {
	return f.msg, f.err
}

func (f *fakeAPI) ForgotPassword(context.Context, string) (string, error) { return f.msg, f.err }

func (f *fakeAPI) ResetPassword(_ context.Context, token, pw string) (string, error) {
	f.resetTok, f.resetPass = token, pw
	return f.msg, f.err
}

func (f *fakeAPI) ListUsers(context.Context) ([]models.User, error) { return f.users, f.usersErr }

func (f *fakeAPI) RegisterUser(_ context.Context, u models.NewUser) (string, error) {
	f.registered = append(f.registered, u)
	return f.msg, f.err
}

func (f *fakeAPI) ListChecklists(context.Context) ([]models.Checklist, error) {
	return f.list, f.getErr
}

func (f *fakeAPI) GetChecklist(context.Context, models.ID) (models.Checklist, error) {
	return f.record, f.getErr
}

func (f *fakeAPI) CreateChecklist(_ context.Context, c models.Checklist) (client.SaveResult, error) {
	f.creates = append(f.creates, c)
	return client.SaveResult{Message: "Checklist created"}, f.saveErr
}

func (f *fakeAPI) UpdateChecklist(_ context.Context, id models.ID, _ models.Checklist) (client.SaveResult, error) {
	f.updates = append(f.updates, id)
	return client.SaveResult{Message: "Checklist updated"}, f.saveErr
}

func (f *fakeAPI) DeleteChecklist(_ context.Context, id models.ID) (string, error) {
	f.deleted = append(f.deleted, id)
	return "Checklist deleted", f.err
}
