package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/checklist/internal/client/view"
)

// access says when a command may run.
type access int

const (
	anyone access = iota
	loggedOut
	loggedIn
	admin
	editing
	resetLink
)

type command struct {
	name   string
	alias  string
	usage  string
	access access
	run    func(a *App) commandFn
}

// commands lists every REPL command in help order.
func commands() []command {
	return []command{
		{name: "login", usage: "login", access: loggedOut, run: func(a *App) commandFn { return a.Login }},
		{name: "forgot", usage: "forgot", access: loggedOut, run: func(a *App) commandFn { return a.ForgotPassword }},
		{name: "reset", usage: "reset [token]", access: resetLink, run: func(a *App) commandFn { return a.ResetPassword }},

		{name: "logout", usage: "logout", access: loggedIn, run: func(a *App) commandFn { return a.Logout }},
		{name: "profile", alias: "passwd", usage: "profile", access: loggedIn, run: func(a *App) commandFn { return a.ChangePassword }},
		{name: "list", alias: "l", usage: "list", access: loggedIn, run: func(a *App) commandFn { return a.List }},
		{name: "new", usage: "new", access: loggedIn, run: func(a *App) commandFn { return a.New }},
		{name: "edit", usage: "edit <id>", access: loggedIn, run: func(a *App) commandFn { return a.Edit }},
		{name: "delete", usage: "delete <id>", access: loggedIn, run: func(a *App) commandFn { return a.Delete }},
		{name: "goto", usage: "goto <view>", access: loggedIn, run: func(a *App) commandFn { return a.Goto }},
		{name: "back", usage: "back", access: anyone, run: func(a *App) commandFn { return a.Back }},

		{name: "users", usage: "users", access: admin, run: func(a *App) commandFn { return a.Users }},
		{name: "adduser", usage: "adduser", access: admin, run: func(a *App) commandFn { return a.AddUser }},

		{name: "show", usage: "show", access: editing, run: func(a *App) commandFn { return a.Show }},
		{name: "client", usage: "client <name>", access: editing, run: func(a *App) commandFn { return a.SetClientName }},
		{name: "project", usage: "project <id>", access: editing, run: func(a *App) commandFn { return a.SetProjectID }},
		{name: "notes", usage: "notes [text]", access: editing, run: func(a *App) commandFn { return a.SetNotes }},
		{name: "check", usage: "check <item>", access: editing, run: func(a *App) commandFn { return a.Check }},
		{name: "addurn", usage: "addurn [urn] [trigger]", access: editing, run: func(a *App) commandFn { return a.AddURN }},
		{name: "rmurn", usage: "rmurn <urn>", access: editing, run: func(a *App) commandFn { return a.RemoveURN }},
		{name: "urn", usage: "urn <urn> <value>", access: editing, run: func(a *App) commandFn { return a.SetURN }},
		{name: "trigger", usage: "trigger <urn> <value>", access: editing, run: func(a *App) commandFn { return a.SetTrigger }},
		{name: "addsub", usage: "addsub <urn> <CV|CUV|Live Area>", access: editing, run: func(a *App) commandFn { return a.AddSubEntry }},
		{name: "rmsub", usage: "rmsub <urn> <entry>", access: editing, run: func(a *App) commandFn { return a.RemoveSubEntry }},
		{name: "setsub", usage: "setsub <urn> <entry> <field> <value>", access: editing, run: func(a *App) commandFn { return a.SetSubEntryField }},
		{name: "image", usage: "image <urn> <entry> <path>", access: editing, run: func(a *App) commandFn { return a.AttachImage }},
		{name: "rmimage", usage: "rmimage <urn> <entry>", access: editing, run: func(a *App) commandFn { return a.RemoveImage }},
		{name: "save", usage: "save", access: editing, run: func(a *App) commandFn { return a.Save }},
		{name: "export", usage: "export [file.xlsx]", access: editing, run: func(a *App) commandFn { return a.Export }},
	}
}

func (a *App) allowed(c command) bool {
	switch c.access {
	case loggedOut:
		return !a.isLoggedIn()
	case loggedIn:
		return a.isLoggedIn()
	case admin:
		return a.isLoggedIn() && a.router.AdminVisible()
	case editing:
		return a.isLoggedIn() && a.router.Visible(view.Checklist)
	case resetLink:
		return !a.isLoggedIn() || a.router.Visible(view.ResetPassword)
	default:
		return true
	}
}

func (a *App) lookup(name string) (commandFn, bool) {
	for _, c := range commands() {
		if c.name != name && c.alias != name {
			continue
		}
		if !a.allowed(c) {
			return nil, false
		}
		return c.run(a), true
	}
	return nil, false
}

func (a *App) help() string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, c := range commands() {
		if !a.allowed(c) {
			continue
		}
		fmt.Fprintf(&b, "\n  %s", c.usage)
		if c.alias != "" {
			fmt.Fprintf(&b, " (%s)", c.alias)
		}
	}
	b.WriteString("\n  help\n  exit")
	if a.isLoggedIn() && a.router.Current() == view.Landing {
		names := make([]string, 0, 3)
		for _, v := range a.router.Available() {
			names = append(names, string(v))
		}
		fmt.Fprintf(&b, "\nViews: %s", strings.Join(names, ", "))
	}
	return b.String()
}
