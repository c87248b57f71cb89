package view

import (
	"errors"
	"fmt"
)

// ID names a view.
type ID string

const (
	Login          ID = "login"
	ForgotPassword ID = "forgot-password"
	ResetPassword  ID = "reset-password"
	Landing        ID = "landing"
	Profile        ID = "profile"
	Checklists     ID = "checklists"
	Checklist      ID = "checklist"
	UserManagement ID = "user-management"
)

// All lists every view in menu order.
var All = []ID{Login, ForgotPassword, ResetPassword, Landing, Profile, Checklists, Checklist, UserManagement}

var ErrUnknownView = errors.New("unknown view")

// Router holds the visible view and the reset token captured at startup.
type Router struct {
	views        map[ID]bool
	current      ID
	resetToken   string
	adminVisible bool
}

// NewRouter registers every view and shows the initial one for resetToken.
func NewRouter(resetToken string) *Router {
	r := &Router{views: make(map[ID]bool, len(All)), resetToken: resetToken}
	for _, v := range All {
		r.views[v] = false
	}
	r.current = Initial(resetToken)
	r.views[r.current] = true
	return r
}

// Initial picks the first view: reset-password when a reset token came with
// the launch, login otherwise.
func Initial(resetToken string) ID {
	if resetToken != "" {
		return ResetPassword
	}
	return Login
}

// Show hides every view and reveals id. An unknown id leaves the current
// view in place.
func (r *Router) Show(id ID) error {
	if _, ok := r.views[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownView, id)
	}
	for v := range r.views {
		r.views[v] = false
	}
	r.views[id] = true
	r.current = id

	if id == Login {
		r.resetToken = ""
	}
	return nil
}

// Parse resolves a user-typed view name.
func Parse(s string) (ID, error) {
	for _, v := range All {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

func (r *Router) Current() ID { return r.current }

// Visible reports whether id is the shown view.
func (r *Router) Visible(id ID) bool { return r.views[id] }

// ResetToken returns the token captured at launch until the login view is
// shown again.
func (r *Router) ResetToken() string { return r.resetToken }

// SetAdminVisible toggles the user-management entry of the landing menu.
func (r *Router) SetAdminVisible(v bool) { r.adminVisible = v }

func (r *Router) AdminVisible() bool { return r.adminVisible }

// Available lists the views offered from the landing menu.
func (r *Router) Available() []ID {
	out := []ID{Profile, Checklists}
	if r.adminVisible {
		out = append(out, UserManagement)
	}
	return out
}
