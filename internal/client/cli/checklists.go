package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/dmitrijs2005/checklist/internal/client/client"
	"github.com/dmitrijs2005/checklist/internal/client/models"
	"github.com/dmitrijs2005/checklist/internal/client/view"
)

var errUsage = errors.New("usage")

// usage prints the expected form of a command and returns errUsage.
func usage(form string) error {
	printlnFn("Usage:", form)
	return errUsage
}

// List shows the user's checklists.
func (a *App) List(ctx context.Context, _ []string) error {
	a.show(view.Checklists)

	items, err := a.checklists.List(ctx)
	if err != nil {
		printlnFn(client.Message(err, msgListFailed))
		return err
	}
	if len(items) == 0 {
		printlnFn("No checklists yet. Use 'new' to create one.")
		return nil
	}
	for _, c := range items {
		printlnFn(c.Summary())
	}
	return nil
}

// New opens a blank checklist. Nothing from a previous edit carries over.
func (a *App) New(_ context.Context, _ []string) error {
	a.checklists.New()
	a.show(view.Checklist)
	printlnFn("New checklist. Use 'show' to see it and 'save' when done.")
	return nil
}

// Edit fetches a checklist into the editor. On failure the list view is
// shown again.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("edit <id>")
	}

	doc, err := a.checklists.Open(ctx, models.ID(args[0]))
	if err != nil {
		printlnFn(client.Message(err, msgLoadFailed))
		a.show(view.Checklists)
		return err
	}

	a.show(view.Checklist)
	printlnFn(renderChecklist(doc))
	return nil
}

// Delete removes a checklist after confirmation and refreshes the list.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delete <id>")
	}
	id := models.ID(args[0])

	answer, err := getSimpleText(a.reader, "Delete checklist "+id.String()+"? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") && !strings.EqualFold(answer, "y") {
		printlnFn("Cancelled.")
		return nil
	}

	msg, err := a.checklists.Delete(ctx, id)
	if err != nil {
		printlnFn(client.Message(err, msgDeleteFailed))
		return err
	}
	printlnFn(msg)
	return a.List(ctx, nil)
}

// Goto shows a named view. Unknown names leave the current view.
func (a *App) Goto(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usage("goto <view>")
	}
	id, err := view.Parse(args[0])
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if id == view.Checklist {
		if _, err := a.checklists.Editor().Document(); err != nil {
			printlnFn("No checklist is open. Use 'new' or 'edit <id>'.")
			return err
		}
	}
	return a.navigate(id)
}

// Back leaves the current view.
func (a *App) Back(_ context.Context, _ []string) error {
	switch {
	case !a.isLoggedIn():
		a.show(view.Login)
	case a.router.Current() == view.Checklist:
		a.show(view.Checklists)
	default:
		a.show(view.Landing)
	}
	return nil
}
