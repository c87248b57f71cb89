package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/checklist/internal/client/checklist"
	"github.com/dmitrijs2005/checklist/internal/client/client"
	"github.com/dmitrijs2005/checklist/internal/client/export"
	"github.com/dmitrijs2005/checklist/internal/client/models"
	"github.com/dmitrijs2005/checklist/internal/filex"
	"github.com/dmitrijs2005/checklist/internal/imagex"
)

// position parses a 1-based number typed by the user into an index.
func position(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not a position", checklist.ErrIndex, s)
	}
	return n - 1, nil
}

// positions parses the leading <urn> [<entry>] arguments.
func positions(args []string, n int) ([]int, error) {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		p, err := position(args[i])
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// report prints err for an editor command and passes it through.
func report(err error) error {
	if err != nil {
		printlnFn("Error:", err.Error())
	}
	return err
}

func (a *App) editor() *checklist.Editor { return a.checklists.Editor() }

func (a *App) Show(_ context.Context, _ []string) error {
	doc, err := a.editor().Document()
	if err != nil {
		return report(err)
	}
	printlnFn(renderChecklist(doc))
	return nil
}

func (a *App) SetClientName(_ context.Context, args []string) error {
	return report(a.editor().SetClientName(strings.Join(args, " ")))
}

func (a *App) SetProjectID(_ context.Context, args []string) error {
	return report(a.editor().SetProjectID(strings.Join(args, " ")))
}

// SetNotes takes the notes inline, or prompts for several lines.
func (a *App) SetNotes(_ context.Context, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		var err error
		text, err = GetMultiline(a.reader, "Enter notes", os.Stdout)
		if err != nil {
			return err
		}
	}
	return report(a.editor().SetNotes(text))
}

func (a *App) Check(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usage("check <item>")
	}
	i, err := position(args[0])
	if err != nil {
		return report(err)
	}
	checked, err := a.editor().ToggleItem(i)
	if err != nil {
		return report(err)
	}
	doc, _ := a.editor().Document()
	printlnFn(fmt.Sprintf("%s %s", checkbox(checked), doc.Items[i].Text))
	return nil
}

// AddURN appends a URN record, filling URN and trigger when given.
func (a *App) AddURN(_ context.Context, args []string) error {
	r, err := a.editor().AddURN()
	if err != nil {
		return report(err)
	}
	if len(args) > 0 {
		r.URN = args[0]
	}
	if len(args) > 1 {
		r.Trigger = strings.Join(args[1:], " ")
	}
	doc, _ := a.editor().Document()
	printlnFn(fmt.Sprintf("Added URN %d", len(doc.URNs)))
	return nil
}

func (a *App) RemoveURN(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usage("rmurn <urn>")
	}
	p, err := positions(args, 1)
	if err != nil {
		return report(err)
	}
	return report(a.editor().RemoveURN(p[0]))
}

func (a *App) SetURN(_ context.Context, args []string) error {
	if len(args) < 2 {
		return usage("urn <urn> <value>")
	}
	p, err := positions(args, 1)
	if err != nil {
		return report(err)
	}
	return report(a.editor().SetURN(p[0], strings.Join(args[1:], " ")))
}

func (a *App) SetTrigger(_ context.Context, args []string) error {
	if len(args) < 2 {
		return usage("trigger <urn> <value>")
	}
	p, err := positions(args, 1)
	if err != nil {
		return report(err)
	}
	return report(a.editor().SetTrigger(p[0], strings.Join(args[1:], " ")))
}

func (a *App) AddSubEntry(_ context.Context, args []string) error {
	if len(args) < 2 {
		return usage("addsub <urn> <CV|CUV|Live Area>")
	}
	p, err := positions(args, 1)
	if err != nil {
		return report(err)
	}
	kind, err := models.ParseKind(strings.Join(args[1:], " "))
	if err != nil {
		return report(err)
	}
	if _, err := a.editor().AddSubEntry(p[0], kind); err != nil {
		return report(err)
	}

	r, _ := a.editor().URN(p[0])
	label, _ := a.editor().SubEntryLabel(p[0], len(r.SubEntries)-1)
	printlnFn("Added", label)
	return nil
}

func (a *App) RemoveSubEntry(_ context.Context, args []string) error {
	if len(args) != 2 {
		return usage("rmsub <urn> <entry>")
	}
	p, err := positions(args, 2)
	if err != nil {
		return report(err)
	}
	return report(a.editor().RemoveSubEntry(p[0], p[1]))
}

func (a *App) SetSubEntryField(_ context.Context, args []string) error {
	if len(args) < 4 {
		return usage("setsub <urn> <entry> <field> <value>")
	}
	p, err := positions(args, 2)
	if err != nil {
		return report(err)
	}
	return report(a.editor().SetSubEntryField(p[0], p[1], args[2], strings.Join(args[3:], " ")))
}

// AttachImage probes a local file and shows it as the entry's preview. The
// image never leaves this machine.
func (a *App) AttachImage(_ context.Context, args []string) error {
	if len(args) < 3 {
		return usage("image <urn> <entry> <path>")
	}
	p, err := positions(args, 2)
	if err != nil {
		return report(err)
	}
	preview, err := imagex.Probe(strings.Join(args[2:], " "))
	if err != nil {
		return report(err)
	}
	if err := a.editor().AttachImage(p[0], p[1], preview); err != nil {
		return report(err)
	}
	printlnFn("Preview:", preview.String())
	return nil
}

func (a *App) RemoveImage(_ context.Context, args []string) error {
	if len(args) != 2 {
		return usage("rmimage <urn> <entry>")
	}
	p, err := positions(args, 2)
	if err != nil {
		return report(err)
	}
	return report(a.editor().RemoveImage(p[0], p[1]))
}

// Save creates or updates the open checklist. Success returns to the list;
// failure keeps the checklist open for another try.
func (a *App) Save(ctx context.Context, _ []string) error {
	out, err := a.checklists.Save(ctx)
	if err != nil {
		printlnFn(client.Message(err, msgSaveFailed))
		return err
	}

	printlnFn(out.Message)
	return a.List(ctx, nil)
}

// Export writes the open checklist to an xlsx file.
var writeWorkbook = export.Write

func (a *App) Export(_ context.Context, args []string) error {
	doc, err := a.editor().Document()
	if err != nil {
		return report(err)
	}

	path := "checklist.xlsx"
	if len(args) > 0 {
		path = strings.Join(args, " ")
	}

	path, err = filex.EnsureParentDir(path)
	if err != nil {
		return report(err)
	}
	f, err := os.Create(path)
	if err != nil {
		return report(err)
	}
	if err := writeWorkbook(f, doc); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return report(err)
	}
	if err := f.Close(); err != nil {
		return report(err)
	}
	printlnFn("Exported to", path)
	return nil
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// renderChecklist formats doc for the terminal, numbering items, URNs and
// sub-entries the way the editor commands address them.
func renderChecklist(doc *models.Checklist) string {
	var b strings.Builder

	id := "(unsaved)"
	if doc.ID != nil {
		id = doc.ID.String()
	}
	fmt.Fprintf(&b, "Checklist %s\n", id)
	fmt.Fprintf(&b, "Client:  %s\n", doc.ClientName)
	fmt.Fprintf(&b, "Project: %s\n", doc.ProjectID)
	fmt.Fprintf(&b, "Notes:   %s\n", doc.Notes)

	b.WriteString("Items:\n")
	for i, it := range doc.Items {
		fmt.Fprintf(&b, "  %2d %s %s\n", i+1, checkbox(it.Checked), it.Text)
	}

	b.WriteString("URNs:")
	if len(doc.URNs) == 0 {
		b.WriteString(" none")
	}
	for i, r := range doc.URNs {
		fmt.Fprintf(&b, "\n  %d URN: %s  Trigger: %s", i+1, r.URN, r.Trigger)
		for j, s := range r.SubEntries {
			fmt.Fprintf(&b, "\n    %d %s", j+1, checklist.Label(r.SubEntries, j))
			for _, f := range s.Fields() {
				fmt.Fprintf(&b, "  %s=%s", f.Name, f.Value)
			}
			if img := s.Image(); img != nil {
				fmt.Fprintf(&b, "\n      image: %s", img)
			}
		}
	}
	return b.String()
}
