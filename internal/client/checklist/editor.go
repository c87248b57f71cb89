package checklist

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/checklist/internal/client/models"
)

var (
	ErrNoDocument = errors.New("no checklist is open")
	ErrIndex      = errors.New("index out of range")
	ErrState      = errors.New("invalid edit state")
)

// Editor is the editing context for one checklist at a time. It is not safe
// for concurrent use.
type Editor struct {
	doc     *models.Checklist
	state   State
	lastErr error
}

func NewEditor() *Editor {
	return &Editor{}
}

func (e *Editor) State() State { return e.state }

// Err returns the failure that put the editor into StateError.
func (e *Editor) Err() error { return e.lastErr }

// New opens a blank document with every fixed item unchecked and no id.
func (e *Editor) New() *models.Checklist {
	e.doc = &models.Checklist{
		Items: models.NewChecklistItems(),
		URNs:  []models.URNRecord{},
	}
	e.state = StateEditing
	e.lastErr = nil
	return e.doc
}

// BeginLoad marks that a fetch for an existing checklist is in flight. Any
// open document is dropped.
func (e *Editor) BeginLoad() {
	e.doc = nil
	e.lastErr = nil
	e.state = StateLoading
}

// Load replaces the open document with c. Fixed items are re-derived from the
// saved state by exact text, and sub-entries are copied so later edits do not
// alias c.
func (e *Editor) Load(c models.Checklist) *models.Checklist {
	doc := &models.Checklist{
		ClientName: c.ClientName,
		ProjectID:  c.ProjectID,
		Notes:      c.Notes,
		Items:      models.MatchItems(c.Items),
		URNs:       make([]models.URNRecord, 0, len(c.URNs)),
	}
	if c.ID != nil {
		id := *c.ID
		doc.ID = &id
	}
	for _, r := range c.URNs {
		doc.URNs = append(doc.URNs, copyURN(r))
	}

	e.doc = doc
	e.state = StateEditing
	e.lastErr = nil
	return e.doc
}

// LoadFailed abandons a fetch.
func (e *Editor) LoadFailed(err error) {
	e.doc = nil
	e.lastErr = err
	e.state = StateIdle
}

// Discard drops the open document, e.g. when leaving the editor view.
func (e *Editor) Discard() {
	e.doc = nil
	e.lastErr = nil
	e.state = StateIdle
}

// Document returns the open document.
func (e *Editor) Document() (*models.Checklist, error) {
	if e.doc == nil {
		return nil, ErrNoDocument
	}
	return e.doc, nil
}

// ID returns the tracked backend id; ok is false for an unsaved document.
func (e *Editor) ID() (id models.ID, ok bool) {
	if e.doc == nil || e.doc.ID == nil {
		return "", false
	}
	return *e.doc.ID, true
}

// IsNew reports whether saving would create a new record.
func (e *Editor) IsNew() bool {
	_, ok := e.ID()
	return !ok
}

// Payload is the document in the backend's JSON shape. Image previews are
// not part of it.
func (e *Editor) Payload() (models.Checklist, error) {
	doc, err := e.Document()
	if err != nil {
		return models.Checklist{}, err
	}
	out := *doc
	out.Items = append([]models.ChecklistItem(nil), doc.Items...)
	out.URNs = make([]models.URNRecord, 0, len(doc.URNs))
	for _, r := range doc.URNs {
		out.URNs = append(out.URNs, copyURN(r))
	}
	return out, nil
}

// BeginSave moves an open document into StateSaving and returns its payload.
func (e *Editor) BeginSave() (models.Checklist, error) {
	if e.doc == nil {
		return models.Checklist{}, ErrNoDocument
	}
	if e.state != StateEditing && e.state != StateError {
		return models.Checklist{}, fmt.Errorf("%w: cannot save while %s", ErrState, e.state)
	}
	p, err := e.Payload()
	if err != nil {
		return models.Checklist{}, err
	}
	e.state = StateSaving
	return p, nil
}

// SaveSucceeded closes the session; the caller navigates back to the list.
func (e *Editor) SaveSucceeded() {
	e.Discard()
}

// SaveFailed keeps the document open for another attempt.
func (e *Editor) SaveFailed(err error) {
	e.lastErr = err
	e.state = StateError
}

func (e *Editor) edit() (*models.Checklist, error) {
	if e.doc == nil {
		return nil, ErrNoDocument
	}
	if e.state == StateError {
		e.state = StateEditing
		e.lastErr = nil
	}
	return e.doc, nil
}

func (e *Editor) SetClientName(v string) error {
	doc, err := e.edit()
	if err != nil {
		return err
	}
	doc.ClientName = v
	return nil
}

func (e *Editor) SetProjectID(v string) error {
	doc, err := e.edit()
	if err != nil {
		return err
	}
	doc.ProjectID = v
	return nil
}

func (e *Editor) SetNotes(v string) error {
	doc, err := e.edit()
	if err != nil {
		return err
	}
	doc.Notes = v
	return nil
}

// ToggleItem flips the i-th fixed item and returns its new state.
func (e *Editor) ToggleItem(i int) (bool, error) {
	doc, err := e.edit()
	if err != nil {
		return false, err
	}
	if i < 0 || i >= len(doc.Items) {
		return false, fmt.Errorf("%w: item %d", ErrIndex, i+1)
	}
	doc.Items[i].Checked = !doc.Items[i].Checked
	return doc.Items[i].Checked, nil
}

// SetItemChecked sets the item whose text equals text exactly.
func (e *Editor) SetItemChecked(text string, checked bool) error {
	doc, err := e.edit()
	if err != nil {
		return err
	}
	for i := range doc.Items {
		if doc.Items[i].Text == text {
			doc.Items[i].Checked = checked
			return nil
		}
	}
	return fmt.Errorf("%w: no item %q", ErrIndex, text)
}

// AddURN appends an empty URN record and returns it for the caller to fill
// in. The pointer stays valid until the next AddURN or RemoveURN.
func (e *Editor) AddURN() (*models.URNRecord, error) {
	doc, err := e.edit()
	if err != nil {
		return nil, err
	}
	doc.URNs = append(doc.URNs, models.URNRecord{SubEntries: []models.SubEntry{}})
	return &doc.URNs[len(doc.URNs)-1], nil
}

func (e *Editor) urn(i int) (*models.URNRecord, error) {
	doc, err := e.edit()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(doc.URNs) {
		return nil, fmt.Errorf("%w: urn %d", ErrIndex, i+1)
	}
	return &doc.URNs[i], nil
}

// URN returns the i-th record.
func (e *Editor) URN(i int) (*models.URNRecord, error) {
	return e.urn(i)
}

func (e *Editor) RemoveURN(i int) error {
	if _, err := e.urn(i); err != nil {
		return err
	}
	e.doc.URNs = append(e.doc.URNs[:i], e.doc.URNs[i+1:]...)
	return nil
}

func (e *Editor) SetURN(i int, value string) error {
	r, err := e.urn(i)
	if err != nil {
		return err
	}
	r.URN = value
	return nil
}

func (e *Editor) SetTrigger(i int, value string) error {
	r, err := e.urn(i)
	if err != nil {
		return err
	}
	r.Trigger = value
	return nil
}

// AddSubEntry appends an empty sub-entry of kind to the i-th URN and returns
// it for the caller to fill in.
func (e *Editor) AddSubEntry(i int, kind models.SubEntryKind) (models.SubEntry, error) {
	r, err := e.urn(i)
	if err != nil {
		return nil, err
	}
	sub, err := models.NewSubEntry(kind)
	if err != nil {
		return nil, err
	}
	r.SubEntries = append(r.SubEntries, sub)
	return sub, nil
}

// SubEntry returns sub-entry j of URN i.
func (e *Editor) SubEntry(i, j int) (models.SubEntry, error) {
	r, err := e.urn(i)
	if err != nil {
		return nil, err
	}
	if j < 0 || j >= len(r.SubEntries) {
		return nil, fmt.Errorf("%w: entry %d of urn %d", ErrIndex, j+1, i+1)
	}
	return r.SubEntries[j], nil
}

func (e *Editor) RemoveSubEntry(i, j int) error {
	if _, err := e.SubEntry(i, j); err != nil {
		return err
	}
	r := &e.doc.URNs[i]
	r.SubEntries = append(r.SubEntries[:j], r.SubEntries[j+1:]...)
	return nil
}

func (e *Editor) SetSubEntryField(i, j int, name, value string) error {
	sub, err := e.SubEntry(i, j)
	if err != nil {
		return err
	}
	return sub.SetField(name, value)
}

// AttachImage sets the local preview of a sub-entry, replacing any previous one.
func (e *Editor) AttachImage(i, j int, p *models.ImagePreview) error {
	sub, err := e.SubEntry(i, j)
	if err != nil {
		return err
	}
	sub.SetImage(p)
	return nil
}

func (e *Editor) RemoveImage(i, j int) error {
	return e.AttachImage(i, j, nil)
}

// SubEntryLabel names sub-entry j of URN i by its kind and 1-based position
// among siblings of the same kind, e.g. "CV1", "CUV2", "Live Area1".
func (e *Editor) SubEntryLabel(i, j int) (string, error) {
	if _, err := e.SubEntry(i, j); err != nil {
		return "", err
	}
	return Label(e.doc.URNs[i].SubEntries, j), nil
}

// Label computes the display label of entries[j]; see Editor.SubEntryLabel.
func Label(entries []models.SubEntry, j int) string {
	kind := entries[j].Kind()
	n := 0
	for _, s := range entries[:j+1] {
		if s.Kind() == kind {
			n++
		}
	}
	return fmt.Sprintf("%s%d", kind, n)
}

func copyURN(r models.URNRecord) models.URNRecord {
	out := models.URNRecord{URN: r.URN, Trigger: r.Trigger, SubEntries: make([]models.SubEntry, 0, len(r.SubEntries))}
	for _, s := range r.SubEntries {
		out.SubEntries = append(out.SubEntries, copySubEntry(s))
	}
	return out
}

func copySubEntry(s models.SubEntry) models.SubEntry {
	var out models.SubEntry
	switch v := s.(type) {
	case *models.CV:
		out = &models.CV{CameraID: v.CameraID}
	case *models.CUV:
		out = &models.CUV{LocationCode: v.LocationCode, EngineID: v.EngineID, CameraID: v.CameraID}
	case *models.LiveArea:
		out = &models.LiveArea{}
	default:
		panic(fmt.Sprintf("checklist: unhandled sub-entry %T", s))
	}
	if p := s.Image(); p != nil {
		cp := *p
		out.SetImage(&cp)
	}
	return out
}
