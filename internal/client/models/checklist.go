package models

import (
	"encoding/json"
	"fmt"
)

// ChecklistItem is one line of the fixed checklist. Items carry no stable id;
// they are matched by exact Text.
type ChecklistItem struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// URNRecord groups the sub-entries inspected for one URN.
type URNRecord struct {
	URN        string     `json:"urn"`
	Trigger    string     `json:"trigger"`
	SubEntries []SubEntry `json:"sub_entries"`
}

// Checklist is one post-install inspection document. ID is nil until the
// backend has assigned one.
type Checklist struct {
	ID         *ID             `json:"id,omitempty"`
	ClientName string          `json:"client_name"`
	ProjectID  string          `json:"project_id"`
	Notes      string          `json:"notes"`
	Items      []ChecklistItem `json:"checklist_items"`
	URNs       []URNRecord     `json:"urn_data"`
}

func (r *URNRecord) UnmarshalJSON(b []byte) error {
	var raw struct {
		URN        string            `json:"urn"`
		Trigger    string            `json:"trigger"`
		SubEntries []json.RawMessage `json:"sub_entries"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	entries := make([]SubEntry, 0, len(raw.SubEntries))
	for i, item := range raw.SubEntries {
		e, err := DecodeSubEntry(item)
		if err != nil {
			return fmt.Errorf("sub_entries[%d]: %w", i, err)
		}
		entries = append(entries, e)
	}

	r.URN = raw.URN
	r.Trigger = raw.Trigger
	r.SubEntries = entries
	return nil
}

func (r URNRecord) MarshalJSON() ([]byte, error) {
	entries := r.SubEntries
	if entries == nil {
		entries = []SubEntry{}
	}
	return json.Marshal(struct {
		URN        string     `json:"urn"`
		Trigger    string     `json:"trigger"`
		SubEntries []SubEntry `json:"sub_entries"`
	}{URN: r.URN, Trigger: r.Trigger, SubEntries: entries})
}

// Summary is a one-line description for list views.
func (c Checklist) Summary() string {
	id := "-"
	if c.ID != nil {
		id = c.ID.String()
	}
	done := 0
	for _, it := range c.Items {
		if it.Checked {
			done++
		}
	}
	return fmt.Sprintf("#%s %s / %s (%d/%d checked, %d URNs)", id, c.ClientName, c.ProjectID, done, len(c.Items), len(c.URNs))
}
