// Package checklist holds the in-memory checklist being edited.
//
// An Editor owns at most one document. New starts from a blank document and
// forgets any previously tracked id; Load populates it from a fetched record.
// Mutations stay local until the document is saved, and the tracked id
// decides whether that save creates (POST) or updates (PUT).
//
// The editor also tracks the edit-session state:
//
//	Idle → Loading → Editing → Saving → Idle | Error
//
// A failed fetch returns to Idle; a failed save parks in Error with the
// document still editable.
package checklist
