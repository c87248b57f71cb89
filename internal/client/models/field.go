package models

// Field is one named input of a form-like record.
type Field struct {
	// Name is the JSON field name.
	Name string
	// Label is the human caption.
	Label string
	Value string
}
