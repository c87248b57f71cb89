// Package models defines the client-side document types exchanged with the
// checklist backend: users, checklists, URN records and their CV / CUV /
// Live Area sub-entries.
//
// Sub-entries form a closed sum type (SubEntry). The wire form is tagged by a
// "type" field; decoding an unknown tag fails with ErrUnknownSubEntryType.
// Image previews attached to sub-entries are local only and never serialised.
package models
