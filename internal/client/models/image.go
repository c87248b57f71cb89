package models

import "fmt"

// ImagePreview describes an image attached to a sub-entry for on-screen
// reference. It lives only in memory: it is not part of the JSON payload and
// is lost when the checklist is reloaded.
type ImagePreview struct {
	// LocalID ties the preview to its sub-entry within one editing session.
	LocalID string
	Path    string
	Format  string
	Width   int
	Height  int
	Size    int64
}

func (p ImagePreview) String() string {
	return fmt.Sprintf("%s (%s, %dx%d, %d bytes)", p.Path, p.Format, p.Width, p.Height, p.Size)
}
