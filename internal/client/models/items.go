package models

// DefaultItemLabels is the fixed set of checklist lines, in display order.
var DefaultItemLabels = []string{
	"Cameras mounted and aligned",
	"Camera power and network verified",
	"Engine powered on and reachable",
	"Firmware updated to current release",
	"Time synchronisation configured",
	"Triggers configured and tested",
	"Live areas drawn and verified",
	"Test events recorded and reviewed",
	"Cabling labelled and secured",
	"Customer walkthrough completed",
}

// NewChecklistItems returns every fixed line, unchecked.
func NewChecklistItems() []ChecklistItem {
	items := make([]ChecklistItem, len(DefaultItemLabels))
	for i, label := range DefaultItemLabels {
		items[i] = ChecklistItem{Text: label}
	}
	return items
}

// MatchItems maps saved item state onto the fixed lines by exact text
// equality. Saved lines whose text is not a fixed label are dropped; fixed
// lines with no saved counterpart come back unchecked.
func MatchItems(saved []ChecklistItem) []ChecklistItem {
	checked := make(map[string]bool, len(saved))
	for _, it := range saved {
		if it.Checked {
			checked[it.Text] = true
		}
	}

	items := NewChecklistItems()
	for i := range items {
		items[i].Checked = checked[items[i].Text]
	}
	return items
}
