// Package export writes the checklist being edited to a spreadsheet.
package export

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/checklist/internal/client/checklist"
	"github.com/dmitrijs2005/checklist/internal/client/models"
	"github.com/xuri/excelize/v2"
)

const (
	SheetChecklist = "Checklist"
	SheetURNs      = "URNs"
)

var urnHeaders = []string{"URN", "Trigger", "Entry", "Type", "Location Code", "Engine ID", "Camera ID", "Image"}

// Write renders c as an xlsx workbook: header fields and items on the
// Checklist sheet, one row per sub-entry on the URNs sheet. A URN without
// sub-entries still gets a row.
func Write(w io.Writer, c *models.Checklist) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetChecklist); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetURNs); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := writeChecklist(f, c, bold); err != nil {
		return err
	}
	if err := writeURNs(f, c, bold); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeChecklist(f *excelize.File, c *models.Checklist, bold int) error {
	id := ""
	if c.ID != nil {
		id = c.ID.String()
	}
	rows := [][]any{
		{"Checklist ID", id},
		{"Client Name", c.ClientName},
		{"Project ID", c.ProjectID},
		{"Notes", c.Notes},
		{},
		{"Item", "Checked"},
	}
	for _, it := range c.Items {
		rows = append(rows, []any{it.Text, yesNo(it.Checked)})
	}

	for i, row := range rows {
		if err := setRow(f, SheetChecklist, i+1, row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetChecklist, "A1", "A4", bold); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if err := f.SetCellStyle(SheetChecklist, "A6", "B6", bold); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	return f.SetColWidth(SheetChecklist, "A", "A", 40)
}

func writeURNs(f *excelize.File, c *models.Checklist, bold int) error {
	header := make([]any, len(urnHeaders))
	for i, h := range urnHeaders {
		header[i] = h
	}
	if err := setRow(f, SheetURNs, 1, header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(urnHeaders), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetURNs, "A1", last, bold); err != nil {
		return fmt.Errorf("style: %w", err)
	}

	row := 2
	for _, r := range c.URNs {
		if len(r.SubEntries) == 0 {
			if err := setRow(f, SheetURNs, row, []any{r.URN, r.Trigger}); err != nil {
				return err
			}
			row++
			continue
		}
		for j, s := range r.SubEntries {
			values := append([]any{r.URN, r.Trigger, checklist.Label(r.SubEntries, j)}, subEntryCells(s)...)
			if err := setRow(f, SheetURNs, row, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// subEntryCells fills the Type..Image columns.
func subEntryCells(s models.SubEntry) []any {
	image := ""
	if p := s.Image(); p != nil {
		image = p.Path
	}
	switch e := s.(type) {
	case *models.CV:
		return []any{string(e.Kind()), "", "", e.CameraID, image}
	case *models.CUV:
		return []any{string(e.Kind()), e.LocationCode, e.EngineID, e.CameraID, image}
	case *models.LiveArea:
		return []any{string(e.Kind()), "", "", "", image}
	default:
		panic(fmt.Sprintf("export: unhandled sub-entry %T", s))
	}
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
