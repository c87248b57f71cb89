package export

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/checklist/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	id := models.ID("7")
	items := models.NewChecklistItems()
	items[0].Checked = true

	c := &models.Checklist{
		ID:         &id,
		ClientName: "Acme",
		ProjectID:  "P1",
		Notes:      "n",
		Items:      items,
		URNs: []models.URNRecord{
			{URN: "U1", Trigger: "T1", SubEntries: []models.SubEntry{
				&models.CV{CameraID: "C9"},
				&models.CUV{LocationCode: "L1", EngineID: "E1", CameraID: "C1"},
				&models.CV{CameraID: "C10"},
			}},
			{URN: "U2", Trigger: "T2"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetChecklist, SheetURNs}, f.GetSheetList())

	rows, err := f.GetRows(SheetChecklist)
	require.NoError(t, err)
	assert.Equal(t, []string{"Checklist ID", "7"}, rows[0])
	assert.Equal(t, []string{"Client Name", "Acme"}, rows[1])
	assert.Equal(t, []string{"Project ID", "P1"}, rows[2])
	assert.Equal(t, []string{items[0].Text, "Yes"}, rows[6])
	assert.Equal(t, []string{items[1].Text, "No"}, rows[7])
	assert.Len(t, rows, 6+len(items))

	urns, err := f.GetRows(SheetURNs)
	require.NoError(t, err)
	require.Len(t, urns, 5)
	assert.Equal(t, urnHeaders, urns[0])
	assert.Equal(t, []string{"U1", "T1", "CV1", "CV", "", "", "C9"}, urns[1])
	assert.Equal(t, []string{"U1", "T1", "CUV1", "CUV", "L1", "E1", "C1"}, urns[2])
	assert.Equal(t, []string{"U1", "T1", "CV2", "CV", "", "", "C10"}, urns[3])
	assert.Equal(t, []string{"U2", "T2"}, urns[4])
}

func TestWrite_UnsavedChecklistHasEmptyID(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &models.Checklist{ClientName: "Acme", Items: models.NewChecklistItems()}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(SheetChecklist, "B1")
	require.NoError(t, err)
	assert.Empty(t, v)
}
