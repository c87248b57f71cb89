package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/checklist/internal/client/checklist"
	"github.com/dmitrijs2005/checklist/internal/client/client"
	"github.com/dmitrijs2005/checklist/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChecklistSvc(fc *fakeClient) ChecklistService {
	return NewChecklistService(fc, checklist.NewEditor(), nil)
}

func TestSave_NewDocumentPosts(t *testing.T) {
	fc := &fakeClient{}
	svc := newChecklistSvc(fc)

	svc.New()
	require.NoError(t, svc.Editor().SetClientName("Acme"))

	out, err := svc.Save(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.Equal(t, "Checklist saved", out.Message)
	require.Len(t, fc.creates, 1)
	assert.Empty(t, fc.updates)
	assert.Equal(t, "Acme", fc.creates[0].ClientName)
	assert.Equal(t, checklist.StateIdle, svc.Editor().State())
}

func TestSave_TrackedDocumentPuts(t *testing.T) {
	id := models.ID("12")
	fc := &fakeClient{record: models.Checklist{ID: &id, ClientName: "Acme"}}
	svc := newChecklistSvc(fc)

	_, err := svc.Open(context.Background(), "12")
	require.NoError(t, err)
	require.NoError(t, svc.Editor().SetNotes("updated"))

	out, err := svc.Save(context.Background())
	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.Empty(t, fc.creates)
	require.Contains(t, fc.updates, id)
	assert.Equal(t, "updated", fc.updates[id].Notes)
}

func TestOpen_RecordWithoutIDUsesRequestedID(t *testing.T) {
	fc := &fakeClient{record: models.Checklist{ClientName: "Acme"}}
	svc := newChecklistSvc(fc)

	_, err := svc.Open(context.Background(), "33")
	require.NoError(t, err)
	id, ok := svc.Editor().ID()
	require.True(t, ok)
	assert.Equal(t, models.ID("33"), id)
}

func TestOpen_FailureReturnsToIdle(t *testing.T) {
	fc := &fakeClient{getErr: &client.APIError{StatusCode: 404, Message: "Checklist not found"}}
	svc := newChecklistSvc(fc)

	_, err := svc.Open(context.Background(), "1")
	require.EqualError(t, err, "Checklist not found")
	assert.Equal(t, checklist.StateIdle, svc.Editor().State())
	_, err = svc.Editor().Document()
	require.ErrorIs(t, err, checklist.ErrNoDocument)
}

func TestSave_FailureKeepsDocumentEditable(t *testing.T) {
	fc := &fakeClient{saveErr: client.ErrUnavailable}
	svc := newChecklistSvc(fc)
	svc.New()
	require.NoError(t, svc.Editor().SetClientName("Acme"))

	_, err := svc.Save(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, checklist.StateError, svc.Editor().State())

	doc, err := svc.Editor().Document()
	require.NoError(t, err)
	assert.Equal(t, "Acme", doc.ClientName)

	fc.saveErr = nil
	_, err = svc.Save(context.Background())
	require.NoError(t, err)
	assert.Len(t, fc.creates, 2, "a failed save is re-triggered manually")
}

func TestSave_NothingOpen(t *testing.T) {
	svc := newChecklistSvc(&fakeClient{})
	_, err := svc.Save(context.Background())
	require.ErrorIs(t, err, checklist.ErrNoDocument)
}

func TestNew_AfterEditForgetsPreviousChecklist(t *testing.T) {
	id := models.ID("12")
	fc := &fakeClient{record: models.Checklist{ID: &id, ClientName: "Old", Notes: "old"}}
	svc := newChecklistSvc(fc)

	_, err := svc.Open(context.Background(), id)
	require.NoError(t, err)

	doc := svc.New()
	assert.Empty(t, doc.ClientName)
	assert.True(t, svc.Editor().IsNew())

	_, err = svc.Save(context.Background())
	require.NoError(t, err)
	assert.Len(t, fc.creates, 1)
	assert.Empty(t, fc.updates)
}

func TestDelete_DiscardsOpenDocument(t *testing.T) {
	id := models.ID("5")
	fc := &fakeClient{record: models.Checklist{ID: &id}}
	svc := newChecklistSvc(fc)
	_, err := svc.Open(context.Background(), id)
	require.NoError(t, err)

	msg, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Checklist deleted", msg)
	assert.Equal(t, []models.ID{"5"}, fc.deleted)
	_, err = svc.Editor().Document()
	require.ErrorIs(t, err, checklist.ErrNoDocument)
}

func TestDelete_Error(t *testing.T) {
	fc := &fakeClient{msgErr: errors.New("gone")}
	_, err := newChecklistSvc(fc).Delete(context.Background(), "1")
	require.EqualError(t, err, "gone")
}
