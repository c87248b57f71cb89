package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/checklist/internal/client/checklist"
	"github.com/dmitrijs2005/checklist/internal/client/client"
	"github.com/dmitrijs2005/checklist/internal/client/models"
	"github.com/dmitrijs2005/checklist/internal/logging"
)

// SaveOutcome describes a completed save.
type SaveOutcome struct {
	// Created is true when the save issued a POST.
	Created bool
	Message string
}

// ChecklistService runs the checklist edit session against the backend.
type ChecklistService interface {
	List(ctx context.Context) ([]models.Checklist, error)
	// New opens a blank document in the editor.
	New() *models.Checklist
	// Open fetches a checklist and loads it into the editor.
	Open(ctx context.Context, id models.ID) (*models.Checklist, error)
	// Save creates the open document when it has no id, updates it otherwise.
	Save(ctx context.Context) (SaveOutcome, error)
	Delete(ctx context.Context, id models.ID) (string, error)
	Editor() *checklist.Editor
}

type checklistService struct {
	client client.Client
	editor *checklist.Editor
	log    logging.Logger
}

func NewChecklistService(c client.Client, editor *checklist.Editor, log logging.Logger) ChecklistService {
	if log == nil {
		log = logging.Discard()
	}
	return &checklistService{client: c, editor: editor, log: log.With("service", "checklists")}
}

func (s *checklistService) Editor() *checklist.Editor { return s.editor }

func (s *checklistService) List(ctx context.Context) ([]models.Checklist, error) {
	return s.client.ListChecklists(ctx)
}

func (s *checklistService) New() *models.Checklist {
	return s.editor.New()
}

func (s *checklistService) Open(ctx context.Context, id models.ID) (*models.Checklist, error) {
	s.editor.BeginLoad()

	c, err := s.client.GetChecklist(ctx, id)
	if err != nil {
		s.editor.LoadFailed(err)
		return nil, err
	}
	if c.ID == nil {
		c.ID = &id
	}
	return s.editor.Load(c), nil
}

func (s *checklistService) Save(ctx context.Context) (SaveOutcome, error) {
	id, tracked := s.editor.ID()

	payload, err := s.editor.BeginSave()
	if err != nil {
		return SaveOutcome{}, err
	}

	var res client.SaveResult
	if tracked {
		res, err = s.client.UpdateChecklist(ctx, id, payload)
	} else {
		res, err = s.client.CreateChecklist(ctx, payload)
	}
	if err != nil {
		s.editor.SaveFailed(err)
		return SaveOutcome{}, fmt.Errorf("save checklist: %w", err)
	}

	s.editor.SaveSucceeded()
	s.log.Info(ctx, "checklist saved", "created", !tracked, "id", id)
	return SaveOutcome{Created: !tracked, Message: res.Message}, nil
}

func (s *checklistService) Delete(ctx context.Context, id models.ID) (string, error) {
	msg, err := s.client.DeleteChecklist(ctx, id)
	if err != nil {
		return "", err
	}
	if open, ok := s.editor.ID(); ok && open == id {
		s.editor.Discard()
	}
	return msg, nil
}
