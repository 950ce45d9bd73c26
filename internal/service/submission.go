package service

import (
	"context"
	"fmt"

	"dealerhub/internal/db"
	"dealerhub/internal/forms"
	"dealerhub/internal/model"

	"github.com/oklog/ulid/v2"
)

type SubmissionService struct {
	queries     *db.Queries
	templateSvc *TemplateService
}

func NewSubmissionService(queries *db.Queries, templateSvc *TemplateService) *SubmissionService {
	return &SubmissionService{queries: queries, templateSvc: templateSvc}
}

type CreateSubmissionInput struct {
	TemplateID string            `json:"templateId" validate:"required"`
	DealerID   string            `json:"dealerId" validate:"required"`
	Data       model.FieldValues `json:"data"`
}

// CreateSubmission validates a draft against its template, derives the
// cross-cutting values and stores the submission as Pending. An unknown
// template fails the whole create: derivation against a missing template is
// undefined.
func (s *SubmissionService) CreateSubmission(ctx context.Context, input CreateSubmissionInput) (*model.Submission, error) {
	tmpl, err := s.templateSvc.GetTemplate(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}
	if !tmpl.Published || tmpl.Archived {
		return nil, fmt.Errorf("template %s is not open for submissions", tmpl.ID)
	}

	data, err := forms.ValidateDraft(tmpl, input.Data)
	if err != nil {
		return nil, err
	}
	derived := forms.DeriveCrossFields(tmpl, data)

	row, err := s.queries.CreateSubmission(ctx, db.CreateSubmissionParams{
		ID:         ulid.Make().String(),
		TemplateID: tmpl.ID,
		DealerID:   input.DealerID,
		Status:     string(model.StatusPending),
		Data:       data,
		GoalValue:  strPtr(string(derived.GoalValue)),
		EventDate:  strPtr(derived.EventDate),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return dbSubmissionToModel(row), nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	row, err := s.queries.GetSubmissionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("submission not found: %w", err)
	}
	return dbSubmissionToModel(row), nil
}

// ListSubmissions returns submissions newest first, optionally scoped by
// dealer and/or template.
func (s *SubmissionService) ListSubmissions(ctx context.Context, dealerID, templateID string) ([]model.Submission, error) {
	rows, err := s.queries.ListSubmissions(ctx, strPtr(dealerID), strPtr(templateID))
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return dbSubmissionsToModel(rows), nil
}

// Actor identifies who is performing a submission edit
type Actor struct {
	Role     model.Role
	DealerID string
}

// canEdit applies the edit gate: admins always may, the owning dealer only
// when the template allows it. Archived submissions are terminal.
func canEdit(tmpl *model.FormTemplate, sub *model.Submission, actor Actor) error {
	if sub.Status == model.StatusArchived {
		return fmt.Errorf("submission %s is archived", sub.ID)
	}
	if actor.Role == model.RoleAdmin {
		return nil
	}
	if actor.Role == model.RoleDealer && actor.DealerID == sub.DealerID && tmpl.DealerCanEditSubmissions {
		return nil
	}
	return fmt.Errorf("not allowed to edit submission %s", sub.ID)
}

// UpdateData replaces a submission's values and re-derives the cross-cutting
// fields. The submission date never changes.
func (s *SubmissionService) UpdateData(ctx context.Context, id string, data model.FieldValues, actor Actor) (*model.Submission, error) {
	sub, err := s.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	tmpl, err := s.templateSvc.GetTemplate(ctx, sub.TemplateID)
	if err != nil {
		return nil, err
	}
	if err := canEdit(tmpl, sub, actor); err != nil {
		return nil, err
	}

	normalized, err := forms.ValidateDraft(tmpl, data)
	if err != nil {
		return nil, err
	}
	derived := forms.DeriveCrossFields(tmpl, normalized)

	row, err := s.queries.UpdateSubmissionData(ctx, id, normalized,
		strPtr(string(derived.GoalValue)), strPtr(derived.EventDate))
	if err != nil {
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}
	return dbSubmissionToModel(row), nil
}

// SetStatus flips a submission between Pending and Completed. Archived is
// only ever reached through template archiving and is terminal.
func (s *SubmissionService) SetStatus(ctx context.Context, id string, status model.SubmissionStatus) (*model.Submission, error) {
	if status != model.StatusPending && status != model.StatusCompleted {
		return nil, fmt.Errorf("status %q cannot be set directly", status)
	}
	sub, err := s.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status == model.StatusArchived {
		return nil, fmt.Errorf("submission %s is archived", id)
	}

	if err := s.queries.UpdateSubmissionStatus(ctx, id, string(status)); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	sub.Status = status
	return sub, nil
}

// QuickEditResult reports how an inline edit was routed. When Applied is
// false the submission was left untouched and the caller must open a full
// edit form pre-seeded with Data.
type QuickEditResult struct {
	Applied    bool              `json:"applied"`
	Data       model.FieldValues `json:"data"`
	Submission *model.Submission `json:"submission,omitempty"`
}

// QuickEdit applies a single-field inline edit when it is safe: if the edit
// reveals a required conditional field that is still empty, the edit is not
// persisted and the caller is told to fall back to the full form.
func (s *SubmissionService) QuickEdit(ctx context.Context, id, fieldID string, value interface{}, actor Actor) (*QuickEditResult, error) {
	sub, err := s.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	tmpl, err := s.templateSvc.GetTemplate(ctx, sub.TemplateID)
	if err != nil {
		return nil, err
	}
	if err := canEdit(tmpl, sub, actor); err != nil {
		return nil, err
	}

	decision := forms.QuickEditDecision(tmpl, sub.Data, fieldID, value)
	if !decision.Apply {
		return &QuickEditResult{Applied: false, Data: decision.Data}, nil
	}

	updated, err := s.UpdateData(ctx, id, decision.Data, actor)
	if err != nil {
		return nil, err
	}
	return &QuickEditResult{Applied: true, Data: decision.Data, Submission: updated}, nil
}
