package service

import (
	"context"
	"fmt"

	"dealerhub/internal/db"
	"dealerhub/internal/forms"
	"dealerhub/internal/model"

	"github.com/oklog/ulid/v2"
)

type TemplateService struct {
	queries   *db.Queries
	validator *forms.TemplateValidator
}

func NewTemplateService(queries *db.Queries, validator *forms.TemplateValidator) *TemplateService {
	return &TemplateService{queries: queries, validator: validator}
}

type CreateTemplateInput struct {
	Title                    string            `json:"title" validate:"required"`
	Description              string            `json:"description"`
	Fields                   []model.FormField `json:"fields"`
	DealerCanEditSubmissions bool              `json:"dealerCanEditSubmissions"`
}

// CreateTemplate stores a new template. Templates start unpublished and are
// only offered for data entry once published.
func (s *TemplateService) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*model.FormTemplate, error) {
	tmpl := model.FormTemplate{
		ID:                       ulid.Make().String(),
		Title:                    input.Title,
		Description:              input.Description,
		Fields:                   input.Fields,
		Published:                false,
		Archived:                 false,
		DealerCanEditSubmissions: input.DealerCanEditSubmissions,
	}
	if tmpl.Fields == nil {
		tmpl.Fields = []model.FormField{}
	}
	if err := s.validator.Validate(&tmpl); err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	row, err := s.queries.CreateFormTemplate(ctx, tmpl)
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return dbTemplateToModel(row), nil
}

func (s *TemplateService) GetTemplate(ctx context.Context, id string) (*model.FormTemplate, error) {
	row, err := s.queries.GetFormTemplateByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", forms.ErrTemplateNotFound, id)
	}
	return dbTemplateToModel(row), nil
}

// ListTemplates returns all templates for admins; publishedOnly narrows to
// the set offered to dealers for new entry.
func (s *TemplateService) ListTemplates(ctx context.Context, publishedOnly bool) ([]model.FormTemplate, error) {
	rows, err := s.queries.ListFormTemplates(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	templates := make([]model.FormTemplate, len(rows))
	for i, row := range rows {
		templates[i] = *dbTemplateToModel(row)
	}
	return templates, nil
}

// UpdateFields replaces a template's field definitions
func (s *TemplateService) UpdateFields(ctx context.Context, id string, fields []model.FormField) (*model.FormTemplate, error) {
	current, err := s.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Archived {
		return nil, fmt.Errorf("template %s is archived", id)
	}

	current.Fields = fields
	if err := s.validator.Validate(current); err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	row, err := s.queries.UpdateFormTemplate(ctx, *current)
	if err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return dbTemplateToModel(row), nil
}

func (s *TemplateService) SetPublished(ctx context.Context, id string, published bool) (*model.FormTemplate, error) {
	current, err := s.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Archived {
		return nil, fmt.Errorf("template %s is archived", id)
	}

	current.Published = published
	row, err := s.queries.UpdateFormTemplate(ctx, *current)
	if err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return dbTemplateToModel(row), nil
}

// Archive retires a template. Its submissions move to the terminal Archived
// status and widgets sourced from it disappear from dashboards.
func (s *TemplateService) Archive(ctx context.Context, id string) error {
	if _, err := s.GetTemplate(ctx, id); err != nil {
		return err
	}
	if err := s.queries.ArchiveFormTemplate(ctx, id); err != nil {
		return fmt.Errorf("failed to archive template: %w", err)
	}
	return nil
}

// Clone copies a template as a fresh unpublished draft
func (s *TemplateService) Clone(ctx context.Context, id string) (*model.FormTemplate, error) {
	source, err := s.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	clone := *source
	clone.ID = ulid.Make().String()
	clone.Title = "Copy of " + source.Title
	clone.Published = false
	clone.Archived = false
	clone.CreatedAt = ""

	row, err := s.queries.CreateFormTemplate(ctx, clone)
	if err != nil {
		return nil, fmt.Errorf("failed to clone template: %w", err)
	}
	return dbTemplateToModel(row), nil
}
