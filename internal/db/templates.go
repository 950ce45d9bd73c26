package db

import (
	"context"
	"fmt"
	"time"

	"dealerhub/internal/model"
)

// FormTemplate represents a form template row
type FormTemplate struct {
	ID                       string
	Title                    string
	Description              string
	Fields                   []byte // jsonb
	Published                bool
	Archived                 bool
	DealerCanEditSubmissions bool
	CreatedAt                time.Time
}

func (q *Queries) CreateFormTemplate(ctx context.Context, t model.FormTemplate) (FormTemplate, error) {
	fields, err := marshalJSON(t.Fields, true)
	if err != nil {
		return FormTemplate{}, fmt.Errorf("failed to encode fields: %w", err)
	}

	var row FormTemplate
	err = q.Pool.QueryRow(ctx,
		`INSERT INTO form_templates (id, title, description, fields, published, archived, dealer_can_edit)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, description, fields, published, archived, dealer_can_edit, created_at`,
		t.ID, t.Title, t.Description, fields, t.Published, t.Archived, t.DealerCanEditSubmissions,
	).Scan(&row.ID, &row.Title, &row.Description, &row.Fields, &row.Published,
		&row.Archived, &row.DealerCanEditSubmissions, &row.CreatedAt)
	return row, err
}

func (q *Queries) GetFormTemplateByID(ctx context.Context, id string) (FormTemplate, error) {
	var row FormTemplate
	err := q.Pool.QueryRow(ctx,
		`SELECT id, title, description, fields, published, archived, dealer_can_edit, created_at
		FROM form_templates WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.Title, &row.Description, &row.Fields, &row.Published,
		&row.Archived, &row.DealerCanEditSubmissions, &row.CreatedAt)
	return row, err
}

// ListFormTemplates returns all templates, newest first. When publishedOnly
// is set, archived and unpublished templates are filtered out (the data-entry
// listing for dealers).
func (q *Queries) ListFormTemplates(ctx context.Context, publishedOnly bool) ([]FormTemplate, error) {
	query := `SELECT id, title, description, fields, published, archived, dealer_can_edit, created_at
		FROM form_templates ORDER BY created_at DESC`
	if publishedOnly {
		query = `SELECT id, title, description, fields, published, archived, dealer_can_edit, created_at
		FROM form_templates WHERE published = TRUE AND archived = FALSE ORDER BY created_at DESC`
	}

	rows, err := q.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []FormTemplate
	for rows.Next() {
		var row FormTemplate
		if err := rows.Scan(&row.ID, &row.Title, &row.Description, &row.Fields, &row.Published,
			&row.Archived, &row.DealerCanEditSubmissions, &row.CreatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, row)
	}
	return templates, rows.Err()
}

func (q *Queries) UpdateFormTemplate(ctx context.Context, t model.FormTemplate) (FormTemplate, error) {
	fields, err := marshalJSON(t.Fields, true)
	if err != nil {
		return FormTemplate{}, fmt.Errorf("failed to encode fields: %w", err)
	}

	var row FormTemplate
	err = q.Pool.QueryRow(ctx,
		`UPDATE form_templates
		SET title = $2, description = $3, fields = $4, published = $5, archived = $6, dealer_can_edit = $7
		WHERE id = $1
		RETURNING id, title, description, fields, published, archived, dealer_can_edit, created_at`,
		t.ID, t.Title, t.Description, fields, t.Published, t.Archived, t.DealerCanEditSubmissions,
	).Scan(&row.ID, &row.Title, &row.Description, &row.Fields, &row.Published,
		&row.Archived, &row.DealerCanEditSubmissions, &row.CreatedAt)
	return row, err
}

// ArchiveFormTemplate marks a template archived and cascades: its submissions
// move to the terminal Archived status and widgets sourced from it are
// removed together with their layout rows.
func (q *Queries) ArchiveFormTemplate(ctx context.Context, id string) error {
	tx, err := q.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		"UPDATE form_templates SET archived = TRUE WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to archive template: %w", err)
	}
	if _, err := tx.Exec(ctx,
		"UPDATE submissions SET status = 'Archived', updated_at = NOW() WHERE template_id = $1", id); err != nil {
		return fmt.Errorf("failed to archive submissions: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM layouts WHERE widget_id IN
			(SELECT id FROM widgets WHERE config->>'formTemplateId' = $1)`, id); err != nil {
		return fmt.Errorf("failed to delete widget layouts: %w", err)
	}
	if _, err := tx.Exec(ctx,
		"DELETE FROM widgets WHERE config->>'formTemplateId' = $1", id); err != nil {
		return fmt.Errorf("failed to delete widgets: %w", err)
	}

	return tx.Commit(ctx)
}
