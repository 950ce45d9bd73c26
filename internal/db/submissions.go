package db

import (
	"context"
	"fmt"
	"time"
)

// Submission represents a submission row
type Submission struct {
	ID             string
	TemplateID     string
	DealerID       string
	SubmissionDate time.Time
	Status         string
	Data           []byte // jsonb
	GoalValue      *string
	EventDate      *string
	UpdatedAt      time.Time
}

type CreateSubmissionParams struct {
	ID         string
	TemplateID string
	DealerID   string
	Status     string
	Data       interface{}
	GoalValue  *string
	EventDate  *string
}

func (q *Queries) CreateSubmission(ctx context.Context, p CreateSubmissionParams) (Submission, error) {
	data, err := marshalJSON(p.Data, false)
	if err != nil {
		return Submission{}, fmt.Errorf("failed to encode data: %w", err)
	}

	var row Submission
	err = q.Pool.QueryRow(ctx,
		`INSERT INTO submissions (id, template_id, dealer_id, status, data, goal_value, event_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, template_id, dealer_id, submission_date, status, data, goal_value, event_date, updated_at`,
		p.ID, p.TemplateID, p.DealerID, p.Status, data, p.GoalValue, p.EventDate,
	).Scan(&row.ID, &row.TemplateID, &row.DealerID, &row.SubmissionDate, &row.Status,
		&row.Data, &row.GoalValue, &row.EventDate, &row.UpdatedAt)
	return row, err
}

func (q *Queries) GetSubmissionByID(ctx context.Context, id string) (Submission, error) {
	var row Submission
	err := q.Pool.QueryRow(ctx,
		`SELECT id, template_id, dealer_id, submission_date, status, data, goal_value, event_date, updated_at
		FROM submissions WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.TemplateID, &row.DealerID, &row.SubmissionDate, &row.Status,
		&row.Data, &row.GoalValue, &row.EventDate, &row.UpdatedAt)
	return row, err
}

// UpdateSubmissionData replaces a submission's values and derived fields.
// submission_date is set once at creation and never touched here.
func (q *Queries) UpdateSubmissionData(ctx context.Context, id string, data interface{}, goalValue, eventDate *string) (Submission, error) {
	encoded, err := marshalJSON(data, false)
	if err != nil {
		return Submission{}, fmt.Errorf("failed to encode data: %w", err)
	}

	var row Submission
	err = q.Pool.QueryRow(ctx,
		`UPDATE submissions
		SET data = $2, goal_value = $3, event_date = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, template_id, dealer_id, submission_date, status, data, goal_value, event_date, updated_at`,
		id, encoded, goalValue, eventDate,
	).Scan(&row.ID, &row.TemplateID, &row.DealerID, &row.SubmissionDate, &row.Status,
		&row.Data, &row.GoalValue, &row.EventDate, &row.UpdatedAt)
	return row, err
}

func (q *Queries) UpdateSubmissionStatus(ctx context.Context, id, status string) error {
	_, err := q.Pool.Exec(ctx,
		"UPDATE submissions SET status = $2, updated_at = NOW() WHERE id = $1",
		id, status,
	)
	return err
}

// ListSubmissions returns submissions newest first, optionally filtered by
// dealer and/or template.
func (q *Queries) ListSubmissions(ctx context.Context, dealerID, templateID *string) ([]Submission, error) {
	query := `SELECT id, template_id, dealer_id, submission_date, status, data, goal_value, event_date, updated_at
		FROM submissions
		WHERE ($1::text IS NULL OR dealer_id = $1)
		AND ($2::text IS NULL OR template_id = $2)
		ORDER BY submission_date DESC`

	rows, err := q.Pool.Query(ctx, query, dealerID, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []Submission
	for rows.Next() {
		var row Submission
		if err := rows.Scan(&row.ID, &row.TemplateID, &row.DealerID, &row.SubmissionDate, &row.Status,
			&row.Data, &row.GoalValue, &row.EventDate, &row.UpdatedAt); err != nil {
			return nil, err
		}
		submissions = append(submissions, row)
	}
	return submissions, rows.Err()
}

func (q *Queries) DeleteSubmission(ctx context.Context, id string) error {
	_, err := q.Pool.Exec(ctx, "DELETE FROM submissions WHERE id = $1", id)
	return err
}
