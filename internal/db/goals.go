package db

import (
	"context"

	"dealerhub/internal/model"
)

// Goal represents a goal row
type Goal struct {
	ID           string
	Category     string
	ActivityType string
	Count        int
	StartDate    string
	EndDate      string
	Note         string
}

func (q *Queries) CreateGoal(ctx context.Context, g model.Goal) (Goal, error) {
	var row Goal
	err := q.Pool.QueryRow(ctx,
		`INSERT INTO goals (id, category, activity_type, count, start_date, end_date, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, category, activity_type, count, start_date::text, end_date::text, note`,
		g.ID, string(g.Category), string(g.ActivityType), g.Count, g.StartDate, g.EndDate, g.Note,
	).Scan(&row.ID, &row.Category, &row.ActivityType, &row.Count, &row.StartDate, &row.EndDate, &row.Note)
	return row, err
}

func (q *Queries) GetGoalByID(ctx context.Context, id string) (Goal, error) {
	var row Goal
	err := q.Pool.QueryRow(ctx,
		`SELECT id, category, activity_type, count, start_date::text, end_date::text, note
		FROM goals WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.Category, &row.ActivityType, &row.Count, &row.StartDate, &row.EndDate, &row.Note)
	return row, err
}

// ListGoals returns goals ordered by window start, optionally scoped to one
// dealer category.
func (q *Queries) ListGoals(ctx context.Context, category *string) ([]Goal, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT id, category, activity_type, count, start_date::text, end_date::text, note
		FROM goals
		WHERE ($1::text IS NULL OR category = $1)
		ORDER BY start_date, category`,
		category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var row Goal
		if err := rows.Scan(&row.ID, &row.Category, &row.ActivityType, &row.Count,
			&row.StartDate, &row.EndDate, &row.Note); err != nil {
			return nil, err
		}
		goals = append(goals, row)
	}
	return goals, rows.Err()
}

func (q *Queries) UpdateGoal(ctx context.Context, g model.Goal) (Goal, error) {
	var row Goal
	err := q.Pool.QueryRow(ctx,
		`UPDATE goals
		SET category = $2, activity_type = $3, count = $4, start_date = $5, end_date = $6, note = $7
		WHERE id = $1
		RETURNING id, category, activity_type, count, start_date::text, end_date::text, note`,
		g.ID, string(g.Category), string(g.ActivityType), g.Count, g.StartDate, g.EndDate, g.Note,
	).Scan(&row.ID, &row.Category, &row.ActivityType, &row.Count, &row.StartDate, &row.EndDate, &row.Note)
	return row, err
}

func (q *Queries) DeleteGoal(ctx context.Context, id string) error {
	_, err := q.Pool.Exec(ctx, "DELETE FROM goals WHERE id = $1", id)
	return err
}
