package db

import (
	"context"
	"fmt"
	"time"

	"dealerhub/internal/model"
)

// Notice represents a notice row
type Notice struct {
	ID             string
	Type           string
	Title          string
	Content        string
	EventDate      *string
	EventTime      *string
	Priority       string
	CreationDate   time.Time
	Participations []byte // jsonb
}

func (q *Queries) CreateNotice(ctx context.Context, n model.Notice) (Notice, error) {
	participations, err := marshalJSON(n.Participations, true)
	if err != nil {
		return Notice{}, fmt.Errorf("failed to encode participations: %w", err)
	}

	var row Notice
	err = q.Pool.QueryRow(ctx,
		`INSERT INTO notices (id, type, title, content, event_date, event_time, priority, participations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, type, title, content, event_date, event_time, priority, creation_date, participations`,
		n.ID, string(n.Type), n.Title, n.Content, n.EventDate, n.EventTime, string(n.Priority), participations,
	).Scan(&row.ID, &row.Type, &row.Title, &row.Content, &row.EventDate, &row.EventTime,
		&row.Priority, &row.CreationDate, &row.Participations)
	return row, err
}

func (q *Queries) GetNoticeByID(ctx context.Context, id string) (Notice, error) {
	var row Notice
	err := q.Pool.QueryRow(ctx,
		`SELECT id, type, title, content, event_date, event_time, priority, creation_date, participations
		FROM notices WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.Type, &row.Title, &row.Content, &row.EventDate, &row.EventTime,
		&row.Priority, &row.CreationDate, &row.Participations)
	return row, err
}

func (q *Queries) ListNotices(ctx context.Context) ([]Notice, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT id, type, title, content, event_date, event_time, priority, creation_date, participations
		FROM notices ORDER BY creation_date DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []Notice
	for rows.Next() {
		var row Notice
		if err := rows.Scan(&row.ID, &row.Type, &row.Title, &row.Content, &row.EventDate, &row.EventTime,
			&row.Priority, &row.CreationDate, &row.Participations); err != nil {
			return nil, err
		}
		notices = append(notices, row)
	}
	return notices, rows.Err()
}

// UpdateNoticeParticipations replaces the full participation list (RSVP
// upserts happen at the service level).
func (q *Queries) UpdateNoticeParticipations(ctx context.Context, id string, participations []model.Participation) (Notice, error) {
	encoded, err := marshalJSON(participations, true)
	if err != nil {
		return Notice{}, fmt.Errorf("failed to encode participations: %w", err)
	}

	var row Notice
	err = q.Pool.QueryRow(ctx,
		`UPDATE notices SET participations = $2 WHERE id = $1
		RETURNING id, type, title, content, event_date, event_time, priority, creation_date, participations`,
		id, encoded,
	).Scan(&row.ID, &row.Type, &row.Title, &row.Content, &row.EventDate, &row.EventTime,
		&row.Priority, &row.CreationDate, &row.Participations)
	return row, err
}

func (q *Queries) DeleteNotice(ctx context.Context, id string) error {
	_, err := q.Pool.Exec(ctx, "DELETE FROM notices WHERE id = $1", id)
	return err
}
