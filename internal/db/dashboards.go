package db

import (
	"context"
	"fmt"
)

// Widget represents a dashboard widget row
type Widget struct {
	ID     string
	Role   string
	Type   string
	Config []byte // jsonb
}

// Layout represents a widget's grid position row
type Layout struct {
	WidgetID string
	Role     string
	X        int
	Y        int
	W        int
	H        int
	Static   bool
}

func (q *Queries) CreateWidget(ctx context.Context, id, role, widgetType string, config interface{}, layout Layout) (Widget, error) {
	encoded, err := marshalJSON(config, false)
	if err != nil {
		return Widget{}, fmt.Errorf("failed to encode config: %w", err)
	}

	tx, err := q.Pool.Begin(ctx)
	if err != nil {
		return Widget{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var row Widget
	err = tx.QueryRow(ctx,
		`INSERT INTO widgets (id, role, type, config) VALUES ($1, $2, $3, $4)
		RETURNING id, role, type, config`,
		id, role, widgetType, encoded,
	).Scan(&row.ID, &row.Role, &row.Type, &row.Config)
	if err != nil {
		return Widget{}, err
	}

	// A widget always owns exactly one layout row
	if _, err := tx.Exec(ctx,
		`INSERT INTO layouts (widget_id, role, x, y, w, h, static) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, role, layout.X, layout.Y, layout.W, layout.H, layout.Static,
	); err != nil {
		return Widget{}, err
	}

	return row, tx.Commit(ctx)
}

func (q *Queries) ListWidgetsByRole(ctx context.Context, role string) ([]Widget, error) {
	rows, err := q.Pool.Query(ctx,
		"SELECT id, role, type, config FROM widgets WHERE role = $1 ORDER BY id", role,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var widgets []Widget
	for rows.Next() {
		var row Widget
		if err := rows.Scan(&row.ID, &row.Role, &row.Type, &row.Config); err != nil {
			return nil, err
		}
		widgets = append(widgets, row)
	}
	return widgets, rows.Err()
}

func (q *Queries) UpdateWidgetConfig(ctx context.Context, id string, config interface{}) (Widget, error) {
	encoded, err := marshalJSON(config, false)
	if err != nil {
		return Widget{}, fmt.Errorf("failed to encode config: %w", err)
	}

	var row Widget
	err = q.Pool.QueryRow(ctx,
		"UPDATE widgets SET config = $2 WHERE id = $1 RETURNING id, role, type, config",
		id, encoded,
	).Scan(&row.ID, &row.Role, &row.Type, &row.Config)
	return row, err
}

// DeleteWidget removes a widget together with its layout row so no orphaned
// layout entries survive.
func (q *Queries) DeleteWidget(ctx context.Context, id string) error {
	tx, err := q.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM layouts WHERE widget_id = $1", id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "DELETE FROM widgets WHERE id = $1", id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (q *Queries) ListLayoutsByRole(ctx context.Context, role string) ([]Layout, error) {
	rows, err := q.Pool.Query(ctx,
		"SELECT widget_id, role, x, y, w, h, static FROM layouts WHERE role = $1", role,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var layouts []Layout
	for rows.Next() {
		var row Layout
		if err := rows.Scan(&row.WidgetID, &row.Role, &row.X, &row.Y, &row.W, &row.H, &row.Static); err != nil {
			return nil, err
		}
		layouts = append(layouts, row)
	}
	return layouts, rows.Err()
}

// SaveLayouts replaces the full grid for a role after a drag/resize pass.
// Rows pointing at widgets that no longer exist are skipped by the FK check.
func (q *Queries) SaveLayouts(ctx context.Context, role string, layouts []Layout) error {
	tx, err := q.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM layouts WHERE role = $1", role); err != nil {
		return err
	}
	for _, l := range layouts {
		if _, err := tx.Exec(ctx,
			`INSERT INTO layouts (widget_id, role, x, y, w, h, static) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			l.WidgetID, role, l.X, l.Y, l.W, l.H, l.Static,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
