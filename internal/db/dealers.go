package db

import (
	"context"
	"fmt"
	"time"

	"dealerhub/internal/model"
)

// Dealer represents a dealer row
type Dealer struct {
	ID        string
	SapID     *string
	Name      string
	Category  string
	Website   string
	Contacts  []byte // jsonb
	CreatedAt time.Time
}

func (q *Queries) CreateDealer(ctx context.Context, d model.Dealer) (Dealer, error) {
	contacts, err := marshalJSON(d.Contacts, true)
	if err != nil {
		return Dealer{}, fmt.Errorf("failed to encode contacts: %w", err)
	}

	var row Dealer
	err = q.Pool.QueryRow(ctx,
		`INSERT INTO dealers (id, sap_id, name, category, website, contacts)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, sap_id, name, category, website, contacts, created_at`,
		d.ID, d.SapID, d.Name, string(d.Category), d.Website, contacts,
	).Scan(&row.ID, &row.SapID, &row.Name, &row.Category, &row.Website, &row.Contacts, &row.CreatedAt)
	return row, err
}

func (q *Queries) GetDealerByID(ctx context.Context, id string) (Dealer, error) {
	var row Dealer
	err := q.Pool.QueryRow(ctx,
		`SELECT id, sap_id, name, category, website, contacts, created_at
		FROM dealers WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.SapID, &row.Name, &row.Category, &row.Website, &row.Contacts, &row.CreatedAt)
	return row, err
}

func (q *Queries) ListDealers(ctx context.Context) ([]Dealer, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT id, sap_id, name, category, website, contacts, created_at
		FROM dealers ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dealers []Dealer
	for rows.Next() {
		var row Dealer
		if err := rows.Scan(&row.ID, &row.SapID, &row.Name, &row.Category, &row.Website, &row.Contacts, &row.CreatedAt); err != nil {
			return nil, err
		}
		dealers = append(dealers, row)
	}
	return dealers, rows.Err()
}

func (q *Queries) CountDealers(ctx context.Context) (int, error) {
	var count int
	err := q.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM dealers").Scan(&count)
	return count, err
}

func (q *Queries) UpdateDealer(ctx context.Context, d model.Dealer) (Dealer, error) {
	contacts, err := marshalJSON(d.Contacts, true)
	if err != nil {
		return Dealer{}, fmt.Errorf("failed to encode contacts: %w", err)
	}

	var row Dealer
	err = q.Pool.QueryRow(ctx,
		`UPDATE dealers SET sap_id = $2, name = $3, category = $4, website = $5, contacts = $6
		WHERE id = $1
		RETURNING id, sap_id, name, category, website, contacts, created_at`,
		d.ID, d.SapID, d.Name, string(d.Category), d.Website, contacts,
	).Scan(&row.ID, &row.SapID, &row.Name, &row.Category, &row.Website, &row.Contacts, &row.CreatedAt)
	return row, err
}

func (q *Queries) DeleteDealer(ctx context.Context, id string) error {
	_, err := q.Pool.Exec(ctx, "DELETE FROM dealers WHERE id = $1", id)
	return err
}
