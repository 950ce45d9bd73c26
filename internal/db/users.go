package db

import (
	"context"
	"time"
)

// User represents a user row
type User struct {
	ID           string
	Email        string
	Name         string
	Role         string
	DealerID     *string
	PasswordHash string
	CreatedAt    time.Time
}

type CreateUserParams struct {
	ID           string
	Email        string
	Name         string
	Role         string
	DealerID     *string
	PasswordHash string
}

func (q *Queries) CreateUser(ctx context.Context, p CreateUserParams) (User, error) {
	var row User
	err := q.Pool.QueryRow(ctx,
		`INSERT INTO users (id, email, name, role, dealer_id, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, name, role, dealer_id, password_hash, created_at`,
		p.ID, p.Email, p.Name, p.Role, p.DealerID, p.PasswordHash,
	).Scan(&row.ID, &row.Email, &row.Name, &row.Role, &row.DealerID, &row.PasswordHash, &row.CreatedAt)
	return row, err
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var row User
	err := q.Pool.QueryRow(ctx,
		`SELECT id, email, name, role, dealer_id, password_hash, created_at
		FROM users WHERE email = $1`,
		email,
	).Scan(&row.ID, &row.Email, &row.Name, &row.Role, &row.DealerID, &row.PasswordHash, &row.CreatedAt)
	return row, err
}

func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	var row User
	err := q.Pool.QueryRow(ctx,
		`SELECT id, email, name, role, dealer_id, password_hash, created_at
		FROM users WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.Email, &row.Name, &row.Role, &row.DealerID, &row.PasswordHash, &row.CreatedAt)
	return row, err
}

func (q *Queries) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT id, email, name, role, dealer_id, password_hash, created_at
		FROM users ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var row User
		if err := rows.Scan(&row.ID, &row.Email, &row.Name, &row.Role, &row.DealerID,
			&row.PasswordHash, &row.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, row)
	}
	return users, rows.Err()
}

func (q *Queries) UpdateUserPassword(ctx context.Context, id, passwordHash string) error {
	_, err := q.Pool.Exec(ctx,
		"UPDATE users SET password_hash = $2 WHERE id = $1", id, passwordHash,
	)
	return err
}

func (q *Queries) DeleteUser(ctx context.Context, id string) error {
	_, err := q.Pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	return err
}
