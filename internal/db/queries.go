package db

import (
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Queries wraps database queries
type Queries struct {
	*pgxpool.Pool
}

// NewQueries creates a new Queries instance
func NewQueries(pool *pgxpool.Pool) *Queries {
	return &Queries{Pool: pool}
}

// marshalJSON encodes a value for a jsonb column, mapping nil to an empty
// JSON value so rows never carry SQL NULL where the app expects a collection.
func marshalJSON(v interface{}, emptyAsArray bool) ([]byte, error) {
	if v == nil {
		if emptyAsArray {
			return []byte("[]"), nil
		}
		return []byte("{}"), nil
	}
	return json.Marshal(v)
}
