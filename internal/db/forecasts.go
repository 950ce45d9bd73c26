package db

import (
	"context"
	"time"

	"dealerhub/internal/model"
)

// Product represents a product row
type Product struct {
	ID       string
	Name     string
	Category string
}

func (q *Queries) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.Pool.Query(ctx, "SELECT id, name, category FROM products ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var row Product
		if err := rows.Scan(&row.ID, &row.Name, &row.Category); err != nil {
			return nil, err
		}
		products = append(products, row)
	}
	return products, rows.Err()
}

func (q *Queries) GetProductByID(ctx context.Context, id string) (Product, error) {
	var row Product
	err := q.Pool.QueryRow(ctx,
		"SELECT id, name, category FROM products WHERE id = $1", id,
	).Scan(&row.ID, &row.Name, &row.Category)
	return row, err
}

// SalesForecast represents a sales forecast row
type SalesForecast struct {
	ID              string
	DealerID        string
	ProductID       string
	Year            int
	Quarter         int
	ForecastedUnits int
	ActualUnits     int
	Status          string
	CreatedAt       time.Time
}

func (q *Queries) CreateSalesForecast(ctx context.Context, f model.SalesForecast) (SalesForecast, error) {
	var row SalesForecast
	err := q.Pool.QueryRow(ctx,
		`INSERT INTO sales_forecasts (id, dealer_id, product_id, year, quarter, forecasted_units, actual_units, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, dealer_id, product_id, year, quarter, forecasted_units, actual_units, status, created_at`,
		f.ID, f.DealerID, f.ProductID, f.Year, f.Quarter, f.ForecastedUnits, f.ActualUnits, string(f.Status),
	).Scan(&row.ID, &row.DealerID, &row.ProductID, &row.Year, &row.Quarter,
		&row.ForecastedUnits, &row.ActualUnits, &row.Status, &row.CreatedAt)
	return row, err
}

func (q *Queries) ListSalesForecasts(ctx context.Context, dealerID *string) ([]SalesForecast, error) {
	rows, err := q.Pool.Query(ctx,
		`SELECT id, dealer_id, product_id, year, quarter, forecasted_units, actual_units, status, created_at
		FROM sales_forecasts
		WHERE ($1::text IS NULL OR dealer_id = $1)
		ORDER BY year DESC, quarter DESC`,
		dealerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var forecasts []SalesForecast
	for rows.Next() {
		var row SalesForecast
		if err := rows.Scan(&row.ID, &row.DealerID, &row.ProductID, &row.Year, &row.Quarter,
			&row.ForecastedUnits, &row.ActualUnits, &row.Status, &row.CreatedAt); err != nil {
			return nil, err
		}
		forecasts = append(forecasts, row)
	}
	return forecasts, rows.Err()
}

// UpdateSalesForecastActuals records actual units and optionally closes the
// forecast.
func (q *Queries) UpdateSalesForecastActuals(ctx context.Context, id string, actualUnits int, status string) (SalesForecast, error) {
	var row SalesForecast
	err := q.Pool.QueryRow(ctx,
		`UPDATE sales_forecasts SET actual_units = $2, status = $3 WHERE id = $1
		RETURNING id, dealer_id, product_id, year, quarter, forecasted_units, actual_units, status, created_at`,
		id, actualUnits, status,
	).Scan(&row.ID, &row.DealerID, &row.ProductID, &row.Year, &row.Quarter,
		&row.ForecastedUnits, &row.ActualUnits, &row.Status, &row.CreatedAt)
	return row, err
}

func (q *Queries) DeleteSalesForecast(ctx context.Context, id string) error {
	_, err := q.Pool.Exec(ctx, "DELETE FROM sales_forecasts WHERE id = $1", id)
	return err
}
