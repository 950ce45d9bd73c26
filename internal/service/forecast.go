package service

import (
	"context"
	"fmt"

	"dealerhub/internal/db"
	"dealerhub/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
)

type ForecastService struct {
	queries  *db.Queries
	validate *validator.Validate
}

func NewForecastService(queries *db.Queries) *ForecastService {
	return &ForecastService{queries: queries, validate: validator.New()}
}

type ForecastInput struct {
	DealerID        string `json:"dealerId" validate:"required"`
	ProductID       string `json:"productId" validate:"required"`
	Year            int    `json:"year" validate:"required,min=2000,max=2100"`
	Quarter         int    `json:"quarter" validate:"required,min=1,max=4"`
	ForecastedUnits int    `json:"forecastedUnits" validate:"min=0"`
}

func (s *ForecastService) CreateForecast(ctx context.Context, input ForecastInput) (*model.SalesForecast, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid forecast: %w", err)
	}
	// Both references must exist before the row is written
	if _, err := s.queries.GetDealerByID(ctx, input.DealerID); err != nil {
		return nil, fmt.Errorf("dealer not found: %w", err)
	}
	if _, err := s.queries.GetProductByID(ctx, input.ProductID); err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	row, err := s.queries.CreateSalesForecast(ctx, model.SalesForecast{
		ID:              ulid.Make().String(),
		DealerID:        input.DealerID,
		ProductID:       input.ProductID,
		Year:            input.Year,
		Quarter:         input.Quarter,
		ForecastedUnits: input.ForecastedUnits,
		ActualUnits:     0,
		Status:          model.ForecastOpen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create forecast: %w", err)
	}
	return dbForecastToModel(row), nil
}

func (s *ForecastService) ListForecasts(ctx context.Context, dealerID string) ([]model.SalesForecast, error) {
	rows, err := s.queries.ListSalesForecasts(ctx, strPtr(dealerID))
	if err != nil {
		return nil, fmt.Errorf("failed to list forecasts: %w", err)
	}
	forecasts := make([]model.SalesForecast, len(rows))
	for i, row := range rows {
		forecasts[i] = *dbForecastToModel(row)
	}
	return forecasts, nil
}

type UpdateActualsInput struct {
	ActualUnits int  `json:"actualUnits" validate:"min=0"`
	Close       bool `json:"close"`
}

func (s *ForecastService) UpdateActuals(ctx context.Context, id string, input UpdateActualsInput) (*model.SalesForecast, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid actuals: %w", err)
	}

	status := model.ForecastOpen
	if input.Close {
		status = model.ForecastClosed
	}
	row, err := s.queries.UpdateSalesForecastActuals(ctx, id, input.ActualUnits, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to update forecast: %w", err)
	}
	return dbForecastToModel(row), nil
}

func (s *ForecastService) DeleteForecast(ctx context.Context, id string) error {
	if err := s.queries.DeleteSalesForecast(ctx, id); err != nil {
		return fmt.Errorf("failed to delete forecast: %w", err)
	}
	return nil
}

func (s *ForecastService) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := s.queries.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	products := make([]model.Product, len(rows))
	for i, row := range rows {
		products[i] = model.Product{ID: row.ID, Name: row.Name, Category: row.Category}
	}
	return products, nil
}
