package service

import (
	"context"
	"fmt"

	"dealerhub/internal/db"
	"dealerhub/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
)

type DealerService struct {
	queries  *db.Queries
	validate *validator.Validate
}

func NewDealerService(queries *db.Queries) *DealerService {
	return &DealerService{queries: queries, validate: validator.New()}
}

type DealerInput struct {
	SapID    *string              `json:"sapId"`
	Name     string               `json:"name" validate:"required"`
	Category model.DealerCategory `json:"category" validate:"required,oneof=S A B"`
	Website  string               `json:"website"`
	Contacts []model.Contact      `json:"contacts"`
}

func (s *DealerService) CreateDealer(ctx context.Context, input DealerInput) (*model.Dealer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid dealer: %w", err)
	}

	contacts := input.Contacts
	if contacts == nil {
		contacts = []model.Contact{}
	}
	for i := range contacts {
		if contacts[i].ID == "" {
			contacts[i].ID = ulid.Make().String()
		}
	}

	row, err := s.queries.CreateDealer(ctx, model.Dealer{
		ID:       ulid.Make().String(),
		SapID:    input.SapID,
		Name:     input.Name,
		Category: input.Category,
		Website:  input.Website,
		Contacts: contacts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dealer: %w", err)
	}
	return dbDealerToModel(row), nil
}

func (s *DealerService) GetDealer(ctx context.Context, id string) (*model.Dealer, error) {
	row, err := s.queries.GetDealerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("dealer not found: %w", err)
	}
	return dbDealerToModel(row), nil
}

func (s *DealerService) ListDealers(ctx context.Context) ([]model.Dealer, error) {
	rows, err := s.queries.ListDealers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dealers: %w", err)
	}
	dealers := make([]model.Dealer, len(rows))
	for i, row := range rows {
		dealers[i] = *dbDealerToModel(row)
	}
	return dealers, nil
}

func (s *DealerService) UpdateDealer(ctx context.Context, id string, input DealerInput) (*model.Dealer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid dealer: %w", err)
	}
	if _, err := s.GetDealer(ctx, id); err != nil {
		return nil, err
	}

	contacts := input.Contacts
	if contacts == nil {
		contacts = []model.Contact{}
	}
	for i := range contacts {
		if contacts[i].ID == "" {
			contacts[i].ID = ulid.Make().String()
		}
	}

	row, err := s.queries.UpdateDealer(ctx, model.Dealer{
		ID:       id,
		SapID:    input.SapID,
		Name:     input.Name,
		Category: input.Category,
		Website:  input.Website,
		Contacts: contacts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update dealer: %w", err)
	}
	return dbDealerToModel(row), nil
}

func (s *DealerService) DeleteDealer(ctx context.Context, id string) error {
	if err := s.queries.DeleteDealer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete dealer: %w", err)
	}
	return nil
}
