package service

import (
	"context"
	"fmt"
	"strings"

	"dealerhub/internal/db"
	"dealerhub/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = fmt.Errorf("invalid email or password")

type UserService struct {
	queries  *db.Queries
	validate *validator.Validate
}

func NewUserService(queries *db.Queries) *UserService {
	return &UserService{queries: queries, validate: validator.New()}
}

type CreateUserInput struct {
	Email    string     `json:"email" validate:"required,email"`
	Name     string     `json:"name" validate:"required"`
	Role     model.Role `json:"role" validate:"required,oneof=Admin Dealer Guest"`
	DealerID *string    `json:"dealerId,omitempty"`
	Password string     `json:"password" validate:"required,min=8"`
}

func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}
	if input.Role == model.RoleDealer && input.DealerID == nil {
		return nil, fmt.Errorf("dealer users must reference a dealer")
	}
	if input.DealerID != nil {
		if _, err := s.queries.GetDealerByID(ctx, *input.DealerID); err != nil {
			return nil, fmt.Errorf("dealer not found: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	row, err := s.queries.CreateUser(ctx, db.CreateUserParams{
		ID:           ulid.Make().String(),
		Email:        strings.ToLower(input.Email),
		Name:         input.Name,
		Role:         string(input.Role),
		DealerID:     input.DealerID,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return dbUserToModel(row), nil
}

// Authenticate checks a credential pair and returns the user on success.
// Unknown emails and wrong passwords yield the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return dbUserToModel(row), nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	row, err := s.queries.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return dbUserToModel(row), nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.queries.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users := make([]model.User, len(rows))
	for i, row := range rows {
		users[i] = *dbUserToModel(row)
	}
	return users, nil
}

type ChangePasswordInput struct {
	Password string `json:"password" validate:"required,min=8"`
}

func (s *UserService) ChangePassword(ctx context.Context, id string, input ChangePasswordInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.queries.UpdateUserPassword(ctx, id, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.queries.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
