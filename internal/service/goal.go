package service

import (
	"context"
	"fmt"

	"dealerhub/internal/db"
	"dealerhub/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
)

type GoalService struct {
	queries   *db.Queries
	validate  *validator.Validate
	jobClient JobClient
}

func NewGoalService(queries *db.Queries) *GoalService {
	return &GoalService{queries: queries, validate: validator.New()}
}

// SetJobClient sets the job client for scheduling reminder jobs
func (s *GoalService) SetJobClient(client JobClient) {
	s.jobClient = client
}

type GoalInput struct {
	Category     model.DealerCategory `json:"category" validate:"required,oneof=S A B"`
	ActivityType model.ActivityType   `json:"activityType" validate:"required,oneof='Evento Fisico' 'Campagna Online' PR Fiera"`
	Count        int                  `json:"count" validate:"required,min=1"`
	StartDate    string               `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string               `json:"endDate" validate:"required,datetime=2006-01-02"`
	Note         string               `json:"note"`
}

// checkWindow rejects inverted goal windows. Count and date format are
// covered by struct tags; the cross-field rule is not expressible there.
func checkWindow(input GoalInput) error {
	if input.StartDate > input.EndDate {
		return fmt.Errorf("goal window is inverted: %s > %s", input.StartDate, input.EndDate)
	}
	return nil
}

func (s *GoalService) CreateGoal(ctx context.Context, input GoalInput) (*model.Goal, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid goal: %w", err)
	}
	if err := checkWindow(input); err != nil {
		return nil, err
	}

	row, err := s.queries.CreateGoal(ctx, model.Goal{
		ID:           ulid.Make().String(),
		Category:     input.Category,
		ActivityType: input.ActivityType,
		Count:        input.Count,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Note:         input.Note,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	goal := dbGoalToModel(row)
	if s.jobClient != nil {
		_ = s.jobClient.ScheduleGoalClosingReminder(goal.ID, goal.EndDate)
	}
	return goal, nil
}

func (s *GoalService) GetGoal(ctx context.Context, id string) (*model.Goal, error) {
	row, err := s.queries.GetGoalByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("goal not found: %w", err)
	}
	return dbGoalToModel(row), nil
}

// ListGoals returns all goals, or only those applicable to one category
func (s *GoalService) ListGoals(ctx context.Context, category model.DealerCategory) ([]model.Goal, error) {
	rows, err := s.queries.ListGoals(ctx, strPtr(string(category)))
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	goals := make([]model.Goal, len(rows))
	for i, row := range rows {
		goals[i] = *dbGoalToModel(row)
	}
	return goals, nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, id string, input GoalInput) (*model.Goal, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid goal: %w", err)
	}
	if err := checkWindow(input); err != nil {
		return nil, err
	}
	if _, err := s.GetGoal(ctx, id); err != nil {
		return nil, err
	}

	row, err := s.queries.UpdateGoal(ctx, model.Goal{
		ID:           id,
		Category:     input.Category,
		ActivityType: input.ActivityType,
		Count:        input.Count,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Note:         input.Note,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return dbGoalToModel(row), nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, id string) error {
	if err := s.queries.DeleteGoal(ctx, id); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
