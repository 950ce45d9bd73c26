package service

import (
	"context"
	"fmt"

	"dealerhub/internal/db"
	"dealerhub/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
)

type NoticeService struct {
	queries   *db.Queries
	validate  *validator.Validate
	jobClient JobClient
}

func NewNoticeService(queries *db.Queries) *NoticeService {
	return &NoticeService{queries: queries, validate: validator.New()}
}

// SetJobClient sets the job client for scheduling event reminders
func (s *NoticeService) SetJobClient(client JobClient) {
	s.jobClient = client
}

type NoticeInput struct {
	Type      model.NoticeType     `json:"type" validate:"required,oneof=GENERAL WEBINAR IN_PERSON_EVENT"`
	Title     string               `json:"title" validate:"required"`
	Content   string               `json:"content" validate:"required"`
	EventDate *string              `json:"eventDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EventTime *string              `json:"eventTime,omitempty"`
	Priority  model.NoticePriority `json:"priority" validate:"required,oneof=High Medium Low"`
}

func (s *NoticeService) CreateNotice(ctx context.Context, input NoticeInput) (*model.Notice, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid notice: %w", err)
	}
	if input.Type != model.NoticeGeneral && input.EventDate == nil {
		return nil, fmt.Errorf("event notices need an event date")
	}

	row, err := s.queries.CreateNotice(ctx, model.Notice{
		ID:             ulid.Make().String(),
		Type:           input.Type,
		Title:          input.Title,
		Content:        input.Content,
		EventDate:      input.EventDate,
		EventTime:      input.EventTime,
		Priority:       input.Priority,
		Participations: []model.Participation{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}

	notice := dbNoticeToModel(row)
	if s.jobClient != nil && notice.EventDate != nil {
		_ = s.jobClient.ScheduleEventReminder(notice.ID, *notice.EventDate)
	}
	return notice, nil
}

func (s *NoticeService) GetNotice(ctx context.Context, id string) (*model.Notice, error) {
	row, err := s.queries.GetNoticeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("notice not found: %w", err)
	}
	return dbNoticeToModel(row), nil
}

func (s *NoticeService) ListNotices(ctx context.Context) ([]model.Notice, error) {
	rows, err := s.queries.ListNotices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	notices := make([]model.Notice, len(rows))
	for i, row := range rows {
		notices[i] = *dbNoticeToModel(row)
	}
	return notices, nil
}

// RSVP records a dealer's attendee list for an event notice, replacing any
// previous list from the same dealer.
func (s *NoticeService) RSVP(ctx context.Context, noticeID, dealerID string, attendees []model.Attendee) (*model.Notice, error) {
	notice, err := s.GetNotice(ctx, noticeID)
	if err != nil {
		return nil, err
	}
	if notice.Type == model.NoticeGeneral {
		return nil, fmt.Errorf("notice %s is not an event", noticeID)
	}

	for i := range attendees {
		if attendees[i].ID == "" {
			attendees[i].ID = ulid.Make().String()
		}
	}

	replaced := false
	participations := notice.Participations
	for i, p := range participations {
		if p.DealerID == dealerID {
			participations[i].Attendees = attendees
			replaced = true
			break
		}
	}
	if !replaced {
		participations = append(participations, model.Participation{DealerID: dealerID, Attendees: attendees})
	}

	row, err := s.queries.UpdateNoticeParticipations(ctx, noticeID, participations)
	if err != nil {
		return nil, fmt.Errorf("failed to record RSVP: %w", err)
	}
	return dbNoticeToModel(row), nil
}

func (s *NoticeService) DeleteNotice(ctx context.Context, id string) error {
	if err := s.queries.DeleteNotice(ctx, id); err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	return nil
}
