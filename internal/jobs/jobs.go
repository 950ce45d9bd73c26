package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dealerhub/internal/db"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type JobServer struct {
	server *asynq.Server
	client *asynq.Client
	db     *db.Pool
	log    *zap.Logger
}

func NewJobServer(redisAddr string, dbPool *db.Pool, log *zap.Logger) (*JobServer, *asynq.Client) {
	redisOpt := asynq.RedisClientOpt{Addr: redisAddr}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	client := asynq.NewClient(redisOpt)

	return &JobServer{
		server: server,
		client: client,
		db:     dbPool,
		log:    log,
	}, client
}

func (js *JobServer) Start() error {
	mux := asynq.NewServeMux()

	// Register job handlers
	mux.HandleFunc("goal:closing", js.handleGoalClosingReminder)
	mux.HandleFunc("notice:event_reminder", js.handleEventReminder)

	return js.server.Start(mux)
}

func (js *JobServer) Stop() {
	js.server.Shutdown()
	js.client.Close()
}

// Job handlers

func (js *JobServer) handleGoalClosingReminder(ctx context.Context, t *asynq.Task) error {
	goalID := string(t.Payload())

	goal, err := js.db.Queries.GetGoalByID(ctx, goalID)
	if err != nil {
		return fmt.Errorf("failed to get goal: %w", err)
	}

	// The goal may have been rescheduled since the job was enqueued
	today := time.Now().UTC().Format("2006-01-02")
	if goal.EndDate < today {
		return nil
	}

	js.log.Info("Goal closing soon",
		zap.String("goal_id", goalID),
		zap.String("category", goal.Category),
		zap.String("activity_type", goal.ActivityType),
		zap.String("end_date", goal.EndDate))
	return nil
}

func (js *JobServer) handleEventReminder(ctx context.Context, t *asynq.Task) error {
	noticeID := string(t.Payload())

	notice, err := js.db.Queries.GetNoticeByID(ctx, noticeID)
	if err != nil {
		return fmt.Errorf("failed to get notice: %w", err)
	}
	if notice.EventDate == nil {
		return nil
	}

	var participations []struct {
		DealerID  string          `json:"dealerId"`
		Attendees json.RawMessage `json:"attendees"`
	}
	_ = json.Unmarshal(notice.Participations, &participations)

	js.log.Info("Event reminder",
		zap.String("notice_id", noticeID),
		zap.String("title", notice.Title),
		zap.String("event_date", *notice.EventDate),
		zap.Int("participating_dealers", len(participations)))
	return nil
}

// Schedule jobs

// ScheduleGoalClosingReminder enqueues a reminder three days before the goal
// window closes. Goals already inside the three-day window are skipped.
func ScheduleGoalClosingReminder(client *asynq.Client, goalID, endDate string) error {
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return fmt.Errorf("bad end date %q: %w", endDate, err)
	}

	remindAt := end.AddDate(0, 0, -3)
	if remindAt.Before(time.Now()) {
		return nil
	}

	task := asynq.NewTask("goal:closing", []byte(goalID))
	_, err = client.Enqueue(task, asynq.ProcessAt(remindAt), asynq.Queue("low"))
	return err
}

// ScheduleEventReminder enqueues a reminder the day before the event.
func ScheduleEventReminder(client *asynq.Client, noticeID, eventDate string) error {
	event, err := time.Parse("2006-01-02", eventDate)
	if err != nil {
		return fmt.Errorf("bad event date %q: %w", eventDate, err)
	}

	remindAt := event.AddDate(0, 0, -1)
	if remindAt.Before(time.Now()) {
		return nil
	}

	task := asynq.NewTask("notice:event_reminder", []byte(noticeID))
	_, err = client.Enqueue(task, asynq.ProcessAt(remindAt))
	return err
}
