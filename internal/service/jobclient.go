package service

import (
	"dealerhub/internal/jobs"

	"github.com/hibiken/asynq"
)

// JobClient interface for scheduling background jobs
type JobClient interface {
	ScheduleGoalClosingReminder(goalID, endDate string) error
	ScheduleEventReminder(noticeID, eventDate string) error
}

// AsynqJobClient implements JobClient using asynq
type AsynqJobClient struct {
	client *asynq.Client
}

func NewAsynqJobClient(client *asynq.Client) *AsynqJobClient {
	return &AsynqJobClient{client: client}
}

func (c *AsynqJobClient) ScheduleGoalClosingReminder(goalID, endDate string) error {
	return jobs.ScheduleGoalClosingReminder(c.client, goalID, endDate)
}

func (c *AsynqJobClient) ScheduleEventReminder(noticeID, eventDate string) error {
	return jobs.ScheduleEventReminder(c.client, noticeID, eventDate)
}
