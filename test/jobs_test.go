package test

import (
	"context"
	"os"
	"testing"
	"time"

	"dealerhub/internal/jobs"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisAddr() string {
	if addr := os.Getenv("TEST_REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6380"
}

func TestScheduleGoalClosingReminder(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: getRedisAddr(),
	})
	defer rdb.Close()

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client := asynq.NewClient(asynq.RedisClientOpt{Addr: getRedisAddr()})
	defer client.Close()

	// Future goal gets a reminder enqueued
	endDate := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	err := jobs.ScheduleGoalClosingReminder(client, "goal-test", endDate)
	require.NoError(t, err)

	// A goal already inside the reminder window is silently skipped
	err = jobs.ScheduleGoalClosingReminder(client, "goal-test", time.Now().Format("2006-01-02"))
	assert.NoError(t, err)

	// A malformed date is reported
	err = jobs.ScheduleGoalClosingReminder(client, "goal-test", "30/09/2025")
	assert.Error(t, err)
}

func TestScheduleEventReminder(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: getRedisAddr(),
	})
	defer rdb.Close()

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client := asynq.NewClient(asynq.RedisClientOpt{Addr: getRedisAddr()})
	defer client.Close()

	eventDate := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	err := jobs.ScheduleEventReminder(client, "notice-test", eventDate)
	require.NoError(t, err)

	// Past events are skipped without error
	err = jobs.ScheduleEventReminder(client, "notice-test", "2020-01-01")
	assert.NoError(t, err)
}
