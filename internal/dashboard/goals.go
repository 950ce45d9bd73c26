package dashboard

import (
	"math"
	"time"

	"dealerhub/internal/model"
)

const dayLayout = "2006-01-02"

// Progress is the computed state of one goal for one dealer. It is a pure
// projection recomputed on demand; nothing about it is persisted.
type Progress struct {
	Goal            model.Goal `json:"goal"`
	CurrentCount    int        `json:"currentCount"`
	IsCompleted     bool       `json:"isCompleted"`
	ProgressPercent float64    `json:"progressPercent"`
	DaysRemaining   int        `json:"daysRemaining"`
}

// GoalProgress counts the dealer's qualifying submissions inside the goal
// window. A submission qualifies when it belongs to the dealer, is Completed,
// its goal tag matches the goal's activity type, and its activity date (the
// derived event date when present, else the submission date) falls inside
// [startDate, endDate] inclusive.
//
// A malformed goal (count < 1, inverted window, unparsable dates) yields zero
// progress rather than an error: goal creation rejects those upstream, and a
// dashboard must still render if one slips through.
func GoalProgress(dealer model.Dealer, goal model.Goal, submissions []model.Submission, now time.Time) Progress {
	p := Progress{Goal: goal, DaysRemaining: daysRemaining(goal.EndDate, now)}

	start, errS := parseDay(goal.StartDate)
	end, errE := parseDay(goal.EndDate)
	if goal.Count < 1 || errS != nil || errE != nil || start.After(end) {
		return p
	}

	for _, s := range submissions {
		if s.DealerID != dealer.ID || s.Status != model.StatusCompleted || s.GoalValue != goal.ActivityType {
			continue
		}
		activity, err := parseDay(activityDate(s))
		if err != nil {
			continue
		}
		if activity.Before(start) || activity.After(end) {
			continue
		}
		p.CurrentCount++
	}

	p.IsCompleted = p.CurrentCount >= goal.Count
	p.ProgressPercent = math.Min(100, float64(p.CurrentCount)/float64(goal.Count)*100)
	return p
}

// DealerGoalProgress computes progress for every goal applicable to the
// dealer's category, in goal order.
func DealerGoalProgress(dealer model.Dealer, goals []model.Goal, submissions []model.Submission, now time.Time) []Progress {
	results := make([]Progress, 0, len(goals))
	for _, goal := range goals {
		if goal.Category != dealer.Category {
			continue
		}
		results = append(results, GoalProgress(dealer, goal, submissions, now))
	}
	return results
}

// activityDate picks the date a submission counts on: the derived event date
// when present, the creation date otherwise.
func activityDate(s model.Submission) string {
	if s.EventDate != "" {
		return s.EventDate
	}
	return s.SubmissionDate
}

// parseDay parses a date-only or RFC 3339 timestamp string, truncated to the
// day in UTC.
func parseDay(value string) (time.Time, error) {
	if t, err := time.Parse(dayLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// daysRemaining counts whole days from today until the window closes, never
// negative. Both ends are normalized to midnight, so a window ending today
// reports zero regardless of completion.
func daysRemaining(endDate string, now time.Time) int {
	end, err := parseDay(endDate)
	if err != nil {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	diff := end.Sub(today)
	if diff < 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}
