package dashboard

import (
	"testing"
	"time"

	"dealerhub/internal/model"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 8, 15, 10, 30, 0, 0, time.UTC)

func categoryADealer() model.Dealer {
	return model.Dealer{ID: "dealer-1", Name: "Rossi Srl", Category: model.CategoryA}
}

func q3Goal() model.Goal {
	return model.Goal{
		ID:           "goal-1",
		Category:     model.CategoryA,
		ActivityType: model.ActivityOnlineCampaign,
		Count:        4,
		StartDate:    "2025-07-01",
		EndDate:      "2025-09-30",
	}
}

func completedSubmission(id, dealerID string, activity model.ActivityType, eventDate string) model.Submission {
	return model.Submission{
		ID:             id,
		TemplateID:     "tpl-activity",
		DealerID:       dealerID,
		SubmissionDate: "2025-07-10T09:00:00Z",
		Status:         model.StatusCompleted,
		GoalValue:      activity,
		EventDate:      eventDate,
	}
}

func TestGoalProgress_CountsQualifyingSubmissions(t *testing.T) {
	dealer := categoryADealer()
	subs := []model.Submission{
		completedSubmission("s1", dealer.ID, model.ActivityOnlineCampaign, "2025-07-05"),
		completedSubmission("s2", dealer.ID, model.ActivityOnlineCampaign, "2025-08-01"),
		completedSubmission("s3", dealer.ID, model.ActivityOnlineCampaign, "2025-09-10"),
		completedSubmission("s4", dealer.ID, model.ActivityOnlineCampaign, "2025-07-25"),
		// Wrong dealer, wrong activity, wrong status: none of these count
		completedSubmission("s5", "dealer-2", model.ActivityOnlineCampaign, "2025-07-25"),
		completedSubmission("s6", dealer.ID, model.ActivityPhysicalEvent, "2025-07-25"),
		func() model.Submission {
			s := completedSubmission("s7", dealer.ID, model.ActivityOnlineCampaign, "2025-07-25")
			s.Status = model.StatusPending
			return s
		}(),
	}

	p := GoalProgress(dealer, q3Goal(), subs, testNow)

	assert.Equal(t, 4, p.CurrentCount)
	assert.True(t, p.IsCompleted)
	assert.Equal(t, float64(100), p.ProgressPercent)
}

func TestGoalProgress_WindowInclusivity(t *testing.T) {
	dealer := categoryADealer()
	goal := q3Goal()

	onStart := []model.Submission{completedSubmission("s1", dealer.ID, goal.ActivityType, "2025-07-01")}
	onEnd := []model.Submission{completedSubmission("s1", dealer.ID, goal.ActivityType, "2025-09-30")}
	dayBefore := []model.Submission{completedSubmission("s1", dealer.ID, goal.ActivityType, "2025-06-30")}
	dayAfter := []model.Submission{completedSubmission("s1", dealer.ID, goal.ActivityType, "2025-10-01")}

	assert.Equal(t, 1, GoalProgress(dealer, goal, onStart, testNow).CurrentCount)
	assert.Equal(t, 1, GoalProgress(dealer, goal, onEnd, testNow).CurrentCount)
	assert.Equal(t, 0, GoalProgress(dealer, goal, dayBefore, testNow).CurrentCount)
	assert.Equal(t, 0, GoalProgress(dealer, goal, dayAfter, testNow).CurrentCount)
}

func TestGoalProgress_FallsBackToSubmissionDate(t *testing.T) {
	dealer := categoryADealer()
	goal := q3Goal()

	s := completedSubmission("s1", dealer.ID, goal.ActivityType, "")
	s.SubmissionDate = "2025-08-20T14:00:00Z"

	p := GoalProgress(dealer, goal, []model.Submission{s}, testNow)
	assert.Equal(t, 1, p.CurrentCount)
}

func TestGoalProgress_PercentCappedAt100(t *testing.T) {
	dealer := categoryADealer()
	goal := q3Goal()
	goal.Count = 2

	subs := []model.Submission{
		completedSubmission("s1", dealer.ID, goal.ActivityType, "2025-07-05"),
		completedSubmission("s2", dealer.ID, goal.ActivityType, "2025-07-06"),
		completedSubmission("s3", dealer.ID, goal.ActivityType, "2025-07-07"),
	}

	p := GoalProgress(dealer, goal, subs, testNow)
	assert.Equal(t, 3, p.CurrentCount)
	assert.Equal(t, float64(100), p.ProgressPercent)
}

func TestGoalProgress_PartialPercent(t *testing.T) {
	dealer := categoryADealer()
	subs := []model.Submission{
		completedSubmission("s1", dealer.ID, model.ActivityOnlineCampaign, "2025-07-05"),
	}

	p := GoalProgress(dealer, q3Goal(), subs, testNow)
	assert.Equal(t, 1, p.CurrentCount)
	assert.False(t, p.IsCompleted)
	assert.InDelta(t, 25.0, p.ProgressPercent, 0.001)
}

func TestGoalProgress_DaysRemaining(t *testing.T) {
	dealer := categoryADealer()
	goal := q3Goal()

	p := GoalProgress(dealer, goal, nil, testNow)
	// 2025-08-15 -> 2025-09-30
	assert.Equal(t, 46, p.DaysRemaining)

	// Closed window reports zero regardless of completion
	p = GoalProgress(dealer, goal, nil, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, p.DaysRemaining)
}

func TestGoalProgress_DefensiveOnInvalidGoal(t *testing.T) {
	dealer := categoryADealer()
	subs := []model.Submission{
		completedSubmission("s1", dealer.ID, model.ActivityOnlineCampaign, "2025-07-05"),
	}

	zeroCount := q3Goal()
	zeroCount.Count = 0
	p := GoalProgress(dealer, zeroCount, subs, testNow)
	assert.Equal(t, 0, p.CurrentCount)
	assert.Equal(t, float64(0), p.ProgressPercent)
	assert.False(t, p.IsCompleted)

	inverted := q3Goal()
	inverted.StartDate, inverted.EndDate = inverted.EndDate, inverted.StartDate
	p = GoalProgress(dealer, inverted, subs, testNow)
	assert.Equal(t, 0, p.CurrentCount)
}

func TestDealerGoalProgress_CategoryScoping(t *testing.T) {
	dealer := categoryADealer()
	goals := []model.Goal{
		q3Goal(),
		{ID: "goal-s", Category: model.CategoryS, ActivityType: model.ActivityPR, Count: 1,
			StartDate: "2025-07-01", EndDate: "2025-09-30"},
	}

	results := DealerGoalProgress(dealer, goals, nil, testNow)
	assert.Len(t, results, 1)
	assert.Equal(t, "goal-1", results[0].Goal.ID)
}
