package dashboard

import (
	"testing"
	"time"

	"dealerhub/internal/forms"
	"dealerhub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks a submission from entry through derivation into goal credit.
func TestSubmissionToGoalCredit(t *testing.T) {
	tmpl := &model.FormTemplate{
		ID:    "tpl-activity",
		Title: "Marketing Activity",
		Fields: []model.FormField{
			{
				ID: "type", Label: "Type", Type: model.FieldSelect, Required: true, IsGoalLink: true,
				Options: []model.FieldOption{
					{Value: "Webinar", Label: "Webinar", GoalCategory: model.ActivityOnlineCampaign},
					{Value: "Demo", Label: "Demo", GoalCategory: model.ActivityPhysicalEvent},
				},
			},
			{ID: "eventDt", Label: "Event Date", Type: model.FieldDate, IsEventDate: true},
		},
	}

	derived := forms.DeriveCrossFields(tmpl, model.FieldValues{"type": "Webinar", "eventDt": "2025-07-25"})
	require.Equal(t, model.ActivityOnlineCampaign, derived.GoalValue)
	require.Equal(t, "2025-07-25", derived.EventDate)

	dealer := model.Dealer{ID: "dealer-1", Name: "Bianchi SpA", Category: model.CategoryA}
	goal := model.Goal{
		ID: "goal-q3", Category: model.CategoryA, ActivityType: model.ActivityOnlineCampaign,
		Count: 4, StartDate: "2025-07-01", EndDate: "2025-09-30",
	}

	subs := []model.Submission{
		completedSubmission("s1", dealer.ID, model.ActivityOnlineCampaign, "2025-07-02"),
		completedSubmission("s2", dealer.ID, model.ActivityOnlineCampaign, "2025-08-11"),
		completedSubmission("s3", dealer.ID, model.ActivityOnlineCampaign, "2025-09-01"),
		{
			ID: "s4", TemplateID: tmpl.ID, DealerID: dealer.ID,
			SubmissionDate: "2025-07-20T10:00:00Z", Status: model.StatusCompleted,
			Data:      model.FieldValues{"type": "Webinar", "eventDt": "2025-07-25"},
			GoalValue: derived.GoalValue, EventDate: derived.EventDate,
		},
	}

	p := GoalProgress(dealer, goal, subs, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 4, p.CurrentCount)
	assert.True(t, p.IsCompleted)
	assert.Equal(t, float64(100), p.ProgressPercent)
}
