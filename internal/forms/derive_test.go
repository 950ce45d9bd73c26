package forms

import (
	"testing"

	"dealerhub/internal/model"

	"github.com/stretchr/testify/assert"
)

func activityTemplate() *model.FormTemplate {
	return &model.FormTemplate{
		ID:    "tpl-activity",
		Title: "Marketing Activity",
		Fields: []model.FormField{
			{ID: "name", Label: "Activity Name", Type: model.FieldText, Required: true},
			{
				ID:         "type",
				Label:      "Activity Type",
				Type:       model.FieldSelect,
				Required:   true,
				IsGoalLink: true,
				Options: []model.FieldOption{
					{Value: "Webinar", Label: "Webinar", GoalCategory: model.ActivityOnlineCampaign},
					{Value: "Demo", Label: "Demo Day", GoalCategory: model.ActivityPhysicalEvent},
					{Value: "Other", Label: "Other"},
				},
			},
			{ID: "eventDt", Label: "Event Date", Type: model.FieldDate, IsEventDate: true},
		},
	}
}

func TestDeriveCrossFields(t *testing.T) {
	tmpl := activityTemplate()
	data := model.FieldValues{"name": "Spring webinar", "type": "Webinar", "eventDt": "2025-07-25"}

	derived := DeriveCrossFields(tmpl, data)

	assert.Equal(t, model.ActivityOnlineCampaign, derived.GoalValue)
	assert.Equal(t, "2025-07-25", derived.EventDate)
}

func TestDeriveCrossFields_NoGoalCategoryOnOption(t *testing.T) {
	tmpl := activityTemplate()

	// "Other" has no goal category; nothing is derived
	derived := DeriveCrossFields(tmpl, model.FieldValues{"type": "Other"})
	assert.Empty(t, derived.GoalValue)
}

func TestDeriveCrossFields_UnknownOptionValue(t *testing.T) {
	tmpl := activityTemplate()

	derived := DeriveCrossFields(tmpl, model.FieldValues{"type": "Roadshow"})
	assert.Empty(t, derived.GoalValue)
	assert.Empty(t, derived.EventDate)
}

func TestDeriveCrossFields_LastGoalLinkWins(t *testing.T) {
	tmpl := &model.FormTemplate{
		ID: "tpl-double",
		Fields: []model.FormField{
			{
				ID: "first", Type: model.FieldSelect, IsGoalLink: true,
				Options: []model.FieldOption{{Value: "a", Label: "a", GoalCategory: model.ActivityPR}},
			},
			{
				ID: "second", Type: model.FieldSelect, IsGoalLink: true,
				Options: []model.FieldOption{{Value: "b", Label: "b", GoalCategory: model.ActivityTradeFair}},
			},
		},
	}

	derived := DeriveCrossFields(tmpl, model.FieldValues{"first": "a", "second": "b"})
	assert.Equal(t, model.ActivityTradeFair, derived.GoalValue)

	// A later goal-link field that resolves nothing keeps the earlier value
	derived = DeriveCrossFields(tmpl, model.FieldValues{"first": "a", "second": "zzz"})
	assert.Equal(t, model.ActivityPR, derived.GoalValue)
}

func TestDeriveCrossFields_Idempotent(t *testing.T) {
	tmpl := activityTemplate()
	data := model.FieldValues{"type": "Demo", "eventDt": "2025-03-01"}

	first := DeriveCrossFields(tmpl, data)
	second := DeriveCrossFields(tmpl, data)

	assert.Equal(t, first, second)
}

func TestDeriveCrossFields_NumericOptionValue(t *testing.T) {
	tmpl := &model.FormTemplate{
		ID: "tpl-num",
		Fields: []model.FormField{
			{
				ID: "tier", Type: model.FieldSelect, IsGoalLink: true,
				Options: []model.FieldOption{{Value: "1", Label: "Tier 1", GoalCategory: model.ActivityPR}},
			},
		},
	}

	// Raw JSON numbers still match string option values
	derived := DeriveCrossFields(tmpl, model.FieldValues{"tier": float64(1)})
	assert.Equal(t, model.ActivityPR, derived.GoalValue)
}
