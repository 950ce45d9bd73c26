package forms

import (
	"testing"

	"dealerhub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateValidator_Valid(t *testing.T) {
	v, err := NewTemplateValidator(64)
	require.NoError(t, err)

	require.NoError(t, v.Validate(activityTemplate()))
	// Second pass hits the cache
	require.NoError(t, v.Validate(activityTemplate()))
}

func TestTemplateValidator_MissingTitle(t *testing.T) {
	v, err := NewTemplateValidator(64)
	require.NoError(t, err)

	tmpl := activityTemplate()
	tmpl.Title = ""
	assert.Error(t, v.Validate(tmpl))
}

func TestTemplateValidator_BadFieldType(t *testing.T) {
	v, err := NewTemplateValidator(64)
	require.NoError(t, err)

	tmpl := activityTemplate()
	tmpl.Fields[0].Type = "CHECKBOX"
	assert.Error(t, v.Validate(tmpl))
}

func TestTemplateValidator_DuplicateFieldIDs(t *testing.T) {
	v, err := NewTemplateValidator(64)
	require.NoError(t, err)

	tmpl := activityTemplate()
	tmpl.Fields[2].ID = tmpl.Fields[0].ID
	assert.Error(t, v.Validate(tmpl))
}

func TestTemplateValidator_GoalLinkOnNonSelect(t *testing.T) {
	v, err := NewTemplateValidator(64)
	require.NoError(t, err)

	tmpl := activityTemplate()
	tmpl.Fields[0].IsGoalLink = true
	assert.Error(t, v.Validate(tmpl))
}

func TestTemplateValidator_EventDateOnNonDate(t *testing.T) {
	v, err := NewTemplateValidator(64)
	require.NoError(t, err)

	tmpl := activityTemplate()
	tmpl.Fields[0].IsEventDate = true
	assert.Error(t, v.Validate(tmpl))
}

func TestTemplateValidator_ConditionTargets(t *testing.T) {
	v, err := NewTemplateValidator(64)
	require.NoError(t, err)

	// Condition referencing an unknown field
	tmpl := activityTemplate()
	tmpl.Fields[0].Conditions = []model.FieldCondition{{FieldID: "ghost", Value: "x"}}
	assert.Error(t, v.Validate(tmpl))

	// Condition referencing a non-select field
	tmpl = activityTemplate()
	tmpl.Fields[0].Conditions = []model.FieldCondition{{FieldID: "eventDt", Value: "2025-01-01"}}
	assert.Error(t, v.Validate(tmpl))

	// Condition referencing a select field is fine
	tmpl = activityTemplate()
	tmpl.Fields[2].Conditions = []model.FieldCondition{{FieldID: "type", Value: "Webinar"}}
	assert.NoError(t, v.Validate(tmpl))
}

func TestTemplateValidator_SelectNeedsOptions(t *testing.T) {
	v, err := NewTemplateValidator(64)
	require.NoError(t, err)

	tmpl := activityTemplate()
	tmpl.Fields[1].Options = nil
	assert.Error(t, v.Validate(tmpl))
}
