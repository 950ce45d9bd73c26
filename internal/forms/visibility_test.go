package forms

import (
	"testing"

	"dealerhub/internal/model"

	"github.com/stretchr/testify/assert"
)

func selectField(id string, values ...string) model.FormField {
	opts := make([]model.FieldOption, len(values))
	for i, v := range values {
		opts[i] = model.FieldOption{Value: v, Label: v}
	}
	return model.FormField{ID: id, Label: id, Type: model.FieldSelect, Options: opts}
}

func TestIsFieldVisible_NoConditions(t *testing.T) {
	field := model.FormField{ID: "notes", Type: model.FieldText}

	assert.True(t, IsFieldVisible(field, model.FieldValues{}))
	assert.True(t, IsFieldVisible(field, nil))
}

func TestIsFieldVisible_Conjunction(t *testing.T) {
	field := model.FormField{
		ID:   "venue",
		Type: model.FieldText,
		Conditions: []model.FieldCondition{
			{FieldID: "status", Value: "Completed"},
			{FieldID: "type", Value: "Webinar"},
		},
	}

	// Visible only when both conditions hold simultaneously
	assert.True(t, IsFieldVisible(field, model.FieldValues{"status": "Completed", "type": "Webinar"}))
	assert.False(t, IsFieldVisible(field, model.FieldValues{"status": "Completed", "type": "Demo"}))
	assert.False(t, IsFieldVisible(field, model.FieldValues{"status": "Pending", "type": "Webinar"}))
	assert.False(t, IsFieldVisible(field, model.FieldValues{}))
}

func TestIsFieldVisible_MissingReferencedValue(t *testing.T) {
	field := model.FormField{
		ID:         "detail",
		Type:       model.FieldText,
		Conditions: []model.FieldCondition{{FieldID: "kind", Value: "other"}},
	}

	assert.False(t, IsFieldVisible(field, model.FieldValues{"unrelated": "x"}))
}

func TestIsFieldVisible_LooseEquality(t *testing.T) {
	field := model.FormField{
		ID:         "qty_detail",
		Type:       model.FieldText,
		Conditions: []model.FieldCondition{{FieldID: "qty", Value: "5"}},
	}

	// Numeric-vs-string mismatches from form inputs must still match
	assert.True(t, IsFieldVisible(field, model.FieldValues{"qty": float64(5)}))
	assert.True(t, IsFieldVisible(field, model.FieldValues{"qty": "5"}))
	assert.False(t, IsFieldVisible(field, model.FieldValues{"qty": float64(6)}))
}

func TestEvaluateVisibility(t *testing.T) {
	tmpl := &model.FormTemplate{
		ID: "tpl-1",
		Fields: []model.FormField{
			selectField("type", "Webinar", "Demo"),
			{ID: "always", Type: model.FieldText},
			{
				ID:         "url",
				Type:       model.FieldText,
				Conditions: []model.FieldCondition{{FieldID: "type", Value: "Webinar"}},
			},
		},
	}

	visible := EvaluateVisibility(tmpl, model.FieldValues{"type": "Demo"})
	assert.True(t, visible["type"])
	assert.True(t, visible["always"])
	assert.False(t, visible["url"])

	visible = EvaluateVisibility(tmpl, model.FieldValues{"type": "Webinar"})
	assert.True(t, visible["url"])
}

func TestCoerceString(t *testing.T) {
	assert.Equal(t, "", CoerceString(nil))
	assert.Equal(t, "abc", CoerceString("abc"))
	assert.Equal(t, "5", CoerceString(float64(5)))
	assert.Equal(t, "5.5", CoerceString(5.5))
	assert.Equal(t, "7", CoerceString(7))
	assert.Equal(t, "true", CoerceString(true))
}
