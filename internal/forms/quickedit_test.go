package forms

import (
	"testing"

	"dealerhub/internal/model"

	"github.com/stretchr/testify/assert"
)

func guardTemplate() *model.FormTemplate {
	return &model.FormTemplate{
		ID: "tpl-guard",
		Fields: []model.FormField{
			selectField("A", "X", "Y"),
			{
				ID:         "B",
				Label:      "Details",
				Type:       model.FieldText,
				Required:   true,
				Conditions: []model.FieldCondition{{FieldID: "A", Value: "X"}},
			},
		},
	}
}

func TestQuickEditDecision_RevealsEmptyRequiredField(t *testing.T) {
	tmpl := guardTemplate()
	oldData := model.FieldValues{"A": "Y"}

	decision := QuickEditDecision(tmpl, oldData, "A", "X")

	assert.False(t, decision.Apply)
	// The caller opens the full form pre-seeded with the patched data
	assert.Equal(t, "X", decision.Data["A"])
}

func TestQuickEditDecision_RevealedFieldAlreadyFilled(t *testing.T) {
	tmpl := guardTemplate()
	oldData := model.FieldValues{"A": "Y", "B": "prefilled"}

	decision := QuickEditDecision(tmpl, oldData, "A", "X")

	assert.True(t, decision.Apply)
	assert.Equal(t, "X", decision.Data["A"])
	assert.Equal(t, "prefilled", decision.Data["B"])
}

func TestQuickEditDecision_HidesField(t *testing.T) {
	tmpl := guardTemplate()
	oldData := model.FieldValues{"A": "X", "B": "something"}

	// Hiding a filled field never blocks the inline edit
	decision := QuickEditDecision(tmpl, oldData, "A", "Y")
	assert.True(t, decision.Apply)
}

func TestQuickEditDecision_RevealedOptionalField(t *testing.T) {
	tmpl := guardTemplate()
	tmpl.Fields[1].Required = false
	oldData := model.FieldValues{"A": "Y"}

	decision := QuickEditDecision(tmpl, oldData, "A", "X")
	assert.True(t, decision.Apply)
}

func TestQuickEditDecision_DoesNotMutateOldData(t *testing.T) {
	tmpl := guardTemplate()
	oldData := model.FieldValues{"A": "Y"}

	QuickEditDecision(tmpl, oldData, "A", "X")
	assert.Equal(t, "Y", oldData["A"])
}
