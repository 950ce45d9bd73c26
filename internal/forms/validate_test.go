package forms

import (
	"testing"

	"dealerhub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDraft_HiddenRequiredFieldIgnored(t *testing.T) {
	tmpl := guardTemplate() // B is required but only visible when A == "X"

	// B hidden and empty: valid
	_, err := ValidateDraft(tmpl, model.FieldValues{"A": "Y"})
	assert.NoError(t, err)

	// B visible and empty: required violation
	_, err = ValidateDraft(tmpl, model.FieldValues{"A": "X"})
	require.Error(t, err)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "B", verrs[0].FieldID)
}

func TestValidateDraft_NormalizesNumbers(t *testing.T) {
	tmpl := &model.FormTemplate{
		ID:     "tpl-budget",
		Fields: []model.FormField{{ID: "budget", Type: model.FieldNumber}},
	}

	normalized, err := ValidateDraft(tmpl, model.FieldValues{"budget": "1500"})
	require.NoError(t, err)
	assert.Equal(t, float64(1500), normalized["budget"])

	_, err = ValidateDraft(tmpl, model.FieldValues{"budget": "lots"})
	assert.Error(t, err)
}

func TestValidateDraft_DateFormat(t *testing.T) {
	tmpl := &model.FormTemplate{
		ID:     "tpl-date",
		Fields: []model.FormField{{ID: "when", Type: model.FieldDate}},
	}

	normalized, err := ValidateDraft(tmpl, model.FieldValues{"when": "2025-07-25"})
	require.NoError(t, err)
	assert.Equal(t, "2025-07-25", normalized["when"])

	_, err = ValidateDraft(tmpl, model.FieldValues{"when": "25/07/2025"})
	assert.Error(t, err)
}

func TestValidateDraft_SelectMustMatchOption(t *testing.T) {
	tmpl := &model.FormTemplate{
		ID:     "tpl-select",
		Fields: []model.FormField{selectField("kind", "a", "b")},
	}

	_, err := ValidateDraft(tmpl, model.FieldValues{"kind": "c"})
	assert.Error(t, err)

	normalized, err := ValidateDraft(tmpl, model.FieldValues{"kind": "a"})
	require.NoError(t, err)
	assert.Equal(t, "a", normalized["kind"])
}

func TestValidateDraft_UnknownFieldsDropped(t *testing.T) {
	tmpl := &model.FormTemplate{
		ID:     "tpl-min",
		Fields: []model.FormField{{ID: "name", Type: model.FieldText}},
	}

	normalized, err := ValidateDraft(tmpl, model.FieldValues{"name": "x", "stale": "y"})
	require.NoError(t, err)
	assert.Equal(t, "x", normalized["name"])
	assert.NotContains(t, normalized, "stale")
}
