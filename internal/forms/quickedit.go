package forms

import "dealerhub/internal/model"

// Decision is the outcome of a quick-edit check. When Apply is false the
// caller must open a full edit form pre-seeded with Data so the user can
// supply the newly required values; Data is never partially persisted.
type Decision struct {
	Apply bool              `json:"apply"`
	Data  model.FieldValues `json:"data"`
}

// QuickEditDecision checks whether a single-field inline edit can be applied
// directly. Changing one value can make a previously hidden conditional field
// visible; if such a field is required and still empty in the patched data,
// applying the edit directly would silently persist an invalid submission.
func QuickEditDecision(t *model.FormTemplate, oldData model.FieldValues, fieldID string, newValue interface{}) Decision {
	newData := make(model.FieldValues, len(oldData)+1)
	for k, v := range oldData {
		newData[k] = v
	}
	newData[fieldID] = newValue

	for _, field := range t.Fields {
		if len(field.Conditions) == 0 {
			continue
		}
		wasVisible := IsFieldVisible(field, oldData)
		isVisible := IsFieldVisible(field, newData)
		if !wasVisible && isVisible && field.Required && isEmptyValue(newData[field.ID]) {
			return Decision{Apply: false, Data: newData}
		}
	}
	return Decision{Apply: true, Data: newData}
}

func isEmptyValue(v interface{}) bool {
	return v == nil || CoerceString(v) == ""
}
