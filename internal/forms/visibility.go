package forms

import (
	"fmt"
	"strconv"

	"dealerhub/internal/model"
)

// CoerceString normalizes a raw field value for comparison. Form inputs
// deliver numbers sometimes as strings and sometimes as JSON numbers, so
// condition matching coerces both sides to string instead of comparing types.
func CoerceString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// looselyEquals compares two raw values after string coercion
func looselyEquals(a, b interface{}) bool {
	return CoerceString(a) == CoerceString(b)
}

// IsFieldVisible reports whether a field is currently visible given the
// in-progress values. A field with no conditions is always visible; otherwise
// every condition must hold. A missing referenced value fails its condition.
func IsFieldVisible(field model.FormField, values model.FieldValues) bool {
	if len(field.Conditions) == 0 {
		return true
	}
	for _, cond := range field.Conditions {
		current, ok := values[cond.FieldID]
		if !ok {
			return false
		}
		if !looselyEquals(current, cond.Value) {
			return false
		}
	}
	return true
}

// EvaluateVisibility returns the set of currently visible field ids. It is
// recomputed on every value change: any preceding field's value can change
// the visibility of any later field.
func EvaluateVisibility(t *model.FormTemplate, values model.FieldValues) map[string]bool {
	visible := make(map[string]bool, len(t.Fields))
	for _, field := range t.Fields {
		if IsFieldVisible(field, values) {
			visible[field.ID] = true
		}
	}
	return visible
}
