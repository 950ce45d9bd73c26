package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dealerhub/internal/model"
)

// FieldError describes a single invalid field value
type FieldError struct {
	FieldID string `json:"fieldId"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.FieldID, e.Message)
}

// ValidationErrors aggregates per-field draft errors
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return "invalid submission data: " + strings.Join(msgs, "; ")
}

const dateLayout = "2006-01-02"

// ValidateDraft checks a submission draft against its template and returns a
// normalized copy of the values: numbers as float64, everything else as
// string. Untyped input is coerced here so the pure engine functions never
// see anything but well-formed values.
//
// Required is only enforced for fields that are visible given the full draft
// state; a hidden required field is not an error.
func ValidateDraft(t *model.FormTemplate, data model.FieldValues) (model.FieldValues, error) {
	visible := EvaluateVisibility(t, data)
	normalized := make(model.FieldValues, len(data))
	var errs ValidationErrors

	for _, field := range t.Fields {
		raw, present := data[field.ID]
		empty := !present || isEmptyValue(raw)

		if empty {
			if field.Required && visible[field.ID] {
				errs = append(errs, FieldError{FieldID: field.ID, Message: "required"})
			}
			continue
		}

		switch field.Type {
		case model.FieldNumber:
			n, err := strconv.ParseFloat(CoerceString(raw), 64)
			if err != nil {
				errs = append(errs, FieldError{FieldID: field.ID, Message: "not a number"})
				continue
			}
			normalized[field.ID] = n
		case model.FieldDate:
			s := CoerceString(raw)
			if _, err := time.Parse(dateLayout, s); err != nil {
				errs = append(errs, FieldError{FieldID: field.ID, Message: "not a date (expected YYYY-MM-DD)"})
				continue
			}
			normalized[field.ID] = s
		case model.FieldSelect:
			s := CoerceString(raw)
			if !hasOption(field.Options, s) {
				errs = append(errs, FieldError{FieldID: field.ID, Message: "not one of the allowed options"})
				continue
			}
			normalized[field.ID] = s
		default:
			normalized[field.ID] = CoerceString(raw)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return normalized, nil
}

func hasOption(options []model.FieldOption, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
