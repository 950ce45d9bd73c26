package forms

import (
	"errors"

	"dealerhub/internal/model"
)

// ErrTemplateNotFound is returned when a submission references a template
// that does not exist. Derivation against an unknown template is undefined,
// so creates and updates must fail instead of skipping it.
var ErrTemplateNotFound = errors.New("form template not found")

// Derived holds the cross-cutting values computed from a submission's data.
// Zero values mean "not derived".
type Derived struct {
	GoalValue model.ActivityType
	EventDate string
}

// DeriveCrossFields walks the template fields in declared order and computes
// the submission's goal tag and event date.
//
// When several goal-link fields resolve a goal category, the last one in
// field order wins. Whether multiple goal-link fields are meant to coexist
// was never settled; the overwrite order is kept as observable behavior
// rather than being "fixed" to first-wins or an error.
func DeriveCrossFields(t *model.FormTemplate, data model.FieldValues) Derived {
	var d Derived
	for _, field := range t.Fields {
		if field.IsGoalLink && len(field.Options) > 0 {
			submitted := CoerceString(data[field.ID])
			for _, opt := range field.Options {
				if opt.Value != submitted {
					continue
				}
				// First matching option decides; it only overwrites the
				// running value when it actually carries a goal category.
				if opt.GoalCategory != "" {
					d.GoalValue = opt.GoalCategory
				}
				break
			}
		}
		if field.IsEventDate {
			if raw, ok := data[field.ID]; ok {
				d.EventDate = CoerceString(raw)
			}
		}
	}
	return d
}
