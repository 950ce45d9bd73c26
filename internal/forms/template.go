package forms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"dealerhub/internal/model"

	"github.com/hashicorp/golang-lru/v2/expirable"
	js "github.com/santhosh-tekuri/jsonschema/v5"
)

// templateMetaSchema describes the shape of a form template definition.
// Cross-field invariants (unique ids, condition targets) are checked in Go
// below; JSON Schema cannot express them.
const templateMetaSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["title", "fields"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "published": {"type": "boolean"},
    "archived": {"type": "boolean"},
    "dealerCanEditSubmissions": {"type": "boolean"},
    "fields": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "label", "type"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "label": {"type": "string", "minLength": 1},
          "type": {"enum": ["TEXT", "TEXTAREA", "NUMBER", "DATE", "SELECT"]},
          "required": {"type": "boolean"},
          "isGoalLink": {"type": "boolean"},
          "isEventDate": {"type": "boolean"},
          "options": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["value", "label"],
              "properties": {
                "value": {"type": "string", "minLength": 1},
                "label": {"type": "string", "minLength": 1},
                "goalCategory": {"enum": ["Evento Fisico", "Campagna Online", "PR", "Fiera"]}
              }
            }
          },
          "conditions": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["fieldId", "value"],
              "properties": {
                "fieldId": {"type": "string", "minLength": 1}
              }
            }
          }
        }
      }
    }
  }
}`

// TemplateValidator validates form template definitions. The meta-schema is
// compiled once; templates already seen recently are skipped via an
// expirable LRU keyed by the template's JSON fingerprint.
type TemplateValidator struct {
	compiled *js.Schema
	cache    *expirable.LRU[string, struct{}]
}

// NewTemplateValidator creates a validator with a bounded validation cache
func NewTemplateValidator(cacheSize int) (*TemplateValidator, error) {
	c := js.NewCompiler()
	c.ExtractAnnotations = true
	if err := c.AddResource("mem://template-meta.json", bytes.NewReader([]byte(templateMetaSchema))); err != nil {
		return nil, fmt.Errorf("failed to add meta-schema resource: %w", err)
	}
	compiled, err := c.Compile("mem://template-meta.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile meta-schema: %w", err)
	}
	return &TemplateValidator{
		compiled: compiled,
		cache:    expirable.NewLRU[string, struct{}](cacheSize, nil, time.Hour),
	}, nil
}

// Validate checks a template definition against the meta-schema and the
// structural invariants of the form engine.
func (v *TemplateValidator) Validate(t *model.FormTemplate) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}
	key := string(raw)
	if _, ok := v.cache.Get(key); ok {
		return nil
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal template: %w", err)
	}
	if err := v.compiled.Validate(doc); err != nil {
		return fmt.Errorf("template definition invalid: %w", err)
	}
	if err := checkFieldInvariants(t); err != nil {
		return err
	}

	v.cache.Add(key, struct{}{})
	return nil
}

// checkFieldInvariants enforces the cross-field rules: field ids are unique,
// goal links live on SELECT fields, event dates on DATE fields, and
// conditions may only reference SELECT fields with a static option list.
func checkFieldInvariants(t *model.FormTemplate) error {
	byID := make(map[string]model.FormField, len(t.Fields))
	for _, f := range t.Fields {
		if _, dup := byID[f.ID]; dup {
			return fmt.Errorf("duplicate field id %q", f.ID)
		}
		byID[f.ID] = f
	}
	for _, f := range t.Fields {
		if f.IsGoalLink && f.Type != model.FieldSelect {
			return fmt.Errorf("field %q: isGoalLink is only legal on SELECT fields", f.ID)
		}
		if f.IsEventDate && f.Type != model.FieldDate {
			return fmt.Errorf("field %q: isEventDate is only legal on DATE fields", f.ID)
		}
		if f.Type == model.FieldSelect && len(f.Options) == 0 {
			return fmt.Errorf("field %q: SELECT fields need at least one option", f.ID)
		}
		for _, cond := range f.Conditions {
			target, ok := byID[cond.FieldID]
			if !ok {
				return fmt.Errorf("field %q: condition references unknown field %q", f.ID, cond.FieldID)
			}
			if target.Type != model.FieldSelect || len(target.Options) == 0 {
				return fmt.Errorf("field %q: conditions may only reference SELECT fields with options", f.ID)
			}
		}
	}
	return nil
}
