package dashboard

import (
	"sort"
	"strconv"

	"dealerhub/internal/forms"
	"dealerhub/internal/model"
)

// NABucket labels submissions with no value at the group-by field. Every
// submission lands in exactly one bucket; missing values are never dropped.
const NABucket = "N/A"

const (
	defaultRecentLimit = 5
	maxRecentLimit     = 20
)

// Bucket is one grouped aggregation result
type Bucket struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// AggregateWidget groups a chart widget's source submissions by the
// configured field and reduces each bucket by COUNT or SUM. Bucket order is
// the insertion order of first occurrence. A value at the sum field that does
// not parse as a number contributes zero; a dashboard must still render.
func AggregateWidget(cfg model.WidgetConfig, submissions []model.Submission) []Bucket {
	if cfg.TemplateID == "" || cfg.GroupByFieldID == "" || cfg.AggregationType == "" {
		return nil
	}

	index := make(map[string]int)
	var buckets []Bucket

	for _, s := range submissions {
		if s.TemplateID != cfg.TemplateID {
			continue
		}

		key := NABucket
		if raw, ok := s.Data[cfg.GroupByFieldID]; ok {
			if coerced := forms.CoerceString(raw); coerced != "" {
				key = coerced
			}
		}

		i, seen := index[key]
		if !seen {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Name: key})
		}

		switch cfg.AggregationType {
		case model.AggregateCount:
			buckets[i].Value++
		case model.AggregateSum:
			if cfg.SumOfFieldID == "" {
				continue
			}
			n, err := strconv.ParseFloat(forms.CoerceString(s.Data[cfg.SumOfFieldID]), 64)
			if err != nil {
				continue
			}
			buckets[i].Value += n
		}
	}

	return buckets
}

// StatCardValue computes a stat card's scalar. With a source template it is
// that template's submission count; without one the card falls back to the
// total dealer count. The fallback is specific to stat cards, not a general
// aggregation rule.
func StatCardValue(cfg model.WidgetConfig, submissions []model.Submission, dealerCount int) int {
	if cfg.TemplateID == "" {
		return dealerCount
	}
	count := 0
	for _, s := range submissions {
		if s.TemplateID == cfg.TemplateID {
			count++
		}
	}
	return count
}

// RecentSubmissions returns the newest submissions for the widget's source
// template (all templates when unset), newest first, bounded by the widget's
// limit (default 5, clamped to 1..20).
func RecentSubmissions(cfg model.WidgetConfig, submissions []model.Submission) []model.Submission {
	limit := cfg.Limit
	if limit == 0 {
		limit = defaultRecentLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	filtered := make([]model.Submission, 0, len(submissions))
	for _, s := range submissions {
		if cfg.TemplateID != "" && s.TemplateID != cfg.TemplateID {
			continue
		}
		filtered = append(filtered, s)
	}

	// ISO-8601 dates order lexicographically
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].SubmissionDate > filtered[j].SubmissionDate
	})

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

// SubmissionTitle picks a human-readable title for a submission: the first
// non-empty string value in template field order, else the template title.
func SubmissionTitle(t *model.FormTemplate, s model.Submission) string {
	for _, field := range t.Fields {
		if raw, ok := s.Data[field.ID]; ok {
			if str, isString := raw.(string); isString && str != "" {
				return str
			}
		}
	}
	return t.Title
}
