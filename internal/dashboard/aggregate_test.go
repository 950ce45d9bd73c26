package dashboard

import (
	"testing"

	"dealerhub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartConfig() model.WidgetConfig {
	return model.WidgetConfig{
		Title:           "Activities by type",
		TemplateID:      "tpl-activity",
		GroupByFieldID:  "type",
		AggregationType: model.AggregateCount,
	}
}

func submissionWithData(id, templateID string, data model.FieldValues) model.Submission {
	return model.Submission{
		ID:             id,
		TemplateID:     templateID,
		DealerID:       "dealer-1",
		SubmissionDate: "2025-07-01T00:00:00Z",
		Status:         model.StatusCompleted,
		Data:           data,
	}
}

func TestAggregateWidget_Count(t *testing.T) {
	subs := []model.Submission{
		submissionWithData("s1", "tpl-activity", model.FieldValues{"type": "Webinar"}),
		submissionWithData("s2", "tpl-activity", model.FieldValues{"type": "Demo"}),
		submissionWithData("s3", "tpl-activity", model.FieldValues{"type": "Webinar"}),
		submissionWithData("s4", "tpl-other", model.FieldValues{"type": "Webinar"}),
	}

	buckets := AggregateWidget(chartConfig(), subs)

	require.Len(t, buckets, 2)
	// Insertion order of first occurrence
	assert.Equal(t, Bucket{Name: "Webinar", Value: 2}, buckets[0])
	assert.Equal(t, Bucket{Name: "Demo", Value: 1}, buckets[1])
}

func TestAggregateWidget_CountCompleteness(t *testing.T) {
	subs := []model.Submission{
		submissionWithData("s1", "tpl-activity", model.FieldValues{"type": "Webinar"}),
		submissionWithData("s2", "tpl-activity", model.FieldValues{}), // no group value
		submissionWithData("s3", "tpl-activity", model.FieldValues{"type": "Demo"}),
	}

	buckets := AggregateWidget(chartConfig(), subs)

	total := 0.0
	names := make([]string, 0, len(buckets))
	for _, b := range buckets {
		total += b.Value
		names = append(names, b.Name)
	}
	// Every submission lands in exactly one bucket, including the sentinel
	assert.Equal(t, float64(len(subs)), total)
	assert.Contains(t, names, NABucket)
}

func TestAggregateWidget_Sum(t *testing.T) {
	cfg := chartConfig()
	cfg.AggregationType = model.AggregateSum
	cfg.SumOfFieldID = "budget"

	subs := []model.Submission{
		submissionWithData("s1", "tpl-activity", model.FieldValues{"type": "Webinar", "budget": "1000"}),
		submissionWithData("s2", "tpl-activity", model.FieldValues{"type": "Webinar", "budget": float64(250)}),
		submissionWithData("s3", "tpl-activity", model.FieldValues{"type": "Demo", "budget": "400"}),
	}

	buckets := AggregateWidget(cfg, subs)
	require.Len(t, buckets, 2)
	assert.Equal(t, float64(1250), buckets[0].Value)
	assert.Equal(t, float64(400), buckets[1].Value)
}

func TestAggregateWidget_SumSkipsNonNumeric(t *testing.T) {
	cfg := chartConfig()
	cfg.AggregationType = model.AggregateSum
	cfg.SumOfFieldID = "budget"

	with := []model.Submission{
		submissionWithData("s1", "tpl-activity", model.FieldValues{"type": "Webinar", "budget": "1000"}),
		submissionWithData("s2", "tpl-activity", model.FieldValues{"type": "Webinar", "budget": "a lot"}),
	}
	without := with[:1]

	// Same total as if the non-numeric submission were excluded
	assert.Equal(t, AggregateWidget(cfg, without)[0].Value, AggregateWidget(cfg, with)[0].Value)
}

func TestAggregateWidget_IncompleteConfig(t *testing.T) {
	cfg := chartConfig()
	cfg.GroupByFieldID = ""

	subs := []model.Submission{
		submissionWithData("s1", "tpl-activity", model.FieldValues{"type": "Webinar"}),
	}
	assert.Empty(t, AggregateWidget(cfg, subs))
}

func TestStatCardValue(t *testing.T) {
	subs := []model.Submission{
		submissionWithData("s1", "tpl-activity", nil),
		submissionWithData("s2", "tpl-activity", nil),
		submissionWithData("s3", "tpl-other", nil),
	}

	cfg := model.WidgetConfig{Title: "Activity count", TemplateID: "tpl-activity"}
	assert.Equal(t, 2, StatCardValue(cfg, subs, 12))

	// Without a source template the card shows the dealer total
	assert.Equal(t, 12, StatCardValue(model.WidgetConfig{Title: "Dealers"}, subs, 12))
}

func TestRecentSubmissions_LimitAndOrder(t *testing.T) {
	subs := []model.Submission{
		{ID: "old", TemplateID: "tpl-activity", SubmissionDate: "2025-01-01T00:00:00Z"},
		{ID: "new", TemplateID: "tpl-activity", SubmissionDate: "2025-06-01T00:00:00Z"},
		{ID: "mid", TemplateID: "tpl-activity", SubmissionDate: "2025-03-01T00:00:00Z"},
	}

	cfg := model.WidgetConfig{TemplateID: "tpl-activity", Limit: 2}
	recent := RecentSubmissions(cfg, subs)

	require.Len(t, recent, 2)
	assert.Equal(t, "new", recent[0].ID)
	assert.Equal(t, "mid", recent[1].ID)
}

func TestRecentSubmissions_LimitClamping(t *testing.T) {
	subs := make([]model.Submission, 30)
	for i := range subs {
		subs[i] = model.Submission{ID: string(rune('a' + i)), TemplateID: "tpl-activity",
			SubmissionDate: "2025-01-01T00:00:00Z"}
	}

	assert.Len(t, RecentSubmissions(model.WidgetConfig{TemplateID: "tpl-activity"}, subs), 5)
	assert.Len(t, RecentSubmissions(model.WidgetConfig{TemplateID: "tpl-activity", Limit: 100}, subs), 20)
	assert.Len(t, RecentSubmissions(model.WidgetConfig{TemplateID: "tpl-activity", Limit: -3}, subs), 1)
}

func TestSubmissionTitle(t *testing.T) {
	tmpl := &model.FormTemplate{
		ID:    "tpl-activity",
		Title: "Marketing Activity",
		Fields: []model.FormField{
			{ID: "name", Type: model.FieldText},
			{ID: "type", Type: model.FieldSelect},
		},
	}

	s := submissionWithData("s1", "tpl-activity", model.FieldValues{"name": "Spring webinar"})
	assert.Equal(t, "Spring webinar", SubmissionTitle(tmpl, s))

	s = submissionWithData("s2", "tpl-activity", model.FieldValues{})
	assert.Equal(t, "Marketing Activity", SubmissionTitle(tmpl, s))
}
