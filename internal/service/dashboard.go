package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dealerhub/internal/dashboard"
	"dealerhub/internal/db"
	"dealerhub/internal/model"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// widgetDataTTL bounds how stale a cached widget payload may be. Dashboards
// are recomputed on demand; the cache only absorbs refresh bursts.
const widgetDataTTL = 60 * time.Second

type DashboardService struct {
	queries *db.Queries
	cache   *redis.Client
	log     *zap.Logger
}

func NewDashboardService(queries *db.Queries, cache *redis.Client, log *zap.Logger) *DashboardService {
	return &DashboardService{queries: queries, cache: cache, log: log}
}

// Dashboard bundles a role's widgets and grid
type Dashboard struct {
	Widgets []model.Widget `json:"widgets"`
	Layout  []model.Layout `json:"layout"`
}

func (s *DashboardService) GetDashboard(ctx context.Context, role model.Role) (*Dashboard, error) {
	widgetRows, err := s.queries.ListWidgetsByRole(ctx, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}
	layoutRows, err := s.queries.ListLayoutsByRole(ctx, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}

	d := &Dashboard{Widgets: make([]model.Widget, len(widgetRows)), Layout: make([]model.Layout, len(layoutRows))}
	for i, row := range widgetRows {
		d.Widgets[i] = *dbWidgetToModel(row)
	}
	for i, row := range layoutRows {
		d.Layout[i] = dbLayoutToModel(row)
	}
	return d, nil
}

type CreateWidgetInput struct {
	Type   model.WidgetType   `json:"type" validate:"required"`
	Config model.WidgetConfig `json:"config"`
	Layout model.Layout       `json:"layout"`
}

func (s *DashboardService) CreateWidget(ctx context.Context, role model.Role, input CreateWidgetInput) (*model.Widget, error) {
	switch input.Type {
	case model.WidgetStatCard, model.WidgetChart, model.WidgetGoals, model.WidgetRecentSubmissions:
	default:
		return nil, fmt.Errorf("unknown widget type %q", input.Type)
	}
	if input.Type == model.WidgetChart {
		if input.Config.TemplateID == "" || input.Config.GroupByFieldID == "" || input.Config.AggregationType == "" {
			return nil, fmt.Errorf("chart widgets need a source template, group-by field and aggregation")
		}
		if input.Config.AggregationType == model.AggregateSum && input.Config.SumOfFieldID == "" {
			return nil, fmt.Errorf("SUM charts need a sum field")
		}
	}

	id := ulid.Make().String()
	layout := db.Layout{
		WidgetID: id, Role: string(role),
		X: input.Layout.X, Y: input.Layout.Y, W: input.Layout.W, H: input.Layout.H,
		Static: input.Layout.Static,
	}
	if layout.W == 0 {
		layout.W = 4
	}
	if layout.H == 0 {
		layout.H = 3
	}

	row, err := s.queries.CreateWidget(ctx, id, string(role), string(input.Type), input.Config, layout)
	if err != nil {
		return nil, fmt.Errorf("failed to create widget: %w", err)
	}
	return dbWidgetToModel(row), nil
}

func (s *DashboardService) UpdateWidgetConfig(ctx context.Context, id string, config model.WidgetConfig) (*model.Widget, error) {
	row, err := s.queries.UpdateWidgetConfig(ctx, id, config)
	if err != nil {
		return nil, fmt.Errorf("failed to update widget: %w", err)
	}
	s.invalidate(ctx, id)
	return dbWidgetToModel(row), nil
}

// DeleteWidget removes the widget and its layout entry together
func (s *DashboardService) DeleteWidget(ctx context.Context, id string) error {
	if err := s.queries.DeleteWidget(ctx, id); err != nil {
		return fmt.Errorf("failed to delete widget: %w", err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *DashboardService) SaveLayout(ctx context.Context, role model.Role, layout []model.Layout) error {
	rows := make([]db.Layout, len(layout))
	for i, l := range layout {
		rows[i] = db.Layout{WidgetID: l.I, Role: string(role), X: l.X, Y: l.Y, W: l.W, H: l.H, Static: l.Static}
	}
	if err := s.queries.SaveLayouts(ctx, string(role), rows); err != nil {
		return fmt.Errorf("failed to save layout: %w", err)
	}
	return nil
}

// WidgetData is the computed payload of one widget
type WidgetData struct {
	Type        model.WidgetType     `json:"type"`
	Value       *int                 `json:"value,omitempty"`       // stat cards
	Buckets     []dashboard.Bucket   `json:"buckets,omitempty"`     // charts
	Goals       []dashboard.Progress `json:"goals,omitempty"`       // goal widgets
	Submissions []model.Submission   `json:"submissions,omitempty"` // recent
	Titles      map[string]string    `json:"titles,omitempty"`      // recent, by submission id
}

// ComputeWidgetData folds the submission set into the widget's payload.
// Results are cached briefly in redis keyed by widget and dealer scope;
// failures to reach the cache are logged and ignored, the fold is cheap.
func (s *DashboardService) ComputeWidgetData(ctx context.Context, widget *model.Widget, dealer *model.Dealer) (*WidgetData, error) {
	cacheKey := fmt.Sprintf("widget:%s:data", widget.ID)
	if dealer != nil {
		cacheKey = fmt.Sprintf("widget:%s:dealer:%s:data", widget.ID, dealer.ID)
	}
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached WidgetData
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	data, err := s.computeWidgetData(ctx, widget, dealer)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(data); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, widgetDataTTL).Err(); err != nil {
				s.log.Warn("failed to cache widget data", zap.String("widget_id", widget.ID), zap.Error(err))
			}
		}
	}
	return data, nil
}

func (s *DashboardService) computeWidgetData(ctx context.Context, widget *model.Widget, dealer *model.Dealer) (*WidgetData, error) {
	// Dealer dashboards only ever see their own submissions
	var dealerID *string
	if dealer != nil {
		dealerID = strPtr(dealer.ID)
	}
	rows, err := s.queries.ListSubmissions(ctx, dealerID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	submissions := dbSubmissionsToModel(rows)

	data := &WidgetData{Type: widget.Type}
	switch widget.Type {
	case model.WidgetStatCard:
		dealerCount, err := s.queries.CountDealers(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count dealers: %w", err)
		}
		value := dashboard.StatCardValue(widget.Config, submissions, dealerCount)
		data.Value = &value
	case model.WidgetChart:
		data.Buckets = dashboard.AggregateWidget(widget.Config, submissions)
	case model.WidgetGoals:
		if dealer == nil {
			data.Goals = []dashboard.Progress{}
			break
		}
		goalRows, err := s.queries.ListGoals(ctx, strPtr(string(dealer.Category)))
		if err != nil {
			return nil, fmt.Errorf("failed to list goals: %w", err)
		}
		goals := make([]model.Goal, len(goalRows))
		for i, row := range goalRows {
			goals[i] = *dbGoalToModel(row)
		}
		data.Goals = dashboard.DealerGoalProgress(*dealer, goals, submissions, time.Now().UTC())
	case model.WidgetRecentSubmissions:
		data.Submissions = dashboard.RecentSubmissions(widget.Config, submissions)
		data.Titles = make(map[string]string, len(data.Submissions))
		templates := make(map[string]*model.FormTemplate)
		for _, sub := range data.Submissions {
			tmpl, ok := templates[sub.TemplateID]
			if !ok {
				row, err := s.queries.GetFormTemplateByID(ctx, sub.TemplateID)
				if err != nil {
					continue
				}
				tmpl = dbTemplateToModel(row)
				templates[sub.TemplateID] = tmpl
			}
			data.Titles[sub.ID] = dashboard.SubmissionTitle(tmpl, sub)
		}
	default:
		return nil, fmt.Errorf("unknown widget type %q", widget.Type)
	}
	return data, nil
}

func (s *DashboardService) invalidate(ctx context.Context, widgetID string) {
	if s.cache == nil {
		return
	}
	iter := s.cache.Scan(ctx, 0, fmt.Sprintf("widget:%s:*", widgetID), 0).Iterator()
	for iter.Next(ctx) {
		if err := s.cache.Del(ctx, iter.Val()).Err(); err != nil {
			s.log.Warn("failed to invalidate widget cache", zap.String("widget_id", widgetID), zap.Error(err))
		}
	}
}
