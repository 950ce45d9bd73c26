package service

import (
	"encoding/json"

	"dealerhub/internal/db"
	"dealerhub/internal/model"
)

const timestampLayout = "2006-01-02T15:04:05Z07:00"

func dbDealerToModel(d db.Dealer) *model.Dealer {
	dealer := &model.Dealer{
		ID:        d.ID,
		SapID:     d.SapID,
		Name:      d.Name,
		Category:  model.DealerCategory(d.Category),
		Website:   d.Website,
		Contacts:  []model.Contact{},
		CreatedAt: d.CreatedAt.Format(timestampLayout),
	}
	_ = json.Unmarshal(d.Contacts, &dealer.Contacts)
	return dealer
}

func dbTemplateToModel(t db.FormTemplate) *model.FormTemplate {
	tmpl := &model.FormTemplate{
		ID:                       t.ID,
		Title:                    t.Title,
		Description:              t.Description,
		Fields:                   []model.FormField{},
		Published:                t.Published,
		Archived:                 t.Archived,
		DealerCanEditSubmissions: t.DealerCanEditSubmissions,
		CreatedAt:                t.CreatedAt.Format(timestampLayout),
	}
	_ = json.Unmarshal(t.Fields, &tmpl.Fields)
	return tmpl
}

func dbSubmissionToModel(s db.Submission) *model.Submission {
	sub := &model.Submission{
		ID:             s.ID,
		TemplateID:     s.TemplateID,
		DealerID:       s.DealerID,
		SubmissionDate: s.SubmissionDate.Format(timestampLayout),
		Status:         model.SubmissionStatus(s.Status),
		Data:           model.FieldValues{},
	}
	_ = json.Unmarshal(s.Data, &sub.Data)
	if s.GoalValue != nil {
		sub.GoalValue = model.ActivityType(*s.GoalValue)
	}
	if s.EventDate != nil {
		sub.EventDate = *s.EventDate
	}
	return sub
}

func dbSubmissionsToModel(rows []db.Submission) []model.Submission {
	submissions := make([]model.Submission, len(rows))
	for i, row := range rows {
		submissions[i] = *dbSubmissionToModel(row)
	}
	return submissions
}

func dbGoalToModel(g db.Goal) *model.Goal {
	return &model.Goal{
		ID:           g.ID,
		Category:     model.DealerCategory(g.Category),
		ActivityType: model.ActivityType(g.ActivityType),
		Count:        g.Count,
		StartDate:    g.StartDate,
		EndDate:      g.EndDate,
		Note:         g.Note,
	}
}

func dbNoticeToModel(n db.Notice) *model.Notice {
	notice := &model.Notice{
		ID:             n.ID,
		Type:           model.NoticeType(n.Type),
		Title:          n.Title,
		Content:        n.Content,
		EventDate:      n.EventDate,
		EventTime:      n.EventTime,
		Priority:       model.NoticePriority(n.Priority),
		CreationDate:   n.CreationDate.Format(timestampLayout),
		Participations: []model.Participation{},
	}
	_ = json.Unmarshal(n.Participations, &notice.Participations)
	return notice
}

func dbWidgetToModel(w db.Widget) *model.Widget {
	widget := &model.Widget{
		ID:   w.ID,
		Role: model.Role(w.Role),
		Type: model.WidgetType(w.Type),
	}
	_ = json.Unmarshal(w.Config, &widget.Config)
	return widget
}

func dbLayoutToModel(l db.Layout) model.Layout {
	return model.Layout{I: l.WidgetID, X: l.X, Y: l.Y, W: l.W, H: l.H, Static: l.Static}
}

func dbForecastToModel(f db.SalesForecast) *model.SalesForecast {
	return &model.SalesForecast{
		ID:              f.ID,
		DealerID:        f.DealerID,
		ProductID:       f.ProductID,
		Year:            f.Year,
		Quarter:         f.Quarter,
		ForecastedUnits: f.ForecastedUnits,
		ActualUnits:     f.ActualUnits,
		Status:          model.ForecastStatus(f.Status),
	}
}

func dbUserToModel(u db.User) *model.User {
	return &model.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         model.Role(u.Role),
		DealerID:     u.DealerID,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.Format(timestampLayout),
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
