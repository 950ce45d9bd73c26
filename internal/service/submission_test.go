package service

import (
	"testing"

	"dealerhub/internal/model"

	"github.com/stretchr/testify/assert"
)

func editTemplate(dealerCanEdit bool) *model.FormTemplate {
	return &model.FormTemplate{
		ID:                       "tmpl-1",
		Title:                    "Activity Report",
		Published:                true,
		DealerCanEditSubmissions: dealerCanEdit,
	}
}

func ownedSubmission(status model.SubmissionStatus) *model.Submission {
	return &model.Submission{
		ID:       "sub-1",
		DealerID: "dealer-1",
		Status:   status,
	}
}

func TestCanEdit_AdminAlways(t *testing.T) {
	err := canEdit(editTemplate(false), ownedSubmission(model.StatusPending),
		Actor{Role: model.RoleAdmin})
	assert.NoError(t, err)
}

func TestCanEdit_DealerNeedsTemplateFlag(t *testing.T) {
	actor := Actor{Role: model.RoleDealer, DealerID: "dealer-1"}

	err := canEdit(editTemplate(false), ownedSubmission(model.StatusPending), actor)
	assert.Error(t, err)

	err = canEdit(editTemplate(true), ownedSubmission(model.StatusPending), actor)
	assert.NoError(t, err)
}

func TestCanEdit_DealerCannotEditOthers(t *testing.T) {
	actor := Actor{Role: model.RoleDealer, DealerID: "dealer-2"}

	err := canEdit(editTemplate(true), ownedSubmission(model.StatusPending), actor)
	assert.Error(t, err)
}

func TestCanEdit_ArchivedIsTerminal(t *testing.T) {
	// Even admins cannot touch archived submissions
	err := canEdit(editTemplate(true), ownedSubmission(model.StatusArchived),
		Actor{Role: model.RoleAdmin})
	assert.Error(t, err)
}

func TestCanEdit_GuestNever(t *testing.T) {
	err := canEdit(editTemplate(true), ownedSubmission(model.StatusPending),
		Actor{Role: model.RoleGuest})
	assert.Error(t, err)
}

func TestSubmissionService_CreateSubmission(t *testing.T) {
	t.Skip("Requires test database setup")
}

func TestSubmissionService_UpdateData(t *testing.T) {
	t.Skip("Requires test database setup")
}

func TestSubmissionService_QuickEdit(t *testing.T) {
	t.Skip("Requires test database setup")
}

func TestSubmissionService_SetStatus(t *testing.T) {
	t.Skip("Requires test database setup")
}
