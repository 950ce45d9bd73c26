package api

import (
	"encoding/json"
	"net/http"

	"dealerhub/internal/model"
	"dealerhub/internal/service"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) createSubmission(w http.ResponseWriter, r *http.Request) {
	var input service.CreateSubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	// Dealers always submit as themselves
	actor := actorFromContext(r)
	if actor.Role == model.RoleDealer {
		input.DealerID = actor.DealerID
	}
	if input.DealerID == "" {
		WriteError(w, http.StatusBadRequest, "invalid_request", "dealerId is required", d.Log)
		return
	}

	sub, err := d.Submissions.CreateSubmission(r.Context(), input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "create_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusCreated, sub)
}

func (d Dependencies) getSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sub, err := d.Submissions.GetSubmission(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Submission not found", d.Log)
		return
	}

	actor := actorFromContext(r)
	if actor.Role == model.RoleDealer && sub.DealerID != actor.DealerID {
		WriteError(w, http.StatusForbidden, "forbidden", "Not your submission", d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, sub)
}

func (d Dependencies) listSubmissions(w http.ResponseWriter, r *http.Request) {
	dealerID := r.URL.Query().Get("dealerId")
	templateID := r.URL.Query().Get("templateId")

	// Dealers only ever see their own submissions
	actor := actorFromContext(r)
	if actor.Role == model.RoleDealer {
		dealerID = actor.DealerID
	}

	subs, err := d.Submissions.ListSubmissions(r.Context(), dealerID, templateID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": subs})
}

func (d Dependencies) updateSubmissionData(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Data model.FieldValues `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	sub, err := d.Submissions.UpdateData(r.Context(), id, body.Data, actorFromContext(r))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "update_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, sub)
}

func (d Dependencies) setSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status model.SubmissionStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	sub, err := d.Submissions.SetStatus(r.Context(), id, body.Status)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "update_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, sub)
}

func (d Dependencies) quickEditSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		FieldID string      `json:"fieldId"`
		Value   interface{} `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	if body.FieldID == "" {
		WriteError(w, http.StatusBadRequest, "invalid_request", "fieldId is required", d.Log)
		return
	}

	result, err := d.Submissions.QuickEdit(r.Context(), id, body.FieldID, body.Value, actorFromContext(r))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "edit_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}
