package api

import (
	"encoding/json"
	"net/http"

	"dealerhub/internal/model"
	"dealerhub/internal/service"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) createNotice(w http.ResponseWriter, r *http.Request) {
	var input service.NoticeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	notice, err := d.Notices.CreateNotice(r.Context(), input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "create_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusCreated, notice)
}

func (d Dependencies) getNotice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	notice, err := d.Notices.GetNotice(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Notice not found", d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, notice)
}

func (d Dependencies) listNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := d.Notices.ListNotices(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": notices})
}

func (d Dependencies) rsvpNotice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		DealerID  string           `json:"dealerId"`
		Attendees []model.Attendee `json:"attendees"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	// Dealers RSVP for themselves
	actor := actorFromContext(r)
	if actor.Role == model.RoleDealer {
		body.DealerID = actor.DealerID
	}
	if body.DealerID == "" {
		WriteError(w, http.StatusBadRequest, "invalid_request", "dealerId is required", d.Log)
		return
	}

	notice, err := d.Notices.RSVP(r.Context(), id, body.DealerID, body.Attendees)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "rsvp_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, notice)
}

func (d Dependencies) deleteNotice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := d.Notices.DeleteNotice(r.Context(), id); err != nil {
		WriteError(w, http.StatusInternalServerError, "delete_failed", err.Error(), d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
