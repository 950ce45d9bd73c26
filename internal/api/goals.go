package api

import (
	"encoding/json"
	"net/http"
	"time"

	"dealerhub/internal/dashboard"
	"dealerhub/internal/model"
	"dealerhub/internal/service"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) createGoal(w http.ResponseWriter, r *http.Request) {
	var input service.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	goal, err := d.Goals.CreateGoal(r.Context(), input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "create_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusCreated, goal)
}

func (d Dependencies) listGoals(w http.ResponseWriter, r *http.Request) {
	category := model.DealerCategory(r.URL.Query().Get("category"))

	goals, err := d.Goals.ListGoals(r.Context(), category)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": goals})
}

func (d Dependencies) updateGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input service.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	goal, err := d.Goals.UpdateGoal(r.Context(), id, input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "update_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, goal)
}

func (d Dependencies) deleteGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := d.Goals.DeleteGoal(r.Context(), id); err != nil {
		WriteError(w, http.StatusInternalServerError, "delete_failed", err.Error(), d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// goalProgress reports one dealer's standing against every goal that applies
// to its category.
func (d Dependencies) goalProgress(w http.ResponseWriter, r *http.Request) {
	dealerID := r.URL.Query().Get("dealerId")

	actor := actorFromContext(r)
	if actor.Role == model.RoleDealer {
		dealerID = actor.DealerID
	}
	if dealerID == "" {
		WriteError(w, http.StatusBadRequest, "invalid_request", "dealerId is required", d.Log)
		return
	}

	dealer, err := d.Dealers.GetDealer(r.Context(), dealerID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Dealer not found", d.Log)
		return
	}
	goals, err := d.Goals.ListGoals(r.Context(), dealer.Category)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), d.Log)
		return
	}
	subs, err := d.Submissions.ListSubmissions(r.Context(), dealerID, "")
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), d.Log)
		return
	}

	progress := dashboard.DealerGoalProgress(*dealer, goals, subs, time.Now().UTC())
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": progress})
}
