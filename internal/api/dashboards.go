package api

import (
	"encoding/json"
	"net/http"

	"dealerhub/internal/model"
	"dealerhub/internal/service"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) getDashboard(w http.ResponseWriter, r *http.Request) {
	role := roleFromContext(r)

	board, err := d.Dashboards.GetDashboard(r.Context(), role)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, board)
}

func (d Dependencies) createWidget(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Role model.Role `json:"role"`
		service.CreateWidgetInput
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	if body.Role == "" {
		body.Role = roleFromContext(r)
	}

	widget, err := d.Dashboards.CreateWidget(r.Context(), body.Role, body.CreateWidgetInput)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "create_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusCreated, widget)
}

func (d Dependencies) updateWidget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Config model.WidgetConfig `json:"config"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	widget, err := d.Dashboards.UpdateWidgetConfig(r.Context(), id, body.Config)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "update_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, widget)
}

func (d Dependencies) deleteWidget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := d.Dashboards.DeleteWidget(r.Context(), id); err != nil {
		WriteError(w, http.StatusInternalServerError, "delete_failed", err.Error(), d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (d Dependencies) saveLayout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Role   model.Role     `json:"role"`
		Layout []model.Layout `json:"layout"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	if body.Role == "" {
		body.Role = roleFromContext(r)
	}

	if err := d.Dashboards.SaveLayout(r.Context(), body.Role, body.Layout); err != nil {
		WriteError(w, http.StatusInternalServerError, "save_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// widgetData computes a widget's payload, scoped to the calling dealer when
// the caller is one.
func (d Dependencies) widgetData(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	role := roleFromContext(r)

	widgets, err := d.Dashboards.GetDashboard(r.Context(), role)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), d.Log)
		return
	}
	var widget *model.Widget
	for i := range widgets.Widgets {
		if widgets.Widgets[i].ID == id {
			widget = &widgets.Widgets[i]
			break
		}
	}
	if widget == nil {
		WriteError(w, http.StatusNotFound, "not_found", "Widget not found", d.Log)
		return
	}

	var dealer *model.Dealer
	if role == model.RoleDealer {
		dealerID := actorFromContext(r).DealerID
		if dealerID == "" {
			WriteError(w, http.StatusForbidden, "forbidden", "No dealer scope", d.Log)
			return
		}
		dealer, err = d.Dealers.GetDealer(r.Context(), dealerID)
		if err != nil {
			WriteError(w, http.StatusNotFound, "not_found", "Dealer not found", d.Log)
			return
		}
	}

	data, err := d.Dashboards.ComputeWidgetData(r.Context(), widget, dealer)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "compute_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, data)
}
