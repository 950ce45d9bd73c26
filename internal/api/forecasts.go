package api

import (
	"encoding/json"
	"net/http"

	"dealerhub/internal/model"
	"dealerhub/internal/service"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) createForecast(w http.ResponseWriter, r *http.Request) {
	var input service.ForecastInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	// Dealers forecast for themselves
	actor := actorFromContext(r)
	if actor.Role == model.RoleDealer {
		input.DealerID = actor.DealerID
	}

	forecast, err := d.Forecasts.CreateForecast(r.Context(), input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "create_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusCreated, forecast)
}

func (d Dependencies) listForecasts(w http.ResponseWriter, r *http.Request) {
	dealerID := r.URL.Query().Get("dealerId")

	actor := actorFromContext(r)
	if actor.Role == model.RoleDealer {
		dealerID = actor.DealerID
	}

	forecasts, err := d.Forecasts.ListForecasts(r.Context(), dealerID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": forecasts})
}

func (d Dependencies) updateForecastActuals(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input service.UpdateActualsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	forecast, err := d.Forecasts.UpdateActuals(r.Context(), id, input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "update_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, forecast)
}

func (d Dependencies) deleteForecast(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := d.Forecasts.DeleteForecast(r.Context(), id); err != nil {
		WriteError(w, http.StatusInternalServerError, "delete_failed", err.Error(), d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (d Dependencies) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := d.Forecasts.ListProducts(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": products})
}
