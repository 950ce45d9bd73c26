package api

import (
	"encoding/json"
	"net/http"

	"dealerhub/internal/service"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) createDealer(w http.ResponseWriter, r *http.Request) {
	var input service.DealerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	dealer, err := d.Dealers.CreateDealer(r.Context(), input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "create_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusCreated, dealer)
}

func (d Dependencies) getDealer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dealer, err := d.Dealers.GetDealer(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Dealer not found", d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, dealer)
}

func (d Dependencies) listDealers(w http.ResponseWriter, r *http.Request) {
	dealers, err := d.Dealers.ListDealers(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": dealers})
}

func (d Dependencies) updateDealer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input service.DealerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	dealer, err := d.Dealers.UpdateDealer(r.Context(), id, input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "update_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, dealer)
}

func (d Dependencies) deleteDealer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := d.Dealers.DeleteDealer(r.Context(), id); err != nil {
		WriteError(w, http.StatusInternalServerError, "delete_failed", err.Error(), d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
