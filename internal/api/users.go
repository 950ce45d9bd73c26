package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"dealerhub/internal/auth"
	"dealerhub/internal/model"
	"dealerhub/internal/service"

	"github.com/go-chi/chi/v5"
)

// roleFromContext maps the auth claim onto a domain role
func roleFromContext(r *http.Request) model.Role {
	return model.Role(auth.GetRole(r.Context()))
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d Dependencies) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	user, err := d.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password", d.Log)
			return
		}
		WriteError(w, http.StatusInternalServerError, "login_failed", err.Error(), d.Log)
		return
	}

	dealerID := ""
	if user.DealerID != nil {
		dealerID = *user.DealerID
	}
	token, err := d.JWT.IssueToken(user.ID, string(user.Role), dealerID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "token_failed", err.Error(), d.Log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (d Dependencies) createUser(w http.ResponseWriter, r *http.Request) {
	var input service.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	user, err := d.Users.CreateUser(r.Context(), input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "create_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}

func (d Dependencies) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := d.Users.ListUsers(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": users})
}

func (d Dependencies) changePassword(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input service.ChangePasswordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	if err := d.Users.ChangePassword(r.Context(), id, input); err != nil {
		WriteError(w, http.StatusBadRequest, "update_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (d Dependencies) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := d.Users.DeleteUser(r.Context(), id); err != nil {
		WriteError(w, http.StatusInternalServerError, "delete_failed", err.Error(), d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
