package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"dealerhub/internal/forms"
	"dealerhub/internal/model"
	"dealerhub/internal/service"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) createTemplate(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	tmpl, err := d.Templates.CreateTemplate(r.Context(), input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "create_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusCreated, tmpl)
}

func (d Dependencies) getTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tmpl, err := d.Templates.GetTemplate(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Template not found", d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, tmpl)
}

// listTemplates narrows to published templates for everyone but admins
func (d Dependencies) listTemplates(w http.ResponseWriter, r *http.Request) {
	publishedOnly := roleFromContext(r) != model.RoleAdmin

	templates, err := d.Templates.ListTemplates(r.Context(), publishedOnly)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "query_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": templates})
}

func (d Dependencies) updateTemplateFields(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Fields []model.FormField `json:"fields"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	tmpl, err := d.Templates.UpdateFields(r.Context(), id, body.Fields)
	if err != nil {
		if errors.Is(err, forms.ErrTemplateNotFound) {
			WriteError(w, http.StatusNotFound, "not_found", "Template not found", d.Log)
			return
		}
		WriteError(w, http.StatusBadRequest, "update_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, tmpl)
}

func (d Dependencies) publishTemplate(w http.ResponseWriter, r *http.Request) {
	d.setTemplatePublished(w, r, true)
}

func (d Dependencies) unpublishTemplate(w http.ResponseWriter, r *http.Request) {
	d.setTemplatePublished(w, r, false)
}

func (d Dependencies) setTemplatePublished(w http.ResponseWriter, r *http.Request, published bool) {
	id := chi.URLParam(r, "id")

	tmpl, err := d.Templates.SetPublished(r.Context(), id, published)
	if err != nil {
		if errors.Is(err, forms.ErrTemplateNotFound) {
			WriteError(w, http.StatusNotFound, "not_found", "Template not found", d.Log)
			return
		}
		WriteError(w, http.StatusBadRequest, "update_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, tmpl)
}

func (d Dependencies) archiveTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := d.Templates.Archive(r.Context(), id); err != nil {
		if errors.Is(err, forms.ErrTemplateNotFound) {
			WriteError(w, http.StatusNotFound, "not_found", "Template not found", d.Log)
			return
		}
		WriteError(w, http.StatusInternalServerError, "archive_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "archived"})
}

func (d Dependencies) cloneTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	clone, err := d.Templates.Clone(r.Context(), id)
	if err != nil {
		if errors.Is(err, forms.ErrTemplateNotFound) {
			WriteError(w, http.StatusNotFound, "not_found", "Template not found", d.Log)
			return
		}
		WriteError(w, http.StatusInternalServerError, "clone_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusCreated, clone)
}
