package relief

import (
	"log/slog"
	"net/http"

	"reliefhub/internal/domain"
	"reliefhub/internal/middleware"
	"reliefhub/pkg/e"
	"reliefhub/pkg/validator"
)

func (h *Handler) ResourceList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ResourceList", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()
	filter := domain.ResourceFilter{
		Type:   q.Get("type"),
		Status: domain.ResourceStatus(q.Get("status")),
	}
	if err := validator.ValidateStruct(filter); err != nil {
		h.handleError(w, r, e.Invalid(err))
		return
	}

	resources, err := h.Resources.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("resources listed", slog.Int("count", len(resources)))
	h.writeJSON(w, http.StatusOK, resources)
}

func (h *Handler) ResourceGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	res, err := h.Resources.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) ResourceCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req domain.CreateResourceRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.Resources.Create(r.Context(), p, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("resource created", slog.String("id", res.ID.String()))
	h.writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) ResourceUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateResourceRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.Resources.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) ResourceDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Resources.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("resource deleted", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Resource deleted successfully"})
}
