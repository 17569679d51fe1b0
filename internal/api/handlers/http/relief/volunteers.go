package relief

import (
	"net/http"

	"reliefhub/internal/domain"
	"reliefhub/internal/middleware"
)

func (h *Handler) VolunteerList(w http.ResponseWriter, r *http.Request) {
	volunteers, err := h.Volunteers.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, volunteers)
}

func (h *Handler) VolunteerAvailability(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.AvailabilityRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.Volunteers.SetAvailability(r.Context(), p, id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}
