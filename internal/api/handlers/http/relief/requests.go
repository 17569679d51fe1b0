package relief

import (
	"log/slog"
	"net/http"

	"reliefhub/internal/domain"
	"reliefhub/internal/middleware"
	"reliefhub/pkg/e"
	"reliefhub/pkg/validator"
)

func (h *Handler) RequestList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("RequestList", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()
	filter := domain.AidRequestFilter{
		Status:  domain.RequestStatus(q.Get("status")),
		Urgency: domain.Urgency(q.Get("urgency")),
	}
	if err := validator.ValidateStruct(filter); err != nil {
		h.handleError(w, r, e.Invalid(err))
		return
	}

	requests, err := h.Requests.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("requests listed", slog.Int("count", len(requests)))
	h.writeJSON(w, http.StatusOK, requests)
}

func (h *Handler) RequestGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	req, err := h.Requests.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, req)
}

func (h *Handler) RequestCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var in domain.CreateAidRequest
	if err := middleware.DecodeJSON(w, r, &in); err != nil {
		h.handleError(w, r, err)
		return
	}

	req, err := h.Requests.Create(r.Context(), p, in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("request created", slog.String("id", req.ID.String()), slog.String("urgency", string(req.Urgency)))
	h.writeJSON(w, http.StatusCreated, req)
}

func (h *Handler) RequestUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var in domain.UpdateAidRequest
	if err := middleware.DecodeJSON(w, r, &in); err != nil {
		h.handleError(w, r, err)
		return
	}

	req, err := h.Requests.Update(r.Context(), id, in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, req)
}

func (h *Handler) RequestAllocate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var in domain.AllocateRequest
	if err := middleware.DecodeJSON(w, r, &in); err != nil {
		h.handleError(w, r, err)
		return
	}

	req, err := h.Allocator.Allocate(r.Context(), id, in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("request allocated", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, req)
}

func (h *Handler) RequestMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	matches, err := h.Requests.Matches(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("matches computed", slog.String("id", id.String()), slog.Int("count", len(matches)))
	h.writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

func (h *Handler) RequestVolunteerMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var in domain.VolunteerMatchRequest
	if r.ContentLength != 0 {
		if err := middleware.DecodeJSON(w, r, &in); err != nil {
			h.handleError(w, r, err)
			return
		}
	}

	matches, err := h.Requests.VolunteerMatches(r.Context(), id, in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

func (h *Handler) AllocationPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Allocator.Plan(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("allocation plan computed", slog.Int("suggestions", len(plan)))
	h.writeJSON(w, http.StatusOK, map[string]any{"allocations": plan})
}
