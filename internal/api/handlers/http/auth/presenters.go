package auth

import (
	"net/http"

	"reliefhub/internal/api/respond"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	respond.Error(w, r, h.log(r), err)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	respond.JSON(w, code, v)
}
