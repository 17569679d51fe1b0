package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"reliefhub/pkg/e"
)

const maxBodyBytes = 1 << 20

// DecodeJSON strictly decodes a single JSON object from the body into dst.
// Unknown fields and trailing data are rejected as invalid input.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return e.Invalid(errors.New("empty body"))
		}
		return e.Invalid(fmt.Errorf("invalid JSON: %w", err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return e.Invalid(errors.New("body must contain a single JSON object"))
	}
	return nil
}
