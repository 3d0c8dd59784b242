// Package handler exposes the compiler over HTTP: JSON endpoints for
// validate/compile/export, saved-pattern CRUD, and a websocket channel
// for callers that correlate compile requests by id.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	gatewaycompile "amigurumi/internal/gateway/service/compile"
	"amigurumi/internal/gateway/wire"
	"amigurumi/internal/pattern"
	"amigurumi/internal/profile"
)

type Handler struct {
	svc *gatewaycompile.Service
}

func New(svc *gatewaycompile.Service) *Handler {
	return &Handler{svc: svc}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a compilation error onto the structured wire error.
// Validation failures are the caller's to fix (400); anything else is
// a defect signal and surfaces as 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, profile.ErrTooFewPoints),
		errors.Is(err, profile.ErrNotMonotonic),
		errors.Is(err, profile.ErrOpenPole),
		errors.Is(err, pattern.ErrInvalidConfig):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, wire.AsError(err))
}

func decodeCompileRequest(w http.ResponseWriter, r *http.Request) (wire.CompileRequest, bool) {
	var req wire.CompileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, wire.Error{
			Code:    "bad_json",
			Message: "invalid json body",
		})
		return wire.CompileRequest{}, false
	}
	return req, true
}
