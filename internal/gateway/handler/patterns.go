package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"amigurumi/internal/gateway/wire"
)

// HandlePatterns serves the saved-pattern collection: GET lists, POST
// compiles and saves.
func (h *Handler) HandlePatterns(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"patterns": h.svc.ListSaved(),
		})
	case http.MethodPost:
		var in struct {
			Name    string              `json:"name"`
			Request wire.CompileRequest `json:"request"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, wire.Error{Code: "bad_json", Message: "invalid json body"})
			return
		}
		rec, err := h.svc.Save(in.Name, in.Request)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// HandlePatternByID serves one saved pattern: GET fetches, DELETE
// removes. The id is the path suffix after /api/patterns/.
func (h *Handler) HandlePatternByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/patterns/")
	id = strings.TrimSpace(strings.Trim(id, "/"))
	if id == "" {
		writeJSON(w, http.StatusBadRequest, wire.Error{Code: "bad_request", Message: "pattern id is required"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		rec, ok := h.svc.Saved(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, wire.Error{Code: "not_found", Message: "no saved pattern with that id"})
			return
		}
		writeJSON(w, http.StatusOK, rec)
	case http.MethodDelete:
		if !h.svc.DeleteSaved(id) {
			writeJSON(w, http.StatusNotFound, wire.Error{Code: "not_found", Message: "no saved pattern with that id"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
