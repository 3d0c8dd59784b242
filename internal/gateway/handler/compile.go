package handler

import (
	"net/http"
	"strings"
)

// HandleValidate checks a profile and config against the compiler's
// invariants without compiling.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	req, ok := decodeCompileRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Validate(req))
}

// HandleCompile runs the full profile-to-pattern compilation.
func (h *Handler) HandleCompile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	req, ok := decodeCompileRequest(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Compile(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleExport compiles and renders the pattern as plain text. The
// rendered text always comes back; the artifact key is set when an
// object store is configured.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	req, ok := decodeCompileRequest(w, r)
	if !ok {
		return
	}
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		name = "pattern.txt"
	}

	text, key, err := h.svc.Export(r.Context(), req, name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"text":        text,
		"artifactKey": key,
	})
}
