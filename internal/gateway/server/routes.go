package server

import (
	"net/http"

	"amigurumi/internal/gateway/handler"
	"amigurumi/internal/gateway/middleware"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/validate", h.HandleValidate)
	mux.HandleFunc("/api/compile", h.HandleCompile)
	mux.HandleFunc("/api/compile/ws", h.HandleCompileWS)
	mux.HandleFunc("/api/export", h.HandleExport)
	mux.HandleFunc("/api/patterns", h.HandlePatterns)
	mux.HandleFunc("/api/patterns/", h.HandlePatternByID)

	return middleware.CORS(mux)
}
