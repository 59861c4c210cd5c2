package server

import "net/http"

// registerRoutes sets up all endpoints and the middleware around them.
func (s *Server) registerRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/generate-prompt", s.handleGenerate)
	mux.HandleFunc("POST /api/analyze-prompt", s.handleAnalyze)
	mux.HandleFunc("POST /api/optimize-prompt", s.handleOptimize)
	mux.HandleFunc("GET /api/templates", s.handleTemplates)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())
	if s.mcp != nil {
		mux.Handle("/mcp", s.mcp)
	}
	mux.Handle("GET /", http.FileServerFS(s.static))

	return chain(mux,
		requestID,
		accessLog(s.log),
		s.corsMiddleware,
		s.metrics.instrument,
	)
}
