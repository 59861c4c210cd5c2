package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/josephgoksu/langgpt-assistant/internal/mcp"
	"github.com/josephgoksu/langgpt-assistant/models"
)

const maxBodyBytes = 1 << 20

// handleGenerate
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerationRequest
	if !s.decode(w, r, &req) {
		return
	}
	resp := s.svc.Generate(r.Context(), req)
	if !resp.Success {
		writeAPIError(w, http.StatusInternalServerError, "failed to generate prompt")
		return
	}
	writeAPIJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    OperationResult{Response: resp, Text: mcp.FormatGeneration(resp)},
	})
}

// handleAnalyze
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if !s.decode(w, r, &req) {
		return
	}
	resp := s.svc.Analyze(r.Context(), req)
	if !resp.Success {
		writeAPIError(w, http.StatusInternalServerError, "failed to analyze prompt")
		return
	}
	writeAPIJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    OperationResult{Response: resp, Text: mcp.FormatAnalysis(resp)},
	})
}

// handleOptimize
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req models.OptimizationRequest
	if !s.decode(w, r, &req) {
		return
	}
	resp := s.svc.Optimize(r.Context(), req)
	if !resp.Success {
		writeAPIError(w, http.StatusInternalServerError, "failed to optimize prompt")
		return
	}
	writeAPIJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    OperationResult{Response: resp, Text: mcp.FormatOptimization(resp)},
	})
}

// handleTemplates lists the predefined roles for the browser UI.
func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	templates := []TemplateInfo{}
	if catalog := s.svc.Catalog(); catalog != nil {
		for _, e := range catalog.Entries("") {
			templates = append(templates, TemplateInfo{
				ID:          e.Group,
				Name:        e.Role.Name,
				Description: e.Summary,
				Icon:        e.Icon,
				Category:    e.Group,
			})
		}
	}
	writeAPIJSON(w, http.StatusOK, APIResponse{Success: true, Data: templates})
}

// handleHealth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeAPIJSON(w, http.StatusOK, HealthResponse{
		Success:      true,
		Status:       "healthy",
		MCPConnected: s.mcp != nil,
		Timestamp:    s.now().UTC().Format(time.RFC3339),
	})
}

// decode reads and validates a JSON body into dst. On failure it writes a 400
// and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeAPIError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeAPIError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	if err := models.ValidateStruct(dst); err != nil {
		s.log.DebugContext(r.Context(), "request rejected", "path", r.URL.Path, "error", err)
		writeAPIError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func writeAPIError(w http.ResponseWriter, status int, msg string) {
	writeAPIJSON(w, status, APIResponse{Success: false, Error: msg})
}

func writeAPIJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
