package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
)

const pptxMIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string    `json:"error"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// TemplateResponse is one catalog entry in the templates API response
type TemplateResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	CoverLayout    int    `json:"cover_layout"`
	ContentLayouts []int  `json:"content_layouts"`
}

// handleTemplates returns the template catalog as JSON
func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	templates := s.registry.List()

	response := make([]TemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		response = append(response, TemplateResponse{
			ID:             tpl.ID,
			Name:           tpl.Name,
			Description:    tpl.Description,
			CoverLayout:    tpl.CoverLayout,
			ContentLayouts: tpl.ContentLayouts,
		})
	}

	s.writeJSON(w, response)
}

// handleOutline generates a title and outline draft for a keyword
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.handleError(w, err, http.StatusBadRequest)
		return
	}

	keyword := strings.TrimSpace(r.PostFormValue("keyword"))
	if keyword == "" {
		s.handleError(w, fmt.Errorf("missing keyword field"), http.StatusBadRequest)
		return
	}

	draft, err := s.drafting.Draft(r.Context(), keyword)
	if err != nil {
		s.handleServiceError(w, err)
		return
	}

	s.writeJSON(w, draft)
}

// handleGenerate builds a deck from an edited title and outline. Unknown
// template ids are rejected here, before any generation work; the registry
// fallback below this layer only covers internal callers.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.handleError(w, err, http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.PostFormValue("title"))
	content := r.PostFormValue("content")
	templateID := r.PostFormValue("template")
	if templateID == "" {
		templateID = "default"
	}

	if title == "" {
		s.handleError(w, fmt.Errorf("missing title field"), http.StatusBadRequest)
		return
	}

	if !s.registry.Has(templateID) {
		s.handleError(w, fmt.Errorf("%w: %s", entities.ErrUnknownTemplate, templateID), http.StatusBadRequest)
		return
	}

	artifact, err := s.generation.Generate(r.Context(), title, content, templateID)
	if err != nil {
		s.handleServiceError(w, err)
		return
	}

	s.writeJSON(w, artifact)
}

// handleDownload serves a previously generated deck by name
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	path, err := s.store.Resolve(filename)
	if err != nil {
		s.handleError(w, err, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", pptxMIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))

	http.ServeFile(w, r, path)
}

// handleHealth returns a liveness response
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// fallbackIndex is served when no assets directory is configured
const fallbackIndex = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>promptdeck</title></head>
<body>
<h1>promptdeck</h1>
<p>The generation API is running. Endpoints:</p>
<ul>
<li>GET /api/templates</li>
<li>POST /api/outline (form: keyword)</li>
<li>POST /api/generate (form: title, content, template)</li>
<li>GET /download/{filename}</li>
</ul>
</body>
</html>
`

// handleIndex serves the frontend page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.mu.RLock()
	assetsDir := s.assetsDir
	s.mu.RUnlock()

	if assetsDir != "" {
		index := filepath.Join(assetsDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			http.ServeFile(w, r, index)
			return
		}
		s.logger.Warn("Assets dir %s has no index.html, serving fallback page", assetsDir)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(fallbackIndex)); err != nil {
		s.logger.Error("Failed to write index response: %v", err)
	}
}

// handleServiceError maps domain error kinds to HTTP statuses
func (s *Server) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case entities.IsConfigurationError(err):
		s.handleError(w, err, http.StatusInternalServerError)
	case entities.IsUpstreamError(err):
		s.handleError(w, err, http.StatusBadGateway)
	default:
		s.handleError(w, err, http.StatusInternalServerError)
	}
}

// handleError handles error responses with sanitized messages
func (s *Server) handleError(w http.ResponseWriter, err error, status int) {
	// Sanitize the client-facing message to prevent information disclosure
	var message string
	switch status {
	case http.StatusBadRequest:
		message = "Invalid request"
	case http.StatusNotFound:
		message = "Resource not found"
	case http.StatusTooManyRequests:
		message = "Too many requests"
	case http.StatusBadGateway:
		message = "Generation service unavailable"
	case http.StatusInternalServerError:
		message = "Internal server error"
	default:
		message = "An error occurred"
	}

	// Log the actual error for debugging (server-side only)
	s.logger.Error("HTTP error (status %d): %v", status, err)

	response := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Time:    time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		s.logger.Error("Failed to encode error response: %v", encodeErr)
	}
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode JSON response: %v", err)
	}
}
