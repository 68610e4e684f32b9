package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"capsection/internal/manufacturing"
	"capsection/pkg/logging"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	cfg := s.source.Config()
	v := s.renderer.View(cfg.Section.Props())
	s.renderHTML(w, r, "page", len(v.Cards), func(buf *bytes.Buffer) error {
		return manufacturing.PageFromView(v, cfg.Page.PageOptions()).Render(buf)
	})
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	v := s.renderer.View(s.source.Config().Section.Props())
	s.renderHTML(w, r, "section", len(v.Cards), func(buf *bytes.Buffer) error {
		return manufacturing.SectionFromView(v).Render(buf)
	})
}

// renderHTML renders into a buffer first so a failed render becomes a 500
// instead of a truncated 200.
func (s *Server) renderHTML(w http.ResponseWriter, r *http.Request, target string, count int, render func(*bytes.Buffer) error) {
	start := time.Now()
	var buf bytes.Buffer
	err := render(&buf)
	s.metrics.RenderDuration.WithLabelValues(target).Observe(time.Since(start).Seconds())
	if err != nil {
		logging.Error("Server", err, "Failed to render %s (request %s)", target, RequestID(r.Context()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "render failed"})
		return
	}
	s.metrics.Capabilities.Set(float64(count))

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	doc, err := s.renderer.View(s.source.Config().Section.Props()).Document()
	if err != nil {
		logging.Error("Server", err, "Failed to build capabilities document (request %s)", RequestID(r.Context()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "render failed"})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

type healthResponse struct {
	Status       string `json:"status"`
	Time         string `json:"time"`
	Capabilities int    `json:"capabilities"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	v := s.renderer.View(s.source.Config().Section.Props())
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "ok",
		Time:         time.Now().UTC().Format(time.RFC3339),
		Capabilities: len(v.Cards),
	})
}

type errorResponse struct {
	Error string `json:"error"`
	Path  string `json:"path,omitempty"`
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found", Path: r.URL.Path})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Warn("Server", "Failed to encode response: %v", err)
	}
}
