// Package server exposes the catalog over HTTP: the generated playlist and
// guide documents plus a JSON admin API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"m3u_manager/internal/domain"
	"m3u_manager/internal/output"
	"m3u_manager/internal/service"
)

type Server struct {
	admin   *service.AdminService
	output  *output.Service
	addr    string
	baseURL string
	logger  *slog.Logger
	mux     *http.ServeMux
}

func New(admin *service.AdminService, out *output.Service, addr, baseURL string, logger *slog.Logger) *Server {
	s := &Server{
		admin:   admin,
		output:  out,
		addr:    addr,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		mux:     http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /playlist.m3u", s.handlePlaylist)
	s.mux.HandleFunc("GET /epg.xml", s.handleEpgXML)

	s.mux.HandleFunc("GET /api/health", s.handleHealth)

	// Sources
	s.mux.HandleFunc("GET /api/sources", s.handleListSources)
	s.mux.HandleFunc("POST /api/sources", s.handleAddSource)
	s.mux.HandleFunc("DELETE /api/sources/{id}", s.handleDeleteSource)
	s.mux.HandleFunc("POST /api/sources/{id}/toggle", s.handleToggleSource)
	s.mux.HandleFunc("PATCH /api/sources/{id}/interval", s.handleUpdateSourceInterval)
	s.mux.HandleFunc("POST /api/sources/{id}/refresh", s.handleRefreshSource)

	// Filters
	s.mux.HandleFunc("GET /api/filters", s.handleListFilters)
	s.mux.HandleFunc("POST /api/filters", s.handleAddFilter)
	s.mux.HandleFunc("DELETE /api/filters/{id}", s.handleDeleteFilter)
	s.mux.HandleFunc("POST /api/filters/{id}/toggle", s.handleToggleFilter)

	// Channels
	s.mux.HandleFunc("GET /api/channels", s.handleListChannels)
	s.mux.HandleFunc("PATCH /api/channels/{id}/enabled", s.handleSetChannelEnabled)
	s.mux.HandleFunc("POST /api/channels/bulk-enable", s.handleBulkSetChannels)
	s.mux.HandleFunc("POST /api/channels/disable-all", s.handleDisableAllChannels)

	// Synchronization
	s.mux.HandleFunc("POST /api/sync", s.handleResynchronize)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server and blocks until ctx is cancelled or
// the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.addr,
		Handler:      s.withLogging(s),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown", "error", err)
		}
	}()

	s.logger.Info("http server listening", "addr", s.addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

// --- output handlers ---

func (s *Server) handlePlaylist(w http.ResponseWriter, r *http.Request) {
	epgURL := ""
	if s.baseURL != "" {
		epgURL = s.baseURL + "/epg.xml"
	}
	playlist, err := s.output.Playlist(r.Context(), epgURL)
	if err != nil {
		s.writeErr(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.apple.mpegurl; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="playlist.m3u"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(playlist))
}

func (s *Server) handleEpgXML(w http.ResponseWriter, r *http.Request) {
	doc, err := s.output.EpgXML(r.Context(), time.Now().UTC())
	if err != nil {
		s.writeErr(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- source handlers ---

func (s *Server) handleListSources(w http.ResponseWriter, r *http.Request) {
	sources, err := s.admin.ListSources(r.Context())
	if err != nil {
		s.writeErr(w, http.StatusInternalServerError, err)
		return
	}
	if sources == nil {
		sources = []domain.Source{}
	}
	s.writeJSON(w, http.StatusOK, sources)
}

type addSourceRequest struct {
	Kind          string `json:"kind"`
	URL           string `json:"url"`
	IntervalHours int    `json:"refresh_interval_hours"`
}

func (s *Server) handleAddSource(w http.ResponseWriter, r *http.Request) {
	var req addSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}
	kind := domain.SourceKind(req.Kind)
	if kind != domain.SourceM3U && kind != domain.SourceEPG {
		s.writeErr(w, http.StatusBadRequest, fmt.Errorf("kind must be %q or %q", domain.SourceM3U, domain.SourceEPG))
		return
	}
	if u, err := url.ParseRequestURI(req.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		s.writeErr(w, http.StatusBadRequest, fmt.Errorf("url must be a valid http or https URL"))
		return
	}

	src, err := s.admin.AddSource(r.Context(), kind, req.URL, req.IntervalHours)
	if err != nil {
		s.writeDomainErr(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, src)
}

func (s *Server) handleDeleteSource(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.writeErr(w, http.StatusBadRequest, err)
		return
	}
	if err := s.admin.DeleteSource(r.Context(), id); err != nil {
		s.writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleSource(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.writeErr(w, http.StatusBadRequest, err)
		return
	}
	src, err := s.admin.ToggleSource(r.Context(), id)
	if err != nil {
		s.writeDomainErr(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, src)
}

type updateIntervalRequest struct {
	IntervalHours int `json:"refresh_interval_hours"`
}

func (s *Server) handleUpdateSourceInterval(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.writeErr(w, http.StatusBadRequest, err)
		return
	}
	var req updateIntervalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}
	if req.IntervalHours < 1 {
		s.writeErr(w, http.StatusBadRequest, fmt.Errorf("refresh_interval_hours must be at least 1"))
		return
	}
	if err := s.admin.UpdateSourceInterval(r.Context(), id, req.IntervalHours); err != nil {
		s.writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRefreshSource(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.writeErr(w, http.StatusBadRequest, err)
		return
	}
	if err := s.admin.RefreshSource(r.Context(), id); err != nil {
		s.writeDomainErr(w, err)
		return
	}
	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "refresh scheduled"})
}

// --- filter handlers ---

func (s *Server) handleListFilters(w http.ResponseWriter, r *http.Request) {
	filters, err := s.admin.ListFilters(r.Context())
	if err != nil {
		s.writeErr(w, http.StatusInternalServerError, err)
		return
	}
	if filters == nil {
		filters = []domain.Filter{}
	}
	s.writeJSON(w, http.StatusOK, filters)
}

type addFilterRequest struct {
	Pattern     string `json:"pattern"`
	Description string `json:"description"`
	Enabled     *bool  `json:"enabled"`
}

func (s *Server) handleAddFilter(w http.ResponseWriter, r *http.Request) {
	var req addFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}
	if req.Pattern == "" {
		s.writeErr(w, http.StatusBadRequest, fmt.Errorf("pattern is required"))
		return
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	f, err := s.admin.AddFilter(r.Context(), req.Pattern, req.Description, enabled)
	if err != nil {
		s.writeDomainErr(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, f)
}

func (s *Server) handleDeleteFilter(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.writeErr(w, http.StatusBadRequest, err)
		return
	}
	if err := s.admin.DeleteFilter(r.Context(), id); err != nil {
		s.writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleFilter(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.writeErr(w, http.StatusBadRequest, err)
		return
	}
	f, err := s.admin.ToggleFilter(r.Context(), id)
	if err != nil {
		s.writeDomainErr(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, f)
}

// --- channel handlers ---

func (s *Server) handleListChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := s.admin.ListChannels(r.Context())
	if err != nil {
		s.writeErr(w, http.StatusInternalServerError, err)
		return
	}
	if channels == nil {
		channels = []*domain.Channel{}
	}
	s.writeJSON(w, http.StatusOK, channels)
}

type setEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

func (s *Server) handleSetChannelEnabled(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.writeErr(w, http.StatusBadRequest, err)
		return
	}
	var req setEnabledRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}
	if err := s.admin.SetChannelEnabled(r.Context(), id, req.Enabled); err != nil {
		s.writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type bulkSetRequest struct {
	IDs     []int64 `json:"ids"`
	Enabled bool    `json:"enabled"`
}

func (s *Server) handleBulkSetChannels(w http.ResponseWriter, r *http.Request) {
	var req bulkSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}
	updated, err := s.admin.BulkSetChannelsEnabled(r.Context(), req.IDs, req.Enabled)
	if err != nil {
		s.writeDomainErr(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int64{"updated": updated})
}

func (s *Server) handleDisableAllChannels(w http.ResponseWriter, r *http.Request) {
	updated, err := s.admin.DisableAllChannels(r.Context())
	if err != nil {
		s.writeErr(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int64{"updated": updated})
}

func (s *Server) handleResynchronize(w http.ResponseWriter, r *http.Request) {
	if err := s.admin.Resynchronize(r.Context()); err != nil {
		s.writeErr(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "synchronization scheduled"})
}

// --- helpers ---

// APIError is the error envelope for all error responses.
type APIError struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func parseID(r *http.Request, param string) (int64, error) {
	v := r.PathValue(param)
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", param, v)
	}
	return id, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

func (s *Server) writeErr(w http.ResponseWriter, status int, err error) {
	if status >= 500 {
		s.logger.Error("request failed", "status", status, "error", err)
	}
	s.writeJSON(w, status, APIError{
		Status: status,
		Error:  http.StatusText(status),
		Detail: err.Error(),
	})
}

// writeDomainErr maps catalog sentinel errors onto HTTP statuses.
func (s *Server) writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSourceNotFound),
		errors.Is(err, domain.ErrChannelNotFound),
		errors.Is(err, domain.ErrFilterNotFound):
		s.writeErr(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrDuplicateURL),
		errors.Is(err, domain.ErrDuplicatePattern):
		s.writeErr(w, http.StatusConflict, err)
	case errors.Is(err, domain.ErrInvalidPattern),
		errors.Is(err, domain.ErrSourceDisabled):
		s.writeErr(w, http.StatusUnprocessableEntity, err)
	default:
		s.writeErr(w, http.StatusInternalServerError, err)
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
		)
	})
}
