// Package chi is the HTTP transport: route registration, request decoding,
// and the domain-error to status-code mapping.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
	comparisonuc "github.com/vinoteca-cloud/sommelier/internal/usecase/comparison"
	healthuc "github.com/vinoteca-cloud/sommelier/internal/usecase/health"
	profileuc "github.com/vinoteca-cloud/sommelier/internal/usecase/profile"
	wineuc "github.com/vinoteca-cloud/sommelier/internal/usecase/wine"
)

// ErrorCode identifies an error class for API clients.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest            ErrorCode = "bad_request"
	CodeWineNotFound          ErrorCode = "wine_not_found"
	CodeSameWine              ErrorCode = "same_wine"
	CodeInvalidLanguage       ErrorCode = "invalid_language"
	CodeGenerationUnavailable ErrorCode = "generation_unavailable"
	CodeGenerationFailed      ErrorCode = "generation_failed"
	CodeInternalError         ErrorCode = "internal_error"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server hosts the HTTP handlers.
type Server struct {
	wines         *wineuc.Service
	profiles      *profileuc.Service
	comparisons   *comparisonuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	wines *wineuc.Service,
	profiles *profileuc.Service,
	comparisons *comparisonuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		wines:       wines,
		profiles:    profiles,
		comparisons: comparisons,
		health:      health,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrWineNotFound, http.StatusNotFound, CodeWineNotFound),
		sentinelHandler(domain.ErrSameWine, http.StatusBadRequest, CodeSameWine),
		sentinelHandler(domain.ErrInvalidLanguage, http.StatusBadRequest, CodeInvalidLanguage),
		sentinelHandler(domain.ErrGenerationUnavailable,
			http.StatusServiceUnavailable, CodeGenerationUnavailable),
		sentinelHandler(domain.ErrProviderRejected, http.StatusBadGateway, CodeGenerationFailed),
		sentinelHandler(domain.ErrGenerationExhausted, http.StatusBadGateway, CodeGenerationFailed),
		sentinelHandler(domain.ErrMalformedResponse, http.StatusBadGateway, CodeGenerationFailed),
	}
	return s
}

// RegisterRoutes mounts every handler on the router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/wines", func(r chi.Router) {
		r.Get("/", s.ListWines)
		r.Route("/{wineId}", func(r chi.Router) {
			r.Get("/", s.GetWine)

			r.Get("/profile", s.GetProfile)
			r.Post("/profile/regenerate", s.RegenerateProfile)
			r.Get("/profile/status", s.GetProfileStatus)

			r.Route("/compare/{otherWineId}", func(r chi.Router) {
				r.Get("/", s.GetComparison)
				r.Post("/regenerate", s.RegenerateComparison)
				r.Get("/status", s.GetComparisonStatus)
			})
		})
	})

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// ListWines handles GET /api/v1/wines.
func (s *Server) ListWines(w http.ResponseWriter, r *http.Request) {
	wines, err := s.wines.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]wineResponse, len(wines))
	for i, wn := range wines {
		items[i] = wineToResponse(wn)
	}

	writeJSON(w, http.StatusOK, wineListResponse{Items: items, Total: len(items)})
}

// GetWine handles GET /api/v1/wines/{wineId}.
func (s *Server) GetWine(w http.ResponseWriter, r *http.Request) {
	wineID, ok := wineIDParam(w, r, "wineId")
	if !ok {
		return
	}

	wine, err := s.wines.Get(r.Context(), wineID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, wineToResponse(wine))
}

// GetProfile handles GET /api/v1/wines/{wineId}/profile.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	wineID, ok := wineIDParam(w, r, "wineId")
	if !ok {
		return
	}

	p, cached, err := s.profiles.GetOrGenerate(r.Context(), wineID, languageParam(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	setCacheHeader(w, cached)
	writeJSON(w, http.StatusOK, p)
}

// RegenerateProfile handles POST /api/v1/wines/{wineId}/profile/regenerate.
func (s *Server) RegenerateProfile(w http.ResponseWriter, r *http.Request) {
	wineID, ok := wineIDParam(w, r, "wineId")
	if !ok {
		return
	}

	p, err := s.profiles.Regenerate(r.Context(), wineID, languageParam(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	setCacheHeader(w, false)
	writeJSON(w, http.StatusOK, p)
}

// GetProfileStatus handles GET /api/v1/wines/{wineId}/profile/status.
func (s *Server) GetProfileStatus(w http.ResponseWriter, r *http.Request) {
	wineID, ok := wineIDParam(w, r, "wineId")
	if !ok {
		return
	}

	status, err := s.profiles.CacheStatus(r.Context(), wineID, languageParam(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// GetComparison handles GET /api/v1/wines/{wineId}/compare/{otherWineId}.
func (s *Server) GetComparison(w http.ResponseWriter, r *http.Request) {
	wineID, ok := wineIDParam(w, r, "wineId")
	if !ok {
		return
	}
	otherID, ok := wineIDParam(w, r, "otherWineId")
	if !ok {
		return
	}

	c, cached, err := s.comparisons.GetOrGenerate(r.Context(), wineID, otherID, languageParam(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	setCacheHeader(w, cached)
	writeJSON(w, http.StatusOK, c)
}

// RegenerateComparison handles POST /api/v1/wines/{wineId}/compare/{otherWineId}/regenerate.
func (s *Server) RegenerateComparison(w http.ResponseWriter, r *http.Request) {
	wineID, ok := wineIDParam(w, r, "wineId")
	if !ok {
		return
	}
	otherID, ok := wineIDParam(w, r, "otherWineId")
	if !ok {
		return
	}

	c, err := s.comparisons.Regenerate(r.Context(), wineID, otherID, languageParam(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	setCacheHeader(w, false)
	writeJSON(w, http.StatusOK, c)
}

// GetComparisonStatus handles GET /api/v1/wines/{wineId}/compare/{otherWineId}/status.
func (s *Server) GetComparisonStatus(w http.ResponseWriter, r *http.Request) {
	wineID, ok := wineIDParam(w, r, "wineId")
	if !ok {
		return
	}
	otherID, ok := wineIDParam(w, r, "otherWineId")
	if !ok {
		return
	}

	status, err := s.comparisons.CacheStatus(r.Context(), wineID, otherID, languageParam(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// wineIDParam parses a UUID path parameter, writing a 400 on failure.
func wineIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid wine id: "+raw)
		return uuid.UUID{}, false
	}
	return id, true
}

// languageParam reads the optional language query parameter. Validation and
// defaulting happen in the usecase.
func languageParam(r *http.Request) string {
	return r.URL.Query().Get("language")
}

// setCacheHeader reports whether the narrative was served from cache.
func setCacheHeader(w http.ResponseWriter, cached bool) {
	if cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrWineNotFound,
		domain.ErrRecordNotFound,
		domain.ErrSameWine,
		domain.ErrInvalidLanguage,
		domain.ErrGenerationUnavailable,
		domain.ErrProviderRejected,
		domain.ErrGenerationExhausted,
		domain.ErrMalformedResponse,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
