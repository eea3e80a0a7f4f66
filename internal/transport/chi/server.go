package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/campushub/internal/domain"
	"github.com/kailas-cloud/campushub/internal/domain/funding"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
	domlisting "github.com/kailas-cloud/campushub/internal/domain/listing"
	"github.com/kailas-cloud/campushub/internal/domain/member"
	"github.com/kailas-cloud/campushub/internal/domain/mentor"
	"github.com/kailas-cloud/campushub/internal/domain/project"
	logpkg "github.com/kailas-cloud/campushub/internal/logger"
	healthuc "github.com/kailas-cloud/campushub/internal/usecase/health"
	listinguc "github.com/kailas-cloud/campushub/internal/usecase/listing"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Services are the listing services exposed over HTTP. Nil services are not routed.
type Services struct {
	Projects *listinguc.Service[project.Project]
	Members  *listinguc.Service[member.Member]
	Mentors  *listinguc.Service[mentor.Mentor]
	Funding  *listinguc.Service[funding.Opportunity]
}

// Server serves the catalog listing API.
type Server struct {
	catalogs      map[kind.Kind]catalog
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(services Services, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		catalogs: make(map[kind.Kind]catalog, 4),
		health:   health,
		logger:   logger,
	}
	if services.Projects != nil {
		s.catalogs[kind.Projects] = bind(services.Projects, projectToAPI)
	}
	if services.Members != nil {
		s.catalogs[kind.Members] = bind(services.Members, memberToAPI)
	}
	if services.Mentors != nil {
		s.catalogs[kind.Mentors] = bind(services.Mentors, mentorToAPI)
	}
	if services.Funding != nil {
		s.catalogs[kind.Funding] = bind(services.Funding, fundingToAPI)
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrUnknownKind, http.StatusNotFound, ErrorCodeUnknownKind),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrInvalidAction, http.StatusBadRequest, ErrorCodeInvalidAction),
		sentinelHandler(domain.ErrInvalidRecord, http.StatusBadRequest, ErrorCodeBadRequest),
	}
	return s
}

// Register mounts the API routes on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/{kind}", func(r chi.Router) {
		r.Get("/", s.Browse)
		r.Get("/tags", s.Tags)
		r.Post("/filter", s.Filter)
		r.Get("/{id}", s.Get)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "method not allowed")
	})
}

// Browse handles GET /{kind}?q=&tag=.
// q is taken verbatim: whitespace is part of the query.
func (s *Server) Browse(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	params := r.URL.Query()
	state := domlisting.NewState(params.Get("q"), params["tag"]...)

	page, err := c.browse(r.Context(), state)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Tags handles GET /{kind}/tags.
func (s *Server) Tags(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	tags, err := c.tags(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// Get handles GET /{kind}/{id}.
func (s *Server) Get(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	rec, err := c.get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Filter handles POST /{kind}/filter: applies one action to the posted
// filter state and returns the page the resulting state selects.
func (s *Server) Filter(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	next, err := domlisting.Apply(filterFromAPI(req.Filter), domlisting.Action(req.Action), req.Value)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	page, err := c.browse(r.Context(), next)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) catalog(r *http.Request) (catalog, error) {
	k := kind.Kind(chi.URLParam(r, "kind"))
	c, ok := s.catalogs[k]
	if !ok {
		return nil, domain.ErrUnknownKind
	}
	return c, nil
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
		domain.ErrUnknownKind,
		domain.ErrNotFound,
		domain.ErrInvalidAction,
		domain.ErrInvalidRecord,
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

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logpkg.FromContextOr(r.Context(), s.logger)
	logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
