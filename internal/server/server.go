// Package server exposes the projection engine over HTTP using fasthttp.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/lifeplan/planner/internal/calculation"
	"github.com/lifeplan/planner/internal/config"
	"github.com/lifeplan/planner/internal/domain"
	"github.com/lifeplan/planner/internal/store"
)

// MaxCompareScenarios bounds a single comparison request.
const MaxCompareScenarios = 10

const sessionScenarioPrefix = "/v1/session/scenarios/"

// Server routes API requests to the calculation engine and the session store.
type Server struct {
	engine   *calculation.CalculationEngine
	parser   *config.InputParser
	sessions *store.SessionStore
	logger   calculation.Logger
}

// New creates a server around an engine. A nil logger disables request logging.
func New(engine *calculation.CalculationEngine, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{
		engine:   engine,
		parser:   config.NewInputParser(),
		sessions: store.NewSessionStore(),
		logger:   logger,
	}
}

// Sessions exposes the scenario store backing the /v1/session endpoints.
func (s *Server) Sessions() *store.SessionStore { return s.sessions }

type route struct {
	method string
	handle fasthttp.RequestHandler
}

func (s *Server) routes() map[string]route {
	return map[string]route{
		"/healthz":              {fasthttp.MethodGet, s.handleHealth},
		"/v1/projection":        {fasthttp.MethodPost, s.handleProjection},
		"/v1/metrics":           {fasthttp.MethodPost, s.handleMetrics},
		"/v1/compare":           {fasthttp.MethodPost, s.handleCompare},
		"/v1/scenarios/default": {fasthttp.MethodGet, s.handleDefaultScenario},
		"/v1/session/profile":   {"", s.handleSessionProfile},
		"/v1/session/scenarios": {"", s.handleSessionScenarios},
		"/v1/session/compare":   {fasthttp.MethodPost, s.handleSessionCompare},
	}
}

// Handler returns the fasthttp request handler for the API.
func (s *Server) Handler() fasthttp.RequestHandler {
	routes := s.routes()
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		path := string(ctx.Path())

		r, ok := routes[path]
		switch {
		case ok && r.method != "" && string(ctx.Method()) != r.method:
			ctx.Response.Header.Set("Allow", r.method)
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		case ok:
			r.handle(ctx)
		case strings.HasPrefix(path, sessionScenarioPrefix) && len(path) > len(sessionScenarioPrefix):
			s.handleSessionScenario(ctx, strings.TrimPrefix(path, sessionScenarioPrefix))
		default:
			writeError(ctx, fasthttp.StatusNotFound, "not found: "+path)
		}

		s.logger.Debugf("%s %s -> %d (%s)", ctx.Method(), path, ctx.Response.StatusCode(), time.Since(start).Round(time.Microsecond))
	}
}

// Serve handles connections from ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "lifeplan",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	}
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	s.logger.Infof("lifeplan API listening on %s", ln.Addr())
	return s.Serve(ctx, ln)
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDefaultScenario(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, config.DefaultScenario())
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	var req ProjectionRequest
	if !s.decodeProjectionRequest(ctx, &req) {
		return
	}
	projection, err := calculation.ProjectWith(s.assumptions(req.Assumptions), &req.Scenario, req.Profile.Age)
	if err != nil {
		writeFailure(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, ProjectionResponse{Projection: projection})
}

func (s *Server) handleMetrics(ctx *fasthttp.RequestCtx) {
	var req ProjectionRequest
	if !s.decodeProjectionRequest(ctx, &req) {
		return
	}
	assumptions := s.assumptions(req.Assumptions)
	projection, err := calculation.ProjectWith(assumptions, &req.Scenario, req.Profile.Age)
	if err != nil {
		writeFailure(ctx, err)
		return
	}
	metrics, err := calculation.DeriveMetricsWith(assumptions, projection, &req.Scenario)
	if err != nil {
		writeFailure(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, MetricsResponse{Projection: projection, Metrics: metrics})
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	var req CompareRequest
	if !decodeBody(ctx, &req) {
		return
	}
	cfg := &domain.Configuration{Profile: req.Profile, Assumptions: req.Assumptions, Scenarios: req.Scenarios}
	s.compare(ctx, cfg, s.parser.ValidateConfiguration)
}

func (s *Server) compare(ctx *fasthttp.RequestCtx, cfg *domain.Configuration, validate func(*domain.Configuration) error) {
	if len(cfg.Scenarios) > MaxCompareScenarios {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("at most %d scenarios can be compared", MaxCompareScenarios))
		return
	}
	if err := validate(cfg); err != nil {
		writeFailure(ctx, err)
		return
	}
	engine := s.engine
	if cfg.Assumptions != nil {
		engine = calculation.NewCalculationEngineWithAssumptions(cfg.Assumptions.Apply(s.engine.Assumptions))
		engine.Debug = s.engine.Debug
		engine.SetLogger(s.engine.Logger)
	}
	// Runs are short and CPU bound; they are not tied to the connection.
	comparison, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		writeFailure(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, comparison)
}

func (s *Server) handleSessionProfile(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Method()) {
	case fasthttp.MethodGet:
		profile, ok := s.sessions.Profile()
		if !ok {
			writeError(ctx, fasthttp.StatusNotFound, "no profile in session")
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, profile)
	case fasthttp.MethodPut:
		var profile domain.Profile
		if !decodeBody(ctx, &profile) {
			return
		}
		if err := s.parser.ValidateProfile(&profile); err != nil {
			writeFailure(ctx, err)
			return
		}
		s.sessions.SetProfile(profile)
		writeJSON(ctx, fasthttp.StatusOK, profile)
	default:
		ctx.Response.Header.Set("Allow", "GET, PUT")
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleSessionScenarios(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Method()) {
	case fasthttp.MethodGet:
		writeJSON(ctx, fasthttp.StatusOK, s.sessions.Scenarios())
	case fasthttp.MethodPost:
		var scenario domain.Scenario
		if !decodeBody(ctx, &scenario) {
			return
		}
		if err := s.parser.ValidateScenario(&scenario); err != nil {
			writeFailure(ctx, err)
			return
		}
		writeJSON(ctx, fasthttp.StatusCreated, s.sessions.SaveScenario(scenario))
	default:
		ctx.Response.Header.Set("Allow", "GET, POST")
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleSessionScenario(ctx *fasthttp.RequestCtx, id string) {
	switch string(ctx.Method()) {
	case fasthttp.MethodGet:
		scenario, err := s.sessions.Scenario(id)
		if err != nil {
			writeFailure(ctx, err)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, scenario)
	case fasthttp.MethodDelete:
		if err := s.sessions.DeleteScenario(id); err != nil {
			writeFailure(ctx, err)
			return
		}
		ctx.SetStatusCode(fasthttp.StatusNoContent)
	default:
		ctx.Response.Header.Set("Allow", "GET, DELETE")
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleSessionCompare(ctx *fasthttp.RequestCtx) {
	var req SelectRequest
	if len(ctx.PostBody()) > 0 && !decodeBody(ctx, &req) {
		return
	}
	cfg, err := s.sessions.Configuration(req.IDs...)
	if err != nil {
		writeFailure(ctx, err)
		return
	}
	// Session scenarios are keyed by ID, so repeated names are allowed here.
	s.compare(ctx, cfg, s.parser.ValidateComparison)
}

func (s *Server) decodeProjectionRequest(ctx *fasthttp.RequestCtx, req *ProjectionRequest) bool {
	if !decodeBody(ctx, req) {
		return false
	}
	if err := s.parser.ValidateProfile(&req.Profile); err != nil {
		writeFailure(ctx, err)
		return false
	}
	if err := s.parser.ValidateScenario(&req.Scenario); err != nil {
		writeFailure(ctx, err)
		return false
	}
	if req.Assumptions != nil {
		if err := s.parser.ValidateAssumptions(req.Assumptions); err != nil {
			writeFailure(ctx, err)
			return false
		}
	}
	return true
}

func (s *Server) assumptions(override *domain.AssumptionOverrides) domain.Assumptions {
	return override.Apply(s.engine.Assumptions)
}

func decodeBody(ctx *fasthttp.RequestCtx, v any) bool {
	body := ctx.PostBody()
	if len(body) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "request body is required")
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// writeFailure maps domain errors to HTTP statuses.
func writeFailure(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, domain.ErrScenarioNotFound):
		writeError(ctx, fasthttp.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidConfiguration), errors.Is(err, domain.ErrEmptyProjection):
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
	default:
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "encoding response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
