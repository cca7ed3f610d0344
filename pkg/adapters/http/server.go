package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/transducer"
	"github.com/aretw0/transducer/internal/logging"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request correlation ID in both directions.
const RequestIDHeader = "X-Request-ID"

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 1 << 20

// TransduceRequest is the body of POST /generate and POST /analyze.
// Exactly one of Input and Inputs must be set.
type TransduceRequest struct {
	Input  *string  `json:"input,omitempty"`
	Inputs []string `json:"inputs,omitempty"`
}

// Result is the outcome for one input.
type Result struct {
	Input   string   `json:"input"`
	Outputs []string `json:"outputs"`
}

// BatchResponse answers a request with "inputs".
type BatchResponse struct {
	Results []Result `json:"results"`
}

// TableResponse answers GET /table.
type TableResponse struct {
	Name string `json:"name"`
	domain.Summary
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Server serves a Transducer over HTTP.
type Server struct {
	Engine  ports.Transducer
	Metrics http.Handler
	Logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithMetricsHandler mounts h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Transducer, opts ...Option) http.Handler {
	server := &Server{
		Engine: engine,
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)

	r.Post("/generate", server.handleTransduce(domain.DirectionGenerate))
	r.Post("/analyze", server.handleTransduce(domain.DirectionAnalyze))
	r.Get("/table", server.GetTable)
	r.Get("/healthz", server.GetHealth)
	r.Get("/info", server.GetInfo)
	if server.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.Metrics)
	}
	return r
}

// requestID propagates the caller's X-Request-ID or assigns a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleTransduce(dir domain.Direction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := s.Logger.With("request_id", r.Header.Get(RequestIDHeader), "direction", dir)

		var body TransduceRequest
		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&body); err != nil {
			logger.Warn("invalid request body", "err", err)
			s.writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		if (body.Input == nil) == (body.Inputs == nil) {
			s.writeError(w, r, http.StatusBadRequest, `exactly one of "input" or "inputs" is required`)
			return
		}

		if body.Input != nil {
			outputs, err := s.Engine.Transduce(r.Context(), dir, *body.Input)
			if err != nil {
				logger.Warn("transduction failed", "err", err)
				s.writeError(w, r, statusFor(err), err.Error())
				return
			}
			s.writeJSON(w, http.StatusOK, Result{Input: *body.Input, Outputs: nonNil(outputs)})
			return
		}

		resp := BatchResponse{Results: make([]Result, 0, len(body.Inputs))}
		for _, input := range body.Inputs {
			outputs, err := s.Engine.Transduce(r.Context(), dir, input)
			if err != nil {
				logger.Warn("transduction failed", "err", err, "input", input)
				s.writeError(w, r, statusFor(err), err.Error())
				return
			}
			resp.Results = append(resp.Results, Result{Input: input, Outputs: nonNil(outputs)})
		}
		s.writeJSON(w, http.StatusOK, resp)
	}
}

// GetTable handles the GET /table request.
func (s *Server) GetTable(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, TableResponse{Name: s.Engine.Name(), Summary: s.Engine.Describe()})
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "transducer-http",
		"version": transducer.Version,
		"table":   s.Engine.Name(),
	})
}

func statusFor(err error) int {
	var nt *domain.NonTerminatingError
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.As(err, &nt):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg, RequestID: r.Header.Get(RequestIDHeader)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}

func nonNil(outputs []string) []string {
	if outputs == nil {
		return []string{}
	}
	return outputs
}
