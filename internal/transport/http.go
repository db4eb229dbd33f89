package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxRequestBytes = 1 << 20

// unknownMethodCode matches the code the MCP handler uses for unregistered tools.
const unknownMethodCode = "UNKNOWN_METHOD"

// MCPHandler handles MCP method dispatch.
type MCPHandler interface {
	Handle(ctx context.Context, method string, params json.RawMessage) (any, error)
}

// codedError is a domain error carrying a stable error code.
type codedError interface {
	error
	ErrorCode() string
}

// Server wires HTTP handlers.
type Server struct {
	handler MCPHandler
	logger  *slog.Logger
}

// NewServer builds the HTTP router. streamable, when non-nil, is mounted at
// /mcp and serves the MCP streamable HTTP transport; /rpc accepts plain
// JSON-RPC calls whose method is a tool name.
func NewServer(handler MCPHandler, streamable http.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if logger != nil {
		r.Use(requestLogger(logger))
	}

	srv := &Server{handler: handler, logger: logger}

	r.Get("/health", srv.handleHealth)
	r.Post("/rpc", srv.handleRPC)
	if streamable != nil {
		r.Handle("/mcp", streamable)
		r.Handle("/mcp/*", streamable)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		WriteError(w, nil, parseErrorCode(err), err.Error(), nil)
		return
	}

	result, err := s.handler.Handle(r.Context(), req.Method, req.Params)
	if err != nil {
		var coded codedError
		switch {
		case errors.As(err, &coded) && coded.ErrorCode() == unknownMethodCode:
			WriteError(w, req.ID, ErrMethodNotFound, coded.Error(), coded)
		case errors.As(err, &coded):
			WriteError(w, req.ID, ErrInvalidParams, coded.Error(), coded)
		default:
			if s.logger != nil {
				s.logger.Error("rpc call failed", "method", req.Method, "error", err)
			}
			WriteError(w, req.ID, ErrInternal, err.Error(), nil)
		}
		return
	}

	WriteResult(w, req.ID, result)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsed", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
