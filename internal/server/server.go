package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nluthra2001/cpusched/internal/log"
	"github.com/nluthra2001/cpusched/internal/simulation"
	"github.com/nluthra2001/cpusched/scheduler"
)

const maxBodyBytes = 1 << 20

// Server exposes the simulator over HTTP.
type Server struct {
	log    *slog.Logger
	router chi.Router
}

func New(logger *slog.Logger) *Server {
	s := &Server{log: logger, router: chi.NewRouter()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)

	s.router.Get("/algorithms", s.listAlgorithms)
	s.router.Post("/simulate", s.simulate)
	s.router.Post("/simulate/{algorithm}", s.simulate)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("simulator listening", log.StringAttr("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) listAlgorithms(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, simulation.Algorithms())
}

func (s *Server) simulate(w http.ResponseWriter, r *http.Request) {
	var req simulation.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if alg := chi.URLParam(r, "algorithm"); alg != "" {
		req.Algorithm = alg
	}

	report, err := simulation.Run(req, scheduler.WithLogger(s.log))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.log.Debug("simulation finished",
		log.StringAttr("algorithm", report.Algorithm),
		log.IntAttr("processes", report.Stats.Count),
		log.IntAttr("makespan", report.Stats.Makespan),
	)
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			log.StringAttr("request_id", middleware.GetReqID(r.Context())),
			log.StringAttr("method", r.Method),
			log.StringAttr("path", r.URL.Path),
			log.IntAttr("status", ww.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("writing response", log.ErrAttr(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, simulation.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, simulation.ErrInvalidRequest),
		errors.Is(err, scheduler.ErrInvalidProcess),
		errors.Is(err, scheduler.ErrInvalidQuantum),
		errors.Is(err, scheduler.ErrUnknownAlgorithm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
