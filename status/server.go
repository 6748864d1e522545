// Package status serves the health and live statistics of a running bot over HTTP.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/anisan-cli/anibot/bot"
	"github.com/anisan-cli/anibot/constant"
	"github.com/anisan-cli/anibot/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// StatsProvider reports the live state exposed on /stats.
type StatsProvider interface {
	Stats() bot.Stats
}

// Server is the status HTTP server.
type Server struct {
	router *chi.Mux
	stats  StatsProvider
}

// NewServer returns a server reporting stats from provider.
func NewServer(provider StatsProvider) *Server {
	s := &Server{stats: provider}
	s.setupRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/stats", s.handleStats)

	s.router = r
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{"addr": addr}).Info("status server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("status server: %w", err)
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			log.WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  middleware.GetReqID(r.Context()),
			}).Debug("http request")
		}()

		next.ServeHTTP(ww, r)
	})
}

type health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, health{Status: "ok", Version: constant.Version})
}

type stats struct {
	Sessions map[string]int `json:"sessions"`
	Controls int            `json:"controls"`
	Uptime   string         `json:"uptime"`
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	st := s.stats.Stats()
	respondJSON(w, http.StatusOK, stats{
		Sessions: map[string]int{
			"guess":       st.GuessSessions,
			"higherlower": st.HigherLowerSessions,
		},
		Controls: st.Controls,
		Uptime:   st.Uptime.Round(time.Second).String(),
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}
