// Package server exposes the bot service over HTTP.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ehsaniara/botvisor/internal/botvisor/core"
	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
	"github.com/ehsaniara/botvisor/pkg/config"
	"github.com/ehsaniara/botvisor/pkg/logger"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . BotService
type BotService interface {
	Deploy(ctx context.Context, req core.DeployRequest) (*core.DeployResult, error)
	ListBots(ctx context.Context) ([]core.BotSummary, error)
	Logs(ctx context.Context, name string, lines int) ([]string, error)
	StopBot(ctx context.Context, name string) (supervisor.ProcessInfo, error)
	RuntimeVersion(ctx context.Context) (string, error)
}

type Server struct {
	cfg     *config.Config
	service BotService
	http    *http.Server
	logger  *logger.Logger
}

func New(cfg *config.Config, service BotService) *Server {
	s := &Server{
		cfg:     cfg,
		service: service,
		logger:  logger.WithField("component", "http"),
	}
	s.http = &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      s.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Router builds the route table. Deploys run npm install inline, so WriteTimeout
// must cover the installer timeout.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORS.AllowedOrigins,
		AllowedMethods: s.cfg.CORS.AllowedMethods,
		AllowedHeaders: s.cfg.CORS.AllowedHeaders,
		MaxAge:         s.cfg.CORS.MaxAge,
	}))
	r.Use(limitBody(s.cfg.Server.MaxBodyBytes))

	r.Post("/deploy", s.handleDeploy)
	r.Get("/bots", s.handleListBots)
	r.Get("/logs/{botName}", s.handleLogs)
	r.Post("/stop", s.handleStop)
	r.Get("/node-version", s.handleNodeVersion)
	r.Get("/healthz", s.handleHealth)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "route not found", Code: "not_found"})
	})
	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "address", ln.Addr().String())
		if err := s.http.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	s.http.SetKeepAlivesEnabled(false)
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
