package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/cjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cjudge-2025.net/internal/core/services/judge"
	"gitlab.com/cjudge-2025.net/internal/core/services/submission"
	"gitlab.com/cjudge-2025.net/internal/handlers"
	"gitlab.com/cjudge-2025.net/internal/handlers/executions"
	"gitlab.com/cjudge-2025.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	submissionService submission.ISubmissionService
	judgeService      judge.IJudgeService
}

func NewServiceProvider(
	submissionService submission.ISubmissionService,
	judgeService judge.IJudgeService,
) *ServiceProvider {
	return &ServiceProvider{
		submissionService: submissionService,
		judgeService:      judgeService,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	middleware      *handlers.MiddlewareProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, middleware *handlers.MiddlewareProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		middleware:      middleware,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	submissions.
		NewSubmissionHandler(s.ServiceProvider.submissionService, s.logger).
		RegisterRoutes(r, s.middleware)
	executions.
		NewExecutionHandler(s.ServiceProvider.judgeService, s.logger).
		RegisterRoutes(r, s.middleware)
	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
