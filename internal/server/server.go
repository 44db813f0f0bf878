// Package server собирает HTTP маршруты и управляет жизненным циклом http.Server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/tasktracker/internal/server/handlers"
	"github.com/iudanet/tasktracker/internal/server/middleware"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = time.Minute

	// ShutdownTimeout время на завершение активных запросов при остановке
	ShutdownTimeout = 10 * time.Second

	healthPath = "/api/health"
)

// Deps зависимости, из которых собирается роутер
type Deps struct {
	Logger  *slog.Logger
	Auth    handlers.Authenticator
	Tasks   handlers.TaskManager
	Tokens  middleware.TokenVerifier
	Users   middleware.UserResolver
	Store   handlers.Pinger
	Version string
}

// NewRouter регистрирует маршруты API.
// Задачи закрыты AuthMiddleware, auth и health открыты.
func NewRouter(d Deps) http.Handler {
	authHandler := handlers.NewAuthHandler(d.Logger, d.Auth)
	taskHandler := handlers.NewTaskHandler(d.Logger, d.Tasks)
	healthHandler := handlers.NewHealthHandler(d.Logger, d.Store, d.Version)

	protected := middleware.AuthMiddleware(d.Logger, d.Tokens, d.Users)

	mux := http.NewServeMux()

	mux.HandleFunc("GET "+healthPath, healthHandler.Health)

	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	mux.Handle("POST /api/task", protected(http.HandlerFunc(taskHandler.Create)))
	mux.Handle("GET /api/task", protected(http.HandlerFunc(taskHandler.List)))
	mux.Handle("PUT /api/task/{id}", protected(http.HandlerFunc(taskHandler.Edit)))
	mux.Handle("PATCH /api/task/{id}/complete", protected(http.HandlerFunc(taskHandler.Complete)))
	mux.Handle("DELETE /api/task/{id}", protected(http.HandlerFunc(taskHandler.Delete)))

	// Логирование снаружи recovery: запрос с паникой тоже попадает в лог со статусом 500
	return middleware.Chain(mux,
		middleware.LoggingWithSkip(d.Logger, healthPath),
		middleware.RecoveryMiddleware(d.Logger),
	)
}

// Server HTTP сервер API
type Server struct {
	logger *slog.Logger
	http   *http.Server
}

// New создает Server на адресе addr
func New(logger *slog.Logger, addr string, handler http.Handler) *Server {
	return &Server{
		logger: logger,
		http: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
	}
}

// Run слушает addr до отмены ctx, затем корректно останавливается
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln до отмены ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", slog.String("addr", ln.Addr().String()))
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	return <-errCh
}
