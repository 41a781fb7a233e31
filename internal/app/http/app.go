package httpapp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"studentInfoBot/internal/pkg/logger/sl"
)

type Config struct {
	Port    int           `yaml:"port" env:"HTTP_PORT" env-default:"8081"`
	Timeout time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"5s"`
}

type App struct {
	log        *slog.Logger
	httpServer *http.Server
	port       int
}

// New создает служебный сервер с метриками и проверкой живости
func New(log *slog.Logger, config *Config, metrics http.Handler) *App {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(config.Port),
		Handler:           NewRouter(metrics),
		ReadHeaderTimeout: config.Timeout,
	}

	return &App{log: log, httpServer: srv, port: config.Port}
}

func NewRouter(metrics http.Handler) *http.ServeMux {
	router := http.NewServeMux()

	router.Handle("GET /metrics", metrics)
	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return router
}

func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

func (a *App) Run() error {
	const op = "httpapp.Run"

	a.log.With(slog.String("op", op)).
		Info("server started", slog.Int("port", a.port))

	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.log.Error("failed to start http server", sl.Err(err))
		return err
	}

	return nil
}

func (a *App) Stop() {
	const op = "httpapp.Stop"

	a.log.With(slog.String("op", op)).
		Info("stopping HTTP server", slog.Int("port", a.port))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("server closed with error", sl.Err(err))
		return
	}

	a.log.Info("gracefully stopped")
}
