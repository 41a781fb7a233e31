package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "studentInfoBot/internal/app/http"
	"studentInfoBot/internal/config"
	"studentInfoBot/internal/metrics"
	"studentInfoBot/internal/presenter"
	"studentInfoBot/internal/repository/gsheets"
	"studentInfoBot/internal/repository/session"
	"studentInfoBot/internal/service/bot"
	"studentInfoBot/internal/service/student"
	"studentInfoBot/internal/telegram"

	"golang.org/x/sync/errgroup"
)

type App struct {
	log        *slog.Logger
	HTTPServer *httpapp.App
	Telegram   *telegram.Handler
}

// New собирает зависимости бота
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	m := metrics.New()
	sessions := session.NewMemoryStore(m.SetSessions)

	sheets, err := gsheets.New(ctx, log, &cfg.Sheets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	students := student.New(log, sheets, m, cfg.Sheets.Timeout)

	conversation := bot.New(
		log,
		sessions,
		students,
		presenter.Contacts{
			AdminUsername: cfg.Contacts.AdminUsername,
			OfficePhone:   cfg.Contacts.OfficePhone,
		},
		m,
	)

	tg, err := telegram.NewHandler(log, cfg.Telegram.BotToken, conversation, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &App{
		log:        log,
		HTTPServer: httpapp.New(log, &cfg.HTTP, m.Handler()),
		Telegram:   tg,
	}, nil
}

// Run запускает бота и служебный HTTP сервер до отмены контекста
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(a.HTTPServer.Run)

	g.Go(func() error {
		return a.Telegram.Start(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		a.HTTPServer.Stop()
		return nil
	})

	return g.Wait()
}
