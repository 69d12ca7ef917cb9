package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/hdlima/conversor/deploy/config"
	"github.com/hdlima/conversor/internal/converter/adapter/api_client/exchangerate"
	"github.com/hdlima/conversor/internal/converter/adapter/api_client/frankfurter"
	"github.com/hdlima/conversor/internal/converter/ports/http/public"
	"github.com/hdlima/conversor/internal/converter/service"
)

type App struct {
	cfg *config.Config
}

func New(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Start(ctx context.Context) <-chan struct{} {
	a.initLogger()
	slog.Info("Logger initialized")

	slog.With("config", a.cfg).Info("starting server")

	converter := a.initService()
	slog.Info("Service initialized")

	serverDone := public.StartServer(ctx, converter, a.cfg)
	slog.Info("server started")

	return serverDone
}

func (a *App) initLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: false,
	}))
	slog.SetDefault(logger)
}

func (a *App) initService() *service.Service {
	ratesClient := exchangerate.NewClient(a.cfg.Rates.URL)
	historyClient := frankfurter.NewClient(a.cfg.History.URL)

	rateSource := service.NewRateSource(ratesClient, a.cfg)
	historySource := service.NewHistorySource(historyClient, a.cfg)

	return service.NewService(rateSource, historySource, a.cfg)
}
