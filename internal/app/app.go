package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/media-portal/config"
	"github.com/daniilsolovey/media-portal/internal/admin"
	"github.com/daniilsolovey/media-portal/internal/apiclient"
	"github.com/daniilsolovey/media-portal/internal/display"
	"github.com/daniilsolovey/media-portal/internal/portal"
	"github.com/daniilsolovey/media-portal/internal/rest"
	"github.com/daniilsolovey/media-portal/internal/rpc"
	"github.com/daniilsolovey/media-portal/internal/session"
	"github.com/labstack/echo/v4"
)

type App struct {
	API      *apiclient.Client
	Registry *display.Registry
	Logger   *slog.Logger
	Echo     *echo.Echo
	Config   config.Config
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	api := apiclient.New(apiclient.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout.Duration,
	})
	manager := portal.NewManager(api)
	sliders := display.NewSliders(manager, logger)

	registry := display.NewRegistry(sliders, display.Config{
		BoardTTL:     cfg.Display.BoardTTL.Duration,
		ReapSchedule: cfg.Display.ReapSchedule,
		MaxBoards:    cfg.Display.MaxBoards,
	}, logger)

	sessions := session.New(session.Config{
		Lifetime: cfg.Session.Lifetime.Duration,
		Secure:   cfg.Session.Secure,
	})

	handler := rest.NewHandler(manager, api, sliders, sessions, admin.Panels(cfg.Admin.PageSize), rest.Config{
		CSRFKey:        cfg.Session.CSRFKey,
		TrustedOrigins: cfg.Session.TrustedOrigins,
		LoginRate:      cfg.Admin.LoginRate,
		LoginBurst:     cfg.Admin.LoginBurst,
	}, logger)

	renderer, err := rest.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	handler.RegisterRoutes(e, rpc.New(logger, registry))

	return &App{
		API:      api,
		Registry: registry,
		Logger:   logger,
		Echo:     e,
		Config:   cfg,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.API.Ping(ctx); err != nil {
		a.Logger.Warn("backend is not reachable yet", "url", a.Config.API.BaseURL, "error", err)
	}

	if err := a.Registry.Start(); err != nil {
		return fmt.Errorf("start board reaper: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.Info("service started", "addr", addr)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	a.Registry.Stop()

	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
