package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/media-portal/config"
	_ "github.com/daniilsolovey/media-portal/docs"
	"github.com/daniilsolovey/media-portal/internal/app"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file (CONFIG)")
	flDebug  = flag.Bool("debug", false, "enable debug mode (DEBUG)")
	cfg      = config.Default()
	lg       *slog.Logger
)

// @title Media Portal API
// @version 1.0
// @description Public JSON endpoints of the media portal. Kiosk boards are driven over JSON-RPC at /rpc.
// @host localhost:3000
// @BasePath /

func main() {
	// .env is optional; values already set in the environment win.
	_ = godotenv.Load()

	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	service, err := app.New(cfg, lg)
	exitOnError(err)

	ctx := context.Background()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
