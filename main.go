package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vitechbot/vitech-client/cliparse"
	"github.com/vitechbot/vitech-client/gateway"
	"github.com/vitechbot/vitech-client/identity"
	"github.com/vitechbot/vitech-client/screen"
	"github.com/vitechbot/vitech-client/store"
	"github.com/vitechbot/vitech-client/tasks"
	"github.com/vitechbot/vitech-client/transport"
	"github.com/vitechbot/vitech-client/ui"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	state, err := store.Open(cfg.StateDir)
	if err != nil {
		slog.Error("state store open failed", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	id, err := identity.Resolve(state, cfg.TelegramID)
	if err != nil {
		slog.Error("identity resolution failed", "error", err)
		os.Exit(1)
	}

	var rt http.RoundTripper = transport.InstallID{ID: id.InstallID}
	if cfg.Verbose {
		rt = transport.Logging{Next: rt}
	}

	client := gateway.NewClient(cfg.APIBaseURL, id.TelegramID,
		gateway.WithTimeout(cfg.Timeout),
		gateway.WithTransport(rt),
	)

	term := ui.NewTerminal(os.Stdout)
	ctrl := screen.New(client, term, tasks.NewManager(client), time.Now)
	app := ui.NewApp(ctrl, client, state, term, time.Now)

	// Ctrl-C cancels in-flight requests and ends the session
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Session started", "api", cfg.APIBaseURL, "telegram_id", id.TelegramID)
	if err := app.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		slog.Error("Session ended", "error", err)
		os.Exit(1)
	}
	slog.Info("Session ended")
}
