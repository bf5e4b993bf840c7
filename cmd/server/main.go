package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/connectify-dev/groupuser-service/config"
	"github.com/connectify-dev/groupuser-service/internal/observability"
	"github.com/connectify-dev/groupuser-service/internal/platform"
)

func main() {
	observability.InitLogger()
	cfg := config.Load()

	app := platform.NewApplication(cfg)

	if err := app.Bootstrap(); err != nil {
		slog.Error("failed to bootstrap application", "error", err)
		os.Exit(1)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		app.Shutdown()
		os.Exit(0)
	}()

	if err := app.Run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}
