package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"questgraph/cmd/questgraph/commands"
	"questgraph/lib/telemetry"
	"syscall"
)

// Returns a context that will live until Ctrl+C is pressed
func signalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	return ctx
}

func main() {
	telemetry.InitSlog(false)
	ctx := signalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "questgraph")
	if err == nil {
		defer tel.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)
	} else if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no telemetry.json5 found, running untraced")
	} else {
		slog.Warn("failed to setup telemetry", "err", err)
	}

	commands.ExecuteContext(ctx)
}
