package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/burlang/burlang/internal/setup"
	"github.com/burlang/burlang/internal/worker/stats"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WorkerLogDir specifies where worker log files are stored.
const WorkerLogDir = "logs/worker_logs"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, err := setup.InitializeApp(ctx, WorkerLogDir)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup()

	statsLogger := setup.GetWorkerLogger("stats", WorkerLogDir, app.Config.Debug.LogLevel)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return stats.New(app, statsLogger).Start(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		app.Logger.Error("Worker exited with error", zap.Error(err))
		return
	}

	app.Logger.Info("All workers stopped")
}
