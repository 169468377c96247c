package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/JonMunkholm/clientes/internal/config"
	"github.com/JonMunkholm/clientes/internal/core"
	"github.com/JonMunkholm/clientes/internal/database"
	"github.com/JonMunkholm/clientes/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Import.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Import.Timeout)
		defer cancel()
	}

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err, "code", core.MapError(err).Code)
		return 1
	}
	defer pool.Close()

	slog.Info("connected to database", "name", cfg.Database.Name, "addr", cfg.Database.Addr())

	return importFile(ctx, pool, cfg.Import)
}

func importFile(ctx context.Context, pool *pgxpool.Pool, cfg config.ImportConfig) int {
	slog.Info("processing started", "path", cfg.FilePath)

	importer := core.NewImporter(database.New(pool), core.ImporterOptions{
		Encoding: cfg.Encoding,
		OnPhase: func(phase core.ImportPhase, r core.Report) {
			slog.Debug("phase", "run_id", r.RunID, "phase", phase)
		},
	})

	report, err := importer.Import(ctx, cfg.FilePath)
	switch {
	case err == nil:
		slog.Info("processing finished", "run_id", report.RunID, "imported", report.Persisted)
		return 0
	case core.NoData(err):
		slog.Info("processing finished, nothing imported", "run_id", report.RunID, "reason", core.FormatUserError(err))
		return 0
	default:
		slog.Error("processing failed", "run_id", report.RunID, "stage", core.StageOf(err), "reason", core.FormatUserError(err))
		return 1
	}
}
