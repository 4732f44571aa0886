// Instant-coffee orchestrator server — HTTP API, run lifecycle, graph
// execution, and background maintenance in one process.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/api"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/appdata"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/cleanup"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/database"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/events"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/executor"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/graph"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/llm"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/orchestrator"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/policy"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config",
		getEnv("CONFIG_FILE", "config.yaml"),
		"Path to the YAML configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to database", "dialect", dbClient.Dialect())

	// Event log and in-process fan-out.
	store := events.NewStore(dbClient.Client)
	emitter := events.NewEmitter(store)

	// Domain services.
	cancels := services.NewCancelRegistry()
	sessions := services.NewSessionService(dbClient.Client)
	runs := services.NewRunService(dbClient.Client, cancels)
	state := services.NewStateService(dbClient.Client)
	docs := services.NewProductDocService(dbClient.Client, cfg.Retention)
	pages := services.NewPageService(dbClient.Client, cfg.Retention)
	snapshots := services.NewSnapshotService(dbClient.Client, cfg.Retention, docs, pages)
	plans := services.NewPlanService(dbClient.Client)
	idempotency := services.NewIdempotencyCache(cfg.Server.IdempotencyTTL)
	slog.Info("Services initialized")

	// LLM sidecar. grpc.NewClient dials lazily; the first RPC connects.
	llmAddr := getEnv("LLM_SERVICE_ADDR", "localhost:50051")
	llmClient, err := llm.NewGRPCClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", llmAddr)

	// Graph executor with its checkpoint backend.
	checkpointer, err := graph.NewCheckpointer(ctx, cfg.Graph, dbClient)
	if err != nil {
		slog.Error("Failed to initialize checkpointer", "error", err)
		os.Exit(1)
	}
	graphExec := graph.NewExecutor(cfg.Graph, checkpointer, cancels, graph.Deps{
		LLM:     llmClient,
		Docs:    docs,
		Pages:   pages,
		AppData: appdata.NewSQLStore(dbClient),
		Policy:  policy.NewEngine(cfg.Policy),
	})

	orch := orchestrator.New(runs, state, graphExec, emitter, cancels)

	// Planner task graphs run on the bounded parallel executor.
	parallel := executor.NewParallelExecutor(cfg.Executor, plans, snapshots, cancels, executor.DefaultFactory)

	// Background janitor: stale runs and expired idempotency entries.
	janitor := cleanup.NewService(cfg.Executor.SweepInterval, cfg.Executor.RunStalenessWindow, runs, idempotency)
	janitor.Start(ctx)
	defer janitor.Stop()

	server := api.NewServer(cfg.Server, api.Deps{
		DB:           dbClient,
		Sessions:     sessions,
		Runs:         runs,
		State:        state,
		Docs:         docs,
		Pages:        pages,
		Snapshots:    snapshots,
		Plans:        plans,
		Orchestrator: orch,
		Executor:     parallel,
		LLM:          llmClient,
		Store:        store,
		Emitter:      emitter,
		Idempotency:  idempotency,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
