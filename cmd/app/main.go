package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/TribalScore_Go/internal/bootstrap"
	"github.com/osse101/TribalScore_Go/internal/concurrency"
	"github.com/osse101/TribalScore_Go/internal/config"
	"github.com/osse101/TribalScore_Go/internal/database"
	"github.com/osse101/TribalScore_Go/internal/eventlog"
	"github.com/osse101/TribalScore_Go/internal/logger"
	"github.com/osse101/TribalScore_Go/internal/override"
	"github.com/osse101/TribalScore_Go/internal/pricing"
	"github.com/osse101/TribalScore_Go/internal/scheduler"
	"github.com/osse101/TribalScore_Go/internal/season"
	"github.com/osse101/TribalScore_Go/internal/server"
	"github.com/osse101/TribalScore_Go/internal/standings"
	"github.com/osse101/TribalScore_Go/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second
	jobQueueSize    = 64
)

// @title TribalScore API
// @version 1.0
// @description Fantasy league scoring, corrections, materialization and contestant pricing.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	for _, w := range warnings {
		logger.Warn(w)
	}

	ctx := context.Background()

	dbPool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
		ApplicationName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	_, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		logger.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	locks := concurrency.NewLockManager()

	seasonService := season.NewService(repos.Season, publisher)
	defaults, err := bootstrap.SyncScoringDefaults(ctx, cfg.ScoringConfigPath, seasonService)
	if err != nil {
		logger.Error("Failed to sync scoring defaults", "error", err)
		os.Exit(1)
	}

	overrideService := override.NewService(repos.Override, locks, publisher)
	standingsService := standings.NewService(repos.Season, repos.Roster, overrideService, cfg.StandingsCacheSize, cfg.StandingsCacheTTL)
	pricingService := pricing.NewService(repos.Season, repos.Price, overrideService, defaults.Price, locks, publisher)
	eventLogService := eventlog.NewService(repos.EventLog)

	pool := worker.NewPool(cfg.WorkerCount, jobQueueSize)
	pool.Start()

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:         publisher,
		PricingService:   pricingService,
		StandingsService: standingsService,
		JobQueue:         pool,
		EventLogService:  eventLogService,
	})

	sched := scheduler.New(pool)
	sched.Schedule(bootstrap.JobNamePriceRecompute, cfg.PriceRecomputeInterval, pricing.NewRecomputeJob(pricingService, 1))
	sched.Schedule(bootstrap.JobNameEventLogCleanup, cfg.EventLogCleanupInterval, eventlog.NewCleanupJob(eventLogService, cfg.EventLogRetentionDays))

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		Environment:    cfg.Environment,
	}, dbPool, server.Services{
		Standings: standingsService,
		Override:  overrideService,
		Season:    seasonService,
		Pricing:   pricingService,
		EventLog:  eventLogService,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		ResilientPublisher: publisher,
	})
}
