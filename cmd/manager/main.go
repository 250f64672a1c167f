package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"m3u_manager/internal/config"
	"m3u_manager/internal/fetcher"
	"m3u_manager/internal/output"
	"m3u_manager/internal/publisher"
	"m3u_manager/internal/scheduler"
	"m3u_manager/internal/server"
	"m3u_manager/internal/service"
	"m3u_manager/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrationsPath := flag.String("migrations", "file://migrations", "migrations source")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if err := postgres.RunMigrations(cfg.Database.URL(), *migrationsPath); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher when configured
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:       cfg.RabbitMQ.URL,
			Exchange:  cfg.RabbitMQ.Exchange,
			QueueName: cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	// Initialize stores
	sourceStore := postgres.NewSourceStore(db)
	channelStore := postgres.NewChannelStore(db)
	urlStore := postgres.NewUrlStore(db)
	epgStore := postgres.NewEpgStore(db)
	filterStore := postgres.NewFilterStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize services
	stateSync := service.NewStateSynchronizer(
		channelStore,
		filterStore,
		epgStore,
		txManager,
		pub,
		logger,
		cfg.Jobs.DisableChannelsWithoutEpg,
	)
	m3uSync := service.NewM3USyncService(
		sourceStore,
		channelStore,
		urlStore,
		fetcher.New(cfg.Fetch.M3UTimeout, cfg.Fetch.UserAgent),
		txManager,
		stateSync,
		pub,
		logger,
		cfg.Jobs.BatchSize,
	)
	epgSync := service.NewEPGSyncService(
		sourceStore,
		channelStore,
		epgStore,
		fetcher.New(cfg.Fetch.EPGTimeout, cfg.Fetch.UserAgent),
		txManager,
		stateSync,
		pub,
		logger,
	)
	cleanup := service.NewCleanupService(
		channelStore,
		urlStore,
		epgStore,
		txManager,
		logger,
		cfg.Jobs.ChannelRetention,
		cfg.Jobs.EpgRetention,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Scheduler and background jobs
	sched := scheduler.New(logger)
	jobs := scheduler.NewJobs(sched, m3uSync, epgSync, stateSync, logger)

	sched.Register("cleanup", cfg.Jobs.CleanupInterval, cleanup.Run)
	sched.Register("synchronize", cfg.Jobs.SyncInterval, func(ctx context.Context) error {
		_, err := stateSync.Synchronize(ctx)
		return err
	})

	sources, err := sourceStore.List(ctx)
	if err != nil {
		logger.Error("failed to list sources", "error", err)
		os.Exit(1)
	}
	for i := range sources {
		if sources[i].Enabled {
			jobs.ScheduleSource(&sources[i])
		}
	}

	sched.Start(ctx)
	defer sched.Stop(context.Background())

	admin := service.NewAdminService(sourceStore, filterStore, channelStore, jobs, logger)
	out := output.NewService(channelStore, epgStore)
	srv := server.New(admin, out, cfg.Server.Addr, cfg.Server.BaseURL, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting catalog manager",
		"addr", cfg.Server.Addr,
		"sources", len(sources),
		"cleanup_interval", cfg.Jobs.CleanupInterval,
	)

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
