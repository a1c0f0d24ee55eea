// cmd/worker-manager/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	awsclient "career-workers/internal/common/aws"
	"career-workers/internal/common/camunda"
	"career-workers/internal/common/config"
	"career-workers/internal/common/database"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/observability"
	"career-workers/internal/engine/compatibility"
	"career-workers/internal/engine/model"
	"career-workers/internal/engine/prioritizer"
	"career-workers/internal/engine/tables"
	"career-workers/internal/repository"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs, err := observability.New(cfg.Observability)
	if err != nil {
		zapLog.Fatal("observability init failed", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Ranking engine ---
	artifact, err := model.Load(cfg.Ranking.ArtifactPath)
	if err != nil {
		zapLog.Fatal("skill ranking artifact failed to load",
			zap.String("path", cfg.Ranking.ArtifactPath), zap.Error(err))
	}
	zapLog.Info("Skill ranking artifact loaded",
		zap.Int("skills", len(artifact.AllSkills)),
		zap.Int("careers", len(artifact.Careers)),
	)

	scoringTables, err := tables.Default().WithOverrides(tables.Overrides{
		DimensionWeights: cfg.Scoring.DimensionWeights,
		DecayFactor:      cfg.Scoring.TimeDecay.Factor,
		MaxAgeDays:       cfg.Scoring.TimeDecay.MaxAgeDays,
	})
	if err != nil {
		zapLog.Fatal("scoring tables rejected", zap.Error(err))
	}

	// --- Init Zeebe Client with retry ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.Connect(ctx, &camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
		}, log)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	zapLog.Info("PostgreSQL connected successfully")
	if err := pg.RegisterMetrics(prometheus.DefaultRegisterer, cfg.Database.Postgres.Database); err != nil {
		zapLog.Warn("postgres pool metrics not registered", zap.Error(err))
	}

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")
	if ok, err := esClient.IndexExists(ctx, cfg.Database.Elasticsearch.OpportunityIndex); err != nil || !ok {
		zapLog.Warn("opportunity index unavailable, rank-opportunities will fail until it exists",
			zap.String("index", cfg.Database.Elasticsearch.OpportunityIndex), zap.Error(err))
	}

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	zapLog.Info("Redis connected successfully")

	// --- Market demand signals ---
	signals := repository.NewMarketSignals(rdb.Client, cfg.Market.RedisKey, nil, log)
	if err := signals.Refresh(ctx); err != nil {
		zapLog.Warn("initial market signal load failed, using fallback demand", zap.Error(err))
	}
	go signals.Run(ctx, cfg.Market.RefreshInterval)

	ranker, err := prioritizer.New(artifact, prioritizer.Options{
		MarketDemand: signals.Demand,
		Logger:       log,
	})
	if err != nil {
		zapLog.Fatal("prioritizer init failed", zap.Error(err))
	}

	// --- AWS messaging ---
	awsCfg, err := awsclient.LoadConfig(ctx, cfg.Notifications.AWS.Region)
	if err != nil {
		zapLog.Fatal("aws config load failed", zap.Error(err))
	}

	deps := &dependencies{
		cfg:           cfg,
		log:           log,
		obs:           obs,
		ranker:        ranker,
		evaluator:     compatibility.New(scoringTables, log),
		timeDecay:     scoringTables.TimeDecay,
		profiles:      repository.NewProfileStore(pg.DB, rdb.Client, cfg.Ranking.ProfileCacheTTL, log),
		feedback:      repository.NewFeedbackStore(pg.DB),
		opportunities: repository.NewOpportunityStore(esClient.Client, cfg.Database.Elasticsearch.OpportunityIndex),
		ses:           awsclient.NewSESClient(awsCfg),
		sns:           awsclient.NewSNSClient(awsCfg),
	}

	workers := camunda.NewWorkers(zeebe.GetClient(), log)
	if err := registerWorkers(workers, deps); err != nil {
		zapLog.Fatal("worker registration failed", zap.Error(err))
	}
	zapLog.Info("Workers registered", zap.Int("count", workers.Count()))

	// --- Health & Metrics Server ---
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.App.Port),
		Handler: newStatusMux(map[string]func(context.Context) error{
			"zeebe":         zeebe.HealthCheck,
			"postgres":      pg.Ping,
			"elasticsearch": esClient.Ping,
			"redis":         rdb.Ping,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 30*time.Second)
	defer stop()

	workers.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}
	if err := pg.Close(); err != nil {
		zapLog.Error("Error closing PostgreSQL", zap.Error(err))
	}
	if err := rdb.Close(); err != nil {
		zapLog.Error("Error closing Redis", zap.Error(err))
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error flushing telemetry", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}
