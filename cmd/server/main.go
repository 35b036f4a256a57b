package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/feedbackpulse/internal/app"
	"github.com/pscheid92/feedbackpulse/internal/config"
	"github.com/pscheid92/feedbackpulse/internal/database"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	"github.com/pscheid92/feedbackpulse/internal/logging"
	"github.com/pscheid92/feedbackpulse/internal/redis"
	"github.com/pscheid92/feedbackpulse/internal/sentiment"
	"github.com/pscheid92/feedbackpulse/internal/server"
	goredis "github.com/redis/go-redis/v9"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return db
}

func setupRedis(ctx context.Context, cfg *config.Config) *goredis.Client {
	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

// setupClassifier trains the classifier from the reference corpus. Training
// failures are fatal: the service must never start with an untrained model.
func setupClassifier(cfg *config.Config) *sentiment.Service {
	corpus, err := loadCorpus(cfg)
	if err != nil {
		slog.Error("Failed to load reference corpus", "error", err)
		os.Exit(1)
	}

	classifier, err := sentiment.NewService(corpus)
	if err != nil {
		slog.Error("Failed to train sentiment classifier", "error", err)
		os.Exit(1)
	}

	slog.Info("Sentiment classifier trained",
		"examples", len(corpus),
		"vocabulary_size", classifier.VocabularySize(),
	)
	return classifier
}

func loadCorpus(cfg *config.Config) ([]domain.TrainingExample, error) {
	if cfg.CorpusPath != "" {
		return sentiment.LoadCorpus(cfg.CorpusPath)
	}
	return sentiment.DefaultCorpus()
}

// redisPinger adapts the go-redis client to the health check interface.
type redisPinger struct {
	client *goredis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	pool := setupDB(cfg)
	defer pool.Close()

	classifier := setupClassifier(cfg)

	// Redis is optional; without it submissions are not rate limited
	var (
		limiter     *redis.SubmissionLimiter
		redisHealth redisPinger
		redisClient *goredis.Client
	)
	if cfg.RedisURL != "" {
		redisClient = setupRedis(context.Background(), cfg)
		defer func() { _ = redisClient.Close() }()

		limiter = redis.NewSubmissionLimiter(redisClient, clock, cfg.SubmitRateLimit, cfg.SubmitRateWindow)
		redisHealth = redisPinger{client: redisClient}
	}

	userRepo := database.NewUserRepo(pool)
	feedbackRepo := database.NewFeedbackRepo(pool)

	appSvc := app.NewService(userRepo, feedbackRepo, classifier)

	// Pass nil explicitly to avoid typed-nil interface values
	var srv *server.Server
	if redisClient != nil {
		srv = server.NewServer(cfg, appSvc, limiter, pool, redisHealth)
	} else {
		srv = server.NewServer(cfg, appSvc, nil, pool, nil)
	}

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
