package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bid-ledger-api/config"
	"bid-ledger-api/internal/app"
	"bid-ledger-api/internal/database"
	"bid-ledger-api/internal/lock"
	"bid-ledger-api/internal/server"
	"bid-ledger-api/internal/services"
	"bid-ledger-api/internal/storage"
	"bid-ledger-api/internal/storage/file"
	"bid-ledger-api/internal/storage/memory"
	"bid-ledger-api/internal/storage/postgres"
	redisstore "bid-ledger-api/internal/storage/redis"

	_ "bid-ledger-api/docs" // Swagger document for /swagger

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
)

// @title           Bid Ledger API
// @version         1.0
// @description     Job application ledger: freelancers bid on jobs, job owners shortlist, hire and reject.

// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application, cleanup, err := buildApplication(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Printf("Received %s, shutting down server...", sig)
	case err := <-serverErr:
		if err != nil {
			log.Printf("Server error: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Application gracefully stopped.")
}

// buildApplication connects the backends selected by cfg and assembles the
// ledger. cleanup closes whatever connections were opened; on error they are
// already closed.
func buildApplication(ctx context.Context, cfg *config.Config) (*app.Application, func(), error) {
	application := &app.Application{Config: cfg}
	cleanup := func() {
		if application.RedisClient != nil {
			application.RedisClient.Close()
		}
		if application.DBPool != nil {
			application.DBPool.Close()
		}
	}

	if cfg.Storage.Backend == "redis" || cfg.Lock.Backend == "redis" {
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		application.RedisClient = redisClient
	}
	if cfg.Storage.Backend == "postgres" {
		dbPool, err := database.NewConnectionPool(cfg.DB)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		application.DBPool = dbPool
	}

	store, err := newStore(ctx, cfg.Storage, application)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	locker, err := newLocker(cfg.Lock, application)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	application.Store = store
	application.Ledger = services.NewApplicationLedger(store, locker, clockwork.NewRealClock(), validator.New(), cfg.Ledger)
	log.Printf("Ledger ready: storage=%s lock=%s quota=%d per %s shortlist_limit=%d",
		cfg.Storage.Backend, cfg.Lock.Backend, cfg.Ledger.SubmissionQuota, cfg.Ledger.SubmissionWindow, cfg.Ledger.ShortlistLimit)
	return application, cleanup, nil
}

func newStore(ctx context.Context, cfg config.StorageConfig, application *app.Application) (storage.ApplicationStore, error) {
	switch cfg.Backend {
	case "memory":
		log.Println("WARN: Using in-memory application store, data is lost on restart")
		return memory.NewStore(), nil
	case "file", "":
		return file.NewStore(cfg.FilePath), nil
	case "redis":
		return redisstore.NewStore(application.RedisClient, cfg.RedisKey), nil
	case "postgres":
		repo := postgres.NewApplicationRepo(application.DBPool)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func newLocker(cfg config.LockConfig, application *app.Application) (lock.Locker, error) {
	switch cfg.Backend {
	case "local", "":
		if application.Config.Storage.Backend == "redis" || application.Config.Storage.Backend == "postgres" {
			log.Println("WARN: Shared storage with a local lock is only safe for a single API instance")
		}
		return lock.NewLocal(), nil
	case "redis":
		return lock.NewRedis(application.RedisClient, cfg.RedisKey, cfg.TTL, cfg.RetryInterval), nil
	default:
		return nil, fmt.Errorf("unknown lock backend %q", cfg.Backend)
	}
}
