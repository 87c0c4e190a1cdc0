package app

import (
	"bid-ledger-api/config"
	"bid-ledger-api/internal/services"
	"bid-ledger-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
// RedisClient and DBPool are nil unless a configured backend needs them.
type Application struct {
	Config      *config.Config
	Store       storage.ApplicationStore
	Ledger      services.ApplicationLedger
	RedisClient *redis.Client
	DBPool      *pgxpool.Pool
}
