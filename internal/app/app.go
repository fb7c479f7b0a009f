// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"marketplace-bff/config"
	"marketplace-bff/internal/database"
	"marketplace-bff/internal/graphql"
	"marketplace-bff/internal/services"
	"marketplace-bff/internal/session"
	"marketplace-bff/internal/storage"
	"marketplace-bff/internal/storage/images"
	"marketplace-bff/internal/storage/postgres"
	"marketplace-bff/internal/storage/redisstore"
	"marketplace-bff/internal/storage/secure"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	Validator   *validator.Validate
	RedisClient *redis.Client // set when the session backend is redis
	DBPool      *pgxpool.Pool // set when the session backend is postgres
	Gateway     *graphql.Client

	SessionService      services.SessionService
	WizardService       services.WizardService
	BidService          services.BidService
	SearchService       services.SearchService
	ProfileService      services.ProfileService
	NotificationService services.NotificationService

	// HealthChecks are reported by GET /health.
	HealthChecks map[string]func(ctx context.Context) error
}

// New connects the session store backend and builds the services on top of it.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	a := &Application{
		Config:       cfg,
		Validator:    validator.New(),
		HealthChecks: make(map[string]func(ctx context.Context) error),
	}

	kv, err := a.openKV(ctx)
	if err != nil {
		return nil, err
	}

	secret := cfg.Storage.SecretKey
	if secret == "" {
		log.Println("WARN: storage.secret_key is not set, sealing tokens with the JWT secret")
		secret = cfg.JWT.Secret
	}
	box, err := secure.NewBox(secret)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create token box: %w", err)
	}

	imageStore, err := images.NewStore(cfg.Images)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create image store: %w", err)
	}

	sessions := session.NewStore(kv, secure.NewStore(kv, box), cfg.Storage.SessionTTL)
	a.Gateway = graphql.NewClient(cfg.GraphQL.Endpoint, cfg.GraphQL.Timeout, &http.Client{})
	gw := a.Gateway

	a.SessionService = services.NewSessionService(gw, gw, sessions, cfg.Theme)
	a.WizardService = services.NewWizardService(kv, gw, gw, sessions, imageStore, cfg.Rules, cfg.Images.MaxWidth, cfg.Storage.SessionTTL)
	a.BidService = services.NewBidService(gw, gw, gw, sessions, a.Validator, cfg.Rules)
	a.SearchService = services.NewSearchService(gw, gw, sessions, a.Validator)
	a.ProfileService = services.NewProfileService(gw, sessions, a.Validator, cfg.Rules)
	a.NotificationService = services.NewNotificationService(gw)

	return a, nil
}

func (a *Application) openKV(ctx context.Context) (storage.KVStore, error) {
	switch a.Config.Storage.SessionBackend {
	case "", "redis":
		rdb, err := database.NewRedisClient(ctx, a.Config.Redis)
		if err != nil {
			return nil, err
		}
		a.RedisClient = rdb
		a.HealthChecks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		return redisstore.NewKVRepo(rdb, "bff:"), nil

	case "postgres":
		pool, err := database.NewConnectionPool(ctx, a.Config.DB)
		if err != nil {
			return nil, err
		}
		a.DBPool = pool
		a.HealthChecks["postgres"] = pool.Ping
		repo := postgres.NewKVRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return repo, nil

	default:
		return nil, fmt.Errorf("unknown session backend: %s", a.Config.Storage.SessionBackend)
	}
}

// Close releases the store connections.
func (a *Application) Close() {
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if a.DBPool != nil {
		a.DBPool.Close()
	}
}
