package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ravikant-sharma/shopledger/internal/auth"
	"github.com/ravikant-sharma/shopledger/internal/config"
	"github.com/ravikant-sharma/shopledger/internal/db"
	api "github.com/ravikant-sharma/shopledger/internal/http"
	"github.com/ravikant-sharma/shopledger/internal/http/handlers"
	rl "github.com/ravikant-sharma/shopledger/internal/http/rate_limiter"
	"github.com/ravikant-sharma/shopledger/internal/redissvc"
	"github.com/ravikant-sharma/shopledger/internal/repo"
)

// @title Shop Ledger API
// @version 1.0
// @description Inventory ledger for a small retail shop: catalog, inward and outward stock movements, and derived reports.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	auth.Configure(cfg.JWTSecret, time.Duration(cfg.TokenTTLMin)*time.Minute)
	rl.Configure(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatalf("could not bootstrap schema: %v", err)
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		handlers.SetRedisService(redissvc.NewRedisService(rdb, ctx,
			time.Duration(cfg.CacheTTLSec)*time.Second))
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetLedgerRepo(repo.NewPostgresLedgerRepository(database))
	handlers.SetReportRepo(repo.NewPostgresReportRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	r := api.RateLimitMiddleware(api.NewRouter())
	log.Printf("server running on %s", cfg.Address())
	if err := http.ListenAndServe(cfg.Address(), r); err != nil {
		log.Fatal(err)
	}
}
