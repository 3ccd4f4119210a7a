package main

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"guide_paris/internal/adapters/gmaps"
	"guide_paris/internal/adapters/observability"
	redisad "guide_paris/internal/adapters/redis"
	"guide_paris/internal/app"
	"guide_paris/internal/catalog"
	"guide_paris/internal/domain"
	"guide_paris/internal/shared"
	mysqlrepo "guide_paris/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.GMapsBase).
		Int("workers", cfg.Workers).
		Int("photos", cfg.PhotoCount).
		Msg("enricher starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := gmaps.New(cfg.GMapsBase, cfg.GMapsKey, cfg.GMapsRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Google Maps client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	enr := app.NewEnrichmentService(client, client, repo, cache, cfg.PhotoCount)
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var failed atomic.Int32

	for _, r := range catalog.Default().All() {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(r domain.Restaurant) {
			defer wg.Done()
			defer sem.Release(1)

			if err := enr.EnrichRestaurant(ctx, r); err != nil {
				failed.Add(1)
				log.Warn().Str("id", r.ID).Err(err).Msg("enrich failed")
				return
			}
			log.Info().Str("id", r.ID).Str("name", r.Name).Msg("enrich ok")
		}(r)
	}

	wg.Wait()
	log.Info().Int32("failed", failed.Load()).Msg("enrichment completed")
}
