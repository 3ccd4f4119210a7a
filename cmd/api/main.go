package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"guide_paris/internal/adapters/gmaps"
	server "guide_paris/internal/adapters/http_server"
	"guide_paris/internal/adapters/observability"
	redisad "guide_paris/internal/adapters/redis"
	"guide_paris/internal/app"
	"guide_paris/internal/catalog"
	"guide_paris/internal/navigation"
	"guide_paris/internal/shared"
	mysqlrepo "guide_paris/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis unreachable; serving uncached")
	}

	// deps
	cat := catalog.Default()
	repo := mysqlrepo.New(db)
	h := &server.Handlers{Q: app.NewQueryService(cat, navigation.Default(cat), repo, cache, cfg.CacheTTL)}
	if cfg.GMapsKey != "" {
		photos, err := gmaps.New(cfg.GMapsBase, cfg.GMapsKey, cfg.GMapsRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Google Maps client")
		}
		h.Photos = photos
	}
	if cfg.AdminEnabled() {
		h.Admin = app.NewAdminService(repo, cat)
		h.Auth = server.NewAuth(cfg.AdminUser, cfg.AdminPassHash, cfg.JWTSecret, cfg.TokenTTL)
	}
	log.Info().Int("restaurants", cat.Len()).Bool("admin", h.Admin != nil).Msg("catalog loaded")

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
