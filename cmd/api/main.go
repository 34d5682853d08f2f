package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "hotel_concierge/internal/adapters/http_server"
	"hotel_concierge/internal/adapters/observability"
	redisad "hotel_concierge/internal/adapters/redis"
	"hotel_concierge/internal/app"
	"hotel_concierge/internal/dialogue"
	"hotel_concierge/internal/domain"
	"hotel_concierge/internal/session"
	"hotel_concierge/internal/shared"
	"hotel_concierge/internal/storage/memory"
	mysqlrepo "hotel_concierge/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Register()
	observability.Serve(cfg.MetricsAddr)

	repo := openRepo(ctx, cfg)
	cache := openCache(ctx, cfg)

	cat, err := app.LoadCatalog(ctx, repo, cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}

	router := dialogue.NewRouter(cat, session.NewMemoryStore(),
		dialogue.WithGazetteer(dialogue.MergeGazetteer(dialogue.DefaultGazetteer, cat.Areas())),
		dialogue.WithSearchLimit(cfg.SearchLimit),
		dialogue.WithWidenStep(cfg.WidenStep),
	)
	bookings := app.NewBookingService(repo, cat, cache, nil)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Chat:     app.NewChatService(router, repo, bookings, cache),
		Bookings: bookings,
		Q:        app.NewQueryService(repo, cat, cache, cfg.CacheTTL),
		Hotels:   cat,
		Limiter:  server.NewRateLimiter(cfg.ChatRPS, cfg.ChatBurst),
	})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Int("hotels", cat.Len()).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}

func openRepo(ctx context.Context, cfg shared.Config) domain.Repository {
	if cfg.MySQLDSN == "" {
		return memory.New()
	}
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")
	return mysqlrepo.New(db)
}

func openCache(ctx context.Context, cfg shared.Config) domain.Cache {
	if cfg.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR is empty, caching disabled")
		return redisad.Nop{}
	}
	c := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := c.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, reads will miss until it recovers")
	}
	return c
}
