package main

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_concierge/internal/adapters/observability"
	"hotel_concierge/internal/app"
	"hotel_concierge/internal/catalog"
	"hotel_concierge/internal/domain"
	"hotel_concierge/internal/shared"
	mysqlrepo "hotel_concierge/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("path", cfg.CatalogPath).
		Int("workers", cfg.SyncWorkers).
		Msg("catalog sync starting")

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required for catalog sync")
	}
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	hotels, rowErrs, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog read failed")
	}
	for _, e := range rowErrs {
		log.Warn().Err(e).Msg("catalog row skipped")
	}

	ok, failed := run(ctx, app.NewCatalogSyncService(mysqlrepo.New(db)), hotels, cfg.SyncWorkers)
	log.Info().Int("synced", ok).Int("failed", failed).Int("skipped", len(rowErrs)).Msg("catalog sync completed")
}

// run upserts hotels with at most workers in flight.
func run(ctx context.Context, svc *app.CatalogSyncService, hotels []domain.Hotel, workers int) (int, int) {
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var ok, failed atomic.Int64

	for _, h := range hotels {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Error().Err(err).Msg("semaphore acquire failed")
			break
		}

		wg.Add(1)
		go func(h domain.Hotel) {
			defer wg.Done()
			defer sem.Release(1)

			if err := svc.SyncHotel(ctx, h); err != nil {
				failed.Add(1)
				ev := log.Warn()
				if !errors.Is(err, domain.ErrInvalid) {
					ev = log.Error()
				}
				ev.Str("id", h.ID).Err(err).Msg("hotel sync failed")
				return
			}
			ok.Add(1)
			log.Debug().Str("id", h.ID).Msg("hotel synced")
		}(h)
	}

	wg.Wait()
	return int(ok.Load()), int(failed.Load())
}
