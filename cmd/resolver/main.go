// Command resolver warms the geocoding cache for every catalog address,
// so the API serves resolved coordinates from the first request.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"wedding_site/internal/adapters/geocode"
	"wedding_site/internal/adapters/observability"
	redisad "wedding_site/internal/adapters/redis"
	"wedding_site/internal/app"
	"wedding_site/internal/catalog"
	"wedding_site/internal/domain"
	"wedding_site/internal/shared"
	"wedding_site/internal/storage/geocache"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	accoms := catalog.Accommodations()
	log.Info().
		Str("base", cfg.GeocodeBase).
		Int("addresses", len(accoms)).
		Bool("configured", cfg.GoogleMapsKey != "").
		Msg("resolver starting")

	var store domain.BlobStore = geocache.NewFileStore(cfg.CacheFile)
	if cfg.RedisAddr != "" {
		store = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	cache := geocache.New(store)

	client := geocode.New(cfg.GeocodeBase, cfg.GoogleMapsKey, cfg.GeocodeRPS)
	resolver := app.NewResolver(client, cache)

	pipeline := app.NewResolutionPipeline(resolver,
		app.WithObserver(func(st domain.ResolutionState, _ []domain.Accommodation) {
			log.Info().
				Int("progress", st.Progress).
				Int("total", st.Total).
				Int("failed", st.FailedCount).
				Msg("resolving")
		}))
	res := pipeline.Run(ctx, accoms)

	entries, _ := cache.Stats()
	ev := log.Info()
	if res.State.FailedCount > 0 {
		ev = log.Warn().Str("advisory", res.State.Error)
	}
	ev.
		Int("resolved", res.State.Progress-res.State.FailedCount).
		Int("failed", res.State.FailedCount).
		Int("cache_entries", entries).
		Msg("resolution completed")
}
