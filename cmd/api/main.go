package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"wedding_site/internal/adapters/geocode"
	server "wedding_site/internal/adapters/http_server"
	"wedding_site/internal/adapters/maps"
	"wedding_site/internal/adapters/observability"
	redisad "wedding_site/internal/adapters/redis"
	"wedding_site/internal/app"
	"wedding_site/internal/catalog"
	"wedding_site/internal/domain"
	"wedding_site/internal/pix"
	"wedding_site/internal/shared"
	"wedding_site/internal/storage/geocache"
)

func main() {
	cfg := shared.Load()

	// global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// location cache: redis blob when configured, local file otherwise
	var store domain.BlobStore = geocache.NewFileStore(cfg.CacheFile)
	if cfg.RedisAddr != "" {
		store = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis cache store")
	}
	cache := geocache.New(store)

	client := geocode.New(cfg.GeocodeBase, cfg.GoogleMapsKey, cfg.GeocodeRPS)
	resolver := app.NewResolver(client, cache)

	acc := app.NewAccommodationService(resolver, catalog.Accommodations())
	acc.Start(context.Background())

	provider := maps.New(cfg.MapProvider, cfg.GoogleMapsKey, maps.DefaultStyle())
	log.Info().Str("provider", provider.Name()).Msg("map provider selected")

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Acc:   acc,
		Map:   provider,
		Pix:   pix.NewConfig(cfg.PixCodes()),
		Gifts: catalog.Gifts(),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
