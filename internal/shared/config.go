package shared

import (
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"prod"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9100"`

	// One Google key covers both the Geocoding API and the Maps JS
	// embed; its absence is a handled state, not an error.
	GeocodeBase   string `env:"GEOCODE_BASE_URL" envDefault:"https://maps.googleapis.com/maps/api/geocode/json"`
	GoogleMapsKey string `env:"GOOGLE_MAPS_API_KEY"`
	GeocodeRPS    int    `env:"GEOCODE_RPS" envDefault:"5"`

	MapProvider string `env:"MAP_PROVIDER" envDefault:"google"` // google|leaflet

	// Location cache persistence: local file by default, redis when an
	// address is set.
	CacheFile string `env:"GEOCACHE_FILE" envDefault:"geocoding_cache.json"`
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB"`

	PixCode50   string `env:"PIX_CODE_50"`
	PixCode100  string `env:"PIX_CODE_100"`
	PixCode250  string `env:"PIX_CODE_250"`
	PixCode500  string `env:"PIX_CODE_500"`
	PixCode1000 string `env:"PIX_CODE_1000"`
	PixCode2000 string `env:"PIX_CODE_2000"`
}

func Load() Config {
	var c Config
	if err := env.Parse(&c); err != nil {
		log.Fatal().Err(err).Msg("config parse failed")
	}
	if c.GoogleMapsKey == "" {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY is empty; geocoding disabled, map degrades to placeholder")
	}
	return c
}

// PixCodes is the amount→code table handed to the pix config.
func (c Config) PixCodes() map[int]string {
	return map[int]string{
		50:   c.PixCode50,
		100:  c.PixCode100,
		250:  c.PixCode250,
		500:  c.PixCode500,
		1000: c.PixCode1000,
		2000: c.PixCode2000,
	}
}
