package service

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development" env-description:"deployment environment"`
	Port        string `env:"PORT" env-default:"8000" env-description:"HTTP listen port"`
	BaseURL     string `env:"BASE_URL" env-default:"http://localhost:8000" env-description:"absolute site URL used in meta tags"`
	PublicDir   string `env:"PUBLIC_DIR" env-default:"public" env-description:"static asset directory"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`

	Feed struct {
		URL         string        `env:"FEED_URL" env-default:"https://feeds.behold.so/t2cK9m9tg80BDruckAjN" env-description:"Instagram feed aggregation endpoint"`
		RateLimit   float64       `env:"FEED_RATE_LIMIT" env-default:"2" env-description:"feed requests per second per client"`
		RateBurst   int           `env:"FEED_RATE_BURST" env-default:"5" env-description:"feed request burst per client"`
		ProbeImages bool          `env:"FEED_PROBE_IMAGES" env-default:"false" env-description:"HEAD-check tile images before rendering (extra upstream requests)"`
	}

	Sentry struct {
		DSN string `env:"SENTRY_DSN" env-description:"Sentry DSN; error logs are forwarded when set"`
	}
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("read configuration: %w\n%s", err, help)
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
