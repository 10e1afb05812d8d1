package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name     string `envconfig:"NAME" default:"tzconv"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
		NoColor  bool   `envconfig:"NO_COLOR"`
		Catalog  struct {
			ZoneInfoDirs []string `envconfig:"ZONEINFO_DIRS"`
		} `envconfig:"CATALOG"`
		Trace struct {
			Enable bool `envconfig:"ENABLE"`
		} `envconfig:"TRACE"`
	} `envconfig:"TZCONV"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Load reads the process environment into a fresh Config without touching the cached one.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment variables: %w", err)
	}

	return &cfg, nil
}

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Debug().Err(loadErr).Msg("No .env file loaded, continuing with existing environment variables")
		} else {
			log.Debug().Msg("Loaded variables from .env file into environment")
		}

		var cfg *Config

		cfg, err = Load()
		if err != nil {
			return
		}

		conf = *cfg
		initialized = true

		log.Debug().Str("name", conf.App.Name).Msg("Configuration initialized")
	})

	return err
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
