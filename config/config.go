package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/project/bookshelf/internal/usecase/repository"
)

type (
	Config struct {
		GRPC
		Store
	}

	GRPC struct {
		Port        string `env:"GRPC_PORT"`
		GatewayPort string `env:"GRPC_GATEWAY_PORT"`
	}

	Store struct {
		IDStrategy repository.IDStrategy `env:"STORE_ID_STRATEGY"`
		Seed       bool                  `env:"STORE_SEED"`
	}
)

func getOrDefault(envName string, defaultValue string) string {
	if val, exist := os.LookupEnv(envName); exist {
		return val
	}
	return defaultValue
}

// NewConfig reads the configuration from the environment. Variables found
// in a .env file in the working directory are loaded first and never
// override ones already set.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error while loading .env file: %w", err)
	}

	cfg := &Config{}

	cfg.GRPC.Port = getOrDefault("GRPC_PORT", "9090")
	cfg.GRPC.GatewayPort = getOrDefault("GRPC_GATEWAY_PORT", "8080")

	strategy := getOrDefault("STORE_ID_STRATEGY", repository.IDStrategySequence.String())

	var ok bool
	cfg.Store.IDStrategy, ok = repository.ParseIDStrategy(strategy)

	if !ok {
		return nil, fmt.Errorf("error while parsing STORE_ID_STRATEGY: unsupported value %q", strategy)
	}

	var err error
	cfg.Store.Seed, err = strconv.ParseBool(getOrDefault("STORE_SEED", "true"))

	if err != nil {
		return nil, fmt.Errorf("error while parsing STORE_SEED: %w", err)
	}

	return cfg, nil
}
