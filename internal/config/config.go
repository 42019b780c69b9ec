package config

import (
	"errors"
	"fmt"

	"github.com/han-ian/tidis/internal/router"
	"github.com/han-ian/tidis/internal/storage"
)

var (
	ErrEmptyAddress = errors.New("config: server.address is empty")
	ErrEmptyDataDir = errors.New("config: storage.data_dir is empty")
	ErrTables       = errors.New("config: router.tables out of range")
)

type (
	Config struct {
		Server  ServerSection  `koanf:"server"`
		Storage StorageSection `koanf:"storage"`
		Router  RouterSection  `koanf:"router"`
		Log     LogSection     `koanf:"log"`
		Metrics MetricsSection `koanf:"metrics"`
	}

	ServerSection struct {
		Address string `koanf:"address"`
	}

	StorageSection struct {
		DataDir string `koanf:"data_dir"`
	}

	RouterSection struct {
		Tables int `koanf:"tables"`
	}

	LogSection struct {
		Level string `koanf:"level"`
	}

	// MetricsSection leaves the endpoint disabled when Address is empty.
	MetricsSection struct {
		Address string `koanf:"address"`
	}
)

func defaults() map[string]any {
	return map[string]any{
		"server.address":   ":6379",
		"storage.data_dir": "./data",
		"router.tables":    router.DefaultTables,
		"log.level":        "INFO",
		"metrics.address":  "",
	}
}

func (config *Config) Validate() error {
	if config.Server.Address == "" {
		return ErrEmptyAddress
	}

	if config.Storage.DataDir == "" {
		return ErrEmptyDataDir
	}

	if config.Router.Tables < 1 || config.Router.Tables > storage.MaxTables {
		return fmt.Errorf("%w: %d not in 1..%d", ErrTables, config.Router.Tables, storage.MaxTables)
	}

	return nil
}
