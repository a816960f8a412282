// Package config binds store configuration from the environment and
// assembles the matching backend.
//
// Overview:
//   - Responsibility: Environment-driven store configuration with validation
//   - Key Types: Config struct with env tags, Load and Open functions
//   - Concurrency Model: Config values are plain data, safe to share after Load
//   - Error Semantics: Binding and validation failures surface as CONFIG errors
//
// Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//	store, err := config.Open(cfg, logger)
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/keelworks/storekit"
	"github.com/keelworks/storekit/errors"
	"github.com/keelworks/storekit/filestore"
	"github.com/keelworks/storekit/format"
	"github.com/keelworks/storekit/log"
	"github.com/keelworks/storekit/pgstore"
)

// Config holds store settings. All fields are read from environment
// variables.
type Config struct {
	// Backend selects the storage backend.
	Backend string `env:"STORE_BACKEND" envDefault:"file" validate:"oneof=file postgres mysql sqlite"`

	// Address is the store root: a path or file:// URL for the file
	// backend, a connection string for the relational backends.
	Address string `env:"STORE_ADDRESS" validate:"required"`

	// Format selects the payload codec.
	Format string `env:"STORE_FORMAT" envDefault:"json" validate:"oneof=json cbor"`

	// Pool settings, relational backends only.
	MaxIdleConns    int           `env:"STORE_MAX_IDLE_CONNS" envDefault:"10" validate:"min=0"`
	MaxOpenConns    int           `env:"STORE_MAX_OPEN_CONNS" envDefault:"100" validate:"min=0"`
	ConnMaxLifetime time.Duration `env:"STORE_CONN_MAX_LIFETIME" envDefault:"1h"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(errors.CodeConfig, "config.load", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errors.Wrap(errors.CodeConfig, "config.load", err)
	}
	return &cfg, nil
}

// StorageFormat returns the configured payload codec.
func (c *Config) StorageFormat() storekit.Format {
	if c.Format == "cbor" {
		return format.CBOR{}
	}
	return format.JSON{}
}

// Open assembles the backend the configuration names. The returned client
// also implements storekit.Store for registry use.
func Open(cfg *Config, logger log.Logger) (storekit.Client, error) {
	switch cfg.Backend {
	case "file":
		return filestore.New(cfg.Address, cfg.StorageFormat(), filestore.WithLogger(logger))
	case "postgres", "mysql", "sqlite":
		return pgstore.New(cfg.Address,
			pgstore.WithDriver(cfg.Backend),
			pgstore.WithLogger(logger),
			pgstore.WithPoolLimits(cfg.MaxIdleConns, cfg.MaxOpenConns),
			pgstore.WithConnMaxLifetime(cfg.ConnMaxLifetime))
	default:
		return nil, errors.Newf(errors.CodeConfig, "unsupported backend %q", cfg.Backend)
	}
}
