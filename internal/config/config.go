package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, parsed from the environment.
// An empty DBDSN selects the in-memory store, which is the dev default.
type Config struct {
	HTTPAddr       string `env:"HTTP_ADDR" envDefault:":8080"`
	DBDSN          string `env:"DB_DSN"`
	CatalogDir     string `env:"CATALOG_DIR" envDefault:"./configs/catalog"`
	MigrationsDir  string `env:"MIGRATIONS_DIR" envDefault:"./migrations"`
	InventorySlots int    `env:"INVENTORY_SLOTS" envDefault:"20"`
	SeedPlayerID   string `env:"SEED_PLAYER_ID" envDefault:"demo-player"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.InventorySlots <= 0 {
		return Config{}, fmt.Errorf("INVENTORY_SLOTS must be positive, got %d", cfg.InventorySlots)
	}
	return cfg, nil
}
