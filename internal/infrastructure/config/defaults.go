package config

import (
	"fmt"
	"time"
)

// SetDefaults fills in any missing configuration values
func SetDefaults(cfg *Config) {
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "starforge.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = time.Hour
	}

	if cfg.Game.PlayerID == "" {
		cfg.Game.PlayerID = "commander"
	}
	if cfg.Game.CatalogPath == "" {
		cfg.Game.CatalogPath = "configs/catalog.yaml"
	}
	if cfg.Game.HangarCapacity == 0 {
		cfg.Game.HangarCapacity = 100
	}

	if cfg.Heartbeat.Period == 0 {
		cfg.Heartbeat.Period = time.Second
	}

	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
}

// ValidateConfig checks configuration consistency
func ValidateConfig(cfg *Config) error {
	switch cfg.Database.Type {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database type: %s", cfg.Database.Type)
	}

	if cfg.Game.HangarCapacity < 0 {
		return fmt.Errorf("hangar capacity cannot be negative: %d", cfg.Game.HangarCapacity)
	}
	for resource, amount := range cfg.Game.OpeningStock {
		if amount < 0 {
			return fmt.Errorf("opening stock for %s cannot be negative: %d", resource, amount)
		}
	}

	if cfg.Heartbeat.Period <= 0 {
		return fmt.Errorf("heartbeat period must be positive: %s", cfg.Heartbeat.Period)
	}

	if cfg.Metrics.Enabled && (cfg.Metrics.Port < 1 || cfg.Metrics.Port > 65535) {
		return fmt.Errorf("invalid metrics port: %d", cfg.Metrics.Port)
	}

	return nil
}
