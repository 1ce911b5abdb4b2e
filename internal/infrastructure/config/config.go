package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Game      GameConfig      `mapstructure:"game"`
	Heartbeat HeartbeatConfig `mapstructure:"heartbeat"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// DatabaseConfig holds the snapshot store settings
type DatabaseConfig struct {
	Type     string     `mapstructure:"type"` // "sqlite" or "postgres"
	Path     string     `mapstructure:"path"` // sqlite file path or ":memory:"
	URL      string     `mapstructure:"url"`  // postgres connection string
	Host     string     `mapstructure:"host"`
	Port     int        `mapstructure:"port"`
	User     string     `mapstructure:"user"`
	Password string     `mapstructure:"password"`
	Name     string     `mapstructure:"name"`
	SSLMode  string     `mapstructure:"sslmode"`
	Pool     PoolConfig `mapstructure:"pool"`
}

// PoolConfig holds connection pool settings (postgres only)
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open"`
	MaxIdle     int           `mapstructure:"max_idle"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}

// GameConfig holds the per-player simulation settings
type GameConfig struct {
	PlayerID       string         `mapstructure:"player_id"`
	CatalogPath    string         `mapstructure:"catalog_path"`
	HangarCapacity int            `mapstructure:"hangar_capacity"`
	OpeningStock   map[string]int `mapstructure:"opening_stock"`
}

// HeartbeatConfig holds the tick driver settings
type HeartbeatConfig struct {
	Period time.Duration `mapstructure:"period"`
}

// MetricsConfig holds the Prometheus endpoint settings
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (config.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/starforge")
	}

	v.SetEnvPrefix("SF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional - don't error if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// DATABASE_URL is honored without the SF_ prefix for parity with
	// common deployment tooling
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		v.Set("database.url", dbURL)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// viper lowercases map keys; resource identifiers are canonically
	// upper-case
	if len(cfg.Game.OpeningStock) > 0 {
		stock := make(map[string]int, len(cfg.Game.OpeningStock))
		for res, amount := range cfg.Game.OpeningStock {
			stock[strings.ToUpper(res)] = amount
		}
		cfg.Game.OpeningStock = stock
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
