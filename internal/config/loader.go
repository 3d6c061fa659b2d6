package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path (if it exists), merges it on
// top of the built-in defaults, applies POLYAN_* environment variable
// overrides, and returns the final Config. The returned Config has NOT been
// validated; the caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known POLYAN_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This
// lets operators inject the store credentials at deploy time without
// touching the TOML file.
func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Neo4j.URI, "POLYAN_NEO4J_URI")
	setStr(&cfg.Neo4j.Username, "POLYAN_NEO4J_USERNAME")
	setStr(&cfg.Neo4j.Password, "POLYAN_NEO4J_PASSWORD")

	setInt(&cfg.Server.Port, "POLYAN_SERVER_PORT")
	setStringSlice(&cfg.Server.CORSOrigins, "POLYAN_SERVER_CORS_ORIGINS")

	setInt(&cfg.Analytics.MarketPool, "POLYAN_ANALYTICS_MARKET_POOL")
	setInt(&cfg.Analytics.TraderPool, "POLYAN_ANALYTICS_TRADER_POOL")
	setInt(&cfg.Analytics.FlowPool, "POLYAN_ANALYTICS_FLOW_POOL")
	setInt(&cfg.Analytics.FlowMinTrades, "POLYAN_ANALYTICS_FLOW_MIN_TRADES")
	setInt(&cfg.Analytics.FlowMaxRows, "POLYAN_ANALYTICS_FLOW_MAX_ROWS")

	setStr(&cfg.LogLevel, "POLYAN_LOG_LEVEL")
}

// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
		}
	}
}
