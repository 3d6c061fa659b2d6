// Package config defines the analyzer configuration and provides validation
// helpers.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by POLYAN_* environment variables.
type Config struct {
	Neo4j     Neo4jConfig     `toml:"neo4j"`
	Server    ServerConfig    `toml:"server"`
	Analytics AnalyticsConfig `toml:"analytics"`
	LogLevel  string          `toml:"log_level"`
}

// Neo4jConfig holds graph store connection parameters. The password is
// normally supplied via POLYAN_NEO4J_PASSWORD rather than the TOML file.
type Neo4jConfig struct {
	URI      string `toml:"uri"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// AnalyticsConfig holds the bounded-candidate-pool sizes for the
// relationship aggregations. These are scalability bounds, not correctness
// thresholds: entities outside the pools are not considered.
type AnalyticsConfig struct {
	MarketPool    int `toml:"market_pool"`
	TraderPool    int `toml:"trader_pool"`
	FlowPool      int `toml:"flow_pool"`
	FlowMinTrades int `toml:"flow_min_trades"`
	FlowMaxRows   int `toml:"flow_max_rows"`
}

// Defaults returns the built-in configuration used when a field is absent
// from both the TOML file and the environment.
func Defaults() Config {
	return Config{
		Neo4j: Neo4jConfig{
			URI:      "bolt://localhost:7687",
			Username: "neo4j",
		},
		Server: ServerConfig{
			Port:        3001,
			CORSOrigins: []string{"*"},
		},
		Analytics: AnalyticsConfig{
			MarketPool:    200,
			TraderPool:    150,
			FlowPool:      200,
			FlowMinTrades: 5,
			FlowMaxRows:   100,
		},
		LogLevel: "info",
	}
}

// Validate checks the configuration for missing or out-of-range values and
// returns a single error listing every problem found.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Neo4j.URI) == "" {
		errs = append(errs, "neo4j.uri is required")
	}
	if strings.TrimSpace(c.Neo4j.Username) == "" {
		errs = append(errs, "neo4j.username is required")
	}
	if c.Neo4j.Password == "" {
		errs = append(errs, "neo4j.password is required (set POLYAN_NEO4J_PASSWORD)")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port %d out of range", c.Server.Port))
	}
	if c.Analytics.MarketPool <= 0 {
		errs = append(errs, "analytics.market_pool must be positive")
	}
	if c.Analytics.TraderPool <= 0 {
		errs = append(errs, "analytics.trader_pool must be positive")
	}
	if c.Analytics.FlowPool <= 0 {
		errs = append(errs, "analytics.flow_pool must be positive")
	}
	if c.Analytics.FlowMinTrades <= 0 {
		errs = append(errs, "analytics.flow_min_trades must be positive")
	}
	if c.Analytics.FlowMaxRows <= 0 {
		errs = append(errs, "analytics.flow_max_rows must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
