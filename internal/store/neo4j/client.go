// Package neo4j implements the domain store interfaces against a Neo4j graph
// of prediction-market trades. The graph is populated out-of-band; every
// query here is read-only.
package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// ClientConfig holds connection parameters for the Neo4j driver.
type ClientConfig struct {
	URI      string
	Username string
	Password string
}

// Client owns the process-wide Neo4j driver. It is created once at startup,
// shared by every store, and closed once during shutdown. Each query runs in
// its own session, so concurrent calls do not serialize on each other.
type Client struct {
	driver neo4j.DriverWithContext
}

// New creates the shared driver and verifies connectivity. A store that is
// unreachable or rejects the credentials surfaces as a DataAccessError of
// kind "unreachable".
func New(ctx context.Context, cfg ClientConfig) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, domain.NewUnreachableError("create driver", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, domain.NewUnreachableError("verify connectivity", err)
	}

	return &Client{driver: driver}, nil
}

// Close shuts down the shared driver. In-flight queries are abandoned rather
// than awaited; callers must ensure no new queries are issued afterwards.
func (c *Client) Close(ctx context.Context) error {
	if err := c.driver.Close(ctx); err != nil {
		return fmt.Errorf("neo4j: close driver: %w", err)
	}
	return nil
}

// runner is the seam between the stores and the driver. Tests substitute a
// fake that feeds canned records.
type runner interface {
	Read(ctx context.Context, op, cypher string, params map[string]any) ([]record, error)
}

// Read executes a single parameterized read query in its own session and
// returns the fully materialized records. The session is released on every
// exit path. Caller values travel exclusively through params; cypher text is
// never built from caller input.
func (c *Client) Read(ctx context.Context, op, cypher string, params map[string]any) ([]record, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	out, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		raw, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]record, 0, len(raw))
		for _, r := range raw {
			rows = append(rows, record(r.AsMap()))
		}
		return rows, nil
	})
	if err != nil {
		if neo4j.IsConnectivityError(err) {
			return nil, domain.NewUnreachableError(op, err)
		}
		return nil, domain.NewQueryError(op, err)
	}
	return out.([]record), nil
}
