package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

type fakeStatsService struct {
	stats domain.DatabaseStats
	err   error
}

func (f *fakeStatsService) DatabaseStats(ctx context.Context) (domain.DatabaseStats, error) {
	return f.stats, f.err
}

func TestDatabaseStats(t *testing.T) {
	svc := &fakeStatsService{stats: domain.DatabaseStats{
		Nodes:         map[string]int64{"Trade": 500},
		Relationships: map[string]int64{"PLACED_TRADE": 500},
		Stats:         domain.GraphTotals{TotalTrades: 500, TotalVolumeUSD: 12345.67},
		Health:        domain.HealthStatus{Status: "healthy", Timestamp: "2024-01-01T00:00:00Z"},
	}}
	h := NewStatsHandler(svc, discardLogger())

	rec := httptest.NewRecorder()
	h.DatabaseStats(rec, httptest.NewRequest(http.MethodGet, "/api/stats/database", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	nodes := data["nodes"].(map[string]any)
	require.Equal(t, 500.0, nodes["Trade"])
	health := data["health"].(map[string]any)
	require.Equal(t, "healthy", health["status"])
}

func TestDatabaseStatsFailure(t *testing.T) {
	svc := &fakeStatsService{
		err: domain.NewUnreachableError("node counts", errors.New("refused")),
	}
	h := NewStatsHandler(svc, discardLogger())

	rec := httptest.NewRecorder()
	h.DatabaseStats(rec, httptest.NewRequest(http.MethodGet, "/api/stats/database", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	h := NewHealthHandler()

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.NotEmpty(t, body["timestamp"])
}
