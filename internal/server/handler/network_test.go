package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

type fakeNetworkService struct {
	links       []domain.TraderLink
	marketLinks []domain.MarketLink
	transitions []domain.CategoryTransition
	err         error

	params domain.NetworkParams
}

func (f *fakeNetworkService) TraderNetwork(ctx context.Context, p domain.NetworkParams) ([]domain.TraderLink, error) {
	f.params = p
	return f.links, f.err
}

func (f *fakeNetworkService) MarketCorrelation(ctx context.Context, p domain.NetworkParams) ([]domain.MarketLink, error) {
	f.params = p
	return f.marketLinks, f.err
}

func (f *fakeNetworkService) CategoryFlow(ctx context.Context) ([]domain.CategoryTransition, error) {
	return f.transitions, f.err
}

func TestTraderNetworkDefaults(t *testing.T) {
	svc := &fakeNetworkService{}
	h := NewNetworkHandler(svc, discardLogger())

	rec := httptest.NewRecorder()
	h.TraderNetwork(rec, httptest.NewRequest(http.MethodGet, "/api/network/traders", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 2, svc.params.MinShared)
	require.Equal(t, 50, svc.params.Limit)
}

func TestMarketCorrelationDefaults(t *testing.T) {
	svc := &fakeNetworkService{}
	h := NewNetworkHandler(svc, discardLogger())

	rec := httptest.NewRecorder()
	h.MarketCorrelation(rec, httptest.NewRequest(http.MethodGet, "/api/network/markets", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 3, svc.params.MinShared)
	require.Equal(t, 50, svc.params.Limit)
}

func TestNetworkParamsValidation(t *testing.T) {
	h := NewNetworkHandler(&fakeNetworkService{}, discardLogger())

	for _, query := range []string{"minShared=0", "limit=0", "limit=101"} {
		rec := httptest.NewRecorder()
		h.TraderNetwork(rec, httptest.NewRequest(http.MethodGet, "/api/network/traders?"+query, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestTraderNetworkEnvelope(t *testing.T) {
	svc := &fakeNetworkService{links: []domain.TraderLink{{
		Trader1:       domain.NetworkTrader{Address: "0xaaa"},
		Trader2:       domain.NetworkTrader{Address: "0xbbb"},
		SharedMarkets: 4,
	}}}
	h := NewNetworkHandler(svc, discardLogger())

	rec := httptest.NewRecorder()
	h.TraderNetwork(rec, httptest.NewRequest(http.MethodGet, "/api/network/traders?minShared=4", nil))

	body := decodeEnvelope(t, rec)
	require.Equal(t, true, body["success"])
	require.Equal(t, 1.0, body["count"])
	filters := body["filters"].(map[string]any)
	require.Equal(t, 4.0, filters["minShared"])
}

func TestCategoryFlowNoFilters(t *testing.T) {
	svc := &fakeNetworkService{transitions: []domain.CategoryTransition{
		{From: "Crypto", To: "Politics", Value: 7},
	}}
	h := NewNetworkHandler(svc, discardLogger())

	rec := httptest.NewRecorder()
	h.CategoryFlow(rec, httptest.NewRequest(http.MethodGet, "/api/flow/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	require.Equal(t, 1.0, body["count"])
	require.NotContains(t, body, "filters")
}

func TestNetworkStoreFailure(t *testing.T) {
	svc := &fakeNetworkService{
		err: domain.NewQueryError("trader network", errors.New("boom")),
	}
	h := NewNetworkHandler(svc, discardLogger())

	rec := httptest.NewRecorder()
	h.TraderNetwork(rec, httptest.NewRequest(http.MethodGet, "/api/network/traders", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
