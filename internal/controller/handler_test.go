package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"base-wrapped-api/internal/domain/entity"
	"base-wrapped-api/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWrappedService struct {
	stats *entity.WrappedStats
}

func (s *stubWrappedService) ComputeWrappedStats(ctx context.Context, address string) (*entity.WrappedStats, error) {
	return s.stats, nil
}

func (s *stubWrappedService) DemoStats() *entity.WrappedStats {
	return &entity.WrappedStats{TotalTransactions: 847, SuccessfulTransactions: 832, FailedTransactions: 15}
}

type stubReputationRepo struct {
	data *entity.BuilderData
}

func (s *stubReputationRepo) FetchBuilderData(ctx context.Context, address string) *entity.BuilderData {
	if s.data == nil {
		return &entity.BuilderData{}
	}
	return s.data
}

func newTestRouter(stats *entity.WrappedStats, builder *entity.BuilderData) http.Handler {
	handler := NewWrappedHandler(&stubWrappedService{stats: stats}, &stubReputationRepo{data: builder}, logger.NewNop())
	return NewRouter(handler)
}

func doRequest(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, wrappedResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var resp wrappedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestGetWrappedMissingAddress(t *testing.T) {
	router := newTestRouter(&entity.WrappedStats{}, nil)

	rec, resp := doRequest(t, router, "/api/wrapped")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestGetWrappedInvalidAddress(t *testing.T) {
	router := newTestRouter(&entity.WrappedStats{}, nil)

	rec, resp := doRequest(t, router, "/api/wrapped?address=nope")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}

func TestGetWrappedMergesReputation(t *testing.T) {
	score := 72
	builder := &entity.BuilderData{
		Score:     &score,
		Breakdown: entity.ScoreBreakdown{GitHub: 20},
		Profile:   &entity.TalentProfile{DisplayName: "builder.eth"},
		Socials: entity.SocialHandles{
			Farcaster: &entity.SocialAccount{Username: "builder"},
		},
		TopCredentials: []entity.CredentialRef{{Name: "GitHub Commits", Category: "GitHub", Points: 20}},
	}
	router := newTestRouter(&entity.WrappedStats{TotalTransactions: 12}, builder)

	rec, resp := doRequest(t, router, "/api/wrapped?address=0x1234567890abcdef1234567890abcdef12345678")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "0x1234567890abcdef1234567890abcdef12345678", resp.Address)
	assert.Empty(t, resp.Message)

	require.NotNil(t, resp.Stats)
	require.NotNil(t, resp.Stats.BuilderScore)
	assert.Equal(t, 72, *resp.Stats.BuilderScore)
	require.NotNil(t, resp.Stats.BuilderScoreBreakdown)
	assert.Equal(t, 20.0, resp.Stats.BuilderScoreBreakdown.GitHub)
	require.NotNil(t, resp.Stats.TalentProfile)
	require.NotNil(t, resp.Stats.Socials)
	require.NotNil(t, resp.Stats.Socials.Farcaster)
	require.Len(t, resp.Stats.TopCredentials, 1)
}

func TestGetWrappedZeroTransactionsMessage(t *testing.T) {
	router := newTestRouter(&entity.WrappedStats{}, nil)

	rec, resp := doRequest(t, router, "/api/wrapped?address=0x1234567890abcdef1234567890abcdef12345678")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "No transactions found for this address on Base", resp.Message)
}

func TestGetDemo(t *testing.T) {
	router := newTestRouter(&entity.WrappedStats{}, nil)

	rec, resp := doRequest(t, router, "/api/wrapped/demo")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Stats)
	assert.Greater(t, resp.Stats.TotalTransactions, 0)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&entity.WrappedStats{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
