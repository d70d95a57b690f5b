package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/remedia-ai/remedia/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Stats(ctx context.Context) *service.StatsOutput {
	args := m.Called(ctx)
	return args.Get(0).(*service.StatsOutput)
}

func TestStatsHandler_Health(t *testing.T) {
	handler := NewStatsHandler(new(MockStatsService), true, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.Health(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "Remedia RAG API", resp.Service)
	assert.True(t, resp.ModelLoaded)
	assert.False(t, resp.Summarizer)
}

func TestStatsHandler_Stats_Active(t *testing.T) {
	mockStats := new(MockStatsService)
	handler := NewStatsHandler(mockStats, true, true)

	mockStats.On("Stats", mock.Anything).Return(&service.StatsOutput{
		TotalRemedies: 120,
		IndexName:     "homeopathy_remedies",
		Dimension:     1536,
		Metric:        "cosine",
		Status:        service.StatusActive,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()
	handler.Stats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 120, resp.TotalRemedies)
	assert.Equal(t, "homeopathy_remedies", resp.IndexName)
	assert.Equal(t, 1536, resp.Dimension)
	assert.Equal(t, "cosine", resp.Metric)
	assert.Equal(t, "active", resp.Status)
	mockStats.AssertExpectations(t)
}

func TestStatsHandler_Stats_Offline(t *testing.T) {
	mockStats := new(MockStatsService)
	handler := NewStatsHandler(mockStats, true, true)

	mockStats.On("Stats", mock.Anything).Return(&service.StatsOutput{
		IndexName: "homeopathy_remedies",
		Dimension: 1536,
		Metric:    "cosine",
		Status:    service.StatusOffline,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()
	handler.Stats(w, req)

	// An unreachable index degrades the payload, not the status code
	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "offline", resp.Status)
	assert.Equal(t, 0, resp.TotalRemedies)
}
