package handlers

import (
	"context"
	"net/http"

	"github.com/remedia-ai/remedia/internal/api"
	"github.com/remedia-ai/remedia/internal/service"
)

type StatsService interface {
	Stats(ctx context.Context) *service.StatsOutput
}

// StatsHandler serves liveness and collection statistics.
type StatsHandler struct {
	stats         StatsService
	modelLoaded   bool
	summarizerSet bool
}

func NewStatsHandler(stats StatsService, modelLoaded, summarizerSet bool) *StatsHandler {
	return &StatsHandler{
		stats:         stats,
		modelLoaded:   modelLoaded,
		summarizerSet: summarizerSet,
	}
}

type HealthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	ModelLoaded bool   `json:"model_loaded"`
	Summarizer  bool   `json:"summarizer_configured"`
}

type StatsResponse struct {
	TotalRemedies int    `json:"total_remedies"`
	IndexName     string `json:"index_name"`
	Dimension     int    `json:"dimension"`
	Metric        string `json:"metric"`
	Status        string `json:"status"`
}

// Health handles GET /.
func (h *StatsHandler) Health(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		Service:     "Remedia RAG API",
		ModelLoaded: h.modelLoaded,
		Summarizer:  h.summarizerSet,
	})
}

// Stats handles GET /api/stats. An unreachable index reports an offline
// status rather than an error.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	out := h.stats.Stats(r.Context())
	api.JSON(w, http.StatusOK, StatsResponse{
		TotalRemedies: out.TotalRemedies,
		IndexName:     out.IndexName,
		Dimension:     out.Dimension,
		Metric:        out.Metric,
		Status:        out.Status,
	})
}
