package service

import (
	"context"
	"log"

	"github.com/remedia-ai/remedia/internal/domain"
)

const (
	// StatusActive is reported when the index answered the count query.
	StatusActive = "active"
	// StatusOffline is reported when the index could not be reached.
	StatusOffline = "offline"
)

// StatsOutput describes the index collection for the stats endpoint.
type StatsOutput struct {
	TotalRemedies int
	IndexName     string
	Dimension     int
	Metric        string
	Status        string
}

// StatsService reports collection size and index health. An unreachable
// index degrades to an offline status instead of an error.
type StatsService struct {
	index     RemedyIndex
	indexName string
	dimension int
}

func NewStatsService(index RemedyIndex, indexName string, dimension int) *StatsService {
	return &StatsService{
		index:     index,
		indexName: indexName,
		dimension: dimension,
	}
}

// Stats returns the collection count, or an offline status when the index
// is unreachable. It never returns an error for index failures.
func (s *StatsService) Stats(ctx context.Context) *StatsOutput {
	out := &StatsOutput{
		IndexName: s.indexName,
		Dimension: s.dimension,
		Metric:    "cosine",
		Status:    StatusActive,
	}

	count, err := s.index.Count(ctx)
	if err != nil {
		log.Printf("stats: index unreachable: %v", domain.NewDomainErrorWithCause(domain.ErrCodeIndexUnreachable, "count failed", err))
		out.Status = StatusOffline
		return out
	}

	out.TotalRemedies = count
	return out
}
