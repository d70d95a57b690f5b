package service

import (
	"context"
	"strings"
	"time"

	"github.com/remedia-ai/remedia/internal/domain"
	"github.com/remedia-ai/remedia/internal/telemetry"
)

const (
	// DefaultTopK is used when a request omits top_k.
	DefaultTopK = 5
	// MaxTopK bounds how many results a single query may request.
	MaxTopK = 50
)

// EmbeddingClient defines the interface for generating embeddings
type EmbeddingClient interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// RemedyIndex defines the vector index operations used at query time.
type RemedyIndex interface {
	Search(ctx context.Context, embedding []float32, limit int) ([]*domain.SearchResult, error)
	Count(ctx context.Context) (int, error)
}

// SearchInput carries a validated-at-the-boundary retrieval request.
type SearchInput struct {
	Query string
	TopK  int
}

// SearchOutput is the retrieval result set plus elapsed wall time.
type SearchOutput struct {
	Results   []*domain.SearchResult
	ElapsedMS float64
}

// SearchService embeds queries and retrieves nearest-neighbor remedies.
type SearchService struct {
	embedding EmbeddingClient
	index     RemedyIndex
}

func NewSearchService(embedding EmbeddingClient, index RemedyIndex) *SearchService {
	return &SearchService{embedding: embedding, index: index}
}

// ValidateInput checks a search request and fills in the default top_k.
func ValidateInput(input *SearchInput) error {
	if strings.TrimSpace(input.Query) == "" {
		return domain.ErrEmptyQuery
	}
	if input.TopK == 0 {
		input.TopK = DefaultTopK
	}
	if input.TopK < 1 || input.TopK > MaxTopK {
		return domain.ErrInvalidTopK
	}
	return nil
}

// Search embeds the query and returns up to TopK results in the index's
// relevance order. An empty index yields an empty result set, not an error.
func (s *SearchService) Search(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	if err := ValidateInput(&input); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartSpan(ctx, "SearchService.Search", telemetry.SpanAttributes{
		Query:     input.Query,
		Operation: "search",
	})
	defer span.End()

	start := time.Now()

	embedding, err := s.embedding.GenerateEmbedding(ctx, input.Query)
	if err != nil {
		wrapped := domain.NewDomainErrorWithCause(domain.ErrCodeModelUnavailable, "failed to embed query", err)
		span.SetError(wrapped)
		return nil, wrapped
	}

	results, err := s.index.Search(ctx, embedding, input.TopK)
	if err != nil {
		wrapped := domain.NewDomainErrorWithCause(domain.ErrCodeIndexUnreachable, "vector index query failed", err)
		span.SetError(wrapped)
		return nil, wrapped
	}

	return &SearchOutput{
		Results:   results,
		ElapsedMS: float64(time.Since(start).Microseconds()) / 1000.0,
	}, nil
}
