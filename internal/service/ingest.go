package service

import (
	"context"
	"log"

	"github.com/remedia-ai/remedia/internal/domain"
	"github.com/remedia-ai/remedia/internal/telemetry"
)

// DefaultIngestBatchSize is how many chunks are embedded per API call.
const DefaultIngestBatchSize = 50

// RemedyWriter defines the index operations used during ingestion.
type RemedyWriter interface {
	Upsert(ctx context.Context, chunk domain.RemedyChunk, embedding []float32) error
}

// IngestService drives the offline batch pipeline: embed each chunk's full
// text, then upsert (id, vector, metadata) into the index. Chunks are
// processed independently; a failure on one is recorded and skipped while
// the run continues.
type IngestService struct {
	embedding EmbeddingClient
	index     RemedyWriter
	batchSize int
}

func NewIngestService(embedding EmbeddingClient, index RemedyWriter) *IngestService {
	return &IngestService{
		embedding: embedding,
		index:     index,
		batchSize: DefaultIngestBatchSize,
	}
}

// Ingest embeds and upserts every chunk, returning a report of successes
// and per-chunk failures. Re-running on the same chunks is idempotent:
// upserts overwrite by id.
func (s *IngestService) Ingest(ctx context.Context, chunks []domain.RemedyChunk) (*domain.IngestReport, error) {
	ctx, span := telemetry.StartSpan(ctx, "IngestService.Ingest", telemetry.SpanAttributes{
		Operation: "ingest",
	})
	defer span.End()

	report := &domain.IngestReport{}

	for start := 0; start < len(chunks); start += s.batchSize {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		end := start + s.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		s.ingestBatch(ctx, chunks[start:end], report)
	}

	return report, nil
}

func (s *IngestService) ingestBatch(ctx context.Context, batch []domain.RemedyChunk, report *domain.IngestReport) {
	valid := make([]domain.RemedyChunk, 0, len(batch))
	for _, chunk := range batch {
		if err := chunk.Validate(); err != nil {
			report.Failed = append(report.Failed, failure(chunk, err))
			continue
		}
		valid = append(valid, chunk)
	}
	if len(valid) == 0 {
		return
	}

	texts := make([]string, len(valid))
	for i, chunk := range valid {
		texts[i] = chunk.FullText
	}

	vectors, err := s.embedding.GenerateEmbeddings(ctx, texts)
	if err != nil {
		// Batch embedding failed as a whole; retry chunks one by one so a
		// single bad input does not take down its batch-mates.
		log.Printf("ingest: batch embedding failed, retrying individually: %v", err)
		s.ingestIndividually(ctx, valid, report)
		return
	}

	for i, chunk := range valid {
		s.upsert(ctx, chunk, vectors[i], report)
	}
}

func (s *IngestService) ingestIndividually(ctx context.Context, chunks []domain.RemedyChunk, report *domain.IngestReport) {
	for _, chunk := range chunks {
		vector, err := s.embedding.GenerateEmbedding(ctx, chunk.FullText)
		if err != nil {
			embedErr := domain.NewDomainErrorWithCause(domain.ErrCodeModelUnavailable, "failed to embed chunk", err)
			report.Failed = append(report.Failed, failure(chunk, embedErr))
			continue
		}
		s.upsert(ctx, chunk, vector, report)
	}
}

func (s *IngestService) upsert(ctx context.Context, chunk domain.RemedyChunk, vector []float32, report *domain.IngestReport) {
	if err := s.index.Upsert(ctx, chunk, vector); err != nil {
		upsertErr := domain.NewDomainErrorWithCause(domain.ErrCodeIndexUnreachable, "failed to upsert chunk", err)
		report.Failed = append(report.Failed, failure(chunk, upsertErr))
		return
	}
	report.Succeeded++
}

func failure(chunk domain.RemedyChunk, err error) domain.IngestFailure {
	return domain.IngestFailure{
		ID:         chunk.ID,
		RemedyName: chunk.RemedyName,
		Reason:     err.Error(),
	}
}
