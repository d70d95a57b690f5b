package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"github.com/remedia-ai/remedia/internal/domain"
)

// RemedyRepository persists remedy chunks and their embeddings in the
// remedies table and serves nearest-neighbor queries over them.
type RemedyRepository struct {
	pool *pgxpool.Pool
}

func NewRemedyRepository(pool *pgxpool.Pool) *RemedyRepository {
	return &RemedyRepository{pool: pool}
}

// Upsert writes a chunk and its embedding in a single statement. Upserting
// an existing id overwrites the stored record, so re-ingestion never
// duplicates and never leaves a vector without its metadata.
func (r *RemedyRepository) Upsert(ctx context.Context, chunk domain.RemedyChunk, embedding []float32) error {
	now := time.Now().UTC()
	createdAt := chunk.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO remedies
			(id, remedy_name, alternative_names, preview, full_text, embedding, created_at, updated_at)
		 VALUES
			($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
			remedy_name = EXCLUDED.remedy_name,
			alternative_names = EXCLUDED.alternative_names,
			preview = EXCLUDED.preview,
			full_text = EXCLUDED.full_text,
			embedding = EXCLUDED.embedding,
			updated_at = EXCLUDED.updated_at`,
		chunk.ID,
		chunk.RemedyName,
		chunk.AlternativeNames,
		chunk.Preview,
		chunk.FullText,
		pgvector.NewVector(embedding),
		createdAt,
		now,
	)
	return err
}

// Search returns up to limit nearest neighbors of the query embedding by
// cosine distance, closest first. The index's ordering is preserved; the
// similarity reported is 1 - distance, clamped to [0,1].
func (r *RemedyRepository) Search(ctx context.Context, embedding []float32, limit int) ([]*domain.SearchResult, error) {
	if limit <= 0 {
		limit = 5
	}

	vec := pgvector.NewVector(embedding)

	rows, err := r.pool.Query(ctx,
		`SELECT id, remedy_name, alternative_names, preview, full_text,
		        1.0 - (embedding <=> $1) AS similarity
		 FROM remedies
		 ORDER BY embedding <=> $1
		 LIMIT $2`,
		vec, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]*domain.SearchResult, 0, limit)
	for rows.Next() {
		var result domain.SearchResult
		if err := rows.Scan(
			&result.ID,
			&result.RemedyName,
			&result.AlternativeNames,
			&result.TextPreview,
			&result.FullText,
			&result.Similarity,
		); err != nil {
			return nil, err
		}
		if result.Similarity < 0 {
			result.Similarity = 0
		} else if result.Similarity > 1 {
			result.Similarity = 1
		}
		results = append(results, &result)
	}

	return results, rows.Err()
}

// Count returns the number of ingested remedy chunks.
func (r *RemedyRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM remedies`).Scan(&count)
	return count, err
}

// GetByID fetches a single chunk's metadata, without its embedding.
func (r *RemedyRepository) GetByID(ctx context.Context, id string) (*domain.RemedyChunk, error) {
	var chunk domain.RemedyChunk
	err := r.pool.QueryRow(ctx,
		`SELECT id, remedy_name, alternative_names, preview, full_text, created_at, updated_at
		 FROM remedies WHERE id = $1`,
		id,
	).Scan(
		&chunk.ID,
		&chunk.RemedyName,
		&chunk.AlternativeNames,
		&chunk.Preview,
		&chunk.FullText,
		&chunk.CreatedAt,
		&chunk.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chunk, nil
}
