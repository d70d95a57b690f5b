//go:build integration

package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/remedia-ai/remedia/internal/domain"
	"github.com/remedia-ai/remedia/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDimension = 1536

var (
	setupOnce sync.Once
	testPool  *pgxpool.Pool
)

// newTestRepo returns a repository backed by a shared pgvector container,
// with the remedies table truncated for isolation.
func newTestRepo(ctx context.Context, t *testing.T) *RemedyRepository {
	t.Helper()

	setupOnce.Do(func() {
		pc := testutil.NewPostgresContainer(ctx, t)
		testPool = testutil.NewTestPool(ctx, t, pc, "../../migrations")
	})
	if testPool == nil {
		t.Fatal("test database unavailable")
	}
	require.NoError(t, testutil.TruncateAll(ctx, testPool))

	return NewRemedyRepository(testPool)
}

// unitVector returns a 1536-dim unit vector pointing along the given axis.
func unitVector(axis int) []float32 {
	v := make([]float32, testDimension)
	v[axis] = 1
	return v
}

func testChunk(id, name, text string) domain.RemedyChunk {
	return domain.RemedyChunk{
		ID:               id,
		RemedyName:       name,
		AlternativeNames: "",
		FullText:         text,
		Preview:          domain.MakePreview(text, domain.DefaultPreviewChars),
	}
}

func TestRemedyRepository_UpsertAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(ctx, t)

	chunk := testChunk("chunk_0", "Belladonna", "Violent delirium, red face, throbbing carotids.")
	require.NoError(t, repo.Upsert(ctx, chunk, unitVector(0)))

	retrieved, err := repo.GetByID(ctx, "chunk_0")
	require.NoError(t, err)
	assert.Equal(t, "Belladonna", retrieved.RemedyName)
	assert.Equal(t, chunk.FullText, retrieved.FullText)
	assert.Equal(t, chunk.Preview, retrieved.Preview)
	assert.False(t, retrieved.CreatedAt.IsZero())
}

func TestRemedyRepository_Upsert_OverwritesByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(ctx, t)

	require.NoError(t, repo.Upsert(ctx, testChunk("chunk_0", "Belladonna", "First version."), unitVector(0)))
	require.NoError(t, repo.Upsert(ctx, testChunk("chunk_0", "Belladonna", "Second version."), unitVector(1)))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	retrieved, err := repo.GetByID(ctx, "chunk_0")
	require.NoError(t, err)
	assert.Equal(t, "Second version.", retrieved.FullText)
}

func TestRemedyRepository_Search_OrdersBySimilarity(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(ctx, t)

	require.NoError(t, repo.Upsert(ctx, testChunk("chunk_0", "Belladonna", "Sudden onset."), unitVector(0)))
	require.NoError(t, repo.Upsert(ctx, testChunk("chunk_1", "Bryonia", "Worse from motion."), unitVector(1)))
	require.NoError(t, repo.Upsert(ctx, testChunk("chunk_2", "Sulphur", "Burning everywhere."), unitVector(2)))

	// Query close to chunk_1's vector
	query := make([]float32, testDimension)
	query[1] = 0.9
	query[0] = 0.1

	results, err := repo.Search(ctx, query, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "chunk_1", results[0].ID)
	assert.Equal(t, "chunk_0", results[1].ID)
	assert.GreaterOrEqual(t, results[0].Similarity, results[1].Similarity)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Similarity, float32(0))
		assert.LessOrEqual(t, r.Similarity, float32(1))
	}
}

func TestRemedyRepository_Search_EmptyIndex(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(ctx, t)

	results, err := repo.Search(ctx, unitVector(0), 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRemedyRepository_Search_RespectsLimit(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(ctx, t)

	for i := 0; i < 10; i++ {
		chunk := testChunk(fmt.Sprintf("chunk_%d", i), "Remedy", "Some remedy text.")
		require.NoError(t, repo.Upsert(ctx, chunk, unitVector(i)))
	}

	results, err := repo.Search(ctx, unitVector(0), 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestRemedyRepository_Count(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(ctx, t)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, repo.Upsert(ctx, testChunk("chunk_0", "Belladonna", "Sudden onset."), unitVector(0)))
	require.NoError(t, repo.Upsert(ctx, testChunk("chunk_1", "Bryonia", "Worse from motion."), unitVector(1)))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
