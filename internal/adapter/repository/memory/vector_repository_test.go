package memory

import (
	"context"
	"testing"

	"webrag-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) *vectorRepository {
	t.Helper()
	store := NewVectorRepository().(*vectorRepository)
	err := store.Upsert(context.Background(), []entity.IndexedVector{
		{ID: "a", Embedding: []float32{1, 0, 0}, Metadata: entity.ChunkMetadata{Content: "birinci"}},
		{ID: "b", Embedding: []float32{0, 1, 0}, Metadata: entity.ChunkMetadata{Content: "ikinci"}},
		{ID: "c", Embedding: []float32{0.9, 0.1, 0}, Metadata: entity.ChunkMetadata{Content: "üçüncü"}},
	})
	require.NoError(t, err)
	return store
}

func TestQuery_OrdersByScore(t *testing.T) {
	store := seed(t)

	matches, err := store.Query(context.Background(), []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, "a", matches[0].ID)
	assert.Equal(t, "c", matches[1].ID)
	assert.Equal(t, "b", matches[2].ID)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-6)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestQuery_RespectsTopK(t *testing.T) {
	store := seed(t)

	matches, err := store.Query(context.Background(), []float32{1, 0, 0}, 2)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestUpsert_OverwritesByID(t *testing.T) {
	store := seed(t)

	err := store.Upsert(context.Background(), []entity.IndexedVector{
		{ID: "a", Embedding: []float32{0, 0, 1}, Metadata: entity.ChunkMetadata{Content: "güncel"}},
	})
	require.NoError(t, err)

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalVectors)

	matches, err := store.Query(context.Background(), []float32{0, 0, 1}, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "güncel", matches[0].Metadata.Content)
}

func TestDeleteByIDs_MissingIDsAreNotErrors(t *testing.T) {
	store := seed(t)

	err := store.DeleteByIDs(context.Background(), []string{"a", "yok", "b"})
	require.NoError(t, err)

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalVectors)
}

func TestStats(t *testing.T) {
	store := seed(t)

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalVectors)
	assert.Equal(t, 3, stats.Dimension)
}
