package repository

import (
	"context"

	"webrag-api/internal/domain/entity"
)

// VectorStore is the persistence contract for embedded chunks. Callers are
// expected to keep batches at or below the store's batch limit; the store
// itself does not split them.
type VectorStore interface {
	Upsert(ctx context.Context, vectors []entity.IndexedVector) error
	Query(ctx context.Context, embedding []float32, topK int) ([]entity.Match, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	Stats(ctx context.Context) (*entity.IndexStats, error)
}
