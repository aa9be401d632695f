package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"webrag-api/internal/domain/entity"
	"webrag-api/internal/domain/repository"
)

// vectorRepository is a brute-force cosine-similarity store. It backs
// local development and tests; nothing survives a restart.
type vectorRepository struct {
	mu      sync.RWMutex
	vectors map[string]entity.IndexedVector
}

func NewVectorRepository() repository.VectorStore {
	return &vectorRepository{vectors: map[string]entity.IndexedVector{}}
}

func (r *vectorRepository) Upsert(_ context.Context, vectors []entity.IndexedVector) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, vector := range vectors {
		r.vectors[vector.ID] = vector
	}
	return nil
}

func (r *vectorRepository) Query(_ context.Context, embedding []float32, topK int) ([]entity.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]entity.Match, 0, len(r.vectors))
	for id, vector := range r.vectors {
		matches = append(matches, entity.Match{
			ID:       id,
			Score:    cosineSimilarity(embedding, vector.Embedding),
			Metadata: vector.Metadata,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

func (r *vectorRepository) DeleteByIDs(_ context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.vectors, id)
	}
	return nil
}

func (r *vectorRepository) Stats(_ context.Context) (*entity.IndexStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dimension := 0
	for _, vector := range r.vectors {
		dimension = len(vector.Embedding)
		break
	}

	return &entity.IndexStats{
		TotalVectors: len(r.vectors),
		Dimension:    dimension,
	}, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
