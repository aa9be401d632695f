package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"

	"webrag-api/internal/domain/entity"
	"webrag-api/internal/domain/repository"

	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"
)

type vectorRepository struct {
	db *sqlx.DB
}

func NewVectorRepository(db *sqlx.DB) repository.VectorStore {
	return &vectorRepository{db: db}
}

// Initialize sets up the pgvector extension and the vectors table.
func Initialize(ctx context.Context, db *sqlx.DB, dimension int) error {
	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return &entity.StoreError{Op: "init", Err: err}
	}

	if dimension <= 0 {
		dimension = 1536
	}
	query := `
		CREATE TABLE IF NOT EXISTS "vectors" (
			"id" TEXT PRIMARY KEY,
			"embedding" vector(` + strconv.Itoa(dimension) + `) NOT NULL,
			"metadata" JSONB NOT NULL,
			"updatedAt" TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return &entity.StoreError{Op: "init", Err: err}
	}
	return nil
}

// Upsert writes one batch of vectors. The caller keeps batches at or below
// the store limit; each batch is a single transaction.
func (r *vectorRepository) Upsert(ctx context.Context, vectors []entity.IndexedVector) error {
	if len(vectors) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return &entity.StoreError{Op: "upsert", Err: err}
	}
	defer tx.Rollback()

	query := `
		INSERT INTO "vectors" ("id", "embedding", "metadata", "updatedAt")
		VALUES ($1, $2, $3, now())
		ON CONFLICT ("id") DO UPDATE
		SET "embedding" = EXCLUDED."embedding",
		    "metadata" = EXCLUDED."metadata",
		    "updatedAt" = now()
	`

	for _, vector := range vectors {
		metadata, err := json.Marshal(vector.Metadata)
		if err != nil {
			return &entity.StoreError{Op: "upsert", Err: err}
		}
		if _, err := tx.ExecContext(ctx, query, vector.ID, pgvector.NewVector(vector.Embedding), metadata); err != nil {
			return &entity.StoreError{Op: "upsert", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &entity.StoreError{Op: "upsert", Err: err}
	}
	return nil
}

// Query returns the topK nearest neighbours by cosine similarity,
// score-descending, with metadata attached.
func (r *vectorRepository) Query(ctx context.Context, embedding []float32, topK int) ([]entity.Match, error) {
	query := `
		SELECT
			"id",
			"metadata",
			1 - ("embedding" <=> $1) AS score
		FROM "vectors"
		ORDER BY "embedding" <=> $1
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, pgvector.NewVector(embedding), topK)
	if err != nil {
		return nil, &entity.StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	var matches []entity.Match
	for rows.Next() {
		var (
			match    entity.Match
			metadata []byte
		)
		if err := rows.Scan(&match.ID, &metadata, &match.Score); err != nil {
			return nil, &entity.StoreError{Op: "query", Err: err}
		}
		if err := json.Unmarshal(metadata, &match.Metadata); err != nil {
			return nil, &entity.StoreError{Op: "query", Err: err}
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, &entity.StoreError{Op: "query", Err: err}
	}

	return matches, nil
}

// DeleteByIDs removes the given ids. Missing ids are not an error.
func (r *vectorRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM "vectors" WHERE "id" = ANY($1)`, ids); err != nil {
		return &entity.StoreError{Op: "delete", Err: err}
	}
	return nil
}

// Stats reports record count and embedding dimension.
func (r *vectorRepository) Stats(ctx context.Context) (*entity.IndexStats, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT count(*) FROM "vectors"`); err != nil {
		return nil, &entity.StoreError{Op: "stats", Err: err}
	}

	var dimension int
	err := r.db.GetContext(ctx, &dimension, `SELECT vector_dims("embedding") FROM "vectors" LIMIT 1`)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, &entity.StoreError{Op: "stats", Err: err}
	}

	return &entity.IndexStats{
		TotalVectors: total,
		Dimension:    dimension,
	}, nil
}
