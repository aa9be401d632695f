package document

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"webrag-api/internal/adapter/repository/memory"
	"webrag-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	ops       []string
	upserts   [][]entity.IndexedVector
	deletes   [][]string
	upsertErr error
	deleteErr error
}

func (s *fakeStore) Upsert(_ context.Context, vectors []entity.IndexedVector) error {
	s.ops = append(s.ops, "upsert")
	if s.upsertErr != nil {
		return s.upsertErr
	}
	batch := make([]entity.IndexedVector, len(vectors))
	copy(batch, vectors)
	s.upserts = append(s.upserts, batch)
	return nil
}

func (s *fakeStore) Query(context.Context, []float32, int) ([]entity.Match, error) {
	return nil, nil
}

func (s *fakeStore) DeleteByIDs(_ context.Context, ids []string) error {
	s.ops = append(s.ops, "delete")
	batch := make([]string, len(ids))
	copy(batch, ids)
	s.deletes = append(s.deletes, batch)
	return s.deleteErr
}

func (s *fakeStore) Stats(context.Context) (*entity.IndexStats, error) {
	return &entity.IndexStats{}, nil
}

type fakeEmbedder struct {
	calls int
	err   error
}

func (e *fakeEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return []float32{float32(len(text)), 1, 0}, nil
}

type fakeScraper struct {
	content *entity.ScrapedContent
	err     error
}

func (s *fakeScraper) Scrape(_ context.Context, url string) (*entity.ScrapedContent, error) {
	if s.err != nil {
		return nil, s.err
	}
	content := *s.content
	content.URL = url
	return &content, nil
}

func newTestUsecase(store *fakeStore, embedder *fakeEmbedder, scraper *fakeScraper) *DocumentUsecase {
	return NewDocumentUsecase(store, embedder, scraper, 1000, 0)
}

func webContent(url string, chunks ...string) *entity.ScrapedContent {
	return &entity.ScrapedContent{
		URL:       url,
		Title:     "Örnek Sayfa",
		Content:   strings.Join(chunks, " "),
		Chunks:    chunks,
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestIngestContent_Success(t *testing.T) {
	store := &fakeStore{}
	embedder := &fakeEmbedder{}
	uc := newTestUsecase(store, embedder, nil)

	count, err := uc.IngestContent(context.Background(), webContent("https://example.com", "bir", "iki", "üç"))
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 3, embedder.calls)

	require.Len(t, store.upserts, 1)
	vectors := store.upserts[0]
	require.Len(t, vectors, 3)
	for i, vector := range vectors {
		assert.Equal(t, VectorID("https://example.com", i), vector.ID)
		assert.Equal(t, i, vector.Metadata.ChunkIndex)
		assert.Equal(t, 3, vector.Metadata.TotalChunks)
		assert.Equal(t, "https://example.com", vector.Metadata.URL)
		assert.Equal(t, "Örnek Sayfa", vector.Metadata.Title)
		assert.Equal(t, "2025-06-01T12:00:00Z", vector.Metadata.Timestamp)
		assert.NotEmpty(t, vector.Metadata.Content)
	}
	assert.Equal(t, "bir", vectors[0].Metadata.Content)
}

func TestIngestContent_DeletesBeforeUpserting(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUsecase(store, &fakeEmbedder{}, nil)

	_, err := uc.IngestContent(context.Background(), webContent("https://example.com", "bir"))
	require.NoError(t, err)

	require.NotEmpty(t, store.ops)
	lastDelete := -1
	firstUpsert := len(store.ops)
	for i, op := range store.ops {
		if op == "delete" {
			lastDelete = i
		}
		if op == "upsert" && i < firstUpsert {
			firstUpsert = i
		}
	}
	assert.Greater(t, firstUpsert, lastDelete)

	// the whole deterministic id space is swept in store-sized batches
	total := 0
	for _, batch := range store.deletes {
		assert.LessOrEqual(t, len(batch), 100)
		total += len(batch)
	}
	assert.Equal(t, 1000, total)
	assert.Equal(t, VectorID("https://example.com", 0), store.deletes[0][0])
}

func TestIngestContent_DeleteFailureIsSwallowed(t *testing.T) {
	store := &fakeStore{deleteErr: errors.New("index unavailable")}
	uc := newTestUsecase(store, &fakeEmbedder{}, nil)

	count, err := uc.IngestContent(context.Background(), webContent("https://example.com", "bir", "iki"))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, store.upserts, 1)
}

func TestIngestContent_UpsertFailurePropagates(t *testing.T) {
	store := &fakeStore{upsertErr: errors.New("write failed")}
	uc := newTestUsecase(store, &fakeEmbedder{}, nil)

	_, err := uc.IngestContent(context.Background(), webContent("https://example.com", "bir"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write failed")
}

func TestIngestContent_SplitsUpsertBatches(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUsecase(store, &fakeEmbedder{}, nil)

	chunks := make([]string, 250)
	for i := range chunks {
		chunks[i] = "parça"
	}

	count, err := uc.IngestContent(context.Background(), webContent("https://example.com", chunks...))
	require.NoError(t, err)
	assert.Equal(t, 250, count)

	require.Len(t, store.upserts, 3)
	assert.Len(t, store.upserts[0], 100)
	assert.Len(t, store.upserts[1], 100)
	assert.Len(t, store.upserts[2], 50)
}

func TestIngestContent_Validation(t *testing.T) {
	uc := newTestUsecase(&fakeStore{}, &fakeEmbedder{}, nil)

	_, err := uc.IngestContent(context.Background(), nil)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = uc.IngestContent(context.Background(), &entity.ScrapedContent{URL: "https://example.com"})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = uc.IngestContent(context.Background(), &entity.ScrapedContent{Chunks: []string{"bir"}})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestIngestContent_EmbeddingFailurePropagates(t *testing.T) {
	embedder := &fakeEmbedder{err: &entity.EmbeddingError{Err: errors.New("rate limited")}}
	store := &fakeStore{}
	uc := newTestUsecase(store, embedder, nil)

	_, err := uc.IngestContent(context.Background(), webContent("https://example.com", "bir"))
	require.Error(t, err)

	var embErr *entity.EmbeddingError
	assert.ErrorAs(t, err, &embErr)
	assert.Empty(t, store.upserts)
}

func TestReingest_SupersedesOldChunks(t *testing.T) {
	store := memory.NewVectorRepository()
	embedder := &fakeEmbedder{}
	uc := NewDocumentUsecase(store, embedder, nil, 1000, 0)

	_, err := uc.IngestContent(context.Background(), webContent("https://example.com", "a", "b", "c", "d", "e"))
	require.NoError(t, err)

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalVectors)

	// second ingest shrinks the document; stale trailing chunks must go
	_, err = uc.IngestContent(context.Background(), webContent("https://example.com", "yeni a", "yeni b"))
	require.NoError(t, err)

	stats, err = store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalVectors)

	matches, err := store.Query(context.Background(), []float32{1, 1, 0}, 10)
	require.NoError(t, err)
	for _, match := range matches {
		assert.Less(t, match.Metadata.ChunkIndex, 2)
		assert.Contains(t, match.Metadata.Content, "yeni")
	}
}

func TestScrapeURL(t *testing.T) {
	scraper := &fakeScraper{content: &entity.ScrapedContent{
		Title:   "Başlık",
		Content: "bir iki üç dört beş",
	}}
	uc := newTestUsecase(&fakeStore{}, &fakeEmbedder{}, scraper)

	content, err := uc.ScrapeURL(context.Background(), "https://example.com/page")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/page", content.URL)
	assert.NotEmpty(t, content.Chunks)
}

func TestScrapeURL_InvalidURL(t *testing.T) {
	uc := newTestUsecase(&fakeStore{}, &fakeEmbedder{}, &fakeScraper{})

	for _, rawURL := range []string{"", "   ", "ftp://example.com", "not a url", "example.com"} {
		_, err := uc.ScrapeURL(context.Background(), rawURL)
		assert.ErrorIs(t, err, entity.ErrInvalidInput, rawURL)
	}
}

func TestIngestPDF_Validation(t *testing.T) {
	uc := newTestUsecase(&fakeStore{}, &fakeEmbedder{}, nil)

	_, err := uc.IngestPDF(context.Background(), "", []byte("data"))
	assert.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = uc.IngestPDF(context.Background(), "notlar.pdf", nil)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}
