package document

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"webrag-api/internal/domain/entity"
	"webrag-api/internal/domain/repository"
)

const (
	// store-side batch limit for upserts and deletes
	batchSize = 100
	// upper bound of chunk-index slots swept when deleting a source
	deleteSweepSlots = 1000
)

type EmbeddingService interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type Scraper interface {
	Scrape(ctx context.Context, url string) (*entity.ScrapedContent, error)
}

type DocumentUsecase struct {
	store      repository.VectorStore
	embedder   EmbeddingService
	scraper    Scraper
	extractor  *TextExtractor
	chunker    *Chunker
	embedDelay time.Duration
}

func NewDocumentUsecase(
	store repository.VectorStore,
	embedder EmbeddingService,
	scraper Scraper,
	chunkSize int,
	embedDelay time.Duration,
) *DocumentUsecase {
	return &DocumentUsecase{
		store:      store,
		embedder:   embedder,
		scraper:    scraper,
		extractor:  NewTextExtractor(),
		chunker:    NewChunker(chunkSize),
		embedDelay: embedDelay,
	}
}

// ScrapeURL fetches and cleans a web page and splits it into chunks.
// Nothing is indexed yet; the caller decides whether to ingest the result.
func (uc *DocumentUsecase) ScrapeURL(ctx context.Context, rawURL string) (*entity.ScrapedContent, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	content, err := uc.scraper.Scrape(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	content.Chunks = uc.chunker.ChunkText(content.Content)
	return content, nil
}

// IngestContent replaces everything previously indexed for the content's
// URL with freshly embedded chunks. Returns the number of chunks written.
func (uc *DocumentUsecase) IngestContent(ctx context.Context, content *entity.ScrapedContent) (int, error) {
	if content == nil || content.URL == "" || len(content.Chunks) == 0 {
		return 0, fmt.Errorf("%w: content with url and chunks is required", entity.ErrInvalidInput)
	}

	embeddings, err := uc.embedChunks(ctx, content.Chunks)
	if err != nil {
		return 0, err
	}

	base := entity.ChunkMetadata{
		URL:       content.URL,
		Title:     content.Title,
		Timestamp: content.Timestamp.UTC().Format(time.RFC3339),
	}
	return uc.reindex(ctx, content.URL, content.Chunks, embeddings, base)
}

// IngestPDF extracts text from an uploaded PDF and indexes it under a
// file:// source, so re-uploading the same file supersedes the old chunks.
func (uc *DocumentUsecase) IngestPDF(ctx context.Context, filename string, data []byte) (int, error) {
	if filename == "" || len(data) == 0 {
		return 0, fmt.Errorf("%w: filename and file data are required", entity.ErrInvalidInput)
	}

	text, err := uc.extractor.ExtractFromPDF(data)
	if err != nil {
		return 0, fmt.Errorf("failed to extract text: %w", err)
	}

	chunks := uc.chunker.ChunkText(text)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("%w: no text extracted from document", entity.ErrInvalidInput)
	}
	log.Printf("Extracted %d chunks from %s", len(chunks), filename)

	embeddings, err := uc.embedChunks(ctx, chunks)
	if err != nil {
		return 0, err
	}

	base := entity.ChunkMetadata{
		FileName:  filename,
		FileType:  "pdf",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return uc.reindex(ctx, "file://"+filename, chunks, embeddings, base)
}

// Stats reports the current state of the vector store.
func (uc *DocumentUsecase) Stats(ctx context.Context) (*entity.IndexStats, error) {
	return uc.store.Stats(ctx)
}

// embedChunks embeds one chunk at a time with a fixed delay between calls
// to stay under provider rate limits.
func (uc *DocumentUsecase) embedChunks(ctx context.Context, chunks []string) ([][]float32, error) {
	embeddings := make([][]float32, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := uc.embedder.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return nil, err
		}
		embeddings = append(embeddings, embedding)

		if uc.embedDelay > 0 && i < len(chunks)-1 {
			select {
			case <-time.After(uc.embedDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return embeddings, nil
}

// reindex deletes whatever was stored for the source, then upserts the new
// chunks in batches. Deletion must run first: ids are keyed by chunk index,
// so a shrinking document would otherwise leave stale trailing chunks.
func (uc *DocumentUsecase) reindex(
	ctx context.Context,
	source string,
	chunks []string,
	embeddings [][]float32,
	base entity.ChunkMetadata,
) (int, error) {
	if len(chunks) != len(embeddings) {
		return 0, fmt.Errorf("chunk and embedding counts differ: %d vs %d", len(chunks), len(embeddings))
	}

	uc.deleteSource(ctx, source)

	vectors := make([]entity.IndexedVector, len(chunks))
	for i, chunk := range chunks {
		metadata := base
		metadata.ChunkIndex = i
		metadata.TotalChunks = len(chunks)
		metadata.Content = chunk
		vectors[i] = entity.IndexedVector{
			ID:        VectorID(source, i),
			Embedding: embeddings[i],
			Metadata:  metadata,
		}
	}

	for start := 0; start < len(vectors); start += batchSize {
		end := start + batchSize
		if end > len(vectors) {
			end = len(vectors)
		}
		if err := uc.store.Upsert(ctx, vectors[start:end]); err != nil {
			return 0, fmt.Errorf("failed to save chunks: %w", err)
		}
	}

	log.Printf("Indexed %d chunks for %s", len(vectors), source)
	return len(vectors), nil
}

// deleteSource sweeps the deterministic id space of a source. Best effort:
// missing ids and failed batches are not errors, re-ingesting overwrites
// anything a failed delete left behind.
func (uc *DocumentUsecase) deleteSource(ctx context.Context, source string) {
	ids := make([]string, 0, deleteSweepSlots)
	for i := 0; i < deleteSweepSlots; i++ {
		ids = append(ids, VectorID(source, i))
	}

	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		if err := uc.store.DeleteByIDs(ctx, ids[start:end]); err != nil {
			log.Printf("Warning: failed to delete old vectors for %s: %v", source, err)
		}
	}
}

func validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("%w: url is required", entity.ErrInvalidInput)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: url must be http or https", entity.ErrInvalidInput)
	}
	return nil
}
