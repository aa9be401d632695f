package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"webrag-api/internal/domain/entity"
	"webrag-api/internal/domain/repository"

	"github.com/google/uuid"
)

type EmbeddingService interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type ChatUsecase struct {
	store       repository.VectorStore
	embedder    EmbeddingService
	completer   CompletionService
	topK        int
	maxSections int
	threshold   float64
}

func NewChatUsecase(
	store repository.VectorStore,
	embedder EmbeddingService,
	completer CompletionService,
	topK int,
	maxSections int,
	threshold float64,
) *ChatUsecase {
	if topK <= 0 {
		topK = 10
	}
	if maxSections <= 0 {
		maxSections = 5
	}
	return &ChatUsecase{
		store:       store,
		embedder:    embedder,
		completer:   completer,
		topK:        topK,
		maxSections: maxSections,
		threshold:   threshold,
	}
}

// Ask runs one answer turn: embed the question, retrieve neighbours,
// assemble the numbered context, complete, and resolve citations. When no
// match clears the relevance threshold the completion call is skipped and
// a fixed explanation is returned instead.
func (uc *ChatUsecase) Ask(ctx context.Context, message, conversationID string) (*entity.ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", entity.ErrInvalidInput)
	}

	if conversationID == "" {
		conversationID = newConversationID()
	}

	matches, err := uc.retrieve(ctx, message)
	if err != nil {
		return nil, err
	}

	contextText, sections := uc.assembleContext(matches)
	if contextText == "" {
		return &entity.ChatResult{
			Response:       noEvidenceMessage,
			Sources:        []string{},
			ConversationID: conversationID,
		}, nil
	}

	rawAnswer, err := uc.completer.Complete(ctx, buildPrompt(message, contextText))
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer: %w", err)
	}

	answer, sources := extractCitations(rawAnswer, sections)
	return &entity.ChatResult{
		Response:       answer,
		Sources:        sources,
		ConversationID: conversationID,
	}, nil
}

// retrieve embeds the query and asks the store for the nearest neighbours.
// Matches come back exactly as the store scored them; relevance filtering
// is assembleContext's job.
func (uc *ChatUsecase) retrieve(ctx context.Context, query string) ([]entity.Match, error) {
	embedding, err := uc.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	matches, err := uc.store.Query(ctx, embedding, uc.topK)
	if err != nil {
		return nil, fmt.Errorf("failed to search similar chunks: %w", err)
	}
	return matches, nil
}

// newConversationID mints an opaque id for client-side correlation. The
// server keeps no state under it.
func newConversationID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("conv_%d_%s", time.Now().UnixMilli(), suffix)
}
