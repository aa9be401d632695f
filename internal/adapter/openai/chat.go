package openai

import (
	"context"
	"errors"

	"webrag-api/internal/domain/entity"

	openai "github.com/sashabaranov/go-openai"
)

type ChatClient struct {
	client *openai.Client
	model  string
}

func NewChatClient(apiKey, model string) *ChatClient {
	return &ChatClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete sends a prepared prompt and returns the model's raw answer.
// Prompt construction lives with the caller, which owns the citation
// footer contract the answer is parsed against.
func (c *ChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.7,
		MaxTokens:   700,
	})
	if err != nil {
		return "", &entity.CompletionError{Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &entity.CompletionError{Err: errors.New("empty completion response")}
	}

	return resp.Choices[0].Message.Content, nil
}
