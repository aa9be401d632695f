package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks user-supplied input problems (bad URL, empty
// message). Handlers map it to a 400 response; it is never retried.
var ErrInvalidInput = errors.New("invalid input")

// FetchError wraps failures while downloading or extracting a web page.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// EmbeddingError wraps failures from the embedding provider.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error { return e.Err }

// CompletionError wraps failures from the chat completion provider.
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion: %v", e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// StoreError wraps failures from the vector store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("vector store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
