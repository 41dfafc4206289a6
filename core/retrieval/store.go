// Package retrieval wraps the historical learning-objective store and the
// template retriever with its fallback chain. The store combines a hashed
// term-frequency vector index with Bleve full-text search, fused via
// Reciprocal Rank Fusion.
package retrieval

import (
	"context"
	"errors"
)

var (
	// ErrStoreClosed indicates the document store has been closed.
	ErrStoreClosed = errors.New("document store closed")

	// ErrSearchFailed indicates a similarity query failed.
	ErrSearchFailed = errors.New("search operation failed")
)

// Document is one stored learning-objective text plus its metadata.
type Document struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Result is one similarity hit.
type Result struct {
	Document Document
	Score    float64
}

// VectorStore abstracts the similarity store for testing and for swapping in
// a remote vector database.
type VectorStore interface {
	// Add indexes documents. Adding an existing ID replaces the document.
	Add(ctx context.Context, docs ...Document) error

	// Query returns up to k documents most similar to text, best first.
	Query(ctx context.Context, text string, k int) ([]Result, error)

	// Count reports the number of indexed documents.
	Count() (int, error)

	// Close releases index resources.
	Close() error
}
