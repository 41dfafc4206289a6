// Package providers implements the LLM boundary for objective generation.
// Every provider turns an assembled prompt pair into one candidate objective
// text; failures surface as a distinguishable ProviderError the generation
// engine catches and degrades from.
package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmngeo/seqpt/core/company"
)

// ErrProviderUnavailable wraps provider transport failures.
var ErrProviderUnavailable = errors.New("llm provider unavailable")

// ProviderError is the distinguishable error kind raised by provider calls.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsProviderError reports whether err is (or wraps) a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// Request carries one objective-generation call. SystemPrompt and HumanPrompt
// are the assembled prompt pair; the remaining fields give rule-based
// providers enough context to simulate a model, and are ignored by real LLM
// adapters.
type Request struct {
	SystemPrompt string
	HumanPrompt  string

	Competency string
	Role       string
	Archetype  string
	Company    *company.Context

	// Iteration is the zero-based refinement round index.
	Iteration int

	MaxTokens   int
	Temperature *float64
}

// Response is one candidate objective.
type Response struct {
	Text  string
	Model string
	Usage Usage
}

// Usage reports token consumption for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Provider generates candidate objective texts. Implementations must honor
// ctx cancellation and deadlines.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req *Request) (*Response, error)
}

// ProviderValidator is implemented by providers whose configuration can be
// checked at startup.
type ProviderValidator interface {
	ValidateConfig() error
}
