// Package generation drives the iterative objective generation loop: extract
// context once, retrieve templates once, build prompts once, then generate
// and validate up to a bounded number of rounds, keeping the best candidate.
package generation

import (
	"context"
	"time"

	"github.com/jmngeo/seqpt/core/company"
	"github.com/jmngeo/seqpt/core/prompts"
	"github.com/jmngeo/seqpt/core/smart"
)

// DefaultMaxIterations bounds the generate/validate loop.
const DefaultMaxIterations = 3

// ContextExtractor produces a company context from a free-text description.
type ContextExtractor interface {
	ExtractFromText(description, companyName string) *company.Context
}

// TemplateRetriever returns the concatenated reference objective texts for a
// competency and archetype. It never fails; it degrades to static fallbacks.
type TemplateRetriever interface {
	Retrieve(ctx context.Context, competency, archetype string, k int) string
}

// PromptBuilder assembles the prompt pair for one request.
type PromptBuilder interface {
	Build(competency, role, archetype string, cctx *company.Context, templateText string, extra []string) prompts.Prompts
}

// ObjectiveValidator scores candidates and exposes the quality threshold.
type ObjectiveValidator interface {
	Validate(objective, competency string, cctx *company.Context, archetype, role string) *smart.Assessment
	Threshold() float64
}

// Request is one objective-generation request.
type Request struct {
	Competency         string   `json:"competency"`
	Role               string   `json:"role"`
	Archetype          string   `json:"archetype"`
	CompanyDescription string   `json:"company_description"`
	CompanyName        string   `json:"company_name"`
	MaxIterations      int      `json:"max_iterations,omitempty"`
	ExtraRequirements  []string `json:"extra_requirements,omitempty"`
}

// CompetencyRole is one batch entry.
type CompetencyRole struct {
	Competency string `json:"competency"`
	Role       string `json:"role"`
}

// IterationResult is one row of the loop history.
type IterationResult struct {
	Index          int     `json:"iteration"`
	Objective      string  `json:"objective"`
	OverallQuality float64 `json:"overall_quality"`
	MetThreshold   bool    `json:"met_threshold"`
}

// Metadata describes how a result was produced.
type Metadata struct {
	Competency     string    `json:"competency"`
	Role           string    `json:"role"`
	Archetype      string    `json:"archetype"`
	Iterations     int       `json:"iterations"`
	TemplateSource string    `json:"template_source"`
	TemplateCount  int       `json:"template_count"`
	Provider       string    `json:"provider"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// Result packages one generated objective with its full quality breakdown.
// GenerateObjective always returns a well-formed Result, possibly a
// low-quality fallback, never an error.
type Result struct {
	RequestID  string            `json:"request_id"`
	Objective  string            `json:"objective"`
	Assessment *smart.Assessment `json:"assessment"`

	ContextSummary company.Summary   `json:"context_summary"`
	Metadata       Metadata          `json:"metadata"`
	History        []IterationResult `json:"iteration_history"`

	// TopStrengths holds up to three strongest criteria; Improvements holds
	// up to five improvement-plan items.
	TopStrengths []string `json:"top_strengths"`
	Improvements []string `json:"improvements"`

	IsFallback bool   `json:"is_fallback"`
	Error      string `json:"error,omitempty"`
}
