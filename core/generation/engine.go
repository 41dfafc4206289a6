package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmngeo/seqpt/core/company"
	"github.com/jmngeo/seqpt/core/providers"
	"github.com/jmngeo/seqpt/core/retrieval"
	"github.com/jmngeo/seqpt/core/smart"
)

// maxFeedbackLines bounds the improvement-plan lines threaded into the next
// iteration's prompt.
const maxFeedbackLines = 5

// Config holds engine settings validated at construction.
type Config struct {
	// MaxIterations bounds the generate/validate loop per request.
	MaxIterations int

	// TopK is the number of reference objectives retrieved per request.
	TopK int

	// FeedbackEnabled threads the previous iteration's improvement plan into
	// the next generation prompt. Base prompts are still built once.
	FeedbackEnabled bool
}

// DefaultConfig returns engine defaults.
func DefaultConfig() Config {
	return Config{
		MaxIterations:   DefaultMaxIterations,
		TopK:            retrieval.DefaultTopK,
		FeedbackEnabled: true,
	}
}

func (c Config) validate() error {
	if c.MaxIterations < 1 {
		return fmt.Errorf("max iterations must be at least 1, got %d", c.MaxIterations)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top-k must be at least 1, got %d", c.TopK)
	}
	return nil
}

// Engine orchestrates one generation request end to end. All collaborators
// are injected; the engine itself holds no mutable state beyond the shared
// statistics tracker.
type Engine struct {
	extractor ContextExtractor
	retriever TemplateRetriever
	builder   PromptBuilder
	provider  providers.Provider
	validator ObjectiveValidator
	stats     *StatisticsTracker
	config    Config
	logger    *slog.Logger
}

// NewEngine wires an Engine, failing fast on missing collaborators or
// invalid configuration.
func NewEngine(
	extractor ContextExtractor,
	retriever TemplateRetriever,
	builder PromptBuilder,
	provider providers.Provider,
	validator ObjectiveValidator,
	stats *StatisticsTracker,
	config Config,
	logger *slog.Logger,
) (*Engine, error) {
	if extractor == nil || retriever == nil || builder == nil || provider == nil || validator == nil {
		return nil, fmt.Errorf("engine requires extractor, retriever, builder, provider and validator")
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if stats == nil {
		stats = NewStatisticsTracker()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		extractor: extractor,
		retriever: retriever,
		builder:   builder,
		provider:  provider,
		validator: validator,
		stats:     stats,
		config:    config,
		logger:    logger.With("component", "generation_engine"),
	}, nil
}

// Stats returns the engine's statistics tracker.
func (e *Engine) Stats() *StatisticsTracker {
	return e.stats
}

// GenerateObjective runs the full pipeline for one request. It always
// returns a well-formed Result: provider failures degrade to a flagged
// fallback objective, never to an error.
func (e *Engine) GenerateObjective(ctx context.Context, req Request) *Result {
	maxIterations := req.MaxIterations
	if maxIterations <= 0 {
		maxIterations = e.config.MaxIterations
	}

	cctx := company.Enrich(e.extractor.ExtractFromText(req.CompanyDescription, req.CompanyName))

	templateText := e.retriever.Retrieve(ctx, req.Competency, req.Archetype, e.config.TopK)

	built := e.builder.Build(req.Competency, req.Role, req.Archetype, cctx, templateText, req.ExtraRequirements)

	var (
		history       []IterationResult
		best          *smart.Assessment
		bestFallback  bool
		providerError error
		humanPrompt   = built.Human
	)

	for i := 0; i < maxIterations; i++ {
		if err := ctx.Err(); err != nil {
			e.logger.Warn("generation cancelled", "iteration", i, "error", err)
			break
		}

		objective, isFallback, genErr := e.generateCandidate(ctx, req, cctx, built.System, humanPrompt, i)

		assessment := e.validator.Validate(objective, req.Competency, cctx, req.Archetype, req.Role)
		if isFallback {
			// A fallback never counts as acceptable regardless of its score.
			assessment.MeetsThreshold = false
			providerError = genErr
		}

		history = append(history, IterationResult{
			Index:          i,
			Objective:      objective,
			OverallQuality: assessment.OverallQuality,
			MetThreshold:   assessment.MeetsThreshold,
		})

		if best == nil || assessment.OverallQuality > best.OverallQuality {
			best = assessment
			bestFallback = isFallback
		}

		if assessment.MeetsThreshold {
			e.logger.Info("quality threshold met",
				"iteration", i, "quality", assessment.OverallQuality)
			break
		}

		if isFallback {
			// The provider is down; further rounds would fail the same way.
			break
		}

		if e.config.FeedbackEnabled && len(assessment.ImprovementPlan) > 0 {
			humanPrompt = appendFeedback(built.Human, assessment.ImprovementPlan)
		}
	}

	if best == nil {
		// Cancelled before the first iteration completed.
		objective := fallbackObjective(req)
		best = e.validator.Validate(objective, req.Competency, cctx, req.Archetype, req.Role)
		best.MeetsThreshold = false
		bestFallback = true
		if providerError == nil {
			providerError = ctx.Err()
		}
	}

	result := e.packageResult(req, cctx, best, history, built.TemplateSource.String(), templateText, bestFallback, providerError)

	e.stats.Record(RunRecord{
		Timestamp:    time.Now(),
		Competency:   req.Competency,
		Role:         req.Role,
		Archetype:    req.Archetype,
		Quality:      best.OverallQuality,
		MetThreshold: best.MeetsThreshold,
		IsFallback:   bestFallback,
	})

	return result
}

// generateCandidate invokes the provider once, substituting the deterministic
// fallback sentence when the call fails.
func (e *Engine) generateCandidate(ctx context.Context, req Request, cctx *company.Context, systemPrompt, humanPrompt string, iteration int) (string, bool, error) {
	resp, err := e.provider.Complete(ctx, &providers.Request{
		SystemPrompt: systemPrompt,
		HumanPrompt:  humanPrompt,
		Competency:   req.Competency,
		Role:         req.Role,
		Archetype:    req.Archetype,
		Company:      cctx,
		Iteration:    iteration,
	})
	if err != nil {
		e.logger.Warn("provider call failed, substituting fallback objective",
			"provider", e.provider.Name(), "iteration", iteration, "error", err)
		return fallbackObjective(req), true, err
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		err := fmt.Errorf("provider %s returned empty objective", e.provider.Name())
		e.logger.Warn("empty provider response, substituting fallback objective",
			"iteration", iteration)
		return fallbackObjective(req), true, err
	}
	return text, false, nil
}

func fallbackObjective(req Request) string {
	return fmt.Sprintf(
		"Participants will demonstrate %s competency appropriate for %s role following %s approach.",
		req.Competency, req.Role, req.Archetype)
}

func appendFeedback(basePrompt string, improvementPlan []string) string {
	lines := improvementPlan
	if len(lines) > maxFeedbackLines {
		lines = lines[:maxFeedbackLines]
	}
	var b strings.Builder
	b.WriteString(basePrompt)
	b.WriteString("\n\nRefinement notes from the previous attempt:\n")
	for _, line := range lines {
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (e *Engine) packageResult(req Request, cctx *company.Context, best *smart.Assessment, history []IterationResult, templateSource, templateText string, isFallback bool, genErr error) *Result {
	result := &Result{
		RequestID:      uuid.NewString(),
		Objective:      best.Objective,
		Assessment:     best,
		ContextSummary: cctx.Summarize(),
		Metadata: Metadata{
			Competency:     req.Competency,
			Role:           req.Role,
			Archetype:      req.Archetype,
			Iterations:     len(history),
			TemplateSource: templateSource,
			TemplateCount:  strings.Count(templateText, "---") + 1,
			Provider:       e.provider.Name(),
			GeneratedAt:    time.Now().UTC(),
		},
		History:      history,
		TopStrengths: headOf(best.Strengths, 3),
		Improvements: headOf(best.ImprovementPlan, 5),
		IsFallback:   isFallback,
	}
	if isFallback && genErr != nil {
		result.Error = genErr.Error()
	}
	return result
}

func headOf(s []string, n int) []string {
	if len(s) < n {
		n = len(s)
	}
	return append([]string{}, s[:n]...)
}
