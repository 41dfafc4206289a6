package generation

import (
	"context"
	"fmt"
)

// BatchGenerate generates one objective per (competency, role) pair, all for
// the same company and archetype. Pairs are independent; output order matches
// input order. A failure in one pair yields an error-tagged placeholder in
// that slot without aborting the batch, and cancellation is honored between
// pairs.
func (e *Engine) BatchGenerate(ctx context.Context, companyDescription, companyName string, pairs []CompetencyRole, archetype string) []*Result {
	results := make([]*Result, 0, len(pairs))

	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			results = append(results, errorPlaceholder(pair, archetype, err))
			continue
		}
		results = append(results, e.generatePair(ctx, companyDescription, companyName, pair, archetype))
	}

	return results
}

// generatePair isolates one batch entry: a panic in one pair becomes that
// slot's error placeholder instead of taking down the batch.
func (e *Engine) generatePair(ctx context.Context, companyDescription, companyName string, pair CompetencyRole, archetype string) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("batch entry recovered",
				"competency", pair.Competency, "role", pair.Role, "panic", fmt.Sprint(r))
			result = errorPlaceholder(pair, archetype, fmt.Errorf("generation panic: %v", r))
		}
	}()

	return e.GenerateObjective(ctx, Request{
		Competency:         pair.Competency,
		Role:               pair.Role,
		Archetype:          archetype,
		CompanyDescription: companyDescription,
		CompanyName:        companyName,
	})
}

func errorPlaceholder(pair CompetencyRole, archetype string, err error) *Result {
	return &Result{
		Metadata: Metadata{
			Competency: pair.Competency,
			Role:       pair.Role,
			Archetype:  archetype,
		},
		IsFallback: true,
		Error:      err.Error(),
	}
}
