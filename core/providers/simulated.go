package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmngeo/seqpt/core/templates"
)

// SimulatedProvider is the rule-based stand-in for a real model, used by the
// demo build and by tests. It produces progressively more detailed objective
// text as the iteration index increases so the refinement loop is observable
// without an API key. The ramp is a fixture property, not part of the
// generation contract: production paths use a real provider.
type SimulatedProvider struct{}

// NewSimulatedProvider creates the rule-based demo provider.
func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{}
}

// Name returns the provider identifier.
func (p *SimulatedProvider) Name() string {
	return string(ProviderTypeSimulated)
}

// Complete produces one scripted candidate. Iteration 0 is minimal, iteration
// 1 adds a timeframe and a company tool, iteration 2 and beyond add a
// challenge-linked business rationale.
func (p *SimulatedProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ProviderError{Provider: p.Name(), Err: err}
	}

	text := p.objectiveFor(req)
	return &Response{
		Text:  text,
		Model: "simulated",
		Usage: Usage{OutputTokens: len(strings.Fields(text))},
	}, nil
}

func (p *SimulatedProvider) objectiveFor(req *Request) string {
	company := "the company"
	tool := "the standard toolchain"
	challenge := "current engineering challenges"
	if req.Company != nil {
		if req.Company.CompanyName != "" {
			company = req.Company.CompanyName
		}
		if len(req.Company.Tools) > 0 {
			tool = req.Company.Tools[0]
		}
		if len(req.Company.CurrentChallenges) > 0 {
			challenge = strings.ToLower(req.Company.CurrentChallenges[0])
		}
	}

	if req.Iteration == 0 {
		return fmt.Sprintf(
			"Participants will identify %s practices relevant to the %s role at %s.",
			req.Competency, req.Role, company)
	}

	timeframe := simulatedTimeframe(req.Archetype)

	if req.Iteration == 1 {
		return fmt.Sprintf(
			"At the end of %s, participants will be able to apply %s practices in the %s role at %s by analyzing work products using %s.",
			timeframe, req.Competency, req.Role, company, tool)
	}

	return fmt.Sprintf(
		"At the end of %s, participants will be able to apply %s practices in the %s role at %s by analyzing work products using %s, successfully producing a review document, so that %s is reduced and quality improves.",
		timeframe, req.Competency, req.Role, company, tool, challenge)
}

// simulatedTimeframe picks a duration phrase matching the archetype's
// expected unit granularity.
func simulatedTimeframe(archetype string) string {
	units := templates.ExpectedTimeUnits(archetype)
	if len(units) == 0 {
		return "4 weeks"
	}
	switch units[0] {
	case templates.UnitHours:
		return "8 hours"
	case templates.UnitDays:
		return "2 days"
	case templates.UnitMonths:
		return "3 months"
	default:
		return "4 weeks"
	}
}
