package smart

import (
	"fmt"
	"log/slog"

	"github.com/jmngeo/seqpt/core/company"
)

// DefaultQualityThreshold is the minimum overall quality an objective must
// reach to be accepted without further iteration.
const DefaultQualityThreshold = 0.85

// Validator scores objectives against the eight quality criteria. It holds
// only immutable configuration and is safe for concurrent use.
type Validator struct {
	threshold float64
	logger    *slog.Logger
}

// NewValidator creates a Validator with the given quality threshold. A
// threshold outside [0,1] is a configuration error and fails fast rather
// than being clamped.
func NewValidator(threshold float64, logger *slog.Logger) (*Validator, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("quality threshold %.3f outside [0,1]", threshold)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		threshold: threshold,
		logger:    logger.With("component", "smart_validator"),
	}, nil
}

// Threshold returns the configured quality threshold.
func (v *Validator) Threshold() float64 {
	return v.threshold
}

// Validate scores one candidate objective. It never propagates an internal
// error: an unexpected panic while scoring degrades to a neutral assessment
// with every criterion at 0.5.
func (v *Validator) Validate(objective, competency string, ctx *company.Context, archetype, role string) (assessment *Assessment) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Warn("validation recovered, returning neutral assessment",
				"competency", competency, "panic", fmt.Sprint(r))
			assessment = v.neutralAssessment(objective, competency, ctx)
		}
	}()

	in := newCriterionInput(objective, competency, role, archetype, ctx)

	assessment = &Assessment{
		Objective:   objective,
		Competency:  competency,
		CompanyName: in.company.CompanyName,

		Specific:         scoreSpecific(in),
		Measurable:       scoreMeasurable(in),
		Achievable:       scoreAchievable(in),
		Relevant:         scoreRelevant(in),
		TimeBound:        scoreTimeBound(in),
		CompanyAlignment: scoreCompanyAlignment(in),
		INCOSECompliance: scoreINCOSE(in),
		BusinessValue:    scoreBusinessValue(in),
	}
	assessment.finalize(v.threshold)
	return assessment
}

// neutralAssessment is the recovery result: all eight criteria at 0.5, no
// suggestions, aggregates recomputed from those scores.
func (v *Validator) neutralAssessment(objective, competency string, ctx *company.Context) *Assessment {
	name := ""
	if ctx != nil {
		name = ctx.CompanyName
	}
	neutral := func(criterion string) Score {
		return Score{Criterion: criterion, Value: 0.5, Justification: "Error in validation"}
	}
	a := &Assessment{
		Objective:   objective,
		Competency:  competency,
		CompanyName: name,

		Specific:         neutral(CriterionSpecific),
		Measurable:       neutral(CriterionMeasurable),
		Achievable:       neutral(CriterionAchievable),
		Relevant:         neutral(CriterionRelevant),
		TimeBound:        neutral(CriterionTimeBound),
		CompanyAlignment: neutral(CriterionCompanyAlignment),
		INCOSECompliance: neutral(CriterionINCOSE),
		BusinessValue:    neutral(CriterionBusinessValue),
	}
	a.finalize(v.threshold)
	return a
}
