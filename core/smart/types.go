// Package smart scores candidate learning objectives against eight weighted
// quality criteria: the five SMART dimensions plus company alignment, INCOSE
// compliance and business value. Scoring is deterministic keyword and pattern
// matching; no model call is involved.
package smart

import "math"

// Criterion names, also used as map keys in serialized assessments.
const (
	CriterionSpecific         = "specific"
	CriterionMeasurable       = "measurable"
	CriterionAchievable       = "achievable"
	CriterionRelevant         = "relevant"
	CriterionTimeBound        = "time_bound"
	CriterionCompanyAlignment = "company_alignment"
	CriterionINCOSE           = "incose_compliance"
	CriterionBusinessValue    = "business_value"
)

// Aggregation weights. These coefficients are a fixed contract; changing
// them breaks numeric compatibility with recorded assessments.
const (
	weightSMART            = 0.6
	weightCompanyAlignment = 0.2
	weightINCOSE           = 0.1
	weightBusinessValue    = 0.1
)

// Thresholds for strength and weakness classification.
const (
	strengthCutoff = 0.8
	weaknessCutoff = 0.6
)

// Score is one criterion's result. Never mutated after construction.
type Score struct {
	Criterion     string   `json:"criterion"`
	Value         float64  `json:"score"`
	Justification string   `json:"justification"`
	Suggestions   []string `json:"suggestions,omitempty"`
}

// Assessment is the aggregate result of validating one objective. The three
// derived numbers and three derived lists are computed together immediately
// after the eight scores are known; no assessment carries stale aggregates.
type Assessment struct {
	Objective   string `json:"objective"`
	Competency  string `json:"competency"`
	CompanyName string `json:"company_name"`

	Specific         Score `json:"specific"`
	Measurable       Score `json:"measurable"`
	Achievable       Score `json:"achievable"`
	Relevant         Score `json:"relevant"`
	TimeBound        Score `json:"time_bound"`
	CompanyAlignment Score `json:"company_alignment"`
	INCOSECompliance Score `json:"incose_compliance"`
	BusinessValue    Score `json:"business_value"`

	SMARTAverage   float64 `json:"smart_average"`
	OverallQuality float64 `json:"overall_quality"`
	MeetsThreshold bool    `json:"meets_threshold"`

	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	ImprovementPlan []string `json:"improvement_plan"`
}

// Scores returns the eight criterion scores in canonical order.
func (a *Assessment) Scores() []Score {
	return []Score{
		a.Specific, a.Measurable, a.Achievable, a.Relevant, a.TimeBound,
		a.CompanyAlignment, a.INCOSECompliance, a.BusinessValue,
	}
}

// finalize recomputes every derived field from the eight scores.
func (a *Assessment) finalize(threshold float64) {
	a.SMARTAverage = round3((a.Specific.Value + a.Measurable.Value +
		a.Achievable.Value + a.Relevant.Value + a.TimeBound.Value) / 5)

	a.OverallQuality = round3(weightSMART*a.SMARTAverage +
		weightCompanyAlignment*a.CompanyAlignment.Value +
		weightINCOSE*a.INCOSECompliance.Value +
		weightBusinessValue*a.BusinessValue.Value)

	a.MeetsThreshold = a.OverallQuality >= threshold

	a.Strengths = nil
	a.Weaknesses = nil
	seen := make(map[string]bool)
	a.ImprovementPlan = nil

	for _, s := range a.Scores() {
		if s.Value >= strengthCutoff {
			a.Strengths = append(a.Strengths, s.Criterion)
		}
		if s.Value < weaknessCutoff {
			a.Weaknesses = append(a.Weaknesses, s.Criterion)
		}
		for _, suggestion := range s.Suggestions {
			if !seen[suggestion] {
				seen[suggestion] = true
				a.ImprovementPlan = append(a.ImprovementPlan, suggestion)
			}
		}
	}
}

// round3 rounds to three decimal places. Aggregates are rounded so equality
// comparisons against recorded values and thresholds are stable.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
