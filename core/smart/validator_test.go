package smart

import (
	"math"
	"testing"

	"github.com/jmngeo/seqpt/core/company"
)

func automotiveContext() *company.Context {
	ctx := company.NewContext("AutoTech Systems")
	ctx.Industry = "Automotive"
	ctx.MaturityLevel = company.MaturityEstablished
	ctx.Processes = []string{"System Integration", "Model-Based Systems Engineering"}
	ctx.Tools = []string{"DOORS", "Vehicle Systems Modeler"}
	ctx.CurrentChallenges = []string{
		"Sensor integration issues across suppliers",
		"Understanding system interface complexity",
	}
	return ctx
}

func newTestValidator(t *testing.T, threshold float64) *Validator {
	t.Helper()
	v, err := NewValidator(threshold, nil)
	if err != nil {
		t.Fatalf("NewValidator(%v): %v", threshold, err)
	}
	return v
}

// =============================================================================
// Configuration Tests
// =============================================================================

func TestNewValidator_RejectsOutOfRangeThreshold(t *testing.T) {
	for _, threshold := range []float64{-0.01, 1.01, 2, -5} {
		if _, err := NewValidator(threshold, nil); err == nil {
			t.Errorf("NewValidator(%v) accepted out-of-range threshold", threshold)
		}
	}
	for _, threshold := range []float64{0, 0.85, 1} {
		if _, err := NewValidator(threshold, nil); err != nil {
			t.Errorf("NewValidator(%v) rejected valid threshold: %v", threshold, err)
		}
	}
}

// =============================================================================
// Aggregate Consistency Tests
// =============================================================================

var consistencyObjectives = []string{
	"Participants will understand systems.",
	"At the end of 2 weeks, participants will be able to identify system boundaries using DOORS.",
	"Within 3 days, participants will successfully create a requirements analysis document so that quality improves.",
	"",
	"Apply advanced model-based design techniques.",
}

func TestValidate_AggregatesDerivedFromParts(t *testing.T) {
	v := newTestValidator(t, DefaultQualityThreshold)
	ctx := automotiveContext()

	for _, obj := range consistencyObjectives {
		a := v.Validate(obj, "Systemic thinking", ctx, "Common basic understanding", "Systems Engineer")

		wantSMART := round3((a.Specific.Value + a.Measurable.Value + a.Achievable.Value +
			a.Relevant.Value + a.TimeBound.Value) / 5)
		if a.SMARTAverage != wantSMART {
			t.Errorf("objective %q: SMARTAverage = %v, want %v", obj, a.SMARTAverage, wantSMART)
		}

		wantOverall := round3(0.6*a.SMARTAverage + 0.2*a.CompanyAlignment.Value +
			0.1*a.INCOSECompliance.Value + 0.1*a.BusinessValue.Value)
		if a.OverallQuality != wantOverall {
			t.Errorf("objective %q: OverallQuality = %v, want %v", obj, a.OverallQuality, wantOverall)
		}

		if a.MeetsThreshold != (a.OverallQuality >= v.Threshold()) {
			t.Errorf("objective %q: MeetsThreshold = %v inconsistent with quality %v and threshold %v",
				obj, a.MeetsThreshold, a.OverallQuality, v.Threshold())
		}

		for _, s := range a.Scores() {
			if s.Value < 0 || s.Value > 1 {
				t.Errorf("objective %q: criterion %s = %v outside [0,1]", obj, s.Criterion, s.Value)
			}
		}
	}
}

func TestValidate_ThresholdConsistencyAcrossThresholds(t *testing.T) {
	ctx := automotiveContext()
	for _, threshold := range []float64{0, 0.25, 0.5, 0.85, 1} {
		v := newTestValidator(t, threshold)
		for _, obj := range consistencyObjectives {
			a := v.Validate(obj, "Systemic thinking", ctx, "Common basic understanding", "Systems Engineer")
			if a.MeetsThreshold != (a.OverallQuality >= threshold) {
				t.Errorf("threshold %v, objective %q: MeetsThreshold = %v for quality %v",
					threshold, obj, a.MeetsThreshold, a.OverallQuality)
			}
		}
	}
}

func TestValidate_StrengthsAndWeaknessesMatchCutoffs(t *testing.T) {
	v := newTestValidator(t, DefaultQualityThreshold)
	a := v.Validate(
		"At the end of 2 weeks, participants will be able to identify system boundaries using DOORS.",
		"Systemic thinking", automotiveContext(), "Needs-based project-oriented", "Systems Engineer")

	strengths := make(map[string]bool)
	for _, s := range a.Strengths {
		strengths[s] = true
	}
	weaknesses := make(map[string]bool)
	for _, w := range a.Weaknesses {
		weaknesses[w] = true
	}

	for _, s := range a.Scores() {
		if (s.Value >= 0.8) != strengths[s.Criterion] {
			t.Errorf("criterion %s (%v): strength classification wrong", s.Criterion, s.Value)
		}
		if (s.Value < 0.6) != weaknesses[s.Criterion] {
			t.Errorf("criterion %s (%v): weakness classification wrong", s.Criterion, s.Value)
		}
	}
}

// =============================================================================
// Known-Quality Objective Tests
// =============================================================================

func TestValidate_VagueObjectiveFailsThreshold(t *testing.T) {
	v := newTestValidator(t, DefaultQualityThreshold)
	a := v.Validate("Participants will understand systems.", "Systemic thinking",
		company.NewContext("Generic Corp"), "Common basic understanding", "Engineer")

	if a.MeetsThreshold {
		t.Errorf("vague objective met threshold with quality %v", a.OverallQuality)
	}
	if a.TimeBound.Value > 0.1 {
		t.Errorf("TimeBound = %v for objective with no timeframe, want <= 0.1", a.TimeBound.Value)
	}
	if a.Specific.Value > 0.3 {
		t.Errorf("Specific = %v for vague objective, want low", a.Specific.Value)
	}
	if len(a.ImprovementPlan) == 0 {
		t.Error("failing objective produced no improvement plan")
	}
}

func TestValidate_WellFormedObjectiveMeetsThreshold(t *testing.T) {
	v := newTestValidator(t, DefaultQualityThreshold)
	objective := "At the end of 2 weeks, participants will be able to identify system boundaries " +
		"and interfaces in AutoTech Systems' autonomous vehicle architecture by analyzing system " +
		"models using DOORS so that sensor integration challenges are better understood."

	a := v.Validate(objective, "Systemic thinking", automotiveContext(),
		"Needs-based project-oriented", "Systems Engineer")

	if a.OverallQuality < 0.85 {
		t.Errorf("OverallQuality = %v, want >= 0.85", a.OverallQuality)
	}
	if !a.MeetsThreshold {
		t.Error("well-formed objective did not meet threshold")
	}
	if a.Specific.Value != 1.0 {
		t.Errorf("Specific = %v, want 1.0", a.Specific.Value)
	}
	if a.TimeBound.Value != 1.0 {
		t.Errorf("TimeBound = %v, want 1.0 (weeks matches project-oriented strategy)", a.TimeBound.Value)
	}
	if a.CompanyAlignment.Value != 1.0 {
		t.Errorf("CompanyAlignment = %v, want 1.0", a.CompanyAlignment.Value)
	}
}

// =============================================================================
// Criterion Detail Tests
// =============================================================================

func TestScoreTimeBound_UnitArchetypeMatch(t *testing.T) {
	v := newTestValidator(t, DefaultQualityThreshold)
	ctx := automotiveContext()

	// Months on a short-form strategy: timeframe present but wrong granularity.
	a := v.Validate("Within 6 months, participants will identify system boundaries.",
		"Systemic thinking", ctx, "Common basic understanding", "Engineer")
	if math.Abs(a.TimeBound.Value-0.6) > 1e-9 {
		t.Errorf("mismatched unit: TimeBound = %v, want 0.6", a.TimeBound.Value)
	}

	// Hours matches the short-form strategy.
	a = v.Validate("Within 8 hours, participants will identify system boundaries.",
		"Systemic thinking", ctx, "Common basic understanding", "Engineer")
	if math.Abs(a.TimeBound.Value-1.0) > 1e-9 {
		t.Errorf("matched unit: TimeBound = %v, want 1.0", a.TimeBound.Value)
	}
}

func TestScoreAchievable_Adjustments(t *testing.T) {
	v := newTestValidator(t, DefaultQualityThreshold)

	tests := []struct {
		name      string
		objective string
		maturity  company.MaturityLevel
		archetype string
		expected  float64
	}{
		{
			name:      "baseline",
			objective: "Participants will work on integration.",
			maturity:  company.MaturityEstablished,
			archetype: "Needs-based project-oriented",
			expected:  0.5,
		},
		{
			name:      "complexity penalized at developing maturity",
			objective: "Participants will master advanced techniques.",
			maturity:  company.MaturityDeveloping,
			archetype: "Needs-based project-oriented",
			expected:  0.3,
		},
		{
			name:      "expert maturity wants more ambition",
			objective: "Participants will work on integration.",
			maturity:  company.MaturityExpert,
			archetype: "Needs-based project-oriented",
			expected:  0.4,
		},
		{
			name:      "advanced content on basic-understanding strategy",
			objective: "Participants will master advanced techniques.",
			maturity:  company.MaturityEstablished,
			archetype: "Common basic understanding",
			expected:  0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := company.NewContext("TestCo")
			ctx.MaturityLevel = tt.maturity
			a := v.Validate(tt.objective, "Integration", ctx, tt.archetype, "Engineer")
			if math.Abs(a.Achievable.Value-tt.expected) > 1e-9 {
				t.Errorf("Achievable = %v, want %v", a.Achievable.Value, tt.expected)
			}
		})
	}
}

func TestScoreBusinessValue_Components(t *testing.T) {
	v := newTestValidator(t, DefaultQualityThreshold)
	ctx := company.NewContext("TestCo")

	tests := []struct {
		objective string
		expected  float64
	}{
		{"Participants will document interfaces.", 0},
		{"Participants will document interfaces so that handovers work.", 0.4},
		{"Participants will document interfaces so that quality improves and cost is reduced.", 0.9},
	}

	for _, tt := range tests {
		a := v.Validate(tt.objective, "Interface management", ctx, "Certification", "Engineer")
		if math.Abs(a.BusinessValue.Value-tt.expected) > 1e-9 {
			t.Errorf("BusinessValue(%q) = %v, want %v", tt.objective, a.BusinessValue.Value, tt.expected)
		}
	}
}

func TestValidate_NilContextDoesNotPanic(t *testing.T) {
	v := newTestValidator(t, DefaultQualityThreshold)
	a := v.Validate("Participants will identify interfaces.", "Integration", nil, "", "")
	if a == nil {
		t.Fatal("Validate returned nil for nil context")
	}
	if a.CompanyAlignment.Value != 0 {
		t.Errorf("CompanyAlignment = %v for empty context, want 0", a.CompanyAlignment.Value)
	}
}
