package templates

import (
	"strings"
	"testing"

	"github.com/jmngeo/seqpt/core/company"
)

// =============================================================================
// Key Normalization Tests
// =============================================================================

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Common basic understanding", "common_basic_understanding"},
		{"Needs-based project-oriented", "needs-based_project-oriented"},
		{"Train the Trainer", "train_the_trainer"},
		{"Systemic thinking, applied", "systemic_thinking_applied"},
		{"  Requirements Management  ", "requirements_management"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.expected {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

// =============================================================================
// Three-Tier Resolution Tests
// =============================================================================

func TestResolve_TierOrder(t *testing.T) {
	tests := []struct {
		name       string
		archetype  string
		competency string
		expected   Source
	}{
		{"archetype match wins", "Common basic understanding", "Systemic thinking", SourceArchetype},
		{"competency match when archetype unknown", "Bespoke archetype", "Systemic thinking", SourceCompetency},
		{"base when neither matches", "Bespoke archetype", "Underwater basket weaving", SourceBase},
		{"archetype keys are case-insensitive", "TRAIN THE TRAINER", "", SourceArchetype},
	}

	catalog := NewCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, source := catalog.Resolve(tt.archetype, tt.competency)
			if source != tt.expected {
				t.Fatalf("Resolve(%q, %q) source = %v, want %v",
					tt.archetype, tt.competency, source, tt.expected)
			}
			if tmpl.SystemPrompt == "" || tmpl.HumanPrompt == "" {
				t.Errorf("resolved template %q has empty prompts", tmpl.Name)
			}
		})
	}
}

func TestResolve_NoPartialMerge(t *testing.T) {
	catalog := NewCatalog()

	// An archetype hit must return the archetype template untouched even when
	// the competency table also has an entry.
	tmpl, source := catalog.Resolve("Common basic understanding", "Requirements management")
	if source != SourceArchetype {
		t.Fatalf("source = %v, want SourceArchetype", source)
	}
	if tmpl.Name != archetypeTemplates["common_basic_understanding"].Name {
		t.Errorf("expected pure archetype template, got %q", tmpl.Name)
	}
}

func TestTemplates_CarryCorePlaceholders(t *testing.T) {
	catalog := NewCatalog()
	all := []PromptTemplate{catalog.base}
	for _, tmpl := range catalog.byArchetype {
		all = append(all, tmpl)
	}
	for _, tmpl := range catalog.byCompetency {
		all = append(all, tmpl)
	}

	// Every template must take the role, the company context block, the
	// retrieved reference objectives, and the extra-requirements slot.
	core := []string{"{role}", "{company_context}", "{retrieved_templates}", "{extra_requirements}"}
	for _, tmpl := range all {
		combined := tmpl.SystemPrompt + tmpl.HumanPrompt
		for _, placeholder := range core {
			if !strings.Contains(combined, placeholder) {
				t.Errorf("template %q is missing %s", tmpl.Name, placeholder)
			}
		}
	}
}

// =============================================================================
// Guidance Table Tests
// =============================================================================

func TestGuidanceFallbacks(t *testing.T) {
	if got := ArchetypeGuidance("unknown archetype"); got != genericArchetypeGuidance {
		t.Errorf("ArchetypeGuidance fallback = %q", got)
	}
	if got := CompetencyFocus("unknown competency"); got != genericCompetencyFocus {
		t.Errorf("CompetencyFocus fallback = %q", got)
	}
	if got := IndustryExpertise("Unknown Industry"); got != genericIndustryExpertise {
		t.Errorf("IndustryExpertise fallback = %q", got)
	}
	if got := LearningFormat("unknown archetype"); got != genericLearningFormat {
		t.Errorf("LearningFormat fallback = %q", got)
	}
	if got := TimeframeGuidance("unknown archetype", company.MaturityDeveloping); got != genericTimeframe {
		t.Errorf("TimeframeGuidance fallback = %q", got)
	}
}

func TestTimeframeGuidance_VariesByMaturity(t *testing.T) {
	developing := TimeframeGuidance("Common basic understanding", company.MaturityDeveloping)
	expert := TimeframeGuidance("Common basic understanding", company.MaturityExpert)
	if developing == expert {
		t.Errorf("expected maturity-dependent timeframes, both = %q", developing)
	}
}

func TestExpectedTimeUnits(t *testing.T) {
	tests := []struct {
		archetype string
		expected  []TimeUnit
	}{
		{"Common basic understanding", []TimeUnit{UnitHours, UnitDays}},
		{"Needs-based project-oriented", []TimeUnit{UnitWeeks, UnitMonths}},
		{"unknown archetype", defaultTimeUnits},
	}

	for _, tt := range tests {
		got := ExpectedTimeUnits(tt.archetype)
		if len(got) != len(tt.expected) {
			t.Fatalf("ExpectedTimeUnits(%q) = %v, want %v", tt.archetype, got, tt.expected)
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("ExpectedTimeUnits(%q)[%d] = %v, want %v", tt.archetype, i, got[i], tt.expected[i])
			}
		}
	}
}
