// Package templates holds the static prompt template catalog and the guidance
// tables used to customize generated learning objectives. Templates are
// immutable after package init and safe for concurrent readers.
package templates

import "strings"

// PromptTemplate is a named pair of parameterized prompt strings plus the
// variable names the template expects to be substituted.
type PromptTemplate struct {
	Name         string
	SystemPrompt string
	HumanPrompt  string
	Variables    []string
}

// Source identifies which tier of the catalog resolved a lookup.
type Source int

const (
	// SourceArchetype means the archetype-specific table matched.
	SourceArchetype Source = iota

	// SourceCompetency means the competency-specific table matched.
	SourceCompetency

	// SourceBase means resolution fell through to the base template.
	SourceBase
)

func (s Source) String() string {
	switch s {
	case SourceArchetype:
		return "archetype"
	case SourceCompetency:
		return "competency"
	default:
		return "base"
	}
}

// Catalog organizes the three template lookup tables.
type Catalog struct {
	base        PromptTemplate
	byArchetype map[string]PromptTemplate
	byCompetency map[string]PromptTemplate
}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		base:         baseTemplate,
		byArchetype:  archetypeTemplates,
		byCompetency: competencyTemplates,
	}
}

// NormalizeKey lowercases, replaces spaces with underscores, and strips
// commas, matching how archetype and competency names are keyed.
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ",", "")
	return s
}

// Resolve implements the strict three-tier fallback: archetype-specific,
// then competency-specific, then base. There is no partial merge between
// tiers.
func (c *Catalog) Resolve(archetype, competency string) (PromptTemplate, Source) {
	if t, ok := c.byArchetype[NormalizeKey(archetype)]; ok {
		return t, SourceArchetype
	}
	if t, ok := c.byCompetency[NormalizeKey(competency)]; ok {
		return t, SourceCompetency
	}
	return c.base, SourceBase
}
