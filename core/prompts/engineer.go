// Package prompts assembles the system and human prompts for objective
// generation. Assembly is pure string construction: template resolution plus
// placeholder substitution from the company context and guidance tables.
package prompts

import (
	"fmt"
	"strings"

	"github.com/jmngeo/seqpt/core/company"
	"github.com/jmngeo/seqpt/core/templates"
)

// List truncation applied when formatting company collections into prompts.
const (
	maxPromptListItems      = 5
	maxPromptChallengeItems = 3
)

// Prompts is the assembled prompt pair handed to the LLM provider.
type Prompts struct {
	System string
	Human  string

	// TemplateSource records which catalog tier resolved the template.
	TemplateSource templates.Source
}

// Engineer builds prompts from the template catalog. It holds no mutable
// state and is safe for concurrent use.
type Engineer struct {
	catalog *templates.Catalog
}

// NewEngineer creates an Engineer over the built-in catalog.
func NewEngineer() *Engineer {
	return &Engineer{catalog: templates.NewCatalog()}
}

// Build assembles the system and human prompts for one generation request.
// templateText is the retrieved reference-objective block; extra holds
// caller-supplied requirement lines appended to the human prompt. Build never
// fails: unknown archetypes and competencies resolve through the catalog's
// fallback tiers and every guidance lookup has a generic default.
func (e *Engineer) Build(competency, role, archetype string, ctx *company.Context, templateText string, extra []string) Prompts {
	if ctx == nil {
		ctx = company.NewContext("")
	}

	tmpl, source := e.catalog.Resolve(archetype, competency)

	base := map[string]string{
		"competency":     competency,
		"role":           role,
		"archetype":      archetype,
		"industry":       ctx.Industry,
		"company_name":   ctx.CompanyName,
		"maturity_level": string(ctx.MaturityLevel),
	}

	system := substitute(tmpl.SystemPrompt, base, map[string]string{
		"industry_expertise": templates.IndustryExpertise(ctx.Industry),
	})

	human := substitute(tmpl.HumanPrompt, base, map[string]string{
		"company_context":     formatContextBlock(ctx),
		"pmt_context":         formatPMTBlock(ctx),
		"processes":           joinTruncated(ctx.Processes, maxPromptListItems),
		"methods":             joinTruncated(ctx.Methods, maxPromptListItems),
		"tools":               joinTruncated(ctx.Tools, maxPromptListItems),
		"challenges":          joinTruncated(ctx.CurrentChallenges, maxPromptChallengeItems),
		"industry_expertise":  templates.IndustryExpertise(ctx.Industry),
		"archetype_guidance":  templates.ArchetypeGuidance(archetype),
		"competency_focus":    templates.CompetencyFocus(competency),
		"learning_format":     templates.LearningFormat(archetype),
		"timeframe_guidance":  templates.TimeframeGuidance(archetype, ctx.MaturityLevel),
		"retrieved_templates": templateText,
		"extra_requirements":  strings.Join(extra, "\n"),
	})

	return Prompts{System: system, Human: human, TemplateSource: source}
}

// substitute replaces {name} placeholders from the given maps. Later maps
// win on duplicate keys. Unknown placeholders are left untouched.
func substitute(text string, maps ...map[string]string) string {
	pairs := make([]string, 0, 32)
	merged := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	for k, v := range merged {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// formatContextBlock renders the company context as a labeled block.
func formatContextBlock(ctx *company.Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Company: %s\n", ctx.CompanyName)
	fmt.Fprintf(&b, "Industry: %s\n", ctx.Industry)
	if ctx.BusinessDomain != "" {
		fmt.Fprintf(&b, "Business domain: %s\n", ctx.BusinessDomain)
	}
	fmt.Fprintf(&b, "SE maturity: %s\n", ctx.MaturityLevel)
	fmt.Fprintf(&b, "Organization size: %s", ctx.OrganizationSize)
	return b.String()
}

// formatPMTBlock renders the processes/methods/tools detail block.
func formatPMTBlock(ctx *company.Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Processes: %s\n", joinTruncated(ctx.Processes, maxPromptListItems))
	fmt.Fprintf(&b, "Methods: %s\n", joinTruncated(ctx.Methods, maxPromptListItems))
	fmt.Fprintf(&b, "Tools: %s", joinTruncated(ctx.Tools, maxPromptListItems))
	return b.String()
}

func joinTruncated(items []string, limit int) string {
	if len(items) == 0 {
		return "none documented"
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}
