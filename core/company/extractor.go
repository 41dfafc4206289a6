package company

import (
	"fmt"
	"log/slog"
	"strings"
)

// =============================================================================
// Keyword Tables
// =============================================================================

// industryKeywords maps canonical industry labels to the trigger words scanned
// for in free-text descriptions. First matching industry wins.
var industryKeywords = []struct {
	label    string
	keywords []string
}{
	{"Automotive", []string{"automotive", "vehicle", "car", "autonomous driving", "adas", "powertrain"}},
	{"Aerospace", []string{"aerospace", "aircraft", "aviation", "satellite", "spacecraft", "avionics"}},
	{"Defense", []string{"defense", "defence", "military", "weapon", "radar"}},
	{"Medical Devices", []string{"medical", "healthcare", "patient", "clinical", "diagnostic"}},
	{"Railway", []string{"railway", "rail", "train", "signalling", "rolling stock"}},
	{"Energy", []string{"energy", "power plant", "grid", "renewable", "turbine"}},
	{"Telecommunications", []string{"telecom", "network infrastructure", "5g", "base station"}},
	{"Industrial Automation", []string{"automation", "robotics", "plc", "manufacturing execution"}},
}

var processKeywords = map[string]string{
	"requirements engineering": "Requirements Engineering",
	"requirements management":  "Requirements Management",
	"system integration":       "System Integration",
	"verification":             "Verification and Validation",
	"validation":               "Verification and Validation",
	"configuration management": "Configuration Management",
	"risk management":          "Risk Management",
	"change management":        "Change Management",
	"architecture design":      "Architecture Design",
	"interface management":     "Interface Management",
}

var methodKeywords = map[string]string{
	"agile":          "Agile Development",
	"scrum":          "Scrum",
	"v-model":        "V-Model",
	"mbse":           "Model-Based Systems Engineering",
	"model-based":    "Model-Based Systems Engineering",
	"waterfall":      "Waterfall",
	"safe":           "Scaled Agile Framework",
	"lean":           "Lean Engineering",
	"design thinking": "Design Thinking",
}

var toolKeywords = map[string]string{
	"doors":            "DOORS",
	"jira":             "Jira",
	"enterprise architect": "Enterprise Architect",
	"cameo":            "Cameo Systems Modeler",
	"matlab":           "MATLAB",
	"simulink":         "Simulink",
	"polarion":         "Polarion",
	"rhapsody":         "Rhapsody",
	"git":              "Git",
	"confluence":       "Confluence",
}

var challengeKeywords = map[string]string{
	"complexity":          "Managing system complexity",
	"integration":         "Integration challenges across disciplines",
	"communication":       "Communication between teams",
	"traceability":        "Requirements traceability",
	"time to market":      "Time-to-market pressure",
	"cost":                "Cost pressure",
	"quality":             "Quality assurance",
	"supplier":            "Supplier coordination",
	"regulation":          "Regulatory compliance",
	"compliance":          "Regulatory compliance",
	"skill":               "Skill gaps in systems engineering",
}

// Maturity vocabulary, scanned in priority order.
var maturityVocabulary = []struct {
	level    MaturityLevel
	keywords []string
}{
	{MaturityExpert, []string{"expert", "advanced", "mature"}},
	{MaturityEstablished, []string{"established", "experienced", "proven"}},
}

var sizeVocabulary = []struct {
	size     OrganizationSize
	keywords []string
}{
	{SizeEnterprise, []string{"enterprise", "global", "multinational", "corporation"}},
	{SizeLarge, []string{"large", "thousands of employees"}},
	{SizeSmall, []string{"small", "startup", "start-up"}},
}

// =============================================================================
// Extractor
// =============================================================================

// Extractor converts company descriptions into normalized Context records.
// Extraction never fails: any internal error degrades to a default context so
// the generation pipeline can always proceed.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates an Extractor. A nil logger falls back to slog.Default.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger.With("component", "company_extractor")}
}

// ExtractFromText scans a free-text company description for industry,
// process, method, tool, challenge, maturity and size vocabulary.
func (e *Extractor) ExtractFromText(description, companyName string) (ctx *Context) {
	ctx = NewContext(companyName)

	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("context extraction recovered, using defaults",
				"company", companyName, "panic", fmt.Sprint(r))
			ctx = NewContext(companyName)
		}
	}()

	text := strings.ToLower(description)
	if strings.TrimSpace(text) == "" {
		return ctx
	}

	for _, ind := range industryKeywords {
		if containsAny(text, ind.keywords) {
			ctx.Industry = ind.label
			break
		}
	}

	ctx.Processes = collectMatches(text, processKeywords)
	ctx.Methods = collectMatches(text, methodKeywords)
	ctx.Tools = collectMatches(text, toolKeywords)
	ctx.CurrentChallenges = collectMatches(text, challengeKeywords)

	ctx.MaturityLevel = detectMaturity(text)
	ctx.OrganizationSize = detectSize(text)

	return ctx
}

// ExtractFromQuestionnaire builds a Context from structured questionnaire
// answers. Unknown keys are ignored; missing keys keep their defaults.
func (e *Extractor) ExtractFromQuestionnaire(answers map[string]any, companyName string) (ctx *Context) {
	ctx = NewContext(companyName)

	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("questionnaire extraction recovered, using defaults",
				"company", companyName, "panic", fmt.Sprint(r))
			ctx = NewContext(companyName)
		}
	}()

	if v, ok := stringAnswer(answers, "industry"); ok {
		ctx.Industry = v
	}
	if v, ok := stringAnswer(answers, "business_domain"); ok {
		ctx.BusinessDomain = v
	}
	if v, ok := stringAnswer(answers, "maturity_level"); ok {
		if level, valid := ParseMaturityLevel(strings.ToLower(v)); valid {
			ctx.MaturityLevel = level
		}
	}
	if v, ok := stringAnswer(answers, "organization_size"); ok {
		if size, valid := ParseOrganizationSize(strings.ToLower(v)); valid {
			ctx.OrganizationSize = size
		}
	}

	ctx.Processes = sliceAnswer(answers, "processes")
	ctx.Methods = sliceAnswer(answers, "methods")
	ctx.Tools = sliceAnswer(answers, "tools")
	ctx.CurrentChallenges = sliceAnswer(answers, "challenges")
	ctx.ProjectTypes = sliceAnswer(answers, "project_types")
	ctx.RegulatoryRequirements = sliceAnswer(answers, "regulatory_requirements")

	return ctx
}

func detectMaturity(text string) MaturityLevel {
	for _, m := range maturityVocabulary {
		if containsAny(text, m.keywords) {
			return m.level
		}
	}
	return MaturityDeveloping
}

func detectSize(text string) OrganizationSize {
	for _, s := range sizeVocabulary {
		if containsAny(text, s.keywords) {
			return s.size
		}
	}
	return SizeMedium
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// collectMatches gathers every canonical label whose trigger keyword appears
// in the text, deduplicated, in stable keyword order.
func collectMatches(text string, table map[string]string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, kw := range sortedKeys(table) {
		label := table[kw]
		if strings.Contains(text, kw) && !seen[label] {
			seen[label] = true
			out = append(out, label)
		}
	}
	return out
}

func stringAnswer(answers map[string]any, key string) (string, bool) {
	v, ok := answers[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

func sliceAnswer(answers map[string]any, key string) []string {
	out := []string{}
	v, ok := answers[key]
	if !ok {
		return out
	}
	switch vv := v.(type) {
	case []string:
		out = append(out, vv...)
	case []any:
		for _, item := range vv {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, part := range strings.Split(vv, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
