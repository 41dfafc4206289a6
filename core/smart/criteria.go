package smart

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jmngeo/seqpt/core/company"
	"github.com/jmngeo/seqpt/core/templates"
)

// =============================================================================
// Word Tables
// =============================================================================

var actionVerbs = []string{
	"identify", "analyze", "apply", "create", "design", "develop", "define",
	"evaluate", "demonstrate", "implement", "document", "specify", "assess",
	"produce", "perform", "conduct", "establish", "derive",
}

var measurableVerbs = []string{
	"identify", "analyze", "create", "define", "demonstrate", "produce",
	"document", "evaluate", "apply", "implement", "measure", "assess",
	"specify", "derive",
}

var successAdverbs = []string{
	"successfully", "correctly", "effectively", "accurately", "completely",
}

var deliverableNouns = []string{
	"document", "model", "plan", "analysis", "design", "report", "specification",
}

var complexityWords = []string{
	"advanced", "complex", "sophisticated", "comprehensive", "expert-level",
}

var businessValueTerms = []string{
	"improve", "efficiency", "quality", "reduce", "optimize", "enhance", "deliver",
}

var valueVerbs = []string{
	"improve", "reduce", "optimize", "enhance", "streamline", "accelerate", "deliver",
}

var businessOutcomes = []string{
	"efficiency", "quality", "compliance", "safety", "performance", "cost", "risk",
}

// industryTerms maps industry labels to domain vocabulary counted toward the
// Relevant criterion.
var industryTerms = map[string][]string{
	"Automotive":            {"vehicle", "automotive", "autonomous", "driver", "powertrain", "adas", "sensor"},
	"Aerospace":             {"aircraft", "avionics", "flight", "satellite", "aerospace"},
	"Defense":               {"defense", "military", "mission", "radar"},
	"Medical Devices":       {"patient", "clinical", "medical", "device"},
	"Railway":               {"train", "railway", "signalling", "rolling stock"},
	"Energy":                {"grid", "turbine", "power", "energy"},
	"Telecommunications":    {"network", "telecom", "base station"},
	"Industrial Automation": {"automation", "robot", "production", "plc"},
}

// incoseKeywords maps normalized competency names to framework vocabulary.
// Unknown competencies score only the compliance base.
var incoseKeywords = map[string][]string{
	"systemic_thinking":       {"system", "boundary", "interface", "holistic", "emergent", "environment"},
	"requirements_management": {"requirement", "traceability", "stakeholder", "elicitation", "baseline"},
	"architecture_design":     {"architecture", "allocation", "trade-off", "element", "view"},
	"integration":             {"integration", "sequence", "interface", "verification"},
	"verification_validation": {"verification", "validation", "test", "method", "coverage"},
	"risk_management":         {"risk", "mitigation", "likelihood", "impact"},
	"interface_management":    {"interface", "control", "negotiation", "boundary"},
}

// =============================================================================
// Timeframe Patterns
// =============================================================================

var timeframePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*(hour|day|week|month|year)s?`),
	regexp.MustCompile(`at the end of`),
	regexp.MustCompile(`after \d+`),
	regexp.MustCompile(`within \d+`),
	regexp.MustCompile(`by the end`),
}

var outcomePatterns = []*regexp.Regexp{
	regexp.MustCompile(`by \w+ing`),
	regexp.MustCompile(`through \w+`),
	regexp.MustCompile(`using \w+`),
	regexp.MustCompile(`will be able to`),
}

var unitWords = map[templates.TimeUnit][]string{
	templates.UnitHours:  {"hour"},
	templates.UnitDays:   {"day"},
	templates.UnitWeeks:  {"week"},
	templates.UnitMonths: {"month"},
}

// =============================================================================
// Matching Helpers
// =============================================================================

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "into": true, "will": true, "are": true,
	"across": true, "their": true, "have": true, "been": true,
}

func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, t := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}) {
		tokens[t] = true
	}
	return tokens
}

// fuzzyHas reports whether word matches any token exactly or by prefix in
// either direction (minimum four characters), so "model" matches "models"
// and "system" matches "systemic".
func fuzzyHas(tokens map[string]bool, word string) bool {
	if tokens[word] {
		return true
	}
	for t := range tokens {
		if len(t) >= 4 && strings.HasPrefix(word, t) {
			return true
		}
		if len(word) >= 4 && strings.HasPrefix(t, word) {
			return true
		}
	}
	return false
}

// phraseMentioned reports whether any significant word of phrase (four or
// more characters, not a stopword) appears in the text tokens.
func phraseMentioned(tokens map[string]bool, phrase string) bool {
	for _, w := range strings.FieldsFunc(strings.ToLower(phrase), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}) {
		if len(w) < 4 || stopwords[w] {
			continue
		}
		if fuzzyHas(tokens, w) {
			return true
		}
	}
	return false
}

// sharesAnyWord implements the loose challenge-matching rule: any token
// shared between the two texts counts, stopwords included. Kept for
// compatibility with recorded assessments even though a shared stopword can
// spuriously match.
func sharesAnyWord(tokens map[string]bool, phrase string) bool {
	for w := range tokenize(phrase) {
		if tokens[w] {
			return true
		}
	}
	return false
}

func containsAnyWord(lowered string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}

// =============================================================================
// Criterion Input
// =============================================================================

type criterionInput struct {
	text       string
	lowered    string
	tokens     map[string]bool
	competency string
	role       string
	archetype  string
	company    *company.Context
}

func newCriterionInput(objective, competency, role, archetype string, ctx *company.Context) criterionInput {
	if ctx == nil {
		ctx = company.NewContext("")
	}
	return criterionInput{
		text:       objective,
		lowered:    strings.ToLower(objective),
		tokens:     tokenize(objective),
		competency: competency,
		role:       role,
		archetype:  archetype,
		company:    ctx,
	}
}

func (in criterionInput) companyNamed() bool {
	return in.company.CompanyName != "" &&
		strings.Contains(in.lowered, strings.ToLower(in.company.CompanyName))
}

func (in criterionInput) toolOrProcessNamed() bool {
	for _, tool := range in.company.Tools {
		if phraseMentioned(in.tokens, tool) {
			return true
		}
	}
	for _, process := range in.company.Processes {
		if phraseMentioned(in.tokens, process) {
			return true
		}
	}
	return false
}

func (in criterionInput) toolNamed() bool {
	for _, tool := range in.company.Tools {
		if phraseMentioned(in.tokens, tool) {
			return true
		}
	}
	return false
}

// =============================================================================
// The Eight Criteria
// =============================================================================

// scoreSpecific: four checks at 0.25 each, capped at 1.0.
func scoreSpecific(in criterionInput) Score {
	var value float64
	var missing []string

	if containsAnyWord(in.lowered, actionVerbs) {
		value += 0.25
	} else {
		missing = append(missing, "Start with a concrete action verb such as identify, analyze or create")
	}
	if in.companyNamed() {
		value += 0.25
	} else {
		missing = append(missing, "Name the company so the objective is anchored in its environment")
	}
	if phraseMentioned(in.tokens, in.competency) {
		value += 0.25
	} else {
		missing = append(missing, fmt.Sprintf("Reference the %s competency explicitly", in.competency))
	}
	if in.toolOrProcessNamed() {
		value += 0.25
	} else {
		missing = append(missing, "Mention a company-specific tool or process")
	}

	return Score{
		Criterion:     CriterionSpecific,
		Value:         round3(clamp01(value)),
		Justification: fmt.Sprintf("Specificity checks passed: %d of 4", int(value/0.25+0.5)),
		Suggestions:   missing,
	}
}

// scoreMeasurable: 0.3 measurable verb, 0.3 observable outcome, 0.2 success
// adverb, 0.2 deliverable noun.
func scoreMeasurable(in criterionInput) Score {
	var value float64
	var missing []string

	if containsAnyWord(in.lowered, measurableVerbs) {
		value += 0.3
	} else {
		missing = append(missing, "Use a measurable action verb instead of vague verbs like understand or know")
	}
	if matchesAny(in.lowered, outcomePatterns) {
		value += 0.3
	} else {
		missing = append(missing, "Describe an observable outcome, e.g. 'will be able to ... by analyzing ...'")
	}
	if containsAnyWord(in.lowered, successAdverbs) {
		value += 0.2
	} else {
		missing = append(missing, "State a success criterion such as 'successfully' or 'correctly'")
	}
	if containsAnyWord(in.lowered, deliverableNouns) {
		value += 0.2
	} else {
		missing = append(missing, "Name a concrete deliverable such as a document, model or plan")
	}

	return Score{
		Criterion:     CriterionMeasurable,
		Value:         round3(clamp01(value)),
		Justification: "Measurability from verbs, observable outcomes and deliverables",
		Suggestions:   missing,
	}
}

// scoreAchievable: base 0.5 with maturity, tooling and archetype adjustments,
// clamped to [0,1].
func scoreAchievable(in criterionInput) Score {
	value := 0.5
	var notes []string
	var missing []string

	hasComplexity := containsAnyWord(in.lowered, complexityWords)

	if hasComplexity && in.company.MaturityLevel == company.MaturityDeveloping {
		value -= 0.2
		notes = append(notes, "complexity exceeds developing maturity")
		missing = append(missing, "Reduce complexity to match the organization's developing SE maturity")
	}
	if !hasComplexity && in.company.MaturityLevel == company.MaturityExpert {
		value -= 0.1
		notes = append(notes, "could be more ambitious for an expert organization")
		missing = append(missing, "Raise the ambition level for an expert-maturity organization")
	}
	if in.toolNamed() {
		value += 0.2
		notes = append(notes, "grounded in company tooling")
	}
	if templates.NormalizeKey(in.archetype) == "common_basic_understanding" &&
		strings.Contains(in.lowered, "advanced") {
		value -= 0.2
		notes = append(notes, "advanced content conflicts with basic-understanding strategy")
		missing = append(missing, "Remove advanced content from a common-basic-understanding objective")
	}

	justification := "Baseline achievability"
	if len(notes) > 0 {
		justification = "Achievability adjusted: " + strings.Join(notes, "; ")
	}

	return Score{
		Criterion:     CriterionAchievable,
		Value:         round3(clamp01(value)),
		Justification: justification,
		Suggestions:   missing,
	}
}

// scoreRelevant: four checks at 0.25 each.
func scoreRelevant(in criterionInput) Score {
	var value float64
	var missing []string

	if phraseMentioned(in.tokens, in.competency) {
		value += 0.25
	} else {
		missing = append(missing, fmt.Sprintf("Tie the objective to the %s competency", in.competency))
	}
	if containsAnyWord(in.lowered, industryTerms[in.company.Industry]) {
		value += 0.25
	} else {
		missing = append(missing, "Use industry-specific vocabulary")
	}
	if phraseMentioned(in.tokens, in.role) {
		value += 0.25
	} else {
		missing = append(missing, fmt.Sprintf("Connect the objective to the %s role's work", in.role))
	}
	if containsAnyWord(in.lowered, businessValueTerms) {
		value += 0.25
	} else {
		missing = append(missing, "State the business value using terms like improve, reduce or quality")
	}

	return Score{
		Criterion:     CriterionRelevant,
		Value:         round3(clamp01(value)),
		Justification: "Relevance to competency, industry, role and business value",
		Suggestions:   missing,
	}
}

// scoreTimeBound: 0.6 for any explicit timeframe, plus 0.4 when the duration
// unit matches the archetype's expected granularity.
func scoreTimeBound(in criterionInput) Score {
	if !matchesAny(in.lowered, timeframePatterns) {
		return Score{
			Criterion:     CriterionTimeBound,
			Value:         0,
			Justification: "No explicit timeframe found",
			Suggestions:   []string{"Add an explicit timeframe, e.g. 'at the end of 2 weeks'"},
		}
	}

	value := 0.6
	justification := "Explicit timeframe present"
	var missing []string

	if unitMatchesArchetype(in.lowered, in.archetype) {
		value += 0.4
		justification = "Timeframe present and matches the strategy's expected duration"
	} else {
		missing = append(missing, "Align the timeframe unit with the qualification strategy's typical duration")
	}

	return Score{
		Criterion:     CriterionTimeBound,
		Value:         round3(value),
		Justification: justification,
		Suggestions:   missing,
	}
}

// scoreCompanyAlignment: 0.15 per referenced process (cap 0.3), 0.15 per
// referenced tool (cap 0.3), 0.2 per addressed challenge (cap 0.4). The
// challenge rule counts any shared word.
func scoreCompanyAlignment(in criterionInput) Score {
	var processScore, toolScore, challengeScore float64
	var missing []string

	for _, process := range in.company.Processes {
		if phraseMentioned(in.tokens, process) {
			processScore += 0.15
		}
	}
	for _, tool := range in.company.Tools {
		if phraseMentioned(in.tokens, tool) {
			toolScore += 0.15
		}
	}
	for _, challenge := range in.company.CurrentChallenges {
		if sharesAnyWord(in.tokens, challenge) {
			challengeScore += 0.2
		}
	}

	processScore = min2(processScore, 0.3)
	toolScore = min2(toolScore, 0.3)
	challengeScore = min2(challengeScore, 0.4)

	if processScore == 0 {
		missing = append(missing, "Reference one of the company's engineering processes")
	}
	if toolScore == 0 {
		missing = append(missing, "Reference one of the company's tools")
	}
	if challengeScore == 0 {
		missing = append(missing, "Address one of the company's current challenges")
	}

	return Score{
		Criterion: CriterionCompanyAlignment,
		Value:     round3(clamp01(processScore + toolScore + challengeScore)),
		Justification: fmt.Sprintf("Alignment: processes %.2f, tools %.2f, challenges %.2f",
			processScore, toolScore, challengeScore),
		Suggestions: missing,
	}
}

// scoreINCOSE: base 0.7; +0.3 for two or more competency keywords, +0.15 for
// exactly one.
func scoreINCOSE(in criterionInput) Score {
	value := 0.7
	keywords := incoseKeywords[templates.NormalizeKey(in.competency)]

	var matched int
	for _, kw := range keywords {
		if fuzzyHas(in.tokens, kw) {
			matched++
		}
	}

	var missing []string
	switch {
	case matched >= 2:
		value += 0.3
	case matched == 1:
		value += 0.15
		missing = append(missing, "Use more INCOSE framework vocabulary for this competency")
	default:
		if len(keywords) > 0 {
			missing = append(missing, "Use INCOSE framework vocabulary for this competency")
		}
	}

	return Score{
		Criterion:     CriterionINCOSE,
		Value:         round3(value),
		Justification: fmt.Sprintf("INCOSE vocabulary matches: %d", matched),
		Suggestions:   missing,
	}
}

// scoreBusinessValue: 0.4 for the literal phrase "so that", up to 0.3 for
// value verbs (0.1 each), up to 0.3 for named business outcomes (0.15 each).
func scoreBusinessValue(in criterionInput) Score {
	var value float64
	var missing []string

	if strings.Contains(in.lowered, "so that") {
		value += 0.4
	} else {
		missing = append(missing, "Add a 'so that ...' clause explaining the business benefit")
	}

	var verbScore float64
	for _, v := range valueVerbs {
		if strings.Contains(in.lowered, v) {
			verbScore += 0.1
		}
	}
	value += min2(verbScore, 0.3)

	var outcomeScore float64
	for _, o := range businessOutcomes {
		if strings.Contains(in.lowered, o) {
			outcomeScore += 0.15
		}
	}
	value += min2(outcomeScore, 0.3)

	if verbScore == 0 && outcomeScore == 0 {
		missing = append(missing, "Name the business outcome, e.g. efficiency, quality or cost")
	}

	return Score{
		Criterion:     CriterionBusinessValue,
		Value:         round3(clamp01(value)),
		Justification: "Business value from rationale clause, value verbs and named outcomes",
		Suggestions:   missing,
	}
}

func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func unitMatchesArchetype(lowered, archetype string) bool {
	for _, unit := range templates.ExpectedTimeUnits(archetype) {
		for _, w := range unitWords[unit] {
			if strings.Contains(lowered, w) {
				return true
			}
		}
	}
	return false
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
