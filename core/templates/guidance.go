package templates

import "github.com/jmngeo/seqpt/core/company"

// Static guidance tables. Every lookup has a generic fallback; none fails.

var archetypeGuidance = map[string]string{
	"common_basic_understanding": "Build shared foundational awareness across all participants. Keep scope introductory; avoid advanced techniques and specialist depth.",
	"train_the_trainer":          "Combine competency depth with didactic preparation so participants can teach the material onward inside the organization.",
	"needs-based_project-oriented": "Anchor learning in a concrete running project; every objective should produce an artifact the project actually needs.",
	"continuous_support":         "Favor coaching and on-demand mentoring embedded in daily work over classroom sessions.",
	"certification":              "Align objectives with the relevant certification syllabus and its examination format.",
}

const genericArchetypeGuidance = "Tailor the objective to the chosen qualification strategy, balancing depth against the participants' available time."

var competencyFocus = map[string]string{
	"systemic_thinking":       "Seeing the system as a whole: boundaries, interfaces, emergent behavior, and interactions with the operational environment.",
	"requirements_management": "Eliciting, specifying, tracing and controlling requirements through the full lifecycle.",
	"architecture_design":     "Deriving and evaluating system architectures, allocating requirements to elements, and managing design trade-offs.",
	"integration":            "Planning and executing stepwise system integration with defined verification points.",
	"verification_validation": "Demonstrating that the system is built right and that the right system is built.",
	"risk_management":         "Identifying, assessing and mitigating technical and programmatic risks.",
	"interface_management":    "Defining, negotiating and controlling interfaces between system elements and organizations.",
}

const genericCompetencyFocus = "Apply the competency's core practices to the organization's systems engineering work."

var industryExpertise = map[string]string{
	"Automotive":            "You know automotive development: ISO 26262 functional safety, ASPICE process maturity, AUTOSAR, and the supplier-OEM split of work.",
	"Aerospace":             "You know aerospace development: ARP4754A, DO-178C/DO-254 certification, and long-lifecycle configuration control.",
	"Defense":               "You know defense programs: rigid contractual baselines, MIL-STD processes, and multi-supplier integration.",
	"Medical Devices":       "You know medical device development: IEC 62304, ISO 14971 risk management, and design-history-file documentation duties.",
	"Railway":               "You know railway systems: EN 50126/50128/50129 RAMS lifecycle and safety case construction.",
	"Energy":                "You know energy systems: grid integration, IEC 61508 functional safety, and brownfield retrofit constraints.",
	"Telecommunications":    "You know telecom infrastructure: standards-driven interoperability and high-availability operation.",
	"Industrial Automation": "You know industrial automation: IEC 61131 control software, OT/IT integration and production-line commissioning.",
}

const genericIndustryExpertise = "You have broad cross-industry systems engineering experience."

// learningFormat maps archetypes to the delivery format the strategy implies.
var learningFormat = map[string]string{
	"common_basic_understanding": "short interactive workshop sessions with group exercises",
	"train_the_trainer":          "intensive seminar blocks followed by supervised teaching practice",
	"needs-based_project-oriented": "on-the-job assignments embedded in the running project, with coaching checkpoints",
	"continuous_support":         "recurring coaching sessions and on-demand mentoring",
	"certification":              "structured course modules aligned with the certification syllabus, with practice examinations",
}

const genericLearningFormat = "a blended format of instruction and applied exercises"

// TimeUnit describes the duration granularity an archetype expects.
type TimeUnit int

const (
	UnitHours TimeUnit = iota
	UnitDays
	UnitWeeks
	UnitMonths
)

// expectedTimeUnits maps archetypes to expected objective duration units.
// Short-form archetypes expect hours or days.
var expectedTimeUnits = map[string][]TimeUnit{
	"common_basic_understanding": {UnitHours, UnitDays},
	"train_the_trainer":          {UnitDays, UnitWeeks},
	"needs-based_project-oriented": {UnitWeeks, UnitMonths},
	"continuous_support":         {UnitWeeks, UnitMonths},
	"certification":              {UnitWeeks, UnitMonths},
}

var defaultTimeUnits = []TimeUnit{UnitWeeks}

// timeframeByArchetype is refined per maturity level: more mature
// organizations get shorter, denser formats.
var timeframeGuidance = map[string]map[company.MaturityLevel]string{
	"common_basic_understanding": {
		company.MaturityDeveloping:  "one full day to two days of foundational sessions",
		company.MaturityEstablished: "one full day of focused sessions",
		company.MaturityAdvanced:    "half a day to one day, concentrating on gaps",
		company.MaturityExpert:      "a half-day refresher",
	},
	"train_the_trainer": {
		company.MaturityDeveloping:  "three to five days of seminar plus four weeks of supervised practice",
		company.MaturityEstablished: "two to three days of seminar plus two weeks of supervised practice",
		company.MaturityAdvanced:    "two days of seminar plus supervised practice as needed",
		company.MaturityExpert:      "one to two days focused on didactics only",
	},
	"needs-based_project-oriented": {
		company.MaturityDeveloping:  "eight to twelve weeks embedded in the project with weekly coaching",
		company.MaturityEstablished: "six to eight weeks embedded in the project",
		company.MaturityAdvanced:    "four to six weeks with milestone-driven checkpoints",
		company.MaturityExpert:      "two to four weeks targeting specific project deliverables",
	},
}

const genericTimeframe = "two to six weeks, matched to the participants' availability"

// ArchetypeGuidance returns the strategy guidance text for an archetype.
func ArchetypeGuidance(archetype string) string {
	if g, ok := archetypeGuidance[NormalizeKey(archetype)]; ok {
		return g
	}
	return genericArchetypeGuidance
}

// CompetencyFocus returns the focus text for a competency.
func CompetencyFocus(competency string) string {
	if f, ok := competencyFocus[NormalizeKey(competency)]; ok {
		return f
	}
	return genericCompetencyFocus
}

// IndustryExpertise returns the expertise note for an industry label.
func IndustryExpertise(industry string) string {
	if e, ok := industryExpertise[industry]; ok {
		return e
	}
	return genericIndustryExpertise
}

// LearningFormat returns the delivery-format text for an archetype.
func LearningFormat(archetype string) string {
	if f, ok := learningFormat[NormalizeKey(archetype)]; ok {
		return f
	}
	return genericLearningFormat
}

// TimeframeGuidance returns the duration guidance for an archetype at a given
// maturity level.
func TimeframeGuidance(archetype string, maturity company.MaturityLevel) string {
	if byMaturity, ok := timeframeGuidance[NormalizeKey(archetype)]; ok {
		if t, ok := byMaturity[maturity]; ok {
			return t
		}
	}
	return genericTimeframe
}

// ExpectedTimeUnits returns the duration units an archetype's objectives are
// expected to use.
func ExpectedTimeUnits(archetype string) []TimeUnit {
	if units, ok := expectedTimeUnits[NormalizeKey(archetype)]; ok {
		return units
	}
	return defaultTimeUnits
}
