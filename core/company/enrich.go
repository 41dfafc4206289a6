package company

import "sort"

// industryDefaults holds the per-industry template defaults merged in during
// enrichment.
type industryDefaults struct {
	Processes  []string
	Methods    []string
	Tools      []string
	Challenges []string
}

var industryTemplates = map[string]industryDefaults{
	"Automotive": {
		Processes:  []string{"Requirements Engineering", "Functional Safety Process"},
		Methods:    []string{"Model-Based Systems Engineering", "V-Model"},
		Tools:      []string{"DOORS", "MATLAB"},
		Challenges: []string{"Managing system complexity", "Regulatory compliance"},
	},
	"Aerospace": {
		Processes:  []string{"Requirements Management", "Verification and Validation"},
		Methods:    []string{"V-Model", "Model-Based Systems Engineering"},
		Tools:      []string{"DOORS", "Cameo Systems Modeler"},
		Challenges: []string{"Certification effort", "Regulatory compliance"},
	},
	"Defense": {
		Processes:  []string{"Requirements Management", "Configuration Management"},
		Methods:    []string{"V-Model"},
		Tools:      []string{"DOORS"},
		Challenges: []string{"Supplier coordination", "Long project lifecycles"},
	},
	"Medical Devices": {
		Processes:  []string{"Risk Management", "Verification and Validation"},
		Methods:    []string{"V-Model", "Design Thinking"},
		Tools:      []string{"Polarion"},
		Challenges: []string{"Regulatory compliance", "Requirements traceability"},
	},
	"Railway": {
		Processes:  []string{"Requirements Engineering", "System Integration"},
		Methods:    []string{"V-Model"},
		Tools:      []string{"DOORS"},
		Challenges: []string{"Regulatory compliance", "Long project lifecycles"},
	},
	"Energy": {
		Processes:  []string{"Risk Management", "System Integration"},
		Methods:    []string{"Lean Engineering"},
		Tools:      []string{"Enterprise Architect"},
		Challenges: []string{"Managing system complexity"},
	},
}

// Enrich merges industry template defaults into the context for any process,
// method, tool or challenge not already present. Additive and idempotent: a
// second application is a no-op because the dedup check is "not already
// present". Returns the same pointer for chaining.
func Enrich(ctx *Context) *Context {
	defaults, ok := industryTemplates[ctx.Industry]
	if !ok {
		return ctx
	}
	ctx.Processes = mergeMissing(ctx.Processes, defaults.Processes)
	ctx.Methods = mergeMissing(ctx.Methods, defaults.Methods)
	ctx.Tools = mergeMissing(ctx.Tools, defaults.Tools)
	ctx.CurrentChallenges = mergeMissing(ctx.CurrentChallenges, defaults.Challenges)
	return ctx
}

func mergeMissing(existing, additions []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, item := range existing {
		seen[item] = true
	}
	for _, item := range additions {
		if !seen[item] {
			existing = append(existing, item)
			seen[item] = true
		}
	}
	return existing
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
