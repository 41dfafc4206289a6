package retrieval

import "context"

// SeedCorpus holds the built-in historical objective corpus used to
// initialize a fresh store. Metadata records the competency and archetype
// each objective was written for.
var SeedCorpus = []Document{
	{
		ID:   "obj-systemic-001",
		Text: "At the end of 2 weeks, participants will be able to identify system boundaries and external interfaces of the product by creating a system context diagram, so that integration risks surface earlier.",
		Metadata: map[string]string{"competency": "Systemic thinking", "archetype": "Common basic understanding"},
	},
	{
		ID:   "obj-systemic-002",
		Text: "Within 6 weeks, participants will be able to analyze emergent behavior across subsystems by building and reviewing system models in Cameo, so that cross-discipline defects are reduced.",
		Metadata: map[string]string{"competency": "Systemic thinking", "archetype": "Needs-based project-oriented"},
	},
	{
		ID:   "obj-requirements-001",
		Text: "Within 4 weeks, participants will be able to write verifiable stakeholder requirements and maintain bidirectional traceability in DOORS, so that change impact analysis becomes reliable.",
		Metadata: map[string]string{"competency": "Requirements management", "archetype": "Needs-based project-oriented"},
	},
	{
		ID:   "obj-requirements-002",
		Text: "At the end of 1 day, participants will be able to distinguish stakeholder, system and component requirements by classifying examples from their own project, so that specification handovers improve.",
		Metadata: map[string]string{"competency": "Requirements management", "archetype": "Common basic understanding"},
	},
	{
		ID:   "obj-architecture-001",
		Text: "Within 8 weeks, participants will be able to derive a system architecture by allocating requirements to system elements and documenting trade-offs, so that design decisions become reviewable.",
		Metadata: map[string]string{"competency": "Architecture design", "archetype": "Needs-based project-oriented"},
	},
	{
		ID:   "obj-integration-001",
		Text: "Within 8 weeks, participants will be able to plan a stepwise integration sequence with verification points for their subsystem, so that late integration surprises decrease.",
		Metadata: map[string]string{"competency": "Integration", "archetype": "Needs-based project-oriented"},
	},
	{
		ID:   "obj-verification-001",
		Text: "Within 4 weeks, participants will be able to define a verification method for every requirement and document it in a verification plan, so that test coverage gaps are visible.",
		Metadata: map[string]string{"competency": "Verification and validation", "archetype": "Train the trainer"},
	},
	{
		ID:   "obj-risk-001",
		Text: "Within 2 weeks, participants will be able to identify and assess technical risks using the corporate risk process and propose mitigations, so that project risk exposure is reduced.",
		Metadata: map[string]string{"competency": "Risk management", "archetype": "Common basic understanding"},
	},
	{
		ID:   "obj-interface-001",
		Text: "Within 4 weeks, participants will be able to specify interfaces between system elements in interface control documents and negotiate changes with partner teams, so that integration rework drops.",
		Metadata: map[string]string{"competency": "Interface management", "archetype": "Needs-based project-oriented"},
	},
	{
		ID:   "obj-trainer-001",
		Text: "Within 3 weeks, participants will be able to prepare and deliver a training module on requirements quality to their team, successfully coaching at least two colleagues, so that internal knowledge spreads.",
		Metadata: map[string]string{"competency": "Requirements management", "archetype": "Train the trainer"},
	},
}

// Seed indexes the built-in corpus into store.
func Seed(ctx context.Context, store VectorStore) error {
	return store.Add(ctx, SeedCorpus...)
}
