// Package company models an organization's systems-engineering environment and
// extracts it from free-text descriptions or questionnaire payloads.
package company

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Maturity and Size Enums
// =============================================================================

// MaturityLevel classifies an organization's systems-engineering maturity.
type MaturityLevel string

const (
	MaturityDeveloping  MaturityLevel = "developing"
	MaturityEstablished MaturityLevel = "established"
	MaturityAdvanced    MaturityLevel = "advanced"
	MaturityExpert      MaturityLevel = "expert"
)

// ParseMaturityLevel parses a string into a MaturityLevel.
func ParseMaturityLevel(s string) (MaturityLevel, bool) {
	switch MaturityLevel(s) {
	case MaturityDeveloping, MaturityEstablished, MaturityAdvanced, MaturityExpert:
		return MaturityLevel(s), true
	default:
		return MaturityDeveloping, false
	}
}

// OrganizationSize buckets headcount into coarse categories.
type OrganizationSize string

const (
	SizeSmall      OrganizationSize = "small"
	SizeMedium     OrganizationSize = "medium"
	SizeLarge      OrganizationSize = "large"
	SizeEnterprise OrganizationSize = "enterprise"
)

// ParseOrganizationSize parses a string into an OrganizationSize.
func ParseOrganizationSize(s string) (OrganizationSize, bool) {
	switch OrganizationSize(s) {
	case SizeSmall, SizeMedium, SizeLarge, SizeEnterprise:
		return OrganizationSize(s), true
	default:
		return SizeMedium, false
	}
}

// =============================================================================
// CompanyContext
// =============================================================================

// Context describes one organization's systems-engineering environment. It is
// built once per generation request and treated as immutable input downstream.
// All slice fields are always non-nil so formatting code never branches on
// missing collections.
type Context struct {
	CompanyName    string   `json:"company_name"`
	Industry       string   `json:"industry"`
	BusinessDomain string   `json:"business_domain"`

	Processes              []string `json:"processes"`
	Methods                []string `json:"methods"`
	Tools                  []string `json:"tools"`
	CurrentChallenges      []string `json:"current_challenges"`
	ProjectTypes           []string `json:"project_types"`
	RegulatoryRequirements []string `json:"regulatory_requirements"`

	MaturityLevel    MaturityLevel    `json:"se_maturity_level"`
	OrganizationSize OrganizationSize `json:"organization_size"`
}

// NewContext returns a Context with conservative defaults and empty, non-nil
// collections.
func NewContext(name string) *Context {
	return &Context{
		CompanyName:            name,
		Industry:               "General",
		Processes:              []string{},
		Methods:                []string{},
		Tools:                  []string{},
		CurrentChallenges:      []string{},
		ProjectTypes:           []string{},
		RegulatoryRequirements: []string{},
		MaturityLevel:          MaturityDeveloping,
		OrganizationSize:       SizeMedium,
	}
}

// Summary is the condensed view packaged into generation results.
type Summary struct {
	CompanyName string   `json:"company_name"`
	Industry    string   `json:"industry"`
	Maturity    string   `json:"maturity"`
	Processes   []string `json:"processes"`
	Tools       []string `json:"tools"`
	Challenges  []string `json:"challenges"`
}

// Summarize returns the condensed context view: first three processes and
// tools, first two challenges.
func (c *Context) Summarize() Summary {
	return Summary{
		CompanyName: c.CompanyName,
		Industry:    c.Industry,
		Maturity:    string(c.MaturityLevel),
		Processes:   headOf(c.Processes, 3),
		Tools:       headOf(c.Tools, 3),
		Challenges:  headOf(c.CurrentChallenges, 2),
	}
}

// Clone returns a deep copy. Enrichment mutates the copy, never the original
// request context.
func (c *Context) Clone() *Context {
	out := *c
	out.Processes = append([]string{}, c.Processes...)
	out.Methods = append([]string{}, c.Methods...)
	out.Tools = append([]string{}, c.Tools...)
	out.CurrentChallenges = append([]string{}, c.CurrentChallenges...)
	out.ProjectTypes = append([]string{}, c.ProjectTypes...)
	out.RegulatoryRequirements = append([]string{}, c.RegulatoryRequirements...)
	return &out
}

// =============================================================================
// Persistence (optional, non-core)
// =============================================================================

// Save writes the context to path as JSON.
func (c *Context) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal company context: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write company context: %w", err)
	}
	return nil
}

// Load reads a context previously written by Save. Nil slice fields are
// restored to empty slices to preserve the non-nil invariant.
func Load(path string) (*Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read company context: %w", err)
	}
	var c Context
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal company context: %w", err)
	}
	c.normalize()
	return &c, nil
}

func (c *Context) normalize() {
	if c.Industry == "" {
		c.Industry = "General"
	}
	if _, ok := ParseMaturityLevel(string(c.MaturityLevel)); !ok {
		c.MaturityLevel = MaturityDeveloping
	}
	if _, ok := ParseOrganizationSize(string(c.OrganizationSize)); !ok {
		c.OrganizationSize = SizeMedium
	}
	for _, f := range []*[]string{
		&c.Processes, &c.Methods, &c.Tools,
		&c.CurrentChallenges, &c.ProjectTypes, &c.RegulatoryRequirements,
	} {
		if *f == nil {
			*f = []string{}
		}
	}
}

func headOf(s []string, n int) []string {
	if len(s) < n {
		n = len(s)
	}
	return append([]string{}, s[:n]...)
}
