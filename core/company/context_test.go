package company

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// Context Tests
// =============================================================================

func TestParseEnums(t *testing.T) {
	if level, ok := ParseMaturityLevel("expert"); !ok || level != MaturityExpert {
		t.Errorf("ParseMaturityLevel(expert) = %q, %v", level, ok)
	}
	if level, ok := ParseMaturityLevel("galactic"); ok || level != MaturityDeveloping {
		t.Errorf("invalid maturity should default to developing, got %q, %v", level, ok)
	}
	if size, ok := ParseOrganizationSize("enterprise"); !ok || size != SizeEnterprise {
		t.Errorf("ParseOrganizationSize(enterprise) = %q, %v", size, ok)
	}
	if size, ok := ParseOrganizationSize("gigantic"); ok || size != SizeMedium {
		t.Errorf("invalid size should default to medium, got %q, %v", size, ok)
	}
}

func TestSummarize_TruncatesCollections(t *testing.T) {
	ctx := NewContext("TestCo")
	ctx.Processes = []string{"P1", "P2", "P3", "P4"}
	ctx.Tools = []string{"T1", "T2", "T3", "T4"}
	ctx.CurrentChallenges = []string{"C1", "C2", "C3"}

	s := ctx.Summarize()
	if len(s.Processes) != 3 || len(s.Tools) != 3 || len(s.Challenges) != 2 {
		t.Errorf("summary sizes: processes %d, tools %d, challenges %d",
			len(s.Processes), len(s.Tools), len(s.Challenges))
	}
	if s.CompanyName != "TestCo" || s.Maturity != "developing" {
		t.Errorf("summary fields wrong: %+v", s)
	}
}

func TestClone_IsDeep(t *testing.T) {
	original := NewContext("TestCo")
	original.Tools = []string{"DOORS"}

	clone := original.Clone()
	clone.Tools[0] = "changed"
	clone.Tools = append(clone.Tools, "extra")

	if original.Tools[0] != "DOORS" || len(original.Tools) != 1 {
		t.Errorf("clone mutation leaked into original: %v", original.Tools)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "context.json")

	ctx := NewContext("TestCo")
	ctx.Industry = "Railway"
	ctx.MaturityLevel = MaturityAdvanced
	ctx.Tools = []string{"DOORS"}
	if err := ctx.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Industry != "Railway" || loaded.MaturityLevel != MaturityAdvanced {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.Tools[0] != "DOORS" {
		t.Errorf("tools lost: %v", loaded.Tools)
	}
}

func TestLoad_RestoresInvariants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "context.json")
	// Hand-written file with missing collections and an invalid maturity.
	raw := []byte(`{"company_name": "Sparse Co", "se_maturity_level": "bogus"}`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Industry != "General" {
		t.Errorf("empty industry should default to General, got %q", loaded.Industry)
	}
	if loaded.MaturityLevel != MaturityDeveloping {
		t.Errorf("invalid maturity should default to developing, got %q", loaded.MaturityLevel)
	}
	if loaded.Processes == nil || loaded.Tools == nil {
		t.Error("nil collections not restored to empty slices")
	}
}
