package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmngeo/seqpt/core/company"
	"github.com/jmngeo/seqpt/core/prompts"
	"github.com/jmngeo/seqpt/core/providers"
	"github.com/jmngeo/seqpt/core/smart"
)

// =============================================================================
// Test Doubles
// =============================================================================

type fakeExtractor struct{}

func (fakeExtractor) ExtractFromText(description, companyName string) *company.Context {
	return company.NewContext(companyName)
}

type fakeRetriever struct{ text string }

func (r fakeRetriever) Retrieve(_ context.Context, _, _ string, _ int) string {
	return r.text
}

// scriptedProvider returns one queued response per call and records the
// prompts it saw.
type scriptedProvider struct {
	responses []string
	err       error
	panicOn   string
	calls     int
	prompts   []string
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Complete(_ context.Context, req *providers.Request) (*providers.Response, error) {
	if p.panicOn != "" && req.Competency == p.panicOn {
		panic("scripted provider panic")
	}
	p.prompts = append(p.prompts, req.HumanPrompt)
	if p.err != nil {
		return nil, p.err
	}
	idx := p.calls
	p.calls++
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}
	return &providers.Response{Text: p.responses[idx]}, nil
}

// scriptedValidator maps objective text to a fixed quality.
type scriptedValidator struct {
	qualities map[string]float64
	threshold float64
}

func (v scriptedValidator) Threshold() float64 { return v.threshold }

func (v scriptedValidator) Validate(objective, competency string, cctx *company.Context, archetype, role string) *smart.Assessment {
	quality, ok := v.qualities[objective]
	if !ok {
		quality = 0.2
	}
	return &smart.Assessment{
		Objective:       objective,
		Competency:      competency,
		OverallQuality:  quality,
		MeetsThreshold:  quality >= v.threshold,
		ImprovementPlan: []string{"add a timeframe", "name a deliverable"},
	}
}

func newTestEngine(t *testing.T, provider providers.Provider, validator ObjectiveValidator) *Engine {
	t.Helper()
	engine, err := NewEngine(
		fakeExtractor{},
		fakeRetriever{text: "ref objective"},
		prompts.NewEngineer(),
		provider,
		validator,
		NewStatisticsTracker(),
		DefaultConfig(),
		nil,
	)
	require.NoError(t, err)
	return engine
}

func testRequest() Request {
	return Request{
		Competency:         "Systemic thinking",
		Role:               "Systems Engineer",
		Archetype:          "Common basic understanding",
		CompanyDescription: "automotive supplier",
		CompanyName:        "TestCo",
	}
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestNewEngine_Validation(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"x"}}
	validator := scriptedValidator{threshold: 0.85}

	_, err := NewEngine(fakeExtractor{}, fakeRetriever{}, prompts.NewEngineer(),
		nil, validator, nil, DefaultConfig(), nil)
	assert.Error(t, err, "nil provider must be rejected")

	badConfig := DefaultConfig()
	badConfig.MaxIterations = 0
	_, err = NewEngine(fakeExtractor{}, fakeRetriever{}, prompts.NewEngineer(),
		provider, validator, nil, badConfig, nil)
	assert.Error(t, err, "zero max iterations must be rejected")
}

// =============================================================================
// Iteration Loop Tests
// =============================================================================

func TestGenerateObjective_KeepsBestCandidateAcrossIterations(t *testing.T) {
	// Quality dips on the last round; the middle candidate must win.
	provider := &scriptedProvider{responses: []string{"obj-0", "obj-1", "obj-2"}}
	validator := scriptedValidator{
		threshold: 0.85,
		qualities: map[string]float64{"obj-0": 0.5, "obj-1": 0.6, "obj-2": 0.4},
	}

	engine := newTestEngine(t, provider, validator)
	result := engine.GenerateObjective(context.Background(), testRequest())

	require.Len(t, result.History, 3)
	assert.Equal(t, "obj-1", result.Objective)
	assert.Equal(t, 0.6, result.Assessment.OverallQuality)
	assert.False(t, result.IsFallback)

	maxQuality := 0.0
	for _, it := range result.History {
		if it.OverallQuality > maxQuality {
			maxQuality = it.OverallQuality
		}
	}
	assert.Equal(t, maxQuality, result.Assessment.OverallQuality,
		"returned objective must carry the best quality seen")
}

func TestGenerateObjective_StopsEarlyOnThreshold(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"good", "never-used"}}
	validator := scriptedValidator{
		threshold: 0.85,
		qualities: map[string]float64{"good": 0.9},
	}

	engine := newTestEngine(t, provider, validator)
	result := engine.GenerateObjective(context.Background(), testRequest())

	require.Len(t, result.History, 1)
	assert.Equal(t, 1, provider.calls, "no further provider calls after threshold met")
	assert.Equal(t, "good", result.Objective)
	assert.True(t, result.Assessment.MeetsThreshold)
	assert.Equal(t, 1, result.Metadata.Iterations)
}

func TestGenerateObjective_ThreadsFeedbackIntoNextPrompt(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"obj-0", "obj-1"}}
	validator := scriptedValidator{
		threshold: 0.85,
		qualities: map[string]float64{"obj-0": 0.5, "obj-1": 0.9},
	}

	engine := newTestEngine(t, provider, validator)
	engine.GenerateObjective(context.Background(), testRequest())

	require.Len(t, provider.prompts, 2)
	assert.NotContains(t, provider.prompts[0], "Refinement notes")
	assert.Contains(t, provider.prompts[1], "Refinement notes from the previous attempt")
	assert.Contains(t, provider.prompts[1], "add a timeframe")
}

// =============================================================================
// Degradation Tests
// =============================================================================

func TestGenerateObjective_ProviderFailureYieldsFlaggedFallback(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("api unreachable")}
	validator := scriptedValidator{threshold: 0.85}

	engine := newTestEngine(t, provider, validator)
	result := engine.GenerateObjective(context.Background(), testRequest())

	assert.True(t, result.IsFallback)
	assert.Contains(t, result.Error, "api unreachable")
	assert.False(t, result.Assessment.MeetsThreshold,
		"a fallback never counts as meeting the threshold")
	require.Len(t, result.History, 1, "provider failure must not retry")
	assert.Contains(t, result.Objective, "Systemic thinking")
	assert.Contains(t, result.Objective, "Systems Engineer")
}

func TestGenerateObjective_EmptyResponseTreatedAsFailure(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"   "}}
	validator := scriptedValidator{threshold: 0.85}

	engine := newTestEngine(t, provider, validator)
	result := engine.GenerateObjective(context.Background(), testRequest())

	assert.True(t, result.IsFallback)
	assert.Contains(t, result.Error, "empty objective")
}

func TestGenerateObjective_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &scriptedProvider{responses: []string{"never"}}
	validator := scriptedValidator{threshold: 0.85}

	engine := newTestEngine(t, provider, validator)
	result := engine.GenerateObjective(ctx, testRequest())

	assert.True(t, result.IsFallback)
	assert.Empty(t, result.History)
	assert.NotEmpty(t, result.Error)
	assert.True(t, strings.HasPrefix(result.Objective, "Participants will demonstrate"))
}

// =============================================================================
// Batch Tests
// =============================================================================

func TestBatchGenerate_PreservesOrderAndIsolatesFailures(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"ok"}, panicOn: "Broken competency"}
	validator := scriptedValidator{
		threshold: 0.85,
		qualities: map[string]float64{"ok": 0.9},
	}

	engine := newTestEngine(t, provider, validator)
	pairs := []CompetencyRole{
		{Competency: "Systemic thinking", Role: "Engineer"},
		{Competency: "Broken competency", Role: "Engineer"},
		{Competency: "Requirements management", Role: "Manager"},
	}

	results := engine.BatchGenerate(context.Background(), "desc", "TestCo", pairs, "Certification")

	require.Len(t, results, 3)
	for i, pair := range pairs {
		assert.Equal(t, pair.Competency, results[i].Metadata.Competency)
		assert.Equal(t, pair.Role, results[i].Metadata.Role)
	}
	assert.False(t, results[0].IsFallback)
	assert.True(t, results[1].IsFallback)
	assert.Contains(t, results[1].Error, "panic")
	assert.False(t, results[2].IsFallback, "failure in one pair must not abort the batch")
}

func TestBatchGenerate_CancelledContextFillsPlaceholders(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &scriptedProvider{responses: []string{"ok"}}
	engine := newTestEngine(t, provider, scriptedValidator{threshold: 0.85})

	pairs := []CompetencyRole{
		{Competency: "A", Role: "R1"},
		{Competency: "B", Role: "R2"},
	}
	results := engine.BatchGenerate(ctx, "desc", "TestCo", pairs, "Certification")

	require.Len(t, results, 2)
	for i, r := range results {
		assert.True(t, r.IsFallback, "pair %d", i)
		assert.NotEmpty(t, r.Error)
	}
	assert.Equal(t, 0, provider.calls)
}

// =============================================================================
// Statistics Tests
// =============================================================================

func TestStatisticsTracker_AccumulatesRuns(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"good"}}
	validator := scriptedValidator{
		threshold: 0.85,
		qualities: map[string]float64{"good": 0.9},
	}

	engine := newTestEngine(t, provider, validator)
	engine.GenerateObjective(context.Background(), testRequest())
	engine.GenerateObjective(context.Background(), testRequest())

	snap := engine.Stats().Snapshot()
	assert.Equal(t, 2, snap.TotalGenerated)
	assert.Equal(t, 2, snap.MeetingThreshold)
	assert.Equal(t, 0, snap.FallbackCount)
	assert.InDelta(t, 0.9, snap.AverageQuality, 1e-9)

	history := engine.Stats().History()
	require.Len(t, history, 2)
	assert.Equal(t, "Systemic thinking", history[0].Competency)
}
