package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmngeo/seqpt/core/company"
	"github.com/jmngeo/seqpt/core/config"
	"github.com/jmngeo/seqpt/core/generation"
	"github.com/jmngeo/seqpt/core/history"
	"github.com/jmngeo/seqpt/core/prompts"
	"github.com/jmngeo/seqpt/core/retrieval"
	"github.com/jmngeo/seqpt/core/smart"
)

// runtime bundles everything a command needs.
type runtime struct {
	cfg     *config.Config
	engine  *generation.Engine
	store   retrieval.VectorStore
	history *history.Store
}

// loadConfig reads the config and applies API-key environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.LLM.Anthropic.APIKey == "" {
		cfg.LLM.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.LLM.OpenAI.APIKey == "" {
		cfg.LLM.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return cfg, nil
}

// newRuntime wires the pipeline from configuration. The caller must call
// close when done.
func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := slog.Default()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	retriever, err := retrieval.NewTemplateRetriever(store, logger)
	if err != nil {
		store.Close()
		return nil, err
	}

	provider, err := cfg.BuildProvider()
	if err != nil {
		store.Close()
		return nil, err
	}

	validator, err := smart.NewValidator(cfg.Generation.QualityThreshold, logger)
	if err != nil {
		store.Close()
		return nil, err
	}

	engine, err := generation.NewEngine(
		company.NewExtractor(logger),
		retriever,
		prompts.NewEngineer(),
		provider,
		validator,
		generation.NewStatisticsTracker(),
		generation.Config{
			MaxIterations:   cfg.Generation.MaxIterations,
			TopK:            cfg.Retrieval.TopK,
			FeedbackEnabled: cfg.Generation.FeedbackEnabled,
		},
		logger,
	)
	if err != nil {
		store.Close()
		return nil, err
	}

	rt := &runtime{cfg: cfg, engine: engine, store: store}

	if cfg.History.Enabled {
		h, err := history.Open(cfg.History.Path)
		if err != nil {
			store.Close()
			return nil, err
		}
		rt.history = h
	}

	return rt, nil
}

// openStore opens the configured index (or an in-memory store) and seeds the
// built-in corpus when the index is empty.
func openStore(ctx context.Context, cfg *config.Config) (retrieval.VectorStore, error) {
	var (
		store *retrieval.HybridStore
		err   error
	)
	if cfg.Retrieval.IndexPath != "" {
		store, err = retrieval.OpenStore(cfg.Retrieval.IndexPath)
	} else {
		store, err = retrieval.NewMemoryStore()
	}
	if err != nil {
		return nil, err
	}

	count, err := store.Count()
	if err != nil {
		store.Close()
		return nil, err
	}
	if count == 0 {
		if err := retrieval.Seed(ctx, store); err != nil {
			store.Close()
			return nil, fmt.Errorf("seed objective corpus: %w", err)
		}
	}
	return store, nil
}

func (rt *runtime) close() {
	if rt.history != nil {
		rt.history.Close()
	}
	rt.store.Close()
}

// recordResult writes the run to the history log when enabled.
func (rt *runtime) recordResult(ctx context.Context, result *generation.Result) {
	if rt.history == nil {
		return
	}
	if err := rt.history.RecordResult(ctx, result); err != nil {
		slog.Warn("failed to record run history", "error", err)
	}
}
