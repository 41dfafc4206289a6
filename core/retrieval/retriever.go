package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultTopK is the default number of reference objectives retrieved.
const DefaultTopK = 3

// templateSeparator joins retrieved objective texts.
const templateSeparator = "\n---\n"

// genericFallback is returned when neither the store nor the static table
// yields anything.
const genericFallback = "Participants will be able to apply systems engineering practices to their daily work within an appropriate timeframe."

// fallbackObjectives maps competency keywords to one-line example objectives
// used when retrieval yields nothing.
var fallbackObjectives = map[string]string{
	"systemic":     "At the end of the training, participants will be able to identify system boundaries and interfaces in their product by creating a context diagram.",
	"thinking":     "At the end of the training, participants will be able to identify system boundaries and interfaces in their product by creating a context diagram.",
	"requirements": "Within 4 weeks, participants will be able to write verifiable requirements and maintain traceability using the company's requirements tool.",
	"architecture": "Within 6 weeks, participants will be able to derive and document a system architecture by allocating requirements to system elements.",
	"integration":  "Within 8 weeks, participants will be able to plan a stepwise integration sequence with defined verification points for their project.",
	"verification": "Within 4 weeks, participants will be able to define verification methods for each requirement and document them in a verification plan.",
	"validation":   "Within 4 weeks, participants will be able to define verification methods for each requirement and document them in a verification plan.",
	"risk":         "Within 2 weeks, participants will be able to identify and assess technical risks using the company's risk management process.",
	"interface":    "Within 4 weeks, participants will be able to specify and negotiate interfaces between system elements using interface control documents.",
}

// cacheSize bounds the retrieval result cache. Keys are (competency,
// archetype, k) and results are static per store generation, so a small
// cache is sufficient.
const cacheSize = 128

// TemplateRetriever retrieves historical objective texts for a competency and
// archetype. Every failure path degrades silently to a static fallback; the
// retriever never returns an error to the caller.
type TemplateRetriever struct {
	store  VectorStore
	cache  *lru.Cache[string, string]
	logger *slog.Logger
}

// NewTemplateRetriever creates a retriever over store. A nil logger falls
// back to slog.Default.
func NewTemplateRetriever(store VectorStore, logger *slog.Logger) (*TemplateRetriever, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create retrieval cache: %w", err)
	}
	return &TemplateRetriever{
		store:  store,
		cache:  cache,
		logger: logger.With("component", "template_retriever"),
	}, nil
}

// Retrieve returns the concatenated top-k similar objective texts for the
// competency and archetype, falling back to the static table (then a generic
// sentence) when the store is empty or the query fails.
func (r *TemplateRetriever) Retrieve(ctx context.Context, competency, archetype string, k int) string {
	if k <= 0 {
		k = DefaultTopK
	}

	cacheKey := fmt.Sprintf("%s|%s|%d", competency, archetype, k)
	if cached, ok := r.cache.Get(cacheKey); ok {
		return cached
	}

	query := fmt.Sprintf("Learning objective for %s competency using %s approach", competency, archetype)

	results, err := r.store.Query(ctx, query, k)
	if err != nil {
		r.logger.Warn("template retrieval failed, using static fallback",
			"competency", competency, "archetype", archetype, "error", err)
		return r.fallback(competency)
	}
	if len(results) == 0 {
		r.logger.Warn("template retrieval returned no documents, using static fallback",
			"competency", competency, "archetype", archetype)
		return r.fallback(competency)
	}

	texts := make([]string, 0, len(results))
	for _, res := range results {
		texts = append(texts, res.Document.Text)
	}
	joined := strings.Join(texts, templateSeparator)
	r.cache.Add(cacheKey, joined)
	return joined
}

// fallback looks up a one-line example objective by competency keyword,
// returning the generic sentence on a miss. Fallback results are not cached
// so a later successful seed takes effect immediately.
func (r *TemplateRetriever) fallback(competency string) string {
	lowered := strings.ToLower(competency)
	for keyword, objective := range fallbackObjectives {
		if strings.Contains(lowered, keyword) {
			return objective
		}
	}
	return genericFallback
}
