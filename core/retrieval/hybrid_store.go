package retrieval

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/blevesearch/bleve/v2"
)

// rrfConstant is the k constant for Reciprocal Rank Fusion. 60 is the value
// commonly used in information retrieval.
const rrfConstant = 60

// bleveDoc is the shape indexed into Bleve.
type bleveDoc struct {
	Text string `json:"text"`
}

// HybridStore implements VectorStore with an in-memory hashed-embedding index
// fused with a Bleve full-text index. Documents and embeddings live in maps
// guarded by a RWMutex; the Bleve index handles text scoring.
type HybridStore struct {
	index bleve.Index

	mu      sync.RWMutex
	docs    map[string]Document
	vectors map[string][]float32
	closed  bool
}

// NewMemoryStore creates a HybridStore backed by an in-memory Bleve index.
func NewMemoryStore() (*HybridStore, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create bleve index: %w", err)
	}
	return newHybridStore(index), nil
}

// OpenStore opens the Bleve index at path, creating it if it does not exist.
// The open-or-create step is idempotent.
func OpenStore(path string) (*HybridStore, error) {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist || os.IsNotExist(err) {
		index, err = bleve.New(path, bleve.NewIndexMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("open bleve index %s: %w", path, err)
	}

	store := newHybridStore(index)
	if err := store.reloadFromIndex(); err != nil {
		index.Close()
		return nil, err
	}
	return store, nil
}

func newHybridStore(index bleve.Index) *HybridStore {
	return &HybridStore{
		index:   index,
		docs:    make(map[string]Document),
		vectors: make(map[string][]float32),
	}
}

// reloadFromIndex rebuilds the in-memory maps from a persisted Bleve index.
func (s *HybridStore) reloadFromIndex() error {
	query := bleve.NewMatchAllQuery()
	req := bleve.NewSearchRequestOptions(query, 10000, 0, false)
	req.Fields = []string{"text"}

	res, err := s.index.Search(req)
	if err != nil {
		return fmt.Errorf("reload index: %w", err)
	}
	for _, hit := range res.Hits {
		text, _ := hit.Fields["text"].(string)
		s.docs[hit.ID] = Document{ID: hit.ID, Text: text}
		s.vectors[hit.ID] = embed(text)
	}
	return nil
}

// Add indexes documents in both the vector and text indexes.
func (s *HybridStore) Add(ctx context.Context, docs ...Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.index.Index(doc.ID, bleveDoc{Text: doc.Text}); err != nil {
			return fmt.Errorf("index document %s: %w", doc.ID, err)
		}
		s.docs[doc.ID] = doc
		s.vectors[doc.ID] = embed(doc.Text)
	}
	return nil
}

// Query runs cosine-similarity and full-text searches, then fuses both
// rankings with Reciprocal Rank Fusion.
func (s *HybridStore) Query(ctx context.Context, text string, k int) ([]Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	if k <= 0 || len(s.docs) == 0 {
		return []Result{}, nil
	}

	vectorRank := s.vectorRank(text, k*2)

	textRank, err := s.textRank(ctx, text, k*2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	fused := fuseRRF(vectorRank, textRank)
	if len(fused) > k {
		fused = fused[:k]
	}

	results := make([]Result, 0, len(fused))
	for _, f := range fused {
		results = append(results, Result{Document: s.docs[f.id], Score: f.score})
	}
	return results, nil
}

// Count reports the number of indexed documents.
func (s *HybridStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	return len(s.docs), nil
}

// Close closes the underlying Bleve index.
func (s *HybridStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.index.Close()
}

type rankedID struct {
	id    string
	score float64
}

func (s *HybridStore) vectorRank(text string, limit int) []rankedID {
	qvec := embed(text)
	ranked := make([]rankedID, 0, len(s.vectors))
	for id, vec := range s.vectors {
		ranked = append(ranked, rankedID{id: id, score: cosine(qvec, vec)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].id < ranked[j].id
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (s *HybridStore) textRank(ctx context.Context, text string, limit int) ([]rankedID, error) {
	query := bleve.NewMatchQuery(text)
	req := bleve.NewSearchRequestOptions(query, limit, 0, false)

	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}
	ranked := make([]rankedID, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ranked = append(ranked, rankedID{id: hit.ID, score: hit.Score})
	}
	return ranked, nil
}

// fuseRRF merges two rankings with Reciprocal Rank Fusion. Each list
// contributes 1/(rrfConstant+rank+1) per document; combined scores sort the
// final ranking.
func fuseRRF(vectorRank, textRank []rankedID) []rankedID {
	combined := make(map[string]float64)
	for rank, r := range vectorRank {
		combined[r.id] += 1.0 / float64(rrfConstant+rank+1)
	}
	for rank, r := range textRank {
		combined[r.id] += 1.0 / float64(rrfConstant+rank+1)
	}

	fused := make([]rankedID, 0, len(combined))
	for id, score := range combined {
		fused = append(fused, rankedID{id: id, score: score})
	}
	sort.Slice(fused, func(i, j int) bool {
		if fused[i].score != fused[j].score {
			return fused[i].score > fused[j].score
		}
		return fused[i].id < fused[j].id
	})
	return fused
}
