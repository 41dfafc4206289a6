package retrieval

import (
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	"github.com/viterin/vek/vek32"
)

// embeddingDim is the hashed term-frequency vector width. 256 buckets is
// plenty for the short objective texts this store holds.
const embeddingDim = 256

// embed builds an l2-normalized hashed term-frequency vector for text.
func embed(text string) []float32 {
	vec := make([]float32, embeddingDim)
	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[h.Sum32()%embeddingDim]++
	}
	norm := float32(math.Sqrt(float64(vek32.Dot(vec, vec))))
	if norm > 0 {
		vek32.DivNumber_Inplace(vec, norm)
	}
	return vec
}

// cosine returns the cosine similarity of two embeddings in [-1,1].
// Vectors are already normalized, so this is a dot product.
func cosine(a, b []float32) float64 {
	return float64(vek32.Dot(a, b))
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
