package utils

import (
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// TextToVector creates a deterministic hash-based vector for a text. It is
// not a semantic embedding; it only needs to be stable so that the same
// destination text always lands near the same seeded places.
func TextToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	const dimensions = 1536
	vector := make([]float32, dimensions)

	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < dimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
