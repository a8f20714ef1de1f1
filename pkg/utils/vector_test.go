package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.3, 0.4, 0.5}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-6)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-6)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-6)
	})

	t.Run("magnitude does not matter", func(t *testing.T) {
		a := []float32{1, 2, 3}
		b := []float32{10, 20, 30}
		assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-6)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}))
	})

	t.Run("empty and zero vectors", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity(nil, nil))
		assert.Zero(t, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	})
}

func TestNormalizeVector(t *testing.T) {
	t.Run("unit length", func(t *testing.T) {
		normalized := NormalizeVector([]float32{3, 4})
		assert.InDelta(t, 0.6, normalized[0], 1e-6)
		assert.InDelta(t, 0.8, normalized[1], 1e-6)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		normalized := NormalizeVector([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, normalized)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		v := []float32{3, 4}
		NormalizeVector(v)
		assert.Equal(t, []float32{3, 4}, v)
	})
}
