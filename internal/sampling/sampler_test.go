package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntBetween(t *testing.T) {
	s := New(1)

	for i := 0; i < 1000; i++ {
		n := s.IntBetween(3, 7)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 7)
	}

	// Degenerate range collapses to min
	assert.Equal(t, 5, s.IntBetween(5, 5))
	assert.Equal(t, 5, s.IntBetween(5, 2))
}

func TestWeightedChoice(t *testing.T) {
	s := New(1)
	items := []string{"a", "b", "c"}
	weights := []float64{0.70, 0.25, 0.05}

	counts := map[string]int{}
	for i := 0; i < 20000; i++ {
		counts[WeightedChoice(s, items, weights)]++
	}

	assert.InDelta(t, 0.70, float64(counts["a"])/20000, 0.02)
	assert.InDelta(t, 0.25, float64(counts["b"])/20000, 0.02)
	assert.InDelta(t, 0.05, float64(counts["c"])/20000, 0.02)
}

func TestWeightedChoiceSingleItem(t *testing.T) {
	s := New(1)
	assert.Equal(t, "only", WeightedChoice(s, []string{"only"}, []float64{3}))
}

func TestSampleN(t *testing.T) {
	s := New(1)
	items := []int{1, 2, 3, 4, 5}

	picked := SampleN(s, items, 3)
	assert.Len(t, picked, 3)

	seen := map[int]bool{}
	for _, v := range picked {
		assert.False(t, seen[v], "sampled without replacement")
		seen[v] = true
	}

	// n larger than the pool returns everything
	assert.Len(t, SampleN(s, items, 10), 5)

	// The input slice is left untouched
	assert.Equal(t, []int{1, 2, 3, 4, 5}, items)
}

func TestLogNormal(t *testing.T) {
	s := New(1)

	var sum float64
	for i := 0; i < 10000; i++ {
		v := s.LogNormal(1.5, 0.8)
		assert.Greater(t, v, 0.0)
		sum += v
	}

	// Mean of lognormal(1.5, 0.8) is exp(1.5 + 0.8^2/2) ~ 6.2
	assert.InDelta(t, 6.2, sum/10000, 1.0)
}

func TestSeedReproducibility(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntBetween(0, 1000), b.IntBetween(0, 1000))
	}
}
