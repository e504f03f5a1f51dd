// Package sampling holds the seedable random source and the shared
// statistical policies used by the generators: weighted choice, date and
// datetime sampling, the due-date policy, and the completion policy.
package sampling

import (
	"math"
	"math/rand"
	"time"
)

// Sampler wraps an explicit random source so runs are reproducible given a
// seed and tests don't share hidden global state.
type Sampler struct {
	rng *rand.Rand
}

// New creates a Sampler from the given seed. A zero seed selects a
// time-based one.
func New(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform draw in [0, 1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Chance reports true with probability p.
func (s *Sampler) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// IntBetween returns a uniform integer in [min, max], inclusive.
func (s *Sampler) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Choice returns a uniformly selected element of items.
func Choice[T any](s *Sampler, items []T) T {
	return items[s.rng.Intn(len(items))]
}

// WeightedChoice selects an element of items with probability proportional
// to its weight. Weights need not sum to one.
func WeightedChoice[T any](s *Sampler, items []T, weights []float64) T {
	var total float64
	for _, w := range weights[:len(items)] {
		total += w
	}

	target := s.rng.Float64() * total
	for i, w := range weights[:len(items)] {
		target -= w
		if target < 0 {
			return items[i]
		}
	}
	return items[len(items)-1]
}

// SampleN returns up to n distinct elements of items, without replacement.
func SampleN[T any](s *Sampler, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	picked := make([]T, len(items))
	copy(picked, items)
	s.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:n]
}

// Exponential returns a draw from an exponential distribution with the
// given mean.
func (s *Sampler) Exponential(mean float64) float64 {
	return s.rng.ExpFloat64() * mean
}

// LogNormal returns a draw from a log-normal distribution with location mu
// and scale sigma.
func (s *Sampler) LogNormal(mu, sigma float64) float64 {
	return math.Exp(s.rng.NormFloat64()*sigma + mu)
}
