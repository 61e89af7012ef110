// Package sample provides the seeded random primitives behind dataset
// generation: weighted categorical draws and the parametric numeric
// distributions (log-normal, normal, beta) used by the domain tables.
//
// All draws come from a single PCG stream, so a Source constructed with a
// fixed seed produces a fully reproducible sequence.
package sample

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source wraps a seeded random stream shared by every sampler.
type Source struct {
	src *rand.PCG
	rng *rand.Rand
}

// New creates a Source seeded with the given value. Equal seeds yield
// identical draw sequences.
func New(seed uint64) *Source {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Source{src: src, rng: rand.New(src)}
}

// Weighted draws one value from values according to the parallel weights.
// Draws are independent; over many calls the empirical frequency of each
// value converges to its weight. Weights must be non-negative and should sum
// to approximately 1.
//
// A length mismatch between values and weights is a programming error and
// panics.
func (s *Source) Weighted(values []string, weights []float64) string {
	if len(values) != len(weights) {
		panic(fmt.Sprintf("sample: %d values but %d weights", len(values), len(weights)))
	}
	if len(values) == 0 {
		panic("sample: empty value set")
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic(fmt.Sprintf("sample: negative weight %v", w))
		}
		total += w
	}

	u := s.rng.Float64() * total
	for i, w := range weights {
		u -= w
		if u < 0 {
			return values[i]
		}
	}
	// Floating-point rounding can leave u at ~0 after the loop.
	return values[len(values)-1]
}

// LogNormal draws from LogNormal(mu, sigma). The result is strictly positive,
// which makes it the sampler of choice for monetary amounts.
func (s *Source) LogNormal(mu, sigma float64) float64 {
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// Normal draws from Normal(mu, sigma). No clamping is applied; callers that
// need physical plausibility floor the result themselves.
func (s *Source) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// Beta draws from Beta(alpha, beta), yielding a value in (0, 1). Used for
// bounded ratios that are then scaled by an upper bound.
func (s *Source) Beta(alpha, beta float64) float64 {
	return distuv.Beta{Alpha: alpha, Beta: beta, Src: s.src}.Rand()
}

// Uniform draws a float uniformly from [min, max).
func (s *Source) Uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// IntBetween draws an integer uniformly from [min, max], inclusive on both
// ends.
func (s *Source) IntBetween(min, max int) int {
	if max < min {
		panic(fmt.Sprintf("sample: IntBetween bounds reversed (%d > %d)", min, max))
	}
	return min + s.rng.IntN(max-min+1)
}

// Maybe reports true with probability p.
func (s *Source) Maybe(p float64) bool {
	return s.rng.Float64() < p
}

// PickK samples k distinct values from the set, in selection order.
// k is clamped to len(values).
func (s *Source) PickK(values []string, k int) []string {
	if k > len(values) {
		k = len(values)
	}
	pool := make([]string, len(values))
	copy(pool, values)
	out := make([]string, 0, k)
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}

// Float64 exposes a raw uniform draw from the shared stream.
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Round1 rounds to 1 decimal place (rating fields).
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to 2 decimal places (currency fields).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to 3 decimal places (volume fields).
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Round4 rounds to 4 decimal places (exchange-rate fields).
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
