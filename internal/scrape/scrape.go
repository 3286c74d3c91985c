package scrape

import (
	"math"
	"math/rand/v2"
	"time"

	"bizscan/internal/scrape/util"
)

// Caps applied regardless of the requested count.
const (
	MaxJobs  = 50
	MaxLeads = 100
)

// Generator carries everything a generation run draws from: the seeded
// random source, the clock and the pacer.
type Generator struct {
	Rng   *rand.Rand
	Now   func() time.Time
	Pacer *util.Pacer
}

// NewGenerator seeds a PCG source. Seed 0 picks a time-based seed.
func NewGenerator(seed uint64, pacer *util.Pacer) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		Rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Now:   time.Now,
		Pacer: pacer,
	}
}

func (g *Generator) stamp() string {
	return g.Now().Format(time.RFC3339)
}

func pick[T any](rng *rand.Rand, xs []T) T {
	return xs[rng.IntN(len(xs))]
}

// sample draws up to k distinct elements of xs.
func sample[T any](rng *rand.Rand, xs []T, k int) []T {
	k = min(k, len(xs))
	idx := rng.Perm(len(xs))[:k]
	out := make([]T, 0, k)
	for _, i := range idx {
		out = append(out, xs[i])
	}
	return out
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

func capCount(requested, limit int) int {
	return min(max(requested, 0), limit)
}
