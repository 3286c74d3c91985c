package rank

import (
	"math/rand/v2"

	"bizscan/internal/domain"
)

type Scorer interface {
	Score(lead domain.Lead) int
}

// UniformScorer assigns every lead a score drawn uniformly from 1..100.
type UniformScorer struct {
	Rng *rand.Rand
}

func (s UniformScorer) Score(domain.Lead) int {
	return 1 + s.Rng.IntN(100)
}
