// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-grid-defense/internal/defs"
)

// PRNGService wraps a seeded generator so every random decision in a
// session can be replayed from its seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a service with the given seed. A zero seed uses the
// current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance reports true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// ChooseWeighted picks a unit type from a weighted table.
func (s *PRNGService) ChooseWeighted(entries []defs.WaveMixEntry) defs.UnitType {
	if len(entries) == 0 {
		return defs.UnitNormal
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Type
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Type
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Type
}
