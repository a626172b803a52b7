// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом для спавна.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает фактически использованный сид (для логов).
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// IntRange возвращает целое в диапазоне [lo, hi] включительно.
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Uniform возвращает вещественное число в диапазоне [lo, hi).
func (s *PRNGService) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}
