package app

import (
	"math/rand/v2"
	"sync"

	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// systemRandom draws from the runtime's goroutine-safe global generator.
type systemRandom struct{}

// NewRandom returns the process-wide RandomSource.
func NewRandom() ports.RandomSource {
	return systemRandom{}
}

func (systemRandom) IntN(n int) int { return rand.IntN(n) }

func (systemRandom) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// SeededRandom is a reproducible RandomSource, safe for concurrent use.
type SeededRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRandom returns a RandomSource whose sequence depends only on seed.
func NewSeededRandom(seed uint64) *SeededRandom {
	return &SeededRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN implements ports.RandomSource.
func (s *SeededRandom) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.r.IntN(n)
}

// Shuffle implements ports.RandomSource.
func (s *SeededRandom) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.r.Shuffle(n, swap)
}
