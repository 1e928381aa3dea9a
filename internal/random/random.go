package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/eidetic/internal/random Source

// Source is the randomness the board and sequence generators draw from
type Source interface {
	// Shuffle pseudo-randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))

	// Float64 returns a number in [0.0, 1.0)
	Float64() float64
}

// Generator provides seeded pseudo-random numbers. It is safe for concurrent use.
type Generator struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the generator
type Config struct {
	// Optional seed for reproducible boards
	Seed int64
}

// New creates a new generator
func New(cfg *Config) *Generator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = NewSeed()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Generator{
		random: random,
	}
}

// Shuffle implements Source
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.random.Shuffle(n, swap)
}

// Float64 implements Source
func (g *Generator) Float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.random.Float64()
}

// NewSeed returns a high-entropy seed, falling back to the wall clock when
// crypto/rand is unavailable.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
