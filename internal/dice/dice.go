package dice

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultSides is the number of faces on a standard die
const DefaultSides = 6

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/dicegame/internal/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a value in 1..sides
	Roll(sides int) int
}

// RandomRoller rolls dice from a seeded pseudo-random source
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = DefaultSides
	}

	// rand.Rand is not safe for concurrent use and the bot handles interactions in parallel
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}
