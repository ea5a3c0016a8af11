package ordernum

import (
	"math/rand/v2"
	"sync"
)

// Limit is the exclusive upper bound of generated order numbers.
const Limit = 1_000_000

// Generator hands out decorative order numbers in [0, Limit). Numbers are
// not unique and are not recorded anywhere.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator backed by the runtime's random source.
func New() *Generator {
	return &Generator{}
}

// NewSeeded returns a deterministic generator.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *Generator) Next() int {
	if g.rng == nil {
		return rand.IntN(Limit)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(Limit)
}
