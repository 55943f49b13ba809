package scene

import (
	"math/rand/v2"
	"sync"
)

// PCG is a seeded uniform source, safe for concurrent use
type PCG struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewPCG(seed uint64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a value in [lo, hi), or lo for an empty range
func (p *PCG) IntN(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return lo + p.r.IntN(hi-lo)
}
