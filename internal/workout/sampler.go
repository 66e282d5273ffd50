package workout

import (
	"math/rand/v2"
	"sync"
)

// Sampler is the source of randomness for plan generation.
type Sampler interface {
	// Sample returns min(n, len(items)) distinct entries of items, chosen
	// uniformly over all subsets of that size. items is not modified.
	Sample(items []string, n int) []string
	// Choice returns one entry of items, or "" when items is empty.
	Choice(items []string) string
}

// RandSampler is a Sampler backed by a math/rand/v2 source. It is safe for
// concurrent use.
type RandSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandSampler(src rand.Source) *RandSampler {
	return &RandSampler{rng: rand.New(src)}
}

// NewDefaultSampler seeds a PCG source from the runtime's random generator.
func NewDefaultSampler() *RandSampler {
	return NewRandSampler(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (s *RandSampler) Sample(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return []string{}
	}

	pool := make([]string, len(items))
	copy(pool, items)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Partial Fisher-Yates: the first n slots end up as a uniform n-subset.
	for i := 0; i < n; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

func (s *RandSampler) Choice(items []string) string {
	if len(items) == 0 {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return items[s.rng.IntN(len(items))]
}
