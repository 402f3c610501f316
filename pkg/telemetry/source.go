package telemetry

import (
	"math/rand"
	"sync"
	"time"
)

// Source is every random draw the generator and rotator make.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// lockedSource guards a *rand.Rand, which is not safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func NewSource(seed int64) Source {
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

func NewTimeSeededSource() Source {
	return NewSource(time.Now().UnixNano())
}

func randInt(src Source, min, max int) int {
	return src.Intn(max-min+1) + min
}

func randFloat(src Source, min, max float64) float64 {
	return src.Float64()*(max-min) + min
}
