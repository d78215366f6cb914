// Package randsource abstracts randomized control flow (point awards,
// canned replies) behind an injectable source so tests can pin outcomes.
package randsource

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"

	"go.uber.org/fx"
)

// Source yields a uniform integer in [0, n).
type Source interface {
	Intn(n int) int
}

var Module = fx.Module("randsource",
	fx.Provide(NewLockedSource),
)

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedSource returns a Source seeded from crypto entropy and safe for
// concurrent use.
func NewLockedSource() Source {
	var seed int64
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(buf[:]))
	}
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// Sequence is a deterministic Source for tests: it replays the given
// values, then repeats the last one.
type Sequence struct {
	mu     sync.Mutex
	values []int
	pos    int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 0
	}

	v := s.values[s.pos]
	if s.pos < len(s.values)-1 {
		s.pos++
	}
	if n > 0 {
		v %= n
	}
	return v
}
