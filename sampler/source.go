package sampler

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrResourceUnavailable is returned when seed material cannot be
// acquired from a Resource.
var ErrResourceUnavailable = errors.New("random resource unavailable")

// Resource supplies base seed material for sampling invocations. Base
// is called once per invocation and advances the underlying state, so
// consecutive invocations against the same Resource draw independent
// samples while a re-seeded Resource reproduces them.
type Resource interface {
	Base() (uint64, error)
}

// Locked is a Resource over a seeded pseudo-random source. It is safe
// for concurrent use.
type Locked struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	closed bool
}

// NewLocked returns a Locked resource with the given seed
func NewLocked(seed uint64) *Locked {
	return &Locked{rnd: rand.New(rand.NewSource(seed))}
}

// Base returns fresh base seed material, advancing the resource state
func (l *Locked) Base() (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, errors.Wrap(ErrResourceUnavailable, "resource closed")
	}

	return l.rnd.Uint64(), nil
}

// Reseed resets the resource state so that subsequent invocations
// reproduce the draws made after the last call to Reseed with the
// same seed
func (l *Locked) Reseed(seed uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rnd = rand.New(rand.NewSource(seed))
	l.closed = false
}

// Close releases the resource. Base fails with ErrResourceUnavailable
// afterwards, until the resource is re-seeded.
func (l *Locked) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
}

// LaneSeed derives the generator seed for a single lane from the base
// seed material of one invocation. The derivation is a splitmix64
// finalizer over the lane index, so distinct lanes never share
// generator state and the mapping is reproducible from the base alone.
func LaneSeed(base uint64, lane int) uint64 {
	z := base + uint64(lane)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}
