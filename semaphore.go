package semalock

import (
	"fmt"

	"github.com/thetarby/semalock/internal/conc"
)

// Semaphore is a counting semaphore: an atomic count of free permits plus the
// WaitStrategy used while too few are free.
//
// Waiters are not queued. Each attempt races every other attempt, and a
// request for many permits can lose indefinitely to requests for few.
//
// A Semaphore must not be copied after first use. Use Clone to get an
// independent copy.
type Semaphore[S WaitStrategy] struct {
	permits  conc.Counter
	strategy S
}

// NewSemaphore returns a semaphore holding the given number of free permits.
func NewSemaphore[S WaitStrategy](permits uint64) *Semaphore[S] {
	s := new(Semaphore[S])
	s.Init(permits)
	return s
}

// Init sets the free permit count and resets the strategy to its zero value.
// It must not be called while other goroutines use s.
func (s *Semaphore[S]) Init(permits uint64) {
	var strategy S
	s.strategy = strategy
	s.permits.Store(permits)
}

// TryDown takes one permit if one is free, and returns ErrLockContended
// otherwise. A failed attempt leaves the count unchanged.
func (s *Semaphore[S]) TryDown() error {
	return s.TryDownN(1)
}

// TryDownN takes n permits in one atomic step, or none at all.
func (s *Semaphore[S]) TryDownN(n uint64) error {
	for {
		free := s.permits.Load()
		if free < n {
			return ErrLockContended
		}
		if s.permits.CompareAndSwap(free, free-n) {
			return nil
		}
	}
}

// Down takes one permit, waiting as long as it takes.
func (s *Semaphore[S]) Down() {
	s.DownN(1)
}

// DownN takes n permits in one atomic step, waiting as long as it takes.
func (s *Semaphore[S]) DownN(n uint64) {
	for s.TryDownN(n) != nil {
		s.strategy.Wait()
	}
}

// Up returns one permit. The caller must hold it.
func (s *Semaphore[S]) Up() {
	s.UpN(1)
}

// UpN returns n permits. The caller must hold all of them; releasing permits
// that are not held corrupts the count.
func (s *Semaphore[S]) UpN(n uint64) {
	s.permits.Add(n)
	s.strategy.Signal()
}

// Available returns the number of free permits. The value may be stale by the
// time the caller looks at it.
func (s *Semaphore[S]) Available() uint64 {
	return s.permits.Load()
}

// Clone returns a new semaphore whose count and strategy are copies of s's.
// The two do not share state afterwards.
func (s *Semaphore[S]) Clone() *Semaphore[S] {
	c := &Semaphore[S]{strategy: s.strategy}
	c.permits.Store(s.permits.Load())
	return c
}

func (s *Semaphore[S]) String() string {
	return fmt.Sprintf("Semaphore(available=%d)", s.Available())
}
