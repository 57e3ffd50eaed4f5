package semalock

import (
	"fmt"
	"math"
)

// Capacity fixes how many permits a Bounded semaphore holds when nothing is
// acquired. Implementations should be empty structs.
type Capacity interface {
	Permits() uint64
}

// One is the capacity of an exclusive lock.
type One struct{}

// Permits implements Capacity.
func (One) Permits() uint64 { return 1 }

// Max is the largest capacity a permit count can represent.
type Max struct{}

// Permits implements Capacity.
func (Max) Permits() uint64 { return math.MaxUint64 }

// Bounded is a Semaphore whose capacity is part of its type.
//
// Builds tagged semalock_debug panic when a release would push the free count
// past the capacity. Other builds do not check.
type Bounded[C Capacity, S WaitStrategy] struct {
	sem Semaphore[S]
}

// NewBounded returns a full semaphore.
func NewBounded[C Capacity, S WaitStrategy]() *Bounded[C, S] {
	b := new(Bounded[C, S])
	b.Init()
	return b
}

// Init fills b to capacity. It must not be called while other goroutines use
// b.
func (b *Bounded[C, S]) Init() {
	b.sem.Init(b.Capacity())
}

// Capacity returns the number of permits b holds when full.
func (*Bounded[C, S]) Capacity() uint64 {
	var c C
	return c.Permits()
}

// TryDown is Semaphore.TryDown.
func (b *Bounded[C, S]) TryDown() error { return b.sem.TryDown() }

// TryDownN is Semaphore.TryDownN.
func (b *Bounded[C, S]) TryDownN(n uint64) error { return b.sem.TryDownN(n) }

// Down is Semaphore.Down.
func (b *Bounded[C, S]) Down() { b.sem.Down() }

// DownN is Semaphore.DownN.
func (b *Bounded[C, S]) DownN(n uint64) { b.sem.DownN(n) }

// Up is Semaphore.Up.
func (b *Bounded[C, S]) Up() {
	b.checkRelease(1)
	b.sem.Up()
}

// UpN is Semaphore.UpN.
func (b *Bounded[C, S]) UpN(n uint64) {
	b.checkRelease(n)
	b.sem.UpN(n)
}

// Available is Semaphore.Available.
func (b *Bounded[C, S]) Available() uint64 { return b.sem.Available() }

// Clone returns an independent copy of b.
func (b *Bounded[C, S]) Clone() *Bounded[C, S] {
	c := &Bounded[C, S]{sem: Semaphore[S]{strategy: b.sem.strategy}}
	c.sem.permits.Store(b.sem.permits.Load())
	return c
}

func (b *Bounded[C, S]) String() string {
	return fmt.Sprintf("Bounded(%d/%d)", b.Available(), b.Capacity())
}

// checkRelease is best effort: the count may change between the check and the
// release.
func (b *Bounded[C, S]) checkRelease(n uint64) {
	if !debugAssertions {
		return
	}
	capacity := b.Capacity()
	if free := b.sem.Available(); n > capacity || free > capacity-n {
		panic(fmt.Sprintf("semalock: releasing %d permits with %d of %d already free", n, free, capacity))
	}
}
