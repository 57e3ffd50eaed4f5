package semalock

import (
	"unsafe"

	"github.com/thetarby/semalock/internal/conc"
)

// WaitStrategy decides what a goroutine does between failed attempts to take
// permits.
//
// The zero value of a strategy type is its initial state. Each semaphore
// embeds its own strategy value; strategies are never shared between
// semaphores.
type WaitStrategy interface {
	// Wait is called by a blocked acquirer before it tries again.
	Wait()
	// Signal is called after permits have been released.
	Signal()
}

// Spin retries after a short burst of CPU pause hints. It never gives up the
// processor and works in freestanding builds.
type Spin struct{}

// Wait implements WaitStrategy.
func (Spin) Wait() { conc.Spin() }

// Signal implements WaitStrategy.
func (Spin) Signal() {}

// NeverBlock is the strategy for locks that must never block. Waiting on one
// is a programming error and panics.
type NeverBlock struct{}

// Wait panics.
func (NeverBlock) Wait() {
	panic("semalock: tried to wait on a NeverBlock lock")
}

// Signal implements WaitStrategy.
func (NeverBlock) Signal() {}

var (
	_ WaitStrategy = Spin{}
	_ WaitStrategy = NeverBlock{}
)

// Stateless strategies get their initial state from the zero value, so they
// must stay zero-sized. These fail to compile otherwise.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(Spin{})]
	_ = [1]struct{}{}[unsafe.Sizeof(NeverBlock{})]
)
