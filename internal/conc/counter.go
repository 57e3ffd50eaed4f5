// Package conc is the seam between semalock and the concurrency primitives it
// is built on: the atomic permit cell, the CPU spin hint and cooperative
// yield.
//
// The default build maps each primitive straight onto the hardware and the Go
// scheduler. Building with the semalock_explore tag swaps in versions that
// randomly hand the processor to another goroutine around every atomic step,
// so that tests visit many more interleavings than the scheduler would
// produce on its own. The schedule is a function of the seed passed to
// SetSeed.
package conc

import "go.uber.org/atomic"

// Counter is an atomic unsigned cell. All operations are sequentially
// consistent.
//
// On 32-bit platforms a Counter must be 64-bit aligned, which holds when it
// is the first field of an allocated struct.
type Counter struct {
	v atomic.Uint64
}

// Load returns the current value.
func (c *Counter) Load() uint64 {
	interleave()
	return c.v.Load()
}

// Store sets the value.
func (c *Counter) Store(n uint64) {
	interleave()
	c.v.Store(n)
}

// CompareAndSwap sets the value to new if it currently equals old.
func (c *Counter) CompareAndSwap(old, new uint64) bool {
	interleave()
	return c.v.CompareAndSwap(old, new)
}

// Add adds delta, wrapping on overflow, and returns the new value.
func (c *Counter) Add(delta uint64) uint64 {
	interleave()
	return c.v.Add(delta)
}
