//go:build semalock_explore

package conc

import (
	"runtime"

	"go.uber.org/atomic"
)

// Exploring reports whether the interleaving explorer is compiled in.
const Exploring = true

// yieldOdds is the inverse probability of yielding before an atomic step.
const yieldOdds = 3

var (
	seed atomic.Uint64
	step atomic.Uint64
)

// SetSeed selects the interleaving schedule and restarts it.
func SetSeed(s uint64) {
	seed.Store(s)
	step.Store(0)
}

func interleave() {
	if mix(seed.Load()+step.Inc())%yieldOdds == 0 {
		runtime.Gosched()
	}
}

// Spin always yields while exploring so that a spinning goroutine cannot
// starve the one it is waiting for.
func Spin() {
	runtime.Gosched()
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
