//go:build !semalock_freestanding

package conc

import "runtime"

// Yield hands the processor to another goroutine. It is not available in
// freestanding builds, which have no scheduler to yield to.
func Yield() {
	interleave()
	runtime.Gosched()
}
