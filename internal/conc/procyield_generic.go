//go:build !amd64 && !arm64

package conc

import "go.uber.org/atomic"

var spinSink atomic.Uint32

// procyield burns roughly cycles iterations on architectures without a pause
// instruction wired up. The atomic load keeps the loop from being elided.
func procyield(cycles uint32) {
	for i := uint32(0); i < cycles; i++ {
		spinSink.Load()
	}
}
