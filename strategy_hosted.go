//go:build !semalock_freestanding

package semalock

import (
	"unsafe"

	"github.com/thetarby/semalock/internal/conc"
)

// Yield gives the processor back to the Go scheduler between attempts.
type Yield struct{}

// Wait implements WaitStrategy.
func (Yield) Wait() { conc.Yield() }

// Signal implements WaitStrategy.
func (Yield) Signal() {}

var (
	_ WaitStrategy = Yield{}
	_              = [1]struct{}{}[unsafe.Sizeof(Yield{})]
)
