//go:build !semalock_freestanding

package semalock

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thetarby/semalock/internal/conc"
)

func TestYieldIsZeroSized(t *testing.T) {
	assert.Zero(t, unsafe.Sizeof(Yield{}))
}

func TestMutexYieldExclusion(t *testing.T) {
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(-1))
	iterations := 1000
	if testing.Short() {
		iterations = 20
	}
	for _, procs := range []int{1, 4, 10} {
		runtime.GOMAXPROCS(procs)
		for seed := uint64(0); seed < 4; seed++ {
			conc.SetSeed(seed)
			count, err := hammerMutex(NewMutex[Yield](), 8, iterations)
			require.NoError(t, err, "procs %d seed %d", procs, seed)
			assert.Equal(t, 8*iterations, count, "procs %d seed %d", procs, seed)
		}
	}
}

func TestRWLockYieldHammer(t *testing.T) {
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(-1))
	n := 1000
	if testing.Short() {
		n = 5
	}
	for _, c := range []struct{ procs, readers int }{
		{1, 1}, {1, 3}, {1, 10},
		{4, 1}, {4, 3}, {4, 10},
		{10, 1}, {10, 3}, {10, 10}, {10, 5},
	} {
		require.NoError(t, hammerRWLock[Yield](c.procs, c.readers, n), "procs %d readers %d", c.procs, c.readers)
	}
}

func TestSemaphoreYieldCount(t *testing.T) {
	const (
		permits    = 3
		workers    = 12
		iterations = 200
	)
	s := NewSemaphore[Yield](permits)
	rw := NewRWLock[Yield]()
	var inside, peak int

	done := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < iterations; j++ {
				s.Down()
				rw.Lock()
				inside++
				if inside > peak {
					peak = inside
				}
				rw.Unlock()

				rw.Lock()
				inside--
				rw.Unlock()
				s.Up()
			}
		}()
	}
	for i := 0; i < workers; i++ {
		<-done
	}
	assert.LessOrEqual(t, peak, permits)
	assert.Equal(t, uint64(permits), s.Available())
}
