package conc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCounterCompareAndSwap(t *testing.T) {
	var c Counter
	c.Store(3)

	assert.False(t, c.CompareAndSwap(2, 1))
	assert.Equal(t, uint64(3), c.Load())

	assert.True(t, c.CompareAndSwap(3, 1))
	assert.Equal(t, uint64(1), c.Load())
}

func TestCounterAddWraps(t *testing.T) {
	var c Counter
	c.Store(math.MaxUint64)
	assert.Equal(t, uint64(0), c.Add(1))
}

func TestCounterConcurrentAdd(t *testing.T) {
	const (
		workers    = 8
		iterations = 1000
	)
	for seed := uint64(0); seed < 4; seed++ {
		SetSeed(seed)

		var c Counter
		var g errgroup.Group
		for i := 0; i < workers; i++ {
			g.Go(func() error {
				for j := 0; j < iterations; j++ {
					c.Add(1)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
		assert.Equal(t, uint64(workers*iterations), c.Load(), "seed %d", seed)
	}
}

func TestCounterConcurrentCAS(t *testing.T) {
	const (
		workers    = 8
		iterations = 500
	)
	var c Counter
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := 0; j < iterations; j++ {
				for {
					cur := c.Load()
					if c.CompareAndSwap(cur, cur+1) {
						break
					}
					Spin()
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, uint64(workers*iterations), c.Load())
}

func TestSpinReturns(t *testing.T) {
	for i := 0; i < 100; i++ {
		Spin()
	}
	procyield(0)
}
