package renderer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFPSCounterReportsOncePerSecond(t *testing.T) {
	t0 := time.Unix(1000, 0)
	c := newFPSCounter(t0)

	n, ok := c.Tick(t0.Add(500 * time.Millisecond))
	assert.False(t, ok)
	assert.Zero(t, n)

	n, ok = c.Tick(t0.Add(time.Second))
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	// Counter restarts after a report.
	n, ok = c.Tick(t0.Add(1500 * time.Millisecond))
	assert.False(t, ok)
	assert.Zero(t, n)

	n, ok = c.Tick(t0.Add(2 * time.Second))
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestFPSCounterCountsEveryFrame(t *testing.T) {
	t0 := time.Unix(2000, 0)
	c := newFPSCounter(t0)

	for i := 1; i < 60; i++ {
		_, ok := c.Tick(t0.Add(time.Duration(i) * 16 * time.Millisecond))
		assert.False(t, ok)
	}
	n, ok := c.Tick(t0.Add(time.Second))
	assert.True(t, ok)
	assert.Equal(t, 60, n)
}
