package points

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCount(t *testing.T) {
	for _, n := range []int{0, 1, 17, 1000} {
		pts := Generate(n, rand.New(rand.NewSource(1)))
		assert.Len(t, pts, n)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := Generate(500, rand.New(rand.NewSource(42)))
	b := Generate(500, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)

	c := Generate(500, rand.New(rand.NewSource(43)))
	assert.NotEqual(t, a, c)
}

// Each point must lie at the sampled radius and angle: replaying the same
// seed through sample reproduces the draw sequence Generate consumed.
func TestGenerateMatchesSampledPolarCoordinates(t *testing.T) {
	const n = 2000
	pts := Generate(n, rand.New(rand.NewSource(42)))

	replay := rand.New(rand.NewSource(42))
	for i, p := range pts {
		r, theta := sample(replay)

		x := float64(p.X())
		y := float64(p.Y())
		require.InDelta(t, r*math.Cos(theta), x, 1e-5, "point %d x", i)
		require.InDelta(t, r*math.Sin(theta), y, 1e-5, "point %d y", i)
		require.InDelta(t, r*r, x*x+y*y, 1e-4, "point %d radius", i)
	}
}

func TestRadiusStatistics(t *testing.T) {
	pts := Generate(200_000, rand.New(rand.NewSource(7)))
	mean, stddev := Stats(pts)
	assert.InDelta(t, RingMean, mean, 0.002)
	assert.InDelta(t, RingStddev, stddev, 0.002)
}

// Chi-square goodness of fit on a binned angle histogram. With 16 bins the
// statistic for uniform angles stays far below 60 (the 0.999 quantile for
// 15 degrees of freedom is 37.7).
func TestAngleUniformity(t *testing.T) {
	const (
		n    = 100_000
		bins = 16
	)
	pts := Generate(n, rand.New(rand.NewSource(11)))

	var counts [bins]int
	for _, p := range pts {
		theta := math.Atan2(float64(p.Y()), float64(p.X()))
		if theta < 0 {
			theta += 2 * math.Pi
		}
		bin := int(theta / (2 * math.Pi / bins))
		if bin == bins {
			bin = bins - 1
		}
		counts[bin]++
	}

	expected := float64(n) / bins
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	assert.Less(t, chi2, 60.0, "angle histogram %v", counts)
}

func TestStatsDegenerateInputs(t *testing.T) {
	mean, stddev := Stats(nil)
	assert.Zero(t, mean)
	assert.Zero(t, stddev)

	single := Generate(1, rand.New(rand.NewSource(3)))
	mean, stddev = Stats(single)
	assert.InDelta(t, math.Hypot(float64(single[0].X()), float64(single[0].Y())), mean, 1e-9)
	assert.Zero(t, stddev)
}
