package points

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultCount is the number of points the demo generates when no count is
// given on the command line.
const DefaultCount = 100_000_000

// Ring distribution parameters: each point sits at a radius drawn from
// Normal(RingMean, RingStddev) and a uniform angle, which yields an annular
// Gaussian cloud centered at the origin.
const (
	RingMean   = 0.5
	RingStddev = 0.08
)

const progressInterval = 1_000_000

// Generate produces exactly n points of the ring distribution. The caller
// owns the RNG, so a fixed seed reproduces the same cloud.
func Generate(n int, rng *rand.Rand) []mgl32.Vec2 {
	log.Printf("Generating %d points", n)
	pts := make([]mgl32.Vec2, n)
	for i := range pts {
		if i%progressInterval == 0 {
			fmt.Printf("%d\r", i)
		}
		r, theta := sample(rng)
		pts[i] = mgl32.Vec2{
			float32(r * math.Cos(theta)),
			float32(r * math.Sin(theta)),
		}
	}
	log.Printf("Done generating %d points", len(pts))
	return pts
}

// sample draws one (radius, angle) pair.
func sample(rng *rand.Rand) (r, theta float64) {
	r = rng.NormFloat64()*RingStddev + RingMean
	theta = 2 * math.Pi * rng.Float64()
	return r, theta
}

// Stats returns the sample mean and standard deviation of the point radii.
func Stats(pts []mgl32.Vec2) (mean, stddev float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	var sum float64
	for _, p := range pts {
		sum += math.Hypot(float64(p.X()), float64(p.Y()))
	}
	mean = sum / float64(len(pts))

	if len(pts) < 2 {
		return mean, 0
	}
	var sq float64
	for _, p := range pts {
		d := math.Hypot(float64(p.X()), float64(p.Y())) - mean
		sq += d * d
	}
	stddev = math.Sqrt(sq / float64(len(pts)-1))
	return mean, stddev
}
