package analysis

import (
	"errors"
	"math"

	"github.com/san-kum/orbit/internal/celestial"
)

var ErrTooFewSamples = errors.New("analysis: too few samples to estimate a period")

// OrbitalPeriod estimates the dominant period of a trajectory from the
// spectrum of its x coordinate, relative to the attractor's trajectory
// when one is given. sampleDt is the simulated time between consecutive
// samples. Needs at least one full cycle in the data to say anything
// useful.
func OrbitalPeriod(track []celestial.Vec3, attractor []celestial.Vec3, sampleDt float64) (float64, error) {
	if len(track) < 8 {
		return 0, ErrTooFewSamples
	}

	xs := make([]float64, len(track))
	mean := 0.0
	for i, p := range track {
		x := p.X
		if attractor != nil && i < len(attractor) {
			x -= attractor[i].X
		}
		xs[i] = x
		mean += x
	}
	mean /= float64(len(xs))
	for i := range xs {
		xs[i] -= mean
	}

	ps := PowerSpectrum(xs)

	// Skip the DC bin; pick the strongest remaining frequency.
	peak := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if len(ps) < 2 || ps[peak] == 0 {
		return 0, ErrTooFewSamples
	}

	n := 2 * len(ps) // padded FFT length
	freq := float64(peak) / (float64(n) * sampleDt)
	return 1 / freq, nil
}

// KeplerPeriod returns the analytic two-body period 2π·sqrt(a³/(G·M)) for
// a semi-major axis a around a central mass m.
func KeplerPeriod(a, m float64) float64 {
	return 2 * math.Pi * math.Sqrt(a*a*a/(celestial.G*m))
}
