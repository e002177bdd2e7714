package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/orbit/internal/celestial"
)

func TestFFTRecoversSinusoidFrequency(t *testing.T) {
	// 128 samples at dt=1 with period 16: the peak lands exactly on bin 8.
	const n = 128
	const period = 16.0
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(i) / period)
	}

	ps := PowerSpectrum(data)
	peak := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak != 8 {
		t.Errorf("expected spectral peak at bin 8, got %d", peak)
	}
}

func TestOrbitalPeriodFromTrack(t *testing.T) {
	// A synthetic circular track sampled 256 times over exactly 4 cycles.
	const samples = 256
	const period = 1000.0 // seconds
	const cycles = 4
	sampleDt := cycles * period / samples

	track := make([]celestial.Vec3, samples)
	for i := range track {
		angle := 2 * math.Pi * float64(i) * sampleDt / period
		track[i] = celestial.Vec3{X: math.Cos(angle) * celestial.AU, Y: math.Sin(angle) * celestial.AU}
	}

	got, err := OrbitalPeriod(track, nil, sampleDt)
	if err != nil {
		t.Fatal(err)
	}
	if relErr := math.Abs(got-period) / period; relErr > 0.05 {
		t.Errorf("expected period ~%f, got %f", period, got)
	}
}

func TestOrbitalPeriodRelativeToAttractor(t *testing.T) {
	// A moon circling a drifting planet: absolute x is dominated by the
	// drift, but relative to the attractor the period is recoverable.
	const samples = 256
	const period = 500.0
	sampleDt := 4 * period / samples

	planet := make([]celestial.Vec3, samples)
	moonTrack := make([]celestial.Vec3, samples)
	for i := range planet {
		drift := float64(i) * 1e7
		planet[i] = celestial.Vec3{X: drift}
		angle := 2 * math.Pi * float64(i) * sampleDt / period
		moonTrack[i] = celestial.Vec3{X: drift + 1e6*math.Cos(angle)}
	}

	got, err := OrbitalPeriod(moonTrack, planet, sampleDt)
	if err != nil {
		t.Fatal(err)
	}
	if relErr := math.Abs(got-period) / period; relErr > 0.05 {
		t.Errorf("expected period ~%f, got %f", period, got)
	}
}

func TestOrbitalPeriodTooFewSamples(t *testing.T) {
	if _, err := OrbitalPeriod(make([]celestial.Vec3, 3), nil, 1); err == nil {
		t.Error("expected an error for a short track")
	}
}

func TestKeplerPeriod(t *testing.T) {
	// Earth: a = 1 AU around a solar mass gives roughly 365.25 days.
	got := KeplerPeriod(celestial.AU, 1.98892e30)
	days := got / celestial.Day
	if days < 364 || days > 367 {
		t.Errorf("expected ~365 days, got %f", days)
	}
}
