package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/orbit/internal/celestial"
)

func newTestSystem(t *testing.T) *celestial.System {
	t.Helper()
	const m = 1.98892e30
	v := math.Sqrt(celestial.G * m / celestial.AU)
	sys, err := celestial.NewSystem([]celestial.BodyDescriptor{
		{ID: 0, Mass: m, HasState: true, ParentID: celestial.NoParent},
		{ID: 1, Mass: 5.97e24, HasState: true, ParentID: celestial.NoParent,
			Position: celestial.Vec3{X: celestial.AU},
			Velocity: celestial.Vec3{Y: v}},
	}, celestial.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return sys
}

func TestEnergyDriftTracksWorstCase(t *testing.T) {
	sys := newTestSystem(t)
	m := NewEnergyDrift()

	m.Observe(sys)
	if m.Value() != 0 {
		t.Errorf("unperturbed system should show zero drift, got %e", m.Value())
	}

	// Perturb, observe, restore: the metric keeps the worst value seen.
	planet := sys.Bodies()[1]
	orig := planet.Velocity
	planet.Velocity = orig.Scale(1.05)
	m.Observe(sys)
	peak := m.Value()
	if peak == 0 {
		t.Fatal("expected nonzero drift after perturbation")
	}

	planet.Velocity = orig
	m.Observe(sys)
	if m.Value() != peak {
		t.Errorf("metric should retain max drift %e, got %e", peak, m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestAngularMomentumDrift(t *testing.T) {
	sys := newTestSystem(t)
	m := NewAngularMomentumDrift()

	m.Observe(sys)
	if m.Value() != 0 {
		t.Errorf("unperturbed system should show zero drift, got %e", m.Value())
	}

	planet := sys.Bodies()[1]
	planet.Velocity = planet.Velocity.Scale(1.1)
	m.Observe(sys)
	if m.Value() == 0 {
		t.Error("expected nonzero drift after velocity change")
	}
}
