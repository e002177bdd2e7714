package metrics

import (
	"math"

	"github.com/san-kum/orbit/internal/celestial"
)

// EnergyDrift tracks the worst relative energy error seen over a run,
// measured against the system's setup baseline. Systematic growth here
// means the integration is wrong, not that the system is interesting.
type EnergyDrift struct {
	maxDrift float64
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(sys *celestial.System) {
	e.maxDrift = math.Max(e.maxDrift, sys.RelativeEnergyError())
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() { e.maxDrift = 0 }

// AngularMomentumDrift tracks the worst relative deviation of |L| from the
// setup baseline. With no external torque this stays at roundoff level.
type AngularMomentumDrift struct {
	maxDrift float64
}

func NewAngularMomentumDrift() *AngularMomentumDrift { return &AngularMomentumDrift{} }

func (a *AngularMomentumDrift) Name() string { return "angular_momentum_drift" }

func (a *AngularMomentumDrift) Observe(sys *celestial.System) {
	baseline := sys.BaselineAngularMomentum()
	if baseline == 0 {
		return
	}
	_, l := sys.AngularMomentum()
	drift := math.Abs(l-baseline) / baseline
	a.maxDrift = math.Max(a.maxDrift, drift)
}

func (a *AngularMomentumDrift) Value() float64 { return a.maxDrift }

func (a *AngularMomentumDrift) Reset() { a.maxDrift = 0 }
