package sim

import "github.com/san-kum/orbit/internal/celestial"

// Integrator advances a system one fixed time step.
type Integrator interface {
	Name() string
	Step(sys *celestial.System, dt float64) error
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(sys *celestial.System)
	Value() float64
	Reset()
}

// Observer is notified after every completed step.
type Observer interface {
	OnStep(sys *celestial.System)
}

// Config parameterizes a batch run.
type Config struct {
	Dt       float64 // [s], must be > 0
	Duration float64 // [s], must be > 0

	// SampleEvery pushes a trajectory sample every k steps. Zero selects
	// DefaultSampleEvery; negative disables sampling.
	SampleEvery int
}

// DefaultSampleEvery is the trajectory sampling stride when unset.
const DefaultSampleEvery = 10

// Result summarizes a completed (or cancelled) run.
type Result struct {
	StepsTaken  int
	Elapsed     float64 // [s] simulated
	EnergyDrift float64 // relative energy error against the setup baseline
	Metrics     map[string]float64
}
