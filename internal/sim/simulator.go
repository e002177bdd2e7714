package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/orbit/internal/celestial"
)

// Simulator drives a System through a batch of fixed integration steps,
// sampling trajectories and feeding metrics and observers along the way.
type Simulator struct {
	sys        *celestial.System
	integrator Integrator
	metrics    []Metric
	observers  []Observer
}

func New(sys *celestial.System, integrator Integrator) *Simulator {
	return &Simulator{
		sys:        sys,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// System returns the simulated system for querying.
func (s *Simulator) System() *celestial.System { return s.sys }

// Run executes floor(Duration/Dt) steps. Cancellation is polled between
// steps only, so the system is always left in a consistent post-step
// state; the partial Result remains valid and is returned alongside
// ctx.Err(). Integration errors (singularities) abort the run the same
// way.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	stride := cfg.SampleEvery
	if stride == 0 {
		stride = DefaultSampleEvery
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{Metrics: make(map[string]float64)}
	steps := int(cfg.Duration / cfg.Dt)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		if err := s.integrator.Step(s.sys, cfg.Dt); err != nil {
			s.finish(result)
			return result, err
		}
		result.StepsTaken++

		if stride > 0 && i%stride == 0 {
			s.sys.SampleTrajectories()
		}

		for _, m := range s.metrics {
			m.Observe(s.sys)
		}
		for _, o := range s.observers {
			o.OnStep(s.sys)
		}
	}

	s.finish(result)
	return result, nil
}

func (s *Simulator) finish(result *Result) {
	result.Elapsed = s.sys.Time()
	result.EnergyDrift = s.sys.RelativeEnergyError()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt %f", celestial.ErrNonPositiveStep, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("sim: duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
