package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbit/internal/celestial"
)

const (
	DefaultDt          = 3600.0 // one hour
	DefaultYears       = 1.0
	DefaultSampleEvery = 10
	DefaultIntegrator  = "verlet"
)

// Scenario is a complete, data-driven simulation description: run
// parameters plus the ordered body table. The engine itself carries no
// astronomical data; it all lives here or in user YAML files.
type Scenario struct {
	Name          string       `yaml:"name"`
	Dt            float64      `yaml:"dt"`             // [s]
	DurationYears float64      `yaml:"duration_years"` // [Julian years]
	SampleEvery   int          `yaml:"sample_every"`
	Integrator    string       `yaml:"integrator"`
	Softening     float64      `yaml:"softening"` // [m]; > 0 clamps singularities
	Workers       int          `yaml:"workers"`
	Bodies        []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	ID     int     `yaml:"id"`
	Name   string  `yaml:"name"`
	Parent *int    `yaml:"parent"` // nil: no parent (primary-relative elements)
	Mass   float64 `yaml:"mass"`   // [kg]
	Radius float64 `yaml:"radius"` // [m]

	Position *VecConfig `yaml:"position"` // [m]; explicit state when both set
	Velocity *VecConfig `yaml:"velocity"` // [m/s]

	Elements *ElementsConfig `yaml:"elements"`

	TrajectoryCap int `yaml:"trajectory_cap"`
}

type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// ElementsConfig holds reference orbital elements in authoring-friendly
// units. SemiMajorAxisM wins over SemiMajorAxisAU when both are set
// (moons are easier to write in meters).
type ElementsConfig struct {
	SemiMajorAxisAU float64 `yaml:"semi_major_axis_au"`
	SemiMajorAxisM  float64 `yaml:"semi_major_axis_m"`
	Eccentricity    float64 `yaml:"eccentricity"`
	InclinationDeg  float64 `yaml:"inclination_deg"`
	PeriodDays      float64 `yaml:"period_days"`
	PhaseDeg        float64 `yaml:"phase_deg"`
}

func Default() *Scenario {
	return &Scenario{
		Dt:            DefaultDt,
		DurationYears: DefaultYears,
		SampleEvery:   DefaultSampleEvery,
		Integrator:    DefaultIntegrator,
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := Default()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Descriptors converts the body table to engine setup input, resolving
// authoring units to SI.
func (s *Scenario) Descriptors() ([]celestial.BodyDescriptor, error) {
	descs := make([]celestial.BodyDescriptor, 0, len(s.Bodies))
	for _, bc := range s.Bodies {
		d := celestial.BodyDescriptor{
			ID:            bc.ID,
			Name:          bc.Name,
			ParentID:      celestial.NoParent,
			Mass:          bc.Mass,
			Radius:        bc.Radius,
			TrajectoryCap: bc.TrajectoryCap,
		}
		if bc.Parent != nil {
			d.ParentID = *bc.Parent
		}

		switch {
		case bc.Position != nil && bc.Velocity != nil:
			d.HasState = true
			d.Position = celestial.Vec3{X: bc.Position.X, Y: bc.Position.Y, Z: bc.Position.Z}
			d.Velocity = celestial.Vec3{X: bc.Velocity.X, Y: bc.Velocity.Y, Z: bc.Velocity.Z}
		case bc.Elements != nil:
			d.Elements = bc.Elements.toSI()
		default:
			return nil, fmt.Errorf("config: body %q (id %d) needs position+velocity or elements", bc.Name, bc.ID)
		}

		descs = append(descs, d)
	}
	return descs, nil
}

func (e *ElementsConfig) toSI() celestial.OrbitalElements {
	a := e.SemiMajorAxisM
	if a == 0 {
		a = e.SemiMajorAxisAU * celestial.AU
	}
	return celestial.OrbitalElements{
		SemiMajorAxis: a,
		Eccentricity:  e.Eccentricity,
		Inclination:   e.InclinationDeg * math.Pi / 180,
		Period:        e.PeriodDays * celestial.Day,
		PhaseAngle:    e.PhaseDeg * math.Pi / 180,
	}
}

// Options returns the force-evaluation options for the scenario.
func (s *Scenario) Options() celestial.Options {
	return celestial.Options{
		Softening: s.Softening,
		Workers:   s.Workers,
	}
}

// Duration returns the run length in seconds.
func (s *Scenario) Duration() float64 {
	return s.DurationYears * celestial.Year
}

// BuildSystem resolves the scenario into a ready System.
func (s *Scenario) BuildSystem() (*celestial.System, error) {
	descs, err := s.Descriptors()
	if err != nil {
		return nil, err
	}
	return celestial.NewSystem(descs, s.Options())
}
