package celestial

import (
	"fmt"
	"math"
)

// Options configure force evaluation for a System.
type Options struct {
	// MinSeparation is the separation below which force evaluation fails
	// with a SingularityError. Zero selects DefaultMinSeparation.
	MinSeparation float64

	// Softening, when positive, switches the singularity policy from
	// fail to clamp: r² becomes r² + Softening² and evaluation never
	// reports a singularity.
	Softening float64

	// Workers is the number of goroutines used for force evaluation.
	// Results are bit-identical at any worker count. Zero or one means
	// sequential.
	Workers int
}

// System owns the full mutable state of a fixed set of gravitating bodies,
// the simulation clock, and the conservation baseline taken at setup.
//
// A System is not safe for concurrent use; concurrent runs need separate
// System instances.
type System struct {
	bodies []*Body
	byID   map[int]*Body
	opts   Options

	scratch []Vec3

	time  float64
	steps int

	baselineEnergy float64
	baselineL      float64
}

// NewSystem builds a System from an ordered list of body descriptors and
// seeds the integrator: the first force evaluation runs here and previous
// acceleration starts equal to current acceleration. The energy and
// angular-momentum baselines are recorded from the initial state and never
// recomputed.
//
// Descriptors without explicit state are placed at periapsis of their
// reference orbit, offset by the phase angle in the inclined orbit plane,
// with speed from the vis-viva relation against the parent attractor (the
// first body when ParentID is NoParent). A parent must therefore appear
// earlier in the list than any body derived from it.
func NewSystem(descs []BodyDescriptor, opts Options) (*System, error) {
	if len(descs) == 0 {
		return nil, fmt.Errorf("celestial: system requires at least one body")
	}
	if opts.MinSeparation <= 0 {
		opts.MinSeparation = DefaultMinSeparation
	}

	s := &System{
		bodies: make([]*Body, 0, len(descs)),
		byID:   make(map[int]*Body, len(descs)),
		opts:   opts,
	}

	for i, d := range descs {
		if d.Mass <= 0 {
			return nil, fmt.Errorf("%w: body %q (id %d)", ErrNonPositiveMass, d.Name, d.ID)
		}
		if _, ok := s.byID[d.ID]; ok {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateID, d.ID)
		}

		b := &Body{
			ID:       d.ID,
			Name:     d.Name,
			ParentID: d.ParentID,
			Mass:     d.Mass,
			Radius:   d.Radius,
			Elements: d.Elements,
		}

		tcap := d.TrajectoryCap
		if tcap < 0 {
			return nil, fmt.Errorf("%w: body %q (id %d) has capacity %d", ErrNegativeTrajectoryCap, d.Name, d.ID, tcap)
		}
		if tcap == 0 {
			tcap = DefaultTrajectoryCap
		}
		b.Track = NewTrajectory(tcap)

		if d.HasState {
			b.Position = d.Position
			b.Velocity = d.Velocity
		} else if i == 0 {
			// Primary at rest at the origin.
		} else {
			parent, err := s.attractor(d)
			if err != nil {
				return nil, err
			}
			deriveState(b, parent, d.Elements)
		}

		s.bodies = append(s.bodies, b)
		s.byID[d.ID] = b
	}

	s.scratch = make([]Vec3, len(s.bodies))
	if err := s.RecomputeAccelerations(); err != nil {
		return nil, err
	}
	for _, b := range s.bodies {
		b.PrevAcc = b.Acc
	}

	s.baselineEnergy = s.TotalEnergy()
	_, s.baselineL = s.AngularMomentum()

	return s, nil
}

// attractor resolves the body a descriptor's orbital elements are relative
// to: its named parent, or the system primary.
func (s *System) attractor(d BodyDescriptor) (*Body, error) {
	if d.ParentID == NoParent {
		return s.bodies[0], nil
	}
	p, ok := s.byID[d.ParentID]
	if !ok {
		return nil, fmt.Errorf("%w: body %q (id %d) references parent %d", ErrUnknownParent, d.Name, d.ID, d.ParentID)
	}
	return p, nil
}

// deriveState places b at periapsis of its reference orbit around parent,
// rotated by the phase angle in the inclined plane, moving at the vis-viva
// speed v = sqrt(G·M·(2/r − 1/a)).
func deriveState(b *Body, parent *Body, el OrbitalElements) {
	r := el.SemiMajorAxis * (1 - el.Eccentricity)
	sinP, cosP := math.Sincos(el.PhaseAngle)
	sinI, cosI := math.Sincos(el.Inclination)

	b.Position = parent.Position.Add(Vec3{
		r * cosP,
		r * sinP * cosI,
		r * sinP * sinI,
	})

	v := math.Sqrt(G * parent.Mass * (2/r - 1/el.SemiMajorAxis))
	b.Velocity = parent.Velocity.Add(Vec3{
		-v * sinP,
		v * cosP * cosI,
		v * cosP * sinI,
	})
}

// Bodies returns the bodies in setup order. The slice is shared with the
// System; callers other than the integrator must treat it as read-only.
func (s *System) Bodies() []*Body { return s.bodies }

func (s *System) Len() int { return len(s.bodies) }

// Body looks a body up by id.
func (s *System) Body(id int) (*Body, error) {
	b, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBody, id)
	}
	return b, nil
}

// Time returns elapsed simulated time in seconds.
func (s *System) Time() float64 { return s.time }

// Steps returns the number of completed integration steps.
func (s *System) Steps() int { return s.steps }

// AdvanceClock moves the simulation clock one step of dt. Only the
// integrator calls this.
func (s *System) AdvanceClock(dt float64) {
	s.time += dt
	s.steps++
}

// RecomputeAccelerations runs the force evaluator against current
// positions and commits the result to every body. On error body state is
// unchanged.
func (s *System) RecomputeAccelerations() error {
	if err := s.accelerations(s.scratch); err != nil {
		return err
	}
	for i, b := range s.bodies {
		b.Acc = s.scratch[i]
	}
	return nil
}

// Positions returns the current positions in setup order.
func (s *System) Positions() []Vec3 {
	out := make([]Vec3, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.Position
	}
	return out
}

// Velocities returns the current velocities in setup order.
func (s *System) Velocities() []Vec3 {
	out := make([]Vec3, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.Velocity
	}
	return out
}

// TotalEnergy returns the total mechanical energy: kinetic plus pairwise
// gravitational potential, each unordered pair counted once. O(N²), fine
// for tens of bodies; revisit before pointing this at large N.
func (s *System) TotalEnergy() float64 {
	kinetic := 0.0
	potential := 0.0

	for i, bi := range s.bodies {
		v := bi.Velocity
		kinetic += 0.5 * bi.Mass * v.Dot(v)

		for j := i + 1; j < len(s.bodies); j++ {
			bj := s.bodies[j]
			r := bj.Position.Sub(bi.Position).Norm()
			potential -= G * bi.Mass * bj.Mass / r
		}
	}

	return kinetic + potential
}

// AngularMomentum returns the total angular momentum Σ m·(r × v) and its
// magnitude.
func (s *System) AngularMomentum() (Vec3, float64) {
	var l Vec3
	for _, b := range s.bodies {
		l = l.Add(b.Position.Cross(b.Velocity).Scale(b.Mass))
	}
	return l, l.Norm()
}

// BaselineEnergy returns the total energy recorded at setup.
func (s *System) BaselineEnergy() float64 { return s.baselineEnergy }

// BaselineAngularMomentum returns |L| recorded at setup.
func (s *System) BaselineAngularMomentum() float64 { return s.baselineL }

// RelativeEnergyError returns |E − E₀| / |E₀| against the setup baseline.
// This is the primary correctness signal for the integrator.
func (s *System) RelativeEnergyError() float64 {
	if s.baselineEnergy == 0 {
		return 0
	}
	return math.Abs(s.TotalEnergy()-s.baselineEnergy) / math.Abs(s.baselineEnergy)
}

// SampleTrajectories pushes every body's current position into its
// trajectory buffer.
func (s *System) SampleTrajectories() {
	for _, b := range s.bodies {
		b.Track.Push(b.Position)
	}
}

// Trajectory returns the buffered position history for a body, oldest
// first.
func (s *System) Trajectory(id int) ([]Vec3, error) {
	b, err := s.Body(id)
	if err != nil {
		return nil, err
	}
	return b.Track.Samples(), nil
}
