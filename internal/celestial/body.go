package celestial

// NoParent marks a body that orbits no other body (or whose hierarchy is
// irrelevant). The parent reference is authoring metadata only; the
// dynamics treat every pair of bodies identically.
const NoParent = -1

// OrbitalElements are reference elements used to derive an initial state
// and to validate runs against nominal orbits. The integrator never reads
// or writes them.
type OrbitalElements struct {
	SemiMajorAxis float64 // [m]
	Eccentricity  float64
	Inclination   float64 // [rad]
	Period        float64 // [s], nominal
	PhaseAngle    float64 // [rad], initial position angle in the orbit plane
}

// BodyDescriptor is the setup input for one body. Either Position/Velocity
// are given explicitly (HasState true), or they are derived from Elements
// via the vis-viva relation against the parent attractor (the first body
// when ParentID is NoParent).
type BodyDescriptor struct {
	ID       int
	Name     string
	ParentID int
	Mass     float64 // [kg], must be > 0
	Radius   float64 // [m]

	HasState bool
	Position Vec3 // [m]
	Velocity Vec3 // [m/s]

	Elements OrbitalElements

	// TrajectoryCap bounds the body's position history. Zero selects
	// DefaultTrajectoryCap.
	TrajectoryCap int
}

// DefaultTrajectoryCap is the trajectory buffer capacity used when a
// descriptor leaves it unset.
const DefaultTrajectoryCap = 1000

// Body is one simulated mass. All state is SI. Acceleration and its
// previous-step value belong to the integrator's two-phase update.
type Body struct {
	ID       int
	Name     string
	ParentID int
	Mass     float64
	Radius   float64

	Position Vec3
	Velocity Vec3
	Acc      Vec3
	PrevAcc  Vec3

	Elements OrbitalElements

	Track *Trajectory
}

// Speed returns |velocity| in m/s.
func (b *Body) Speed() float64 { return b.Velocity.Norm() }

// DistanceTo returns the separation from another body in meters.
func (b *Body) DistanceTo(o *Body) float64 { return b.Position.Sub(o.Position).Norm() }
