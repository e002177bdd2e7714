package integrators

import "github.com/san-kum/orbit/internal/celestial"

// Euler is explicit first-order integration. Its energy error grows
// linearly with step count, so it is unsuitable for orbital runs; it
// exists as the reference the conservation tests discriminate against and
// for quick scheme comparisons in the CLI.
type Euler struct {
	savedPos []celestial.Vec3
	savedVel []celestial.Vec3
	savedAcc []celestial.Vec3
}

func NewEuler() *Euler { return &Euler{} }

func (e *Euler) Name() string { return "euler" }

// Step advances the system one explicit Euler step. A failed force
// evaluation rolls the update back, leaving body state and the clock
// exactly as before the call.
func (e *Euler) Step(sys *celestial.System, dt float64) error {
	if dt <= 0 {
		return celestial.ErrNonPositiveStep
	}

	bodies := sys.Bodies()
	if len(e.savedPos) < len(bodies) {
		e.savedPos = make([]celestial.Vec3, len(bodies))
		e.savedVel = make([]celestial.Vec3, len(bodies))
		e.savedAcc = make([]celestial.Vec3, len(bodies))
	}

	for i, b := range bodies {
		e.savedPos[i] = b.Position
		e.savedVel[i] = b.Velocity
		e.savedAcc[i] = b.PrevAcc
		b.PrevAcc = b.Acc
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
		b.Velocity = b.Velocity.Add(b.Acc.Scale(dt))
	}

	if err := sys.RecomputeAccelerations(); err != nil {
		for i, b := range bodies {
			b.Position = e.savedPos[i]
			b.Velocity = e.savedVel[i]
			b.PrevAcc = e.savedAcc[i]
		}
		return err
	}

	sys.AdvanceClock(dt)
	return nil
}
