package integrators

import "github.com/san-kum/orbit/internal/celestial"

// Verlet advances a system with the velocity-Verlet scheme: symplectic,
// time-reversible, second order. Long-run energy error stays bounded at
// O(dt²) instead of growing with step count, which is what keeps
// multi-orbit gravitational runs physically meaningful.
type Verlet struct {
	savedPos []celestial.Vec3
	savedAcc []celestial.Vec3
}

func NewVerlet() *Verlet { return &Verlet{} }

func (v *Verlet) Name() string { return "verlet" }

// Step advances the system one step of dt:
//
//	x += v·dt + ½·a·dt²
//	a' = forces(x)
//	v += ½·(a + a')·dt
//
// One force evaluation per step. If that evaluation fails the drift is
// rolled back: body state and the clock are exactly as before the call.
func (v *Verlet) Step(sys *celestial.System, dt float64) error {
	if dt <= 0 {
		return celestial.ErrNonPositiveStep
	}

	bodies := sys.Bodies()
	if len(v.savedPos) < len(bodies) {
		v.savedPos = make([]celestial.Vec3, len(bodies))
		v.savedAcc = make([]celestial.Vec3, len(bodies))
	}

	dt2 := dt * dt
	for i, b := range bodies {
		v.savedPos[i] = b.Position
		v.savedAcc[i] = b.PrevAcc
		b.PrevAcc = b.Acc
		b.Position = b.Position.Add(b.Velocity.Scale(dt)).Add(b.Acc.Scale(0.5 * dt2))
	}

	if err := sys.RecomputeAccelerations(); err != nil {
		for i, b := range bodies {
			b.Position = v.savedPos[i]
			b.PrevAcc = v.savedAcc[i]
		}
		return err
	}

	halfDt := 0.5 * dt
	for _, b := range bodies {
		b.Velocity = b.Velocity.Add(b.PrevAcc.Add(b.Acc).Scale(halfDt))
	}

	sys.AdvanceClock(dt)
	return nil
}
