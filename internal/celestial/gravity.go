package celestial

import "math"

// DefaultMinSeparation is the separation below which force evaluation
// reports a singularity instead of dividing by a near-zero distance.
// Well below any physical approach at solar-system scale.
const DefaultMinSeparation = 1.0 // [m]

// accelerations evaluates the net Newtonian gravitational acceleration on
// every body into out, which must have length len(s.bodies). Body state is
// not touched; callers commit out only on success, so a singularity never
// leaves half-updated accelerations behind.
//
// For each body i the contributions from all other bodies are summed in
// ascending body index order. Partitioning the outer loop across workers
// does not change any per-body sum, so results are bit-identical at any
// worker count. Floating-point addition is not associative; the fixed
// order is what makes runs reproducible.
func (s *System) accelerations(out []Vec3) error {
	n := len(s.bodies)
	minSep := s.opts.MinSeparation
	soft2 := s.opts.Softening * s.opts.Softening

	workers := s.opts.Workers
	if workers < 1 {
		workers = 1
	}

	errs := make([]*SingularityError, workers)
	parallelFor(n, workers, func(w, start, end int) {
		for i := start; i < end; i++ {
			bi := s.bodies[i]
			var acc Vec3
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				bj := s.bodies[j]

				d := bj.Position.Sub(bi.Position)
				r2 := d.Dot(d) + soft2
				r := math.Sqrt(r2)

				if soft2 == 0 && r < minSep {
					if errs[w] == nil {
						errs[w] = &SingularityError{I: bi.ID, J: bj.ID, Separation: r}
					}
					return
				}

				f := G * bj.Mass / (r2 * r)
				acc = acc.Add(d.Scale(f))
			}
			out[i] = acc
		}
	})

	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
