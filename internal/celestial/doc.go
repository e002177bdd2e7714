// Package celestial owns the physical state of a gravitational N-body
// system and its force evaluation.
//
// The package defines the core simulation aggregate and its diagnostics:
//
//   - [Body]: one simulated mass with position, velocity and acceleration
//   - [System]: the body store, simulation clock and conservation baseline
//   - [Trajectory]: bounded ring buffer of past positions, one per body
//
// Force evaluation is direct O(N²) pairwise Newtonian gravity with a fixed
// ascending-index summation order, so results are bit-reproducible at any
// worker count. Near-coincident bodies are detected and reported as a
// [SingularityError] instead of producing NaN state; configuring a
// softening length switches the policy to clamping.
//
// # Units
//
// Everything is SI: meters, kilograms, seconds. The exported constants
// [G], [AU], [Day] and [Year] serve collaborators that render or convert.
//
// # Thread Safety
//
// A System is NOT safe for concurrent use. Concurrent simulations must
// use independent System instances.
package celestial
