package celestial

import (
	"errors"
	"fmt"
)

// Domain errors for system setup and integration.
var (
	// ErrNonPositiveMass indicates a body descriptor with mass <= 0.
	ErrNonPositiveMass = errors.New("celestial: body mass must be positive")

	// ErrDuplicateID indicates two body descriptors sharing an id.
	ErrDuplicateID = errors.New("celestial: duplicate body id")

	// ErrUnknownParent indicates a descriptor referencing a parent id that
	// does not appear earlier in the descriptor list.
	ErrUnknownParent = errors.New("celestial: unknown parent body")

	// ErrNegativeTrajectoryCap indicates a descriptor with a trajectory
	// capacity below zero. Zero is allowed and selects the default.
	ErrNegativeTrajectoryCap = errors.New("celestial: trajectory capacity must not be negative")

	// ErrNonPositiveStep indicates a time step dt <= 0.
	ErrNonPositiveStep = errors.New("celestial: time step must be positive")

	// ErrSingularity indicates two bodies closer than the minimum
	// separation during force evaluation.
	ErrSingularity = errors.New("celestial: numerical singularity (bodies nearly coincident)")

	// ErrUnknownBody indicates a query for a body id not in the system.
	ErrUnknownBody = errors.New("celestial: unknown body id")
)

// SingularityError reports which pair of bodies collapsed below the
// minimum separation.
type SingularityError struct {
	I, J       int     // body ids
	Separation float64 // [m]
}

func (e *SingularityError) Error() string {
	return fmt.Sprintf("%v: bodies %d and %d at separation %.3e m", ErrSingularity, e.I, e.J, e.Separation)
}

func (e *SingularityError) Unwrap() error {
	return ErrSingularity
}
