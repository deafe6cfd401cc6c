package hampath

import "errors"

// Sentinel errors. Callers match them with errors.Is; the solver may wrap
// them with call-site context (start index, direction).
var (
	// ErrNilMatrix is returned when a nil *matrix.Distance is passed in.
	ErrNilMatrix = errors.New("hampath: nil distance matrix")

	// ErrTooManyLocations is returned when n exceeds the configured limit.
	// The memo table holds 2ⁿ·n entries, so the limit bounds memory.
	ErrTooManyLocations = errors.New("hampath: too many locations")

	// ErrStartOutOfRange is returned when a start index is outside [0,n).
	ErrStartOutOfRange = errors.New("hampath: start vertex out of range")

	// ErrUnknownDirection is returned for a Direction other than Minimize/Maximize.
	ErrUnknownDirection = errors.New("hampath: unknown direction")

	// ErrDistanceTooLarge is returned when a single distance exceeds MaxDistance,
	// which would let a path total overflow int64.
	ErrDistanceTooLarge = errors.New("hampath: distance too large")

	// ErrNoCompletion means a given start cannot reach a state where every
	// location is visited. It is a valid per-root outcome, not a failure of
	// the solver.
	ErrNoCompletion = errors.New("hampath: no completion from start")

	// ErrNoHamiltonianPath means no start admits a path through every
	// location in the requested direction.
	ErrNoHamiltonianPath = errors.New("hampath: no Hamiltonian path")
)
