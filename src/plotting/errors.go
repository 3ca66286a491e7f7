package plotting

import "errors"

var (
	// ErrShapeMismatch is returned when a caller-supplied axis slice does
	// not match the number of subplots the style and inputs require.
	ErrShapeMismatch = errors.New("axis count mismatch")

	// ErrDegenerateRange is returned for empty series or zero-width data
	// ranges, before anything is drawn.
	ErrDegenerateRange = errors.New("degenerate range")
)
