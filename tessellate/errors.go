package tessellate

import "errors"

// Sentinel errors for the tessellate package.
var (
	// ErrNilPath is returned when Tessellate is called with a nil PathData.
	ErrNilPath = errors.New("tessellate: nil path")

	// ErrRegionExhausted names a failure to grow an internal buffer
	// while emitting trapezoids. No function in this package returns it:
	// Tessellate's buffers are Go slices and maps, whose growth does not
	// fail with an error.
	ErrRegionExhausted = errors.New("tessellate: region exhausted")
)
