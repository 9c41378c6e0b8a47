package stroke

import "errors"

// Sentinel errors for the stroke package.
var (
	// ErrNilPath is returned when Build is called with a nil PathData.
	ErrNilPath = errors.New("stroke: nil path")
)
