package surface

import "errors"

var (
	// ErrClosed is returned by operations attempted on a closed Surface.
	ErrClosed = errors.New("surface: closed")

	// ErrNilImage is returned when FromImage is given a nil source image.
	ErrNilImage = errors.New("surface: nil image")
)
