package backend

import "errors"

var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when Render is called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrNotImplemented is returned by backends that type-check against
	// this package's interface but don't yet drive real hardware.
	ErrNotImplemented = errors.New("backend: not implemented")

	// ErrInvalidDimensions is returned when Render is asked for a pixmap
	// with a non-positive width or height.
	ErrInvalidDimensions = errors.New("backend: invalid dimensions")
)
