package gepard

import "errors"

var (
	// ErrRestoreWithoutSave is returned by Restore when the state stack is
	// empty: every Restore must be paired with an earlier Save.
	ErrRestoreWithoutSave = errors.New("gepard: restore without matching save")

	// ErrClosed is returned by operations attempted on a closed Canvas.
	ErrClosed = errors.New("gepard: closed")
)
