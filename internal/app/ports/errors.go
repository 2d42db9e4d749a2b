package ports

import "errors"

var (
	// ErrNotFound means no game exists under the requested id.
	ErrNotFound = errors.New("game not found")
	// ErrConflict means the aggregate changed between load and save.
	ErrConflict = errors.New("version conflict")
)
