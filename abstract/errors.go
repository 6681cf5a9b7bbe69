package abstract

import "github.com/cockroachdb/errors"

// Sentinel errors shared by every structure. Callers match them with
// errors.Is; structures wrap them with context where useful.
var (
	// ErrNotFound reports a search miss.
	ErrNotFound = errors.New("trees: value not found")
	// ErrUnsupported reports an operation outside the structure's Caps.
	ErrUnsupported = errors.New("trees: operation not supported")
	// ErrInvalidValue reports input the structure could not parse.
	ErrInvalidValue = errors.New("trees: invalid value")
	// ErrBadIndex reports an index outside the structure's bounds.
	ErrBadIndex = errors.New("trees: index out of range")
)
