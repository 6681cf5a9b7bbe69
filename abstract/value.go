package abstract

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// ParseValue converts operator input to the integer key most structures
// store. Whitespace is trimmed first so REPL input round-trips cleanly.
func ParseValue(s string) (int64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidValue, "%q", s)
	}
	return v, nil
}

// FormatValue is the inverse of ParseValue.
func FormatValue(v int64) string { return strconv.FormatInt(v, 10) }

// Compare orders two keys the way the typed cores expect: negative,
// zero, or positive.
func Compare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Numeric constrains keys that support summation, for the segment and
// fenwick trees.
type Numeric interface {
	constraints.Integer | constraints.Float
}
