package merge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dtwconn/partition"
)

var (
	// ErrMissingPartial is matched by every *MissingRangesError.
	ErrMissingPartial = errors.New("merge: missing partial result")

	// ErrMalformed indicates an artifact line that is not a tab-separated
	// list of integers, or a row of the wrong length.
	ErrMalformed = errors.New("merge: malformed artifact")

	// ErrMismatch indicates that ranges and partial results do not line up.
	ErrMismatch = errors.New("merge: ranges and partial results differ")
)

// MissingRangesError lists every range whose partial result is absent,
// incomplete or corrupted. When it is returned, no unified artifact has been
// written.
type MissingRangesError struct {
	Ranges  []partition.Range
	Reasons []string
}

// Error implements error.
func (e *MissingRangesError) Error() string {
	parts := make([]string, len(e.Ranges))
	for k, r := range e.Ranges {
		parts[k] = r.String()
		if k < len(e.Reasons) && e.Reasons[k] != "" {
			parts[k] += " (" + e.Reasons[k] + ")"
		}
	}

	return fmt.Sprintf("merge: missing partial results for %d range(s): %s", len(e.Ranges), strings.Join(parts, ", "))
}

// Unwrap lets errors.Is match ErrMissingPartial.
func (e *MissingRangesError) Unwrap() error {
	return ErrMissingPartial
}

// add records one missing range.
func (e *MissingRangesError) add(r partition.Range, reason string) {
	e.Ranges = append(e.Ranges, r)
	e.Reasons = append(e.Reasons, reason)
}

// orNil returns e when it holds at least one range.
func (e *MissingRangesError) orNil() error {
	if len(e.Ranges) == 0 {
		return nil
	}

	return e
}
