package merge

import (
	"fmt"
	"io"

	"github.com/katalvlaran/dtwconn/matrix"
	"github.com/katalvlaran/dtwconn/pairwise"
	"github.com/katalvlaran/dtwconn/partition"
)

// Concat joins partial results in the order of ranges into one matrix.
//
// parts[k] must be the result for ranges[k]. A nil part marks a failed
// worker: every such range is reported in a *MissingRangesError and no
// matrix is built. The row slices are adopted, not copied.
func Concat(ranges []partition.Range, parts []*pairwise.PartialResult) (*matrix.Triangular, error) {
	if len(ranges) != len(parts) {
		return nil, fmt.Errorf("%w: %d ranges, %d results", ErrMismatch, len(ranges), len(parts))
	}

	missing := &MissingRangesError{}
	total := 0
	for k, p := range parts {
		if p == nil {
			missing.add(ranges[k], "worker failed")

			continue
		}
		if p.Range != ranges[k] {
			return nil, fmt.Errorf("%w: slot %d holds %s, want %s", ErrMismatch, k, p.Range, ranges[k])
		}
		total += len(p.Rows)
	}
	if err := missing.orNil(); err != nil {
		return nil, err
	}

	rows := make([][]int64, 0, total)
	for _, p := range parts {
		rows = append(rows, p.Rows...)
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return m, nil
}

// EncodeMatrix writes every row of m in the artifact line format.
func EncodeMatrix(w io.Writer, m *matrix.Triangular) error {
	rows := make([][]int64, m.Size())
	for i := range rows {
		r, err := m.Row(i)
		if err != nil {
			return err
		}
		rows[i] = r
	}

	return WriteRows(w, rows)
}

// WriteUnified atomically writes m to path and returns the xxh3 digest of
// the file contents.
func WriteUnified(path string, m *matrix.Triangular) (uint64, error) {
	return writeAtomic(path, func(w io.Writer) error {
		return EncodeMatrix(w, m)
	})
}
