package merge

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/katalvlaran/dtwconn/partition"
)

// MergeFiles concatenates the on-disk partial artifacts of ranges, in the
// given (ascending) order, into the unified artifact at out.
//
// Before anything is written every partial file is checked: it must exist,
// hold exactly Range.Len() lines and, when manifest is non-nil and lists the
// range, match the recorded xxh3 digest. All failing ranges are reported
// together in a *MissingRangesError and out is left untouched.
func MergeFiles(prefix string, ranges []partition.Range, out string, manifest *Manifest) (uint64, error) {
	missing := &MissingRangesError{}
	for _, r := range ranges {
		if reason := checkPartial(PartialName(prefix, r), r, manifest); reason != "" {
			missing.add(r, reason)
		}
	}
	if err := missing.orNil(); err != nil {
		return 0, err
	}

	return writeAtomic(out, func(w io.Writer) error {
		for _, r := range ranges {
			if err := appendFile(w, PartialName(prefix, r)); err != nil {
				return err
			}
		}

		return nil
	})
}

// checkPartial returns "" when the artifact at path is complete, otherwise a
// short reason.
func checkPartial(path string, r partition.Range, manifest *Manifest) string {
	sum, lines, err := checksumFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "not found"
	case err != nil:
		return err.Error()
	case lines != r.Len():
		return fmt.Sprintf("%d of %d rows", lines, r.Len())
	}
	if a, ok := manifest.lookup(r); ok && a.Checksum != sum {
		return "checksum mismatch"
	}

	return ""
}

// appendFile copies the file at path into w.
func appendFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)

	return err
}
