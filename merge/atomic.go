package merge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/xxh3"
)

// writeAtomic streams fill into a temporary file next to path, fsyncs it and
// renames it into place. It returns the xxh3 digest of the bytes written.
func writeAtomic(path string, fill func(w io.Writer) error) (uint64, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("merge: create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("merge: create %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	h := xxh3.New()
	bw := bufio.NewWriterSize(io.MultiWriter(tmp, h), 1<<20)
	if err = fill(bw); err == nil {
		err = bw.Flush()
	}
	if err == nil {
		err = tmp.Sync()
	}
	if err != nil {
		cleanup()

		return 0, fmt.Errorf("merge: write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return 0, fmt.Errorf("merge: close %s: %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)

		return 0, fmt.Errorf("merge: rename %s: %w", path, err)
	}

	return h.Sum64(), nil
}

// checksumFile returns the xxh3 digest and the line count of the file at path.
func checksumFile(path string) (sum uint64, lines int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	h := xxh3.New()
	br := bufio.NewReaderSize(f, 1<<20)
	buf := make([]byte, 1<<16)
	for {
		n, rerr := br.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n])
			for _, c := range buf[:n] {
				if c == '\n' {
					lines++
				}
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return 0, 0, rerr
		}
	}

	return h.Sum64(), lines, nil
}
