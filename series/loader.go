package series

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line (one full series).
const maxLineBytes = 64 << 20

// Load reads one series per line. Samples are signed 64-bit integers separated
// by whitespace (tabs or spaces). Blank lines and lines starting with '#' are
// skipped.
func Load(r io.Reader) (*Collection, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []TimeSeries
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		ts := make(TimeSeries, len(fields))
		for k, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d field %d: %v", ErrParse, lineNo, k+1, err)
			}
			ts[k] = v
		}
		out = append(out, ts)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("series: read input: %w", err)
	}

	return NewCollection(out)
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("series: open input: %w", err)
	}
	defer f.Close()

	return Load(f)
}
