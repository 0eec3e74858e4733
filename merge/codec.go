package merge

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds one artifact line (one matrix row).
const maxLineBytes = 256 << 20

// WriteRows encodes rows in the artifact line format.
func WriteRows(w io.Writer, rows [][]int64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, row := range rows {
		for k, v := range row {
			buf = buf[:0]
			if k > 0 {
				buf = append(buf, '\t')
			}
			buf = strconv.AppendInt(buf, v, 10)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadRows decodes the artifact line format. Empty fields are ignored, so
// lines with a trailing tab are accepted.
func ReadRows(r io.Reader) ([][]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]int64
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Split(sc.Text(), "\t")
		row := make([]int64, 0, len(fields))
		for _, f := range fields {
			if f == "" {
				continue
			}
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("merge: read artifact: %w", err)
	}

	return rows, nil
}
