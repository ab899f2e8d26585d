package selfplay

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// RepairCSV scans an existing dataset and truncates it after the last row that
// has exactly cols columns, so an interrupted run can be appended to.
// It returns the number of complete rows kept. A missing file is not an error.
func RepairCSV(path string, cols int) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var (
		offset int64
		rows   int
		broken bool
	)
	rdr := bufio.NewReader(f)
	for {
		line, err := rdr.ReadBytes('\n')
		if errors.Is(err, io.EOF) {
			// A trailing fragment without newline is always incomplete.
			broken = len(line) > 0
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", path, err)
		}
		if countColumns(line) != cols {
			broken = true
			break
		}
		offset += int64(len(line))
		rows++
	}

	if broken {
		if err := f.Truncate(offset); err != nil {
			return 0, fmt.Errorf("truncate %s: %w", path, err)
		}
	}
	return rows, nil
}

// countColumns counts comma separated fields; dataset fields are never quoted.
func countColumns(line []byte) int {
	return bytes.Count(line, []byte{','}) + 1
}
