// Package mapfile reads and writes occupancy maps in the plain text format:
// one row per line, whitespace separated integers, 0 passable and 1 wall.
package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrRagged = errors.New("ragged map")

// Load reads the map file at path.
func Load(path string) ([][]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer file.Close()

	values, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", path, err)
	}
	return values, nil
}

// Read parses a map. Blank lines are skipped; every other line must hold as
// many integers as the first.
func Read(reader io.Reader) ([][]int, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	rows := make([][]int, 0)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]int, 0, len(fields))
		for _, field := range fields {
			value, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad cell %q", lineNumber, field)
			}
			row = append(row, value)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRagged, lineNumber, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// Write emits values in the format Read accepts.
func Write(writer io.Writer, values [][]int) error {
	buffered := bufio.NewWriter(writer)
	for _, row := range values {
		for colIndex, value := range row {
			if colIndex > 0 {
				buffered.WriteByte(' ')
			}
			buffered.WriteString(strconv.Itoa(value))
		}
		buffered.WriteByte('\n')
	}
	return buffered.Flush()
}

// Save writes values to path.
func Save(path string, values [][]int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create map: %w", err)
	}
	if err := Write(file, values); err != nil {
		file.Close()
		return fmt.Errorf("write map: %w", err)
	}
	return file.Close()
}
