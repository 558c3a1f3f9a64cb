// Package snapshot serializes lattices as plain-text grids: one line per row,
// cells as space-separated decimal integers, no header.
package snapshot

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/ising/internal/lattice"
)

func newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = ' '
	return cw
}

// Write emits exactly N lines of N space-separated spins.
func Write(w io.Writer, lat *lattice.Lattice) error {
	cw := newWriter(w)
	record := make([]string, lat.Dim())
	for _, row := range lat.Rows() {
		for j, s := range row {
			record[j] = strconv.Itoa(int(s))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile creates or truncates path and writes the lattice to it.
func WriteFile(path string, lat *lattice.Lattice) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, lat); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return f.Close()
}

// Read parses a grid written by Write. The grid must be square and hold
// only -1 and 1.
func Read(r io.Reader) (*lattice.Lattice, error) {
	cr := csv.NewReader(r)
	cr.Comma = ' '
	cr.FieldsPerRecord = 0
	cr.ReuseRecord = true

	var rows [][]int8
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("snapshot: %w", err)
		}

		row := make([]int8, len(record))
		for j, field := range record {
			v, err := strconv.ParseInt(field, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("snapshot: row %d col %d: %w", len(rows), j, err)
			}
			row[j] = int8(v)
		}
		rows = append(rows, row)
	}

	lat, err := lattice.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return lat, nil
}

func ReadFile(path string) (*lattice.Lattice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
