/*
 * ts.go, part of cafetools.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package ts reads and writes CafeMol time series (.ts) files, where each line
// is a snapshot of a simulation: temperature, radius of gyration, energies,
// Q-score and RMSD at a given step.
package ts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HeaderLines is the number of header lines CafeMol writes at the top of a .ts file.
const HeaderLines = 9

var (
	ErrShortLine = errors.New("ts: line too short")
	ErrBadField  = errors.New("ts: malformed field")
)

// Snapshot is one line of a time series. Unit is empty for the lines that
// describe the whole system; lines for a single unit carry its name.
type Snapshot struct {
	Unit   string
	Step   int
	TempK  float64
	RadG   float64
	Etot   float64
	Velet  float64
	QScore float64
	RMSD   float64
}

// column positions (start, end) of each field in a snapshot line.
var columns = [8][2]int{{0, 6}, {6, 16}, {17, 25}, {26, 34}, {35, 45}, {46, 56}, {57, 63}, {64, 72}}

// Names of the numeric columns, in file order.
var Columns = []string{"step", "tempk", "radg", "etot", "velet", "qscore", "rmsd"}

// ParseSnapshot reads a time series line.
func ParseSnapshot(line string) (Snapshot, error) {
	var s Snapshot
	if len(line) < columns[len(columns)-1][1] {
		return s, fmt.Errorf("%w: %d characters in %q", ErrShortLine, len(line), line)
	}
	f := func(i int) string { return strings.TrimSpace(line[columns[i][0]:columns[i][1]]) }
	s.Unit = f(0)
	var err error
	if s.Step, err = strconv.Atoi(f(1)); err != nil {
		return s, fmt.Errorf("%w: step %q", ErrBadField, f(1))
	}
	floats := []*float64{&s.TempK, &s.RadG, &s.Etot, &s.Velet, &s.QScore, &s.RMSD}
	for i, p := range floats {
		if *p, err = strconv.ParseFloat(f(i+2), 64); err != nil {
			return s, fmt.Errorf("%w: %s %q", ErrBadField, Columns[i+1], f(i+2))
		}
	}
	return s, nil
}

// String returns the snapshot as a time series line.
func (s Snapshot) String() string {
	return fmt.Sprintf("%-5s %10d %8.2f %8.2f %10.2f %10.2f %6.3f %8.2f",
		s.Unit, s.Step, s.TempK, s.RadG, s.Etot, s.Velet, s.QScore, s.RMSD)
}

// Value returns the value of the named column (see Columns) in the snapshot.
func (s Snapshot) Value(column string) (float64, error) {
	switch strings.ToLower(column) {
	case "step":
		return float64(s.Step), nil
	case "tempk":
		return s.TempK, nil
	case "radg":
		return s.RadG, nil
	case "etot":
		return s.Etot, nil
	case "velet":
		return s.Velet, nil
	case "qscore":
		return s.QScore, nil
	case "rmsd":
		return s.RMSD, nil
	}
	return 0, fmt.Errorf("ts: unknown column %q", column)
}

// Reader reads snapshots from a time series.
type Reader struct {
	r      *bufio.Reader
	skip   int
	lineno int
	Units  bool //if true, the lines of single units are returned too.
}

// NewReader returns a Reader that skips the first headerLines lines of r.
func NewReader(r io.Reader, headerLines int) *Reader {
	return &Reader{r: bufio.NewReader(r), skip: headerLines}
}

// Next returns the next snapshot, or io.EOF when there are no more.
// Blank lines are skipped.
func (R *Reader) Next() (Snapshot, error) {
	for {
		line, err := R.r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return Snapshot{}, err
		}
		R.lineno++
		if R.lineno <= R.skip {
			continue
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := ParseSnapshot(line)
		if err != nil {
			return s, fmt.Errorf("line %d: %w", R.lineno, err)
		}
		if s.Unit != "" && !R.Units {
			continue
		}
		return s, nil
	}
}

// ReadAll returns all the remaining snapshots.
func (R *Reader) ReadAll() ([]Snapshot, error) {
	var ret []Snapshot
	for {
		s, err := R.Next()
		if errors.Is(err, io.EOF) {
			return ret, nil
		}
		if err != nil {
			return ret, err
		}
		ret = append(ret, s)
	}
}
