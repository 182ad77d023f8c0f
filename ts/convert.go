/*
 * convert.go, part of cafetools.
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

package ts

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// CSVHeader is the first row written by ToCSV.
var CSVHeader = []string{"step", "tempk", "radg", "etot", "velet", "qscore", "rmsd"}

func csvRecord(s Snapshot) []string {
	f := func(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }
	return []string{
		strconv.Itoa(s.Step),
		f(s.TempK, 2),
		f(s.RadG, 2),
		f(s.Etot, 2),
		f(s.Velet, 2),
		f(s.QScore, 3),
		f(s.RMSD, 2),
	}
}

// ToCSV converts the time series in r, skipping its first headerLines lines, to CSV in w.
// Only the whole-system snapshots are written. It returns the number of rows written.
func ToCSV(r io.Reader, w io.Writer, headerLines int) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return 0, err
	}
	R := NewReader(r, headerLines)
	n := 0
	for {
		s, err := R.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, err
		}
		if err = cw.Write(csvRecord(s)); err != nil {
			return n, err
		}
		n++
	}
	cw.Flush()
	return n, cw.Error()
}

// Cat concatenates time series to w. The first one is copied whole, the header
// lines of the following ones are dropped, so the result is a valid time series.
func Cat(w io.Writer, headerLines int, rs ...io.Reader) error {
	bw := bufio.NewWriter(w)
	for i, r := range rs {
		skip := headerLines
		if i == 0 {
			skip = 0
		}
		br := bufio.NewReader(r)
		for lineno := 1; ; lineno++ {
			line, err := br.ReadString('\n')
			if line != "" && lineno > skip {
				if _, werr := bw.WriteString(line); werr != nil {
					return werr
				}
				if line[len(line)-1] != '\n' {
					bw.WriteByte('\n')
				}
			}
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("ts: reading file %d: %w", i+1, err)
			}
		}
	}
	return bw.Flush()
}
