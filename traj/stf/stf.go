/*
 * stf.go, part of cafetools.
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

package stf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/cafetools/traj"
)

const defaultPrec = 2

var ErrFormat = errors.New("stf: wrong format")

func useGzip(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".stz", ".gz":
		return true
	}
	return false
}

// Reader reads an STF trajectory. It implements traj.Trajectory.
type Reader struct {
	f        *os.File
	dec      io.Reader
	closedec func()
	h        *bufio.Reader
	natoms   int
	prec     int
	dt       float64
	frame    int
	filename string
	Log      zerolog.Logger
}

// Open opens an STF trajectory for reading, and returns the reader
// and the key=value pairs of the header. Problems that don't stop the
// reading, such as a bad box in a frame, are reported to the logger,
// if one is given.
func Open(name string, log ...zerolog.Logger) (*Reader, map[string]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	R := &Reader{f: f, filename: name, prec: defaultPrec, Log: zerolog.Nop()}
	if len(log) > 0 {
		R.Log = log[0]
	}
	buf := bufio.NewReader(f)
	if useGzip(name) {
		gz, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("stf: can't read %s: %w", name, err)
		}
		R.dec, R.closedec = gz, func() { gz.Close() }
	} else {
		zr, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("stf: can't read %s: %w", name, err)
		}
		R.dec, R.closedec = zr, zr.Close
	}
	R.h = bufio.NewReader(R.dec)
	m, err := R.readHeader()
	if err != nil {
		R.Close()
		return nil, nil, err
	}
	return R, m, nil
}

func (R *Reader) readHeader() (map[string]string, error) {
	m := make(map[string]string)
	for {
		str, err := R.h.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("stf: can't read header of %s: %w", R.filename, err)
		}
		str = strings.TrimSpace(str)
		if strings.HasPrefix(str, "**") {
			nat := strings.Fields(str)
			if len(nat) < 2 {
				return nil, fmt.Errorf("%w: no particle number in %q", ErrFormat, str)
			}
			if R.natoms, err = strconv.Atoi(nat[1]); err != nil {
				return nil, fmt.Errorf("%w: can't read particle number from %q", ErrFormat, nat[1])
			}
			break
		}
		k, v, ok := strings.Cut(str, "=")
		if !ok {
			return nil, fmt.Errorf("%w: malformed header line %q", ErrFormat, str)
		}
		m[k] = v
	}
	if p, ok := m["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err != nil || prec <= 0 {
			R.Log.Warn().Str("file", R.filename).Str("prec", p).Msg("invalid precision, will use the default")
		} else {
			R.prec = prec
		}
	}
	if d, ok := m["dt"]; ok {
		if dt, err := strconv.ParseFloat(d, 64); err == nil {
			R.dt = dt
		}
	}
	return m, nil
}

// Len returns the number of particles per frame.
func (R *Reader) Len() int { return R.natoms }

func coordsDecode(str string, prec int) (r3.Vec, error) {
	p := math.Pow(10, float64(prec))
	s := strings.Fields(str)
	if len(s) != 3 {
		return r3.Vec{}, fmt.Errorf("%w: %d fields in coordinates line %q", ErrFormat, len(s), str)
	}
	var c [3]float64
	for i, v := range s {
		n, err := strconv.Atoi(v)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("%w: can't parse coordinate %d (%s)", ErrFormat, i, v)
		}
		c[i] = float64(n) / p
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

// Next returns the next frame, or io.EOF if the trajectory is over.
func (R *Reader) Next() (*traj.Frame, error) {
	fr := &traj.Frame{Step: R.frame, Time: float64(R.frame), Positions: make([]r3.Vec, R.natoms)}
	if R.dt > 0 {
		fr.Time = R.dt * float64(R.frame)
	}
	for i := 0; i < R.natoms; i++ {
		s, err := R.h.ReadString('\n')
		if err != nil {
			//EOF is only fine before the first particle of a frame.
			if errors.Is(err, io.EOF) && i == 0 && s == "" {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("stf: %s, frame %d: %w", R.filename, R.frame, err)
		}
		if fr.Positions[i], err = coordsDecode(s, R.prec); err != nil {
			return nil, err
		}
	}
	s, err := R.h.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return nil, fmt.Errorf("stf: %s, can't read the end of frame %d: %w", R.filename, R.frame, err)
	}
	if s == "" || s[0] != '*' {
		return nil, fmt.Errorf("%w: wrong number of particles in frame %d", ErrFormat, R.frame)
	}
	if fields := strings.Fields(s); len(fields) > 1 {
		fr.Box = readBox(fields[1:])
		if fr.Box == nil {
			R.Log.Warn().Str("file", R.filename).Int("frame", R.frame).Msg("frame does not contain correct box information")
		}
	}
	R.frame++
	return fr, nil
}

func readBox(fields []string) []float64 {
	if len(fields) != 9 {
		return nil
	}
	box := make([]float64, 9)
	var err error
	for i, v := range fields {
		if box[i], err = strconv.ParseFloat(v, 64); err != nil {
			return nil
		}
	}
	return box
}

// Close closes the trajectory. It can not be used after this call.
func (R *Reader) Close() error {
	if R.f == nil {
		return nil
	}
	R.closedec()
	err := R.f.Close()
	R.f = nil
	return err
}

// Writer writes an STF trajectory.
type Writer struct {
	f      *os.File
	h      io.WriteCloser
	natoms int
	prec   int
}

// NewWriter creates the file name and writes the STF header to it, with the
// given key=value pairs. The "prec" key, if present, sets the precision.
func NewWriter(name string, natoms int, header map[string]string) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	W := &Writer{f: f, natoms: natoms, prec: defaultPrec}
	if useGzip(name) {
		W.h, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	} else {
		W.h, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stf: can't create %s: %w", name, err)
	}
	if p, ok := header["prec"]; ok {
		if prec, err := strconv.Atoi(p); err == nil && prec > 0 {
			W.prec = prec
		}
	}
	keys := make([]string, 0, len(header))
	for k := range header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	bw := bufio.NewWriter(W.h)
	fmt.Fprintf(bw, "prec=%d\n", W.prec)
	for _, k := range keys {
		if k != "prec" {
			fmt.Fprintf(bw, "%s=%s\n", k, header[k])
		}
	}
	fmt.Fprintf(bw, "** %d\n", natoms)
	if err = bw.Flush(); err != nil {
		W.Close()
		return nil, err
	}
	return W, nil
}

func coordsEncode(v r3.Vec, prec int) string {
	p := math.Pow(10, float64(prec))
	e := func(f float64) int { return int(math.RoundToEven(f * p)) }
	return fmt.Sprintf("%d %d %d\n", e(v.X), e(v.Y), e(v.Z))
}

// WriteFrame writes the positions (and box, if it has 9 elements) of fr.
func (W *Writer) WriteFrame(fr *traj.Frame) error {
	if len(fr.Positions) != W.natoms {
		return fmt.Errorf("stf: %d positions given, %d expected", len(fr.Positions), W.natoms)
	}
	bw := bufio.NewWriter(W.h)
	for _, v := range fr.Positions {
		bw.WriteString(coordsEncode(v, W.prec))
	}
	if b := fr.Box; len(b) == 9 {
		fmt.Fprintf(bw, "* %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f\n", b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8])
	} else {
		bw.WriteString("*\n")
	}
	return bw.Flush()
}

// Close flushes and closes the trajectory.
func (W *Writer) Close() error {
	err := W.h.Close()
	if err2 := W.f.Close(); err == nil {
		err = err2
	}
	return err
}
