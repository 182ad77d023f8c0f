/*
 * contacts.go, part of cafetools.
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

// Package cafestat computes structural properties of frames and trajectories
// with respect to a native structure: Q-scores, contact formation, radius of
// gyration and distance maps.
package cafestat

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	cafe "github.com/rmera/cafetools"
	"github.com/rmera/cafetools/traj"
)

// DefaultFormationFactor is how much longer than its native length a contact
// may be and still count as formed.
const DefaultFormationFactor = 1.2

var (
	ErrNoContacts = errors.New("cafestat: no contacts given")
	ErrIndex      = errors.New("cafestat: contact refers to a particle not in the frame")
)

// contactDistance returns the distance between the two particles of the contact c.
// Particle indexes are 1-based.
func contactDistance(pos []r3.Vec, c cafe.Contact) (float64, error) {
	i, j := c.Pair.At(0).Index-1, c.Pair.At(1).Index-1
	if i < 0 || j < 0 || i >= len(pos) || j >= len(pos) {
		return 0, fmt.Errorf("%w: contact %d (%d-%d), %d particles", ErrIndex, c.Index, i+1, j+1, len(pos))
	}
	return r3.Norm(r3.Sub(pos[i], pos[j])), nil
}

// QScore returns the fraction of contacts whose particles are closer than the
// native length of the contact.
func QScore(pos []r3.Vec, contacts []cafe.Contact) (float64, error) {
	if len(contacts) == 0 {
		return 0, ErrNoContacts
	}
	formed := 0
	for _, c := range contacts {
		d, err := contactDistance(pos, c)
		if err != nil {
			return 0, err
		}
		if d < c.Length {
			formed++
		}
	}
	return float64(formed) / float64(len(contacts)), nil
}

// Formation tells, for each contact, whether it is formed: whether its particles are
// at most factor times the native length apart. If factor is 0, DefaultFormationFactor is used.
func Formation(pos []r3.Vec, contacts []cafe.Contact, factor float64) ([]bool, error) {
	if factor == 0 {
		factor = DefaultFormationFactor
	}
	ret := make([]bool, len(contacts))
	for k, c := range contacts {
		d, err := contactDistance(pos, c)
		if err != nil {
			return nil, err
		}
		ret[k] = d <= c.Length*factor
	}
	return ret, nil
}

// RadiusOfGyration returns the radius of gyration of the positions, all
// particles weighted equally. It returns 0 for no positions.
func RadiusOfGyration(pos []r3.Vec) float64 {
	if len(pos) == 0 {
		return 0
	}
	var center r3.Vec
	for _, p := range pos {
		center = r3.Add(center, p)
	}
	center = r3.Scale(1/float64(len(pos)), center)
	var sq float64
	for _, p := range pos {
		d := r3.Sub(p, center)
		sq += r3.Dot(d, d)
	}
	return math.Sqrt(sq / float64(len(pos)))
}

// DistanceMap returns the matrix of distances between the first n positions.
// If n is 0 or larger than the number of positions, all of them are used.
func DistanceMap(pos []r3.Vec, n int) *mat.SymDense {
	if n <= 0 || n > len(pos) {
		n = len(pos)
	}
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, r3.Norm(r3.Sub(pos[i], pos[j])))
		}
	}
	return m
}

// Series is a property computed along a trajectory.
type Series struct {
	Steps  []int
	Times  []float64
	Values []float64
}

// Map computes f on each frame of t, until t is over.
func Map(t traj.Trajectory, f func(*traj.Frame) (float64, error)) (*Series, error) {
	s := new(Series)
	for {
		fr, err := t.Next()
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return s, err
		}
		v, err := f(fr)
		if err != nil {
			return s, fmt.Errorf("step %d: %w", fr.Step, err)
		}
		s.Steps = append(s.Steps, fr.Step)
		s.Times = append(s.Times, fr.Time)
		s.Values = append(s.Values, v)
	}
}

// QScores returns the Q-score of each frame of t.
func QScores(t traj.Trajectory, contacts []cafe.Contact) (*Series, error) {
	return Map(t, func(f *traj.Frame) (float64, error) { return QScore(f.Positions, contacts) })
}

// RadiiOfGyration returns the radius of gyration of each frame of t.
func RadiiOfGyration(t traj.Trajectory) (*Series, error) {
	return Map(t, func(f *traj.Frame) (float64, error) { return RadiusOfGyration(f.Positions), nil })
}
