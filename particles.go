/*
 * particles.go, part of cafetools.
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

package cafe

import "strings"

// Particle references one atom (or coarse-grained bead) by the unit (chain) it
// belongs to, its global index and its index within the unit. All 1-based.
type Particle struct {
	Unit       int
	Index      int
	IntraIndex int
}

// Arity is the number of particles in a Group.
type Arity int

const (
	Pair   Arity = 2
	Triple Arity = 3
	Quad   Arity = 4
)

// A Group is the ordered set of particles a record refers to.
// Only the first Arity elements of Particles are meaningful.
type Group struct {
	Arity     Arity
	Particles [4]Particle
}

// NewGroup builds a group from 2 to 4 particles. It panics with any other number,
// which can only be a programming error.
func NewGroup(p ...Particle) Group {
	if len(p) < int(Pair) || len(p) > int(Quad) {
		panic("cafe: a Group needs 2, 3 or 4 particles")
	}
	g := Group{Arity: Arity(len(p))}
	copy(g.Particles[:], p)
	return g
}

// Len returns the number of particles in the group.
func (g Group) Len() int { return int(g.Arity) }

// At returns the ith particle of the group. It panics if i is out of range.
func (g Group) At(i int) Particle {
	if i < 0 || i >= g.Len() {
		panic("cafe: particle index out of range for the group")
	}
	return g.Particles[i]
}

// Slice returns a copy of the particles in the group.
func (g Group) Slice() []Particle {
	r := make([]Particle, g.Len())
	copy(r, g.Particles[:g.Len()])
	return r
}

// The file only has two unit columns per line. unitColumn tells, for each
// arity, which of the two columns each particle takes its unit from.
var unitColumn = map[Arity][]int{
	Pair:   {0, 1},
	Triple: {0, 1, 1},
	Quad:   {0, 0, 1, 1},
}

// secondUnit returns the particle whose unit is written in the second unit column.
func (g Group) secondUnit() Particle {
	for i, c := range unitColumn[g.Arity] {
		if c == 1 {
			return g.Particles[i]
		}
	}
	return g.Particles[0]
}

// parseGroup reads "unit unit index... intra_index..." from the cursor.
// If shared is true, both unit columns must agree.
func parseGroup(c *cursor, n Arity, shared bool) (Group, error) {
	var units [2]int
	var err error
	g := Group{Arity: n}
	for i := range units {
		if units[i], err = c.int(true); err != nil {
			return g, err
		}
	}
	if shared && units[0] != units[1] {
		return g, lineError(ErrInconsistentUnit, c.line, "unit columns read %d and %d", units[0], units[1])
	}
	for i, col := range unitColumn[n] {
		g.Particles[i].Unit = units[col]
	}
	for i := 0; i < int(n); i++ {
		if g.Particles[i].Index, err = c.int(true); err != nil {
			return g, err
		}
	}
	for i := 0; i < int(n); i++ {
		if g.Particles[i].IntraIndex, err = c.int(true); err != nil {
			return g, err
		}
	}
	return g, nil
}

func writeGroup(sb *strings.Builder, g Group) {
	writeInt(sb, g.Particles[0].Unit, true)
	writeInt(sb, g.secondUnit().Unit, true)
	for _, p := range g.Particles[:g.Len()] {
		writeInt(sb, p.Index, true)
	}
	for _, p := range g.Particles[:g.Len()] {
		writeInt(sb, p.IntraIndex, true)
	}
}
