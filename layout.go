/*
 * layout.go, part of cafetools.
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

import (
	"fmt"
	"strings"
)

// Kind identifies one of the record types in a ninfo file.
type Kind int

const (
	BondKind Kind = iota
	AngleKind
	DihedralKind
	ContactKind
	AicgAngleKind
	AicgDihedralKind
)

func (k Kind) String() string {
	if k < BondKind || k > AicgDihedralKind {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return layouts[k].name
}

// Keyword returns the word that starts every line of this kind, e.g. "bond".
func (k Kind) Keyword() string { return layouts[k].keyword }

// BlockLabel returns the label of the block that holds records of this kind.
func (k Kind) BlockLabel() string { return layouts[k].block }

type columnKind int

const (
	floatColumn columnKind = iota
	intColumn
)

// column is one scalar field after the particle group.
type column struct {
	name   string
	kind   columnKind
	spaced bool //preceded by a separator column
}

func spacedFloats(names ...string) []column {
	cols := make([]column, 0, len(names))
	for _, n := range names {
		cols = append(cols, column{name: n, kind: floatColumn, spaced: true})
	}
	return cols
}

// layout describes the exact text form of a record kind. Every record line is
// keyword, index, group, columns, tag; the table below is the whole format.
type layout struct {
	name       string
	keyword    string
	block      string
	arity      Arity
	sharedUnit bool //the two unit columns must be equal
	columns    []column
	tagWidth   int
}

// The aicg 1-4 block label really does include the opening "<<<<". Files that
// write it only once won't have their aicgdih records read.
var layouts = [...]layout{
	BondKind: {
		name:       "bond",
		keyword:    "bond",
		block:      "native bond length",
		arity:      Pair,
		sharedUnit: true,
		columns:    spacedFloats("length", "factor", "correct_mgo", "coefficient"),
		tagWidth:   2,
	},
	AngleKind: {
		name:       "angle",
		keyword:    "angl",
		block:      "native bond angles",
		arity:      Triple,
		sharedUnit: true,
		columns:    spacedFloats("angle", "factor", "correct_mgo", "coefficient"),
		tagWidth:   3,
	},
	DihedralKind: {
		name:       "dihedral angle",
		keyword:    "dihd",
		block:      "native dihedral angles",
		arity:      Quad,
		sharedUnit: true,
		columns:    spacedFloats("angle", "factor", "correct_mgo", "coefficient1", "coefficient3"),
		tagWidth:   4,
	},
	ContactKind: {
		name:    "contact",
		keyword: "contact",
		block:   "native contact",
		arity:   Pair,
		//contacts can be between different units.
		sharedUnit: false,
		columns: []column{
			{name: "length", kind: floatColumn},
			{name: "factor", kind: floatColumn},
			{name: "dummy", kind: intColumn, spaced: true},
			{name: "coefficient", kind: floatColumn},
		},
		tagWidth: 3,
	},
	AicgAngleKind: {
		name:       "aicg 1-3 contact",
		keyword:    "aicg13",
		block:      "1-3 contacts with L_AICG2 or L_AICG2_PLUS",
		arity:      Triple,
		sharedUnit: true,
		columns:    spacedFloats("value", "factor", "correct_mgo", "coefficient", "width"),
		tagWidth:   3,
	},
	AicgDihedralKind: {
		name:       "aicg 1-4 contact",
		keyword:    "aicgdih",
		block:      "<<<< 1-4 contacts with L_AICG2_PLUS",
		arity:      Quad,
		sharedUnit: true,
		columns:    spacedFloats("value", "factor", "correct_mgo", "coefficient", "width"),
		tagWidth:   4,
	},
}

// fields is the kind-independent form of a record line.
type fields struct {
	index  int
	group  Group
	floats []float64
	ints   []int
	tag    string
}

// parse reads a line with the layout l. It never reads past the end of the line
// and never panics on malformed input.
func (l *layout) parse(line string) (fields, error) {
	var v fields
	var err error
	if !strings.HasPrefix(line, l.keyword) {
		return v, lineError(ErrWrongKind, line, "want %q", l.keyword)
	}
	c := newCursor(line)
	c.pos = len(l.keyword)
	if v.index, err = c.int(true); err != nil {
		return v, err
	}
	if v.group, err = parseGroup(c, l.arity, l.sharedUnit); err != nil {
		return v, err
	}
	for _, col := range l.columns {
		switch col.kind {
		case intColumn:
			i, err := c.int(col.spaced)
			if err != nil {
				return v, err
			}
			v.ints = append(v.ints, i)
		default:
			f, err := c.float(col.spaced)
			if err != nil {
				return v, err
			}
			v.floats = append(v.floats, f)
		}
	}
	v.tag, err = c.takeSpaced(l.tagWidth)
	return v, err
}

// format writes v with the layout l. For anything parse returned, format gives
// back the original line.
func (l *layout) format(v fields) string {
	var sb strings.Builder
	sb.WriteString(l.keyword)
	writeInt(&sb, v.index, true)
	v.group.Arity = l.arity
	writeGroup(&sb, v.group)
	var fi, ii int
	for _, col := range l.columns {
		switch col.kind {
		case intColumn:
			writeInt(&sb, v.ints[ii], col.spaced)
			ii++
		default:
			writeFloat(&sb, v.floats[fi], col.spaced)
			fi++
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(v.tag)
	return sb.String()
}
