/*
 * records.go, part of cafetools.
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

// Record is implemented by the six record types of a ninfo file.
// String returns the record as a ninfo line.
type Record interface {
	Kind() Kind
	String() string
}

// Bond is a "bond" line, from the native bond length block.
type Bond struct {
	Index       int
	Pair        Group
	Length      float64
	Factor      float64
	CorrectMGO  float64
	Coefficient float64
	Type        string
}

// ParseBond reads a bond line.
func ParseBond(line string) (Bond, error) {
	v, err := layouts[BondKind].parse(line)
	if err != nil {
		return Bond{}, errDecorate(err, "ParseBond")
	}
	return Bond{
		Index:       v.index,
		Pair:        v.group,
		Length:      v.floats[0],
		Factor:      v.floats[1],
		CorrectMGO:  v.floats[2],
		Coefficient: v.floats[3],
		Type:        v.tag,
	}, nil
}

func (b Bond) Kind() Kind { return BondKind }

func (b Bond) String() string {
	return layouts[BondKind].format(fields{
		index:  b.Index,
		group:  b.Pair,
		floats: []float64{b.Length, b.Factor, b.CorrectMGO, b.Coefficient},
		tag:    b.Type,
	})
}

// Angle is an "angl" line, from the native bond angles block.
type Angle struct {
	Index       int
	Triple      Group
	Angle       float64
	Factor      float64
	CorrectMGO  float64
	Coefficient float64
	Type        string
}

// ParseAngle reads an angl line.
func ParseAngle(line string) (Angle, error) {
	v, err := layouts[AngleKind].parse(line)
	if err != nil {
		return Angle{}, errDecorate(err, "ParseAngle")
	}
	return Angle{
		Index:       v.index,
		Triple:      v.group,
		Angle:       v.floats[0],
		Factor:      v.floats[1],
		CorrectMGO:  v.floats[2],
		Coefficient: v.floats[3],
		Type:        v.tag,
	}, nil
}

func (a Angle) Kind() Kind { return AngleKind }

func (a Angle) String() string {
	return layouts[AngleKind].format(fields{
		index:  a.Index,
		group:  a.Triple,
		floats: []float64{a.Angle, a.Factor, a.CorrectMGO, a.Coefficient},
		tag:    a.Type,
	})
}

// DihedralAngle is a "dihd" line. It has two coefficients, for the
// 1- and 3-fold terms of the dihedral potential.
type DihedralAngle struct {
	Index        int
	Quad         Group
	Angle        float64
	Factor       float64
	CorrectMGO   float64
	Coefficient1 float64
	Coefficient3 float64
	Type         string
}

// ParseDihedralAngle reads a dihd line.
func ParseDihedralAngle(line string) (DihedralAngle, error) {
	v, err := layouts[DihedralKind].parse(line)
	if err != nil {
		return DihedralAngle{}, errDecorate(err, "ParseDihedralAngle")
	}
	return DihedralAngle{
		Index:        v.index,
		Quad:         v.group,
		Angle:        v.floats[0],
		Factor:       v.floats[1],
		CorrectMGO:   v.floats[2],
		Coefficient1: v.floats[3],
		Coefficient3: v.floats[4],
		Type:         v.tag,
	}, nil
}

func (d DihedralAngle) Kind() Kind { return DihedralKind }

func (d DihedralAngle) String() string {
	return layouts[DihedralKind].format(fields{
		index:  d.Index,
		group:  d.Quad,
		floats: []float64{d.Angle, d.Factor, d.CorrectMGO, d.Coefficient1, d.Coefficient3},
		tag:    d.Type,
	})
}

// Contact is a "contact" line, a native (Go) contact between two particles.
// Length is the native distance.
type Contact struct {
	Index       int
	Pair        Group
	Length      float64
	Factor      float64
	Dummy       int
	Coefficient float64
	Type        string
}

// ParseContact reads a contact line.
func ParseContact(line string) (Contact, error) {
	v, err := layouts[ContactKind].parse(line)
	if err != nil {
		return Contact{}, errDecorate(err, "ParseContact")
	}
	return Contact{
		Index:       v.index,
		Pair:        v.group,
		Length:      v.floats[0],
		Factor:      v.floats[1],
		Dummy:       v.ints[0],
		Coefficient: v.floats[2],
		Type:        v.tag,
	}, nil
}

func (c Contact) Kind() Kind { return ContactKind }

func (c Contact) String() string {
	return layouts[ContactKind].format(fields{
		index:  c.Index,
		group:  c.Pair,
		floats: []float64{c.Length, c.Factor, c.Coefficient},
		ints:   []int{c.Dummy},
		tag:    c.Type,
	})
}

// AicgAngle is an "aicg13" line, a 1-3 contact of the AICG2 local potential.
type AicgAngle struct {
	Index       int
	Triple      Group
	Value       float64
	Factor      float64
	CorrectMGO  float64
	Coefficient float64
	Width       float64
	Type        string
}

// ParseAicgAngle reads an aicg13 line.
func ParseAicgAngle(line string) (AicgAngle, error) {
	v, err := layouts[AicgAngleKind].parse(line)
	if err != nil {
		return AicgAngle{}, errDecorate(err, "ParseAicgAngle")
	}
	return AicgAngle{
		Index:       v.index,
		Triple:      v.group,
		Value:       v.floats[0],
		Factor:      v.floats[1],
		CorrectMGO:  v.floats[2],
		Coefficient: v.floats[3],
		Width:       v.floats[4],
		Type:        v.tag,
	}, nil
}

func (a AicgAngle) Kind() Kind { return AicgAngleKind }

func (a AicgAngle) String() string {
	return layouts[AicgAngleKind].format(fields{
		index:  a.Index,
		group:  a.Triple,
		floats: []float64{a.Value, a.Factor, a.CorrectMGO, a.Coefficient, a.Width},
		tag:    a.Type,
	})
}

// AicgDihedralAngle is an "aicgdih" line, a 1-4 contact of the AICG2+ local potential.
type AicgDihedralAngle struct {
	Index       int
	Quad        Group
	Value       float64
	Factor      float64
	CorrectMGO  float64
	Coefficient float64
	Width       float64
	Type        string
}

// ParseAicgDihedralAngle reads an aicgdih line.
func ParseAicgDihedralAngle(line string) (AicgDihedralAngle, error) {
	v, err := layouts[AicgDihedralKind].parse(line)
	if err != nil {
		return AicgDihedralAngle{}, errDecorate(err, "ParseAicgDihedralAngle")
	}
	return AicgDihedralAngle{
		Index:       v.index,
		Quad:        v.group,
		Value:       v.floats[0],
		Factor:      v.floats[1],
		CorrectMGO:  v.floats[2],
		Coefficient: v.floats[3],
		Width:       v.floats[4],
		Type:        v.tag,
	}, nil
}

func (a AicgDihedralAngle) Kind() Kind { return AicgDihedralKind }

func (a AicgDihedralAngle) String() string {
	return layouts[AicgDihedralKind].format(fields{
		index:  a.Index,
		group:  a.Quad,
		floats: []float64{a.Value, a.Factor, a.CorrectMGO, a.Coefficient, a.Width},
		tag:    a.Type,
	})
}
