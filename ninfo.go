/*
 * ninfo.go, part of cafetools.
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
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// NativeInfo holds the records of a ninfo file, one slice per kind.
// The slices can be filtered, sorted or replaced freely.
type NativeInfo struct {
	Bonds         []Bond
	Angles        []Angle
	Dihedrals     []DihedralAngle
	Contacts      []Contact
	AicgAngles    []AicgAngle
	AicgDihedrals []AicgDihedralAngle
}

type loadConfig struct {
	strict bool
	log    zerolog.Logger
}

// LoadOption changes the behavior of Load.
type LoadOption func(*loadConfig)

// Strict makes Load fail on the first line it can't parse, instead of skipping it.
func Strict() LoadOption {
	return func(c *loadConfig) { c.strict = true }
}

// WithLogger makes Load report skipped lines and ignored blocks to l, at debug level.
func WithLogger(l zerolog.Logger) LoadOption {
	return func(c *loadConfig) { c.log = l }
}

// Load reads a ninfo file from r.
//
// Load is lenient on purpose: lines that can't be parsed as the kind their block
// holds are skipped, and blocks with labels it doesn't know are ignored, so that
// partial or foreign ninfo files can still be used. The returned NativeInfo
// simply lacks those lines. Use the Strict option to get an error instead.
// Errors reading r, or a block that is never closed, always make Load fail.
func Load(r io.Reader, opts ...LoadOption) (*NativeInfo, error) {
	cfg := loadConfig{log: zerolog.Nop()}
	for _, o := range opts {
		o(&cfg)
	}
	N := new(NativeInfo)
	br := NewBlockReader(r)
	for {
		block, err := br.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errDecorate(err, "Load")
		}
		if err = N.add(block, &cfg); err != nil {
			return nil, errDecorate(err, "Load")
		}
	}
	return N, nil
}

func (N *NativeInfo) add(block *Block, cfg *loadConfig) error {
	var err error
	switch block.Label {
	case BondKind.BlockLabel():
		N.Bonds, err = appendParsed(N.Bonds, block, ParseBond, cfg)
	case AngleKind.BlockLabel():
		N.Angles, err = appendParsed(N.Angles, block, ParseAngle, cfg)
	case DihedralKind.BlockLabel():
		N.Dihedrals, err = appendParsed(N.Dihedrals, block, ParseDihedralAngle, cfg)
	case ContactKind.BlockLabel():
		N.Contacts, err = appendParsed(N.Contacts, block, ParseContact, cfg)
	case AicgAngleKind.BlockLabel():
		N.AicgAngles, err = appendParsed(N.AicgAngles, block, ParseAicgAngle, cfg)
	case AicgDihedralKind.BlockLabel():
		N.AicgDihedrals, err = appendParsed(N.AicgDihedrals, block, ParseAicgDihedralAngle, cfg)
	default:
		cfg.log.Debug().Str("label", block.Label).Int("lines", len(block.Lines)).Msg("ignoring block")
	}
	return err
}

func appendParsed[T any](dst []T, block *Block, parse func(string) (T, error), cfg *loadConfig) ([]T, error) {
	for _, line := range block.Lines {
		rec, err := parse(line)
		if err != nil {
			if cfg.strict {
				return dst, err
			}
			cfg.log.Debug().Err(err).Str("block", block.Label).Msg("skipping line")
			continue
		}
		dst = append(dst, rec)
	}
	return dst, nil
}

// Len returns the total number of records.
func (N *NativeInfo) Len() int {
	return len(N.Bonds) + len(N.Angles) + len(N.Dihedrals) + len(N.Contacts) + len(N.AicgAngles) + len(N.AicgDihedrals)
}

// SortContacts sorts the contacts by their index.
func (N *NativeInfo) SortContacts() {
	slices.SortStableFunc(N.Contacts, func(a, b Contact) int { return a.Index - b.Index })
}

// FilterContacts keeps only the contacts for which keep returns true.
func (N *NativeInfo) FilterContacts(keep func(Contact) bool) {
	N.Contacts = slices.DeleteFunc(N.Contacts, func(c Contact) bool { return !keep(c) })
}

// ContactsInRange returns a new NativeInfo with only the contacts of the receiver
// in which both particles have global indexes between lo and hi, inclusive.
func (N *NativeInfo) ContactsInRange(lo, hi int) *NativeInfo {
	in := func(p Particle) bool { return p.Index >= lo && p.Index <= hi }
	ret := &NativeInfo{Contacts: slices.Clone(N.Contacts)}
	ret.FilterContacts(func(c Contact) bool { return in(c.Pair.At(0)) && in(c.Pair.At(1)) })
	return ret
}

// writeContacts writes the native contact block, header included.
// Nothing is written if there are no contacts.
func (N *NativeInfo) writeContacts(sb *strings.Builder) {
	if len(N.Contacts) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s %s\n", openMark, ContactKind.BlockLabel())
	fmt.Fprintf(sb, "** total_contact =   %d\n", len(N.Contacts))
	sb.WriteString("** definition_of_contact =       6.50 A\n")
	sb.WriteString("** coef_go(kcal/mol) = factor_go * icon_dummy_mgo * cgo1210 * energy_unit_protein\n")
	sb.WriteString("\n")
	sb.WriteString("** contact between unit      1 and      1\n")
	fmt.Fprintf(sb, "** total_contact_unit =   %d\n", len(N.Contacts))
	sb.WriteString("**        icon iunit1-iunit2   imp1 - imp2 imp1un-imp2un      go_nat   factor_go  dummy     coef_go\n")
	for _, c := range N.Contacts {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	sb.WriteString(closeMark + "\n")
}

// String returns the native contact block of the receiver. The other kinds of
// records are not included; see WriteAll.
func (N *NativeInfo) String() string {
	var sb strings.Builder
	N.writeContacts(&sb)
	return sb.String()
}

// WriteTo writes the native contact block to w. It implements io.WriterTo.
func (N *NativeInfo) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, N.String())
	return int64(n), err
}

func writeBlock[T Record](sb *strings.Builder, kind Kind, recs []T) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s %s\n", openMark, kind.BlockLabel())
	for _, r := range recs {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	sb.WriteString(closeMark + "\n\n")
}

// WriteAll writes every non-empty kind of record to w, each in its own block,
// so that Load gives back the same NativeInfo.
func (N *NativeInfo) WriteAll(w io.Writer) error {
	var sb strings.Builder
	writeBlock(&sb, BondKind, N.Bonds)
	writeBlock(&sb, AngleKind, N.Angles)
	writeBlock(&sb, DihedralKind, N.Dihedrals)
	N.writeContacts(&sb)
	writeBlock(&sb, AicgAngleKind, N.AicgAngles)
	writeBlock(&sb, AicgDihedralKind, N.AicgDihedrals)
	_, err := io.WriteString(w, sb.String())
	return err
}
