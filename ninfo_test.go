/*
 * ninfo_test.go, part of cafetools.
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
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

var fullNinfo = strings.Join([]string{
	"** native info written for the tests",
	"<<<< native bond length",
	bondLine,
	">>>>",
	"",
	"<<<< native bond angles",
	angleLine,
	">>>>",
	"<<<< native dihedral angles",
	dihedralLine,
	">>>>",
	"<<<< native contact",
	"**        icon iunit1-iunit2   imp1 - imp2 imp1un-imp2un      go_nat   factor_go  dummy     coef_go",
	contactLine,
	">>>>",
	"<<<< 1-3 contacts with L_AICG2 or L_AICG2_PLUS",
	aicg13Line,
	">>>>",
	"<<<< <<<< 1-4 contacts with L_AICG2_PLUS",
	aicgdihLine,
	">>>>",
	"",
}, "\n")

func TestLoad(Te *testing.T) {
	N, err := Load(strings.NewReader(fullNinfo))
	if err != nil {
		Te.Fatal(err)
	}
	lens := []int{len(N.Bonds), len(N.Angles), len(N.Dihedrals), len(N.Contacts), len(N.AicgAngles), len(N.AicgDihedrals)}
	for i, l := range lens {
		if l != 1 {
			Te.Errorf("%v: got %d records, want 1", Kind(i), l)
		}
	}
	if N.Len() != 6 {
		Te.Errorf("Len: %d", N.Len())
	}
	if N.Contacts[0].String() != contactLine || N.AicgDihedrals[0].String() != aicgdihLine {
		Te.Errorf("records changed while loading")
	}
}

// The 1-4 block is only recognized with the doubled opening mark.
func TestLoadAicgDihedralLabel(Te *testing.T) {
	N, err := Load(strings.NewReader("<<<< 1-4 contacts with L_AICG2_PLUS\n" + aicgdihLine + "\n>>>>\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(N.AicgDihedrals) != 0 {
		Te.Errorf("the single-mark label should not be recognized")
	}
}

func TestLoadUnknownBlock(Te *testing.T) {
	N, err := Load(strings.NewReader("<<<< native something else\n" + contactLine + "\n" + bondLine + "\n>>>>\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if N.Len() != 0 {
		Te.Errorf("unknown block gave %d records", N.Len())
	}
}

const partial = "<<<< native contact\n" + contactLine + "\n" + "contact      2      1      1      2     64      2\n" + ">>>>\n"

func TestLoadSkipsBadLines(Te *testing.T) {
	var buf bytes.Buffer
	N, err := Load(strings.NewReader(partial), WithLogger(zerolog.New(&buf)))
	if err != nil {
		Te.Fatal(err)
	}
	if len(N.Contacts) != 1 || N.Contacts[0].Index != 1 {
		Te.Errorf("want only the good contact, got %+v", N.Contacts)
	}
	if !strings.Contains(buf.String(), "skipping line") {
		Te.Errorf("skipped line not logged: %q", buf.String())
	}
}

func TestLoadDropsInconsistentUnits(Te *testing.T) {
	bad := "bond      2      1      2      2      3      2      3       3.8000       1.0000       1.0000     110.4000 pp"
	N, err := Load(strings.NewReader("<<<< native bond length\n" + bondLine + "\n" + bad + "\n>>>>\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(N.Bonds) != 1 || N.Bonds[0].Index != 1 {
		Te.Errorf("the bond with inconsistent units should be dropped: %+v", N.Bonds)
	}
}

func TestLoadStrict(Te *testing.T) {
	_, err := Load(strings.NewReader(partial), Strict())
	if !errors.Is(err, ErrOutOfBounds) {
		Te.Errorf("want an out of bounds error, got %v", err)
	}
}

func TestLoadUnclosed(Te *testing.T) {
	_, err := Load(strings.NewReader("<<<< native contact\n" + contactLine + "\n"))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		Te.Errorf("want unexpected EOF, got %v", err)
	}
}

func TestEmpty(Te *testing.T) {
	N, err := Load(strings.NewReader("* nothing here\n\n<<<< not ours\n>>>>\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if N.Len() != 0 {
		Te.Errorf("got %d records", N.Len())
	}
	if s := N.String(); s != "" {
		Te.Errorf("empty NativeInfo wrote %q", s)
	}
}

func TestContactBlock(Te *testing.T) {
	N, err := Load(strings.NewReader(oneBlock))
	if err != nil {
		Te.Fatal(err)
	}
	want := `<<<< native contact
** total_contact =   2
** definition_of_contact =       6.50 A
** coef_go(kcal/mol) = factor_go * icon_dummy_mgo * cgo1210 * energy_unit_protein

** contact between unit      1 and      1
** total_contact_unit =   2
**        icon iunit1-iunit2   imp1 - imp2 imp1un-imp2un      go_nat   factor_go  dummy     coef_go
contact      1      1      1      2     63      2     63      6.2398      1.0000      1      0.5986 p-p
contact      2      1      1      2     64      2     64      5.9133      1.0000      1      0.7031 p-p
>>>>
`
	var buf bytes.Buffer
	n, err := N.WriteTo(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if buf.String() != want || int(n) != len(want) {
		Te.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
	//and the block can be read back.
	N2, err := Load(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(N.Contacts, N2.Contacts) {
		Te.Errorf("contacts changed: %+v", N2.Contacts)
	}
}

func TestWriteAll(Te *testing.T) {
	N, err := Load(strings.NewReader(fullNinfo))
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err = N.WriteAll(&buf); err != nil {
		Te.Fatal(err)
	}
	N2, err := Load(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(N, N2) {
		Te.Errorf("got %+v\nwant %+v", N2, N)
	}
}

func TestContactHelpers(Te *testing.T) {
	mk := func(i, a, b int) Contact {
		return Contact{Index: i, Pair: NewGroup(Particle{1, a, a}, Particle{1, b, b}), Length: 6, Factor: 1, Dummy: 1, Coefficient: 0.5, Type: "p-p"}
	}
	N := &NativeInfo{Contacts: []Contact{mk(3, 120, 150), mk(1, 100, 130), mk(2, 114, 174), mk(4, 150, 175)}}
	N.SortContacts()
	for i, c := range N.Contacts {
		if c.Index != i+1 {
			Te.Errorf("contact %d has index %d after sorting", i, c.Index)
		}
	}
	sub := N.ContactsInRange(114, 174)
	if len(sub.Contacts) != 2 || sub.Contacts[0].Index != 2 || sub.Contacts[1].Index != 3 {
		Te.Errorf("wrong contacts in range: %+v", sub.Contacts)
	}
	if len(N.Contacts) != 4 {
		Te.Errorf("ContactsInRange modified the receiver")
	}
	N.FilterContacts(func(c Contact) bool { return c.Index%2 == 0 })
	if len(N.Contacts) != 2 {
		Te.Errorf("filter kept %d contacts", len(N.Contacts))
	}
}

func TestFiles(Te *testing.T) {
	N, err := Load(strings.NewReader(fullNinfo))
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"test.ninfo", "test.ninfo.gz", "test.ninfo.zst"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, N, true); err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		N2, err := ReadFile(path)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(N, N2) {
			Te.Errorf("%s: file changed the records", name)
		}
	}
	if _, err := ReadFile(filepath.Join(dir, "nope.ninfo")); !errors.Is(err, ErrIOFailure) {
		Te.Errorf("want a read failure for a missing file, got %v", err)
	}
}
