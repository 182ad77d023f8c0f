/*
 * blocks_test.go, part of cafetools.
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
	"io"
	"strings"
	"testing"
)

const oneBlock = `* ninfo written for the tests
**

<<<< native contact
** total_contact =   2

contact      1      1      1      2     63      2     63      6.2398      1.0000      1      0.5986 p-p
   
contact      2      1      1      2     64      2     64      5.9133      1.0000      1      0.7031 p-p
>>>>
* and a comment after the block

`

func TestBlockReader(Te *testing.T) {
	br := NewBlockReader(strings.NewReader(oneBlock))
	b, err := br.Next()
	if err != nil {
		Te.Fatal(err)
	}
	if b.Label != "native contact" {
		Te.Errorf("label %q", b.Label)
	}
	if len(b.Lines) != 2 {
		Te.Fatalf("got %d lines, want 2: %q", len(b.Lines), b.Lines)
	}
	if !strings.HasPrefix(b.Lines[0], "contact      1") || !strings.HasPrefix(b.Lines[1], "contact      2") {
		Te.Errorf("lines out of order: %q", b.Lines)
	}
	if _, err = br.Next(); err != io.EOF {
		Te.Errorf("want io.EOF at the end, got %v", err)
	}
	if _, err = br.Next(); err != io.EOF {
		Te.Errorf("want io.EOF again, got %v", err)
	}
}

func TestBlockReaderSeveral(Te *testing.T) {
	in := "<<<< a\r\nx\r\n>>>>\r\n\r\n<<<<   b  \n>>>>\nstray line\n<<<< c\ny\nz\n>>>>"
	br := NewBlockReader(strings.NewReader(in))
	want := []Block{{"a", []string{"x"}}, {"b", nil}, {"c", []string{"y", "z"}}}
	for i, w := range want {
		b, err := br.Next()
		if err != nil {
			Te.Fatalf("block %d: %v", i, err)
		}
		if b.Label != w.Label || strings.Join(b.Lines, "|") != strings.Join(w.Lines, "|") {
			Te.Errorf("block %d: got %+v, want %+v", i, *b, w)
		}
	}
	if _, err := br.Next(); err != io.EOF {
		Te.Errorf("want io.EOF, got %v", err)
	}
}

func TestBlockReaderUnclosed(Te *testing.T) {
	br := NewBlockReader(strings.NewReader("<<<< native contact\n" + contactLine + "\n"))
	b, err := br.Next()
	if b != nil {
		Te.Errorf("got a partial block: %+v", b)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) || !errors.Is(err, ErrIOFailure) {
		Te.Fatalf("want an unexpected EOF read failure, got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) || !e.Critical() {
		Te.Errorf("the error should be critical: %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestBlockReaderReadError(Te *testing.T) {
	_, err := NewBlockReader(failingReader{}).Next()
	if !errors.Is(err, ErrIOFailure) || !strings.Contains(err.Error(), "disk on fire") {
		Te.Errorf("want the read error, got %v", err)
	}
}
