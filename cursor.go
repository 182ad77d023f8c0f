/*
 * cursor.go, part of cafetools.
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
	"strconv"
	"strings"
)

// Column widths and precision of the ninfo format. These are part of the
// file format, not something callers choose.
const (
	IntWidth   = 6
	FloatWidth = 12
	FloatPrec  = 4
)

// cursor walks a fixed-width line from left to right.
// Every read reports the slice it consumed, so errors can point to it.
type cursor struct {
	line string
	pos  int
}

func newCursor(line string) *cursor {
	return &cursor{line: line}
}

// take returns the next width characters, trimmed, and advances past them.
// It never reads past the end of the line.
func (c *cursor) take(width int) (string, error) {
	end := c.pos + width
	if end > len(c.line) {
		return "", lineError(ErrOutOfBounds, c.line, "wanted columns %d-%d, line has %d", c.pos, end, len(c.line))
	}
	s := strings.TrimSpace(c.line[c.pos:end])
	c.pos = end
	return s, nil
}

// takeSpaced skips the single separator column and then works as take.
func (c *cursor) takeSpaced(width int) (string, error) {
	c.pos++
	return c.take(width)
}

func (c *cursor) toInt(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, lineError(ErrMalformedNumber, c.line, "%q is not an integer", s)
	}
	return i, nil
}

func (c *cursor) toFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, lineError(ErrMalformedNumber, c.line, "%q is not a float", s)
	}
	return f, nil
}

// int reads an integer field, preceded by a separator if spaced is true.
func (c *cursor) int(spaced bool) (int, error) {
	s, err := c.field(IntWidth, spaced)
	if err != nil {
		return 0, err
	}
	return c.toInt(s)
}

// float reads a floating point field, preceded by a separator if spaced is true.
func (c *cursor) float(spaced bool) (float64, error) {
	s, err := c.field(FloatWidth, spaced)
	if err != nil {
		return 0, err
	}
	return c.toFloat(s)
}

func (c *cursor) field(width int, spaced bool) (string, error) {
	if spaced {
		return c.takeSpaced(width)
	}
	return c.take(width)
}

// The writing counterparts. sb accumulates the line.

func writeInt(sb *strings.Builder, i int, spaced bool) {
	if spaced {
		sb.WriteByte(' ')
	}
	sb.WriteString(padLeft(strconv.Itoa(i), IntWidth))
}

func writeFloat(sb *strings.Builder, f float64, spaced bool) {
	if spaced {
		sb.WriteByte(' ')
	}
	sb.WriteString(padLeft(strconv.FormatFloat(f, 'f', FloatPrec, 64), FloatWidth))
}

// padLeft right-justifies s in a field of the given width. Longer strings are
// not truncated.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
