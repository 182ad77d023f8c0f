/*
 * doc.go, part of cafetools.
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

/*
Package stf reads and writes the simple trajectory format (STF), a compressed
text trajectory format that is easy to read and write from any language.

An STF file has a header made of key=value lines, ending with a line that starts
with "**" followed by one or more spaces and the number of particles per frame.
The key "prec" gives the precision (default 2). The optional key "dt" gives the
time between frames; without it the time of a frame is its number.

After the header, each frame has one line per particle with 3 integers: the x, y
and z coordinates in Angstrom, multiplied by 10^prec and rounded. Each frame
ends with a line starting with "*", optionally followed by 9 numbers with the
box vectors.

Files ending in .stf (or anything not listed below) are compressed with
z-standard, files ending in .stz or .gz with gzip.
*/
package stf
