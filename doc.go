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
Package cafe reads and writes CafeMol "native info" (ninfo) files, which describe
the topology of a coarse-grained model: bonds, angles, dihedrals, native
contacts and the AICG2 1-3 and 1-4 local contacts.

A ninfo file is made of blocks:

	<<<< native contact
	** comments start with an asterisk
	contact      1      1      1      2     63      2     63      6.2398      1.0000      1      0.5986 p-p
	>>>>

Each line inside a block is a fixed-width record. The columns are part of the
format: integers take 6 columns, floating point numbers 12 columns with 4
decimals, and almost every field is preceded by one blank column. Parsing a
record and writing it back gives the same line, byte by byte.

Load reads a whole file into a NativeInfo. It skips the lines it can't parse,
so partial or foreign files can still be used (see the Strict option). A
BlockReader gives the blocks of a file one by one, if more control is needed.

	**Capabilities**

	Reads all six kinds of records, writes any record back as a line.

	Writes the native contact block (with its header) of a NativeInfo, or all of it.

	Reads and writes gzip and z-standard compressed files.

The ts subpackage reads CafeMol time series, traj reads trajectories, cafestat
computes Q-scores, contact formation and radii of gyration, and cafeplot plots
the results.
*/
package cafe
