/*
 * blocks.go, part of cafetools.
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
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	openMark  = "<<<<"
	closeMark = ">>>>"
)

// Block is one "<<<< label" ... ">>>>" section of a ninfo file, with comments
// and blank lines already removed.
type Block struct {
	Label string
	Lines []string
}

// BlockReader reads a ninfo stream one block at a time. It only holds the
// block being read, never the whole file.
type BlockReader struct {
	r      *bufio.Reader
	lineno int
	err    error
}

// NewBlockReader returns a BlockReader reading from r.
func NewBlockReader(r io.Reader) *BlockReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &BlockReader{r: br}
}

// LineNumber returns the number of lines read so far.
func (B *BlockReader) LineNumber() int { return B.lineno }

// readLine returns the next line without its line terminator, or io.EOF if there
// are no more lines. A last line without a newline is still returned.
func (B *BlockReader) readLine() (string, error) {
	s, err := B.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || s == "") {
		return "", err
	}
	B.lineno++
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func skippable(line string) bool {
	return strings.TrimSpace(line) == "" || line[0] == '*'
}

// Next returns the next block. Lines outside blocks are ignored. At the end of the
// input it returns io.EOF. If the input ends inside a block, the error wraps
// io.ErrUnexpectedEOF and the incomplete block is discarded. Once Next returns an
// error, it returns the same error on every later call.
func (B *BlockReader) Next() (*Block, error) {
	if B.err != nil {
		return nil, B.err
	}
	var block *Block
	for {
		line, err := B.readLine()
		if err != nil {
			switch {
			case errors.Is(err, io.EOF) && block == nil:
				B.err = io.EOF
			case errors.Is(err, io.EOF):
				B.err = streamError(io.ErrUnexpectedEOF, "BlockReader.Next")
			default:
				B.err = streamError(err, "BlockReader.Next")
			}
			return nil, B.err
		}
		if skippable(line) {
			continue
		}
		if block == nil {
			if strings.HasPrefix(line, openMark) {
				block = &Block{Label: strings.TrimSpace(line[len(openMark):])}
			}
			continue
		}
		if strings.HasPrefix(line, closeMark) {
			return block, nil
		}
		block.Lines = append(block.Lines, line)
	}
}
