/*
 * zfile.go, part of cafetools.
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

// Package zfile opens and creates files that may be compressed. The compression
// is chosen from the file extension: ".gz" is gzip, ".zst" and ".zstd" are
// z-standard, anything else is read and written as is.
package zfile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression is a compression scheme for files.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

// FromName returns the compression implied by the extension of name.
func FromName(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	default:
		return None
	}
}

// file puts together a (de)compressor and the file under it, so that
// closing one closes both, in the right order.
type file struct {
	io.Reader
	io.Writer
	closers []func() error
}

func (f *file) Close() error {
	var first error
	for _, c := range f.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open opens the file name for reading, decompressing it if needed.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	r := &file{closers: []func() error{f.Close}}
	buf := bufio.NewReader(f)
	switch FromName(name) {
	case Gzip:
		gz, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, err
		}
		r.Reader = gz
		r.closers = append([]func() error{gz.Close}, r.closers...)
	case Zstd:
		zr, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, err
		}
		r.Reader = zr
		//why couldn't *zstd.Decoder's Close return an error?
		r.closers = append([]func() error{func() error { zr.Close(); return nil }}, r.closers...)
	default:
		r.Reader = buf
	}
	return r, nil
}

// Create creates (or truncates) the file name for writing, compressing
// what is written if the extension calls for it. Close must be called to
// flush the compressor.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	w := &file{closers: []func() error{f.Close}}
	switch FromName(name) {
	case Gzip:
		gz, err := gzip.NewWriterLevel(f, gzip.BestCompression)
		if err != nil {
			f.Close()
			return nil, err
		}
		w.Writer = gz
		w.closers = append([]func() error{gz.Close}, w.closers...)
	case Zstd:
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, err
		}
		w.Writer = zw
		w.closers = append([]func() error{zw.Close}, w.closers...)
	default:
		w.Writer = f
	}
	return w, nil
}
