/*
 * files.go, part of cafetools.
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
	"github.com/rmera/cafetools/internal/zfile"
)

// ReadFile loads the ninfo file name. Files ending in .gz or .zst are
// decompressed on the fly. See Load for the options and for how bad lines are handled.
func ReadFile(name string, opts ...LoadOption) (*NativeInfo, error) {
	f, err := zfile.Open(name)
	if err != nil {
		return nil, streamError(err, "ReadFile")
	}
	defer f.Close()
	N, err := Load(f, opts...)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	return N, nil
}

// WriteFile writes N to the file name, compressed if the extension is .gz or .zst.
// If all is false, only the native contact block is written, as String does.
// Otherwise every kind of record is written, as in WriteAll.
func WriteFile(name string, N *NativeInfo, all bool) (err error) {
	f, err := zfile.Create(name)
	if err != nil {
		return streamError(err, "WriteFile")
	}
	defer func() {
		if err2 := f.Close(); err2 != nil && err == nil {
			err = streamError(err2, "WriteFile")
		}
	}()
	if all {
		err = N.WriteAll(f)
	} else {
		_, err = N.WriteTo(f)
	}
	if err != nil {
		return streamError(err, "WriteFile")
	}
	return nil
}
