/*
 * errors.go, part of cafetools.
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
)

// Kinds of failure. Per-line parse failures wrap one of the first four;
// they are not critical and Load drops the offending line.
var (
	ErrOutOfBounds      = errors.New("field reaches past the end of the line")
	ErrMalformedNumber  = errors.New("malformed number")
	ErrInconsistentUnit = errors.New("inconsistent unit columns")
	ErrWrongKind        = errors.New("line does not start with the expected keyword")
	ErrIOFailure        = errors.New("read failure")
)

// Error is the error type returned by this package. It carries a decoration slice
// with the chain of callers, and whether the error is critical (fatal to the whole
// read) or only affects one line.
type Error struct {
	message  string
	line     string //the offending line, if any
	deco     []string
	critical bool
	kind     error
}

func (err *Error) Error() string {
	s := "ninfo: " + err.kind.Error()
	if err.message != "" {
		s += ": " + err.message
	}
	if err.line != "" {
		s += fmt.Sprintf(" (line %q)", err.line)
	}
	return s
}

// Unwrap returns the kind of the error, so errors.Is(err, ErrOutOfBounds) and friends work.
func (err *Error) Unwrap() error { return err.kind }

// Decorate adds the dec string to the decoration slice of the error,
// and returns the resulting slice. An empty string just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns true if the error aborts a whole read, false if it only concerns one line.
func (err *Error) Critical() bool { return err.critical }

// Line returns the line that could not be parsed, or an empty string.
func (err *Error) Line() string { return err.line }

func lineError(kind error, line, format string, a ...any) *Error {
	return &Error{message: fmt.Sprintf(format, a...), line: line, kind: kind}
}

func streamError(err error, caller string) *Error {
	return &Error{deco: []string{caller}, critical: true, kind: fmt.Errorf("%w: %w", ErrIOFailure, err)}
}

// errDecorate decorates err with the caller's name if it is one of our errors,
// and returns it.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
