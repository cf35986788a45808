// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reporter provides the position-carrying error sink shared by the
// parser and the semantic validator. Neither component owns its own ad hoc
// error-collection logic; both report through a Handler so that max-errors
// and continue-on-error behave identically everywhere.
package reporter

import (
	"errors"
	"fmt"
)

// ErrInvalidSource is returned by top-level parse/validate entry points when
// one or more errors were reported to a Handler.
var ErrInvalidSource = errors.New("proto3c: invalid source")

// Position is a 1-based line/column location in a source file.
type Position struct {
	Filename string
	Line     uint32
	Column   uint32
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// ErrorWithPos is an error about proto source that knows where in the file
// it occurred. Not all errors have a known position (UnexpectedEndOfInput,
// InternalError); those implementations return a zero Position.
type ErrorWithPos interface {
	error
	GetPosition() (Position, bool)
	Unwrap() error
}

// Error wraps err with pos, producing an ErrorWithPos.
func Error(pos Position, err error) ErrorWithPos {
	return errorWithPos{pos: pos, hasPos: true, underlying: err}
}

// Errorf is like Error but builds the underlying error via fmt.Errorf.
func Errorf(pos Position, format string, args ...any) ErrorWithPos {
	return Error(pos, fmt.Errorf(format, args...))
}

// ErrorNoPos wraps err without an associated position (used for
// UnexpectedEndOfInput and InternalError, per the error model's contract).
func ErrorNoPos(err error) ErrorWithPos {
	return errorWithPos{underlying: err}
}

type errorWithPos struct {
	underlying error
	pos        Position
	hasPos     bool
}

func (e errorWithPos) Error() string {
	if !e.hasPos {
		return e.underlying.Error()
	}
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithPos) GetPosition() (Position, bool) { return e.pos, e.hasPos }
func (e errorWithPos) Unwrap() error                 { return e.underlying }

var _ ErrorWithPos = errorWithPos{}
