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

// Package lexer implements spec.md §4.1: a deterministic character-stream
// to token-stream converter for proto3 source.
package lexer

import (
	"fmt"

	"github.com/proto3lang/proto3c/ast"
)

// Keyword enumerates the closed set of proto3 keywords recognized by the
// lexer (spec.md §4.1).
type Keyword string

const (
	KwSyntax     Keyword = "syntax"
	KwPackage    Keyword = "package"
	KwImport     Keyword = "import"
	KwOption     Keyword = "option"
	KwMessage    Keyword = "message"
	KwEnum       Keyword = "enum"
	KwService    Keyword = "service"
	KwRpc        Keyword = "rpc"
	KwReturns    Keyword = "returns"
	KwStream     Keyword = "stream"
	KwRepeated   Keyword = "repeated"
	KwOptional   Keyword = "optional"
	KwOneof      Keyword = "oneof"
	KwMap        Keyword = "map"
	KwReserved   Keyword = "reserved"
	KwExtensions Keyword = "extensions"
	KwExtend     Keyword = "extend"
	KwPublic     Keyword = "public"
	KwWeak       Keyword = "weak"
	KwTo         Keyword = "to"
	KwRequired   Keyword = "required"
)

// keywords is the closed keyword set; "required" is included purely so
// the lexer can classify it as a Keyword token -- spec.md §4.2 requires
// the parser, not the lexer, to reject it as "a hard error in proto3".
var keywords = map[string]Keyword{
	"syntax": KwSyntax, "package": KwPackage, "import": KwImport,
	"option": KwOption, "message": KwMessage, "enum": KwEnum,
	"service": KwService, "rpc": KwRpc, "returns": KwReturns,
	"stream": KwStream, "repeated": KwRepeated, "optional": KwOptional,
	"oneof": KwOneof, "map": KwMap, "reserved": KwReserved,
	"extensions": KwExtensions, "extend": KwExtend, "public": KwPublic,
	"weak": KwWeak, "to": KwTo, "required": KwRequired,
}

// Kind discriminates the closed set of token kinds (spec.md §4.1).
type Kind int

const (
	KindKeyword Kind = iota
	KindIdentifier
	KindStringLiteral
	KindIntegerLiteral
	KindFloatLiteral
	KindBoolLiteral
	KindSymbol
	KindEOF
)

// Token is one lexeme plus its source position (spec.md §4.1).
type Token struct {
	Kind Kind
	Pos  ast.SourceLocation

	// exactly one of the following is meaningful, selected by Kind.
	Keyword    Keyword
	Ident      string
	Str        string
	Int        int64
	Float      float64
	Bool       bool
	Sym        rune

	// Leading comments lexed immediately before this token -- see
	// Lexer.Next. The lexer never sets Trailing; it stays nil.
	Leading  []ast.Comment
	Trailing *ast.Comment
}

func (t Token) String() string {
	switch t.Kind {
	case KindKeyword:
		return string(t.Keyword)
	case KindIdentifier:
		return t.Ident
	case KindStringLiteral:
		return fmt.Sprintf("%q", t.Str)
	case KindIntegerLiteral:
		return fmt.Sprintf("%d", t.Int)
	case KindFloatLiteral:
		return fmt.Sprintf("%g", t.Float)
	case KindBoolLiteral:
		return fmt.Sprintf("%t", t.Bool)
	case KindSymbol:
		return string(t.Sym)
	case KindEOF:
		return "<EOF>"
	default:
		return "<invalid>"
	}
}

// symbolSet is the closed set of single-rune symbol tokens (spec.md §4.1),
// including ':' for the key/value pairs of aggregate option values.
const symbolSet = "=;,.{}[]()<>+-/:"
