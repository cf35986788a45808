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

package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/proto3lang/proto3c/ast"
	"github.com/proto3lang/proto3c/reporter"
)

// Error is returned (wrapped in a reporter.ErrorWithPos) when the lexer
// encounters an unexpected character, an unterminated string, or an
// invalid numeric literal (spec.md §4.1 "Failure behaviour"). Lexing
// halts immediately after the first such error: "no error recovery at
// the lexical level".
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

// Lexer converts UTF-8 source text into a token stream, terminated by an
// explicit EOF token (spec.md §4.1).
type Lexer struct {
	src    []byte
	pos    int
	line   uint32
	col    uint32
	failed bool
}

// New builds a Lexer over src.
func New(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

func (l *Lexer) here() ast.SourceLocation {
	return ast.SourceLocation{Line: l.line, Column: l.col}
}

// peekRune returns the rune at the current position without consuming it.
func (l *Lexer) peekRune() (rune, int) {
	if l.pos >= len(l.src) {
		return 0, 0
	}
	r, sz := utf8.DecodeRune(l.src[l.pos:])
	return r, sz
}

// advance consumes one rune, updating line/column bookkeeping. Line
// terminators LF, CR, and CRLF (spec.md §6) each count as exactly one
// line advance; a bare CR not followed by LF still advances the line.
func (l *Lexer) advance() (rune, bool) {
	r, sz := l.peekRune()
	if sz == 0 {
		return 0, false
	}
	l.pos += sz
	switch r {
	case '\n':
		l.line++
		l.col = 1
	case '\r':
		if nr, nsz := l.peekRune(); nr == '\n' {
			l.pos += nsz
		}
		l.line++
		l.col = 1
	default:
		l.col++
	}
	return r, true
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Next lexes and returns the next token, or an error if the source is
// malformed. Once an error is returned, the Lexer must not be called
// again. Comments are skipped but attached to the returned token's
// Leading slice (every `//` or `/* */` comment between the previous
// token and this one), including a comment on the same line as the
// previous token; no comment is ever attached as a trailing comment.
// The parser does not copy these comments onto AST nodes.
func (l *Lexer) Next() (Token, error) {
	if l.failed {
		return Token{}, &Error{Msg: "lexer already failed"}
	}
	var leading []ast.Comment
	for {
		l.skipInlineWhitespace()
		if r, _ := l.peekRune(); r == '\n' || r == '\r' {
			l.advance()
			continue
		}
		r, sz := l.peekRune()
		if sz == 0 {
			return Token{Kind: KindEOF, Pos: l.here(), Leading: leading}, nil
		}
		if r == '/' {
			if c, consumed, err := l.tryReadComment(); err != nil {
				l.failed = true
				return Token{}, err
			} else if consumed {
				leading = append(leading, c)
				continue
			}
		}
		break
	}
	return l.lexToken(leading)
}

func (l *Lexer) skipInlineWhitespace() {
	for {
		r, sz := l.peekRune()
		if sz == 0 {
			return
		}
		if r == ' ' || r == '\t' || r == '\f' || r == '\v' {
			l.advance()
			continue
		}
		return
	}
}

// tryReadComment consumes a `//` or `/* */` comment starting at the
// current position, if one is present, returning it as an ast.Comment.
func (l *Lexer) tryReadComment() (ast.Comment, bool, error) {
	start := l.pos
	startPos := l.here()
	savedLine, savedCol := l.line, l.col
	r, _ := l.advance() // consume '/'
	_ = r
	next, sz := l.peekRune()
	if sz == 0 {
		l.pos = start
		l.line, l.col = savedLine, savedCol
		return ast.Comment{}, false, nil
	}
	switch next {
	case '/':
		l.advance()
		for {
			r, sz := l.peekRune()
			if sz == 0 || r == '\n' || r == '\r' {
				break
			}
			l.advance()
		}
		return ast.Comment{Text: string(l.src[start:l.pos]), Pos: startPos}, true, nil
	case '*':
		l.advance()
		closed := false
		for {
			r, sz := l.peekRune()
			if sz == 0 {
				break
			}
			if r == '*' {
				l.advance()
				if r2, sz2 := l.peekRune(); sz2 != 0 && r2 == '/' {
					l.advance()
					closed = true
					break
				}
				continue
			}
			l.advance()
		}
		if !closed {
			return ast.Comment{}, false, l.errHere(startPos, "unterminated block comment")
		}
		return ast.Comment{Text: string(l.src[start:l.pos]), Pos: startPos}, true, nil
	default:
		// not a comment; leave position where it was before consuming '/'
		l.pos = start
		l.line, l.col = savedLine, savedCol
		return ast.Comment{}, false, nil
	}
}

func (l *Lexer) errHere(pos ast.SourceLocation, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return reporter.Error(reporter.Position{Line: pos.Line, Column: pos.Column}, &Error{Msg: msg})
}

func (l *Lexer) lexToken(leading []ast.Comment) (Token, error) {
	pos := l.here()
	r, ok := l.advance()
	if !ok {
		return Token{Kind: KindEOF, Pos: pos, Leading: leading}, nil
	}

	if r == '\'' || r == '"' {
		s, err := l.readStringLiteral(r, pos)
		if err != nil {
			l.failed = true
			return Token{}, err
		}
		return Token{Kind: KindStringLiteral, Pos: pos, Str: s, Leading: leading}, nil
	}

	if isIdentStart(r) {
		start := l.pos - utf8.RuneLen(r)
		for {
			nr, sz := l.peekRune()
			if sz == 0 || !isIdentCont(nr) {
				break
			}
			l.advance()
		}
		text := string(l.src[start:l.pos])
		if kw, ok := keywords[text]; ok {
			return Token{Kind: KindKeyword, Pos: pos, Keyword: kw, Leading: leading}, nil
		}
		// Identifier("true"|"false") doubles as the boolean literal form;
		// spec.md §4.1 leaves KindBoolLiteral unused by this lexer and
		// lets the parser accept Identifier("true"|"false") instead.
		return Token{Kind: KindIdentifier, Pos: pos, Ident: text, Leading: leading}, nil
	}

	if isDigit(r) {
		start := l.pos - utf8.RuneLen(r)
		return l.readNumber(start, pos, leading)
	}

	if r == '.' {
		if nr, _ := l.peekRune(); isDigit(nr) {
			start := l.pos - 1
			return l.readNumber(start, pos, leading)
		}
		return Token{Kind: KindSymbol, Pos: pos, Sym: '.', Leading: leading}, nil
	}

	if r < 32 || r == 127 {
		l.failed = true
		return Token{}, l.errHere(pos, "invalid control character")
	}

	if strings.ContainsRune(symbolSet, r) {
		return Token{Kind: KindSymbol, Pos: pos, Sym: r, Leading: leading}, nil
	}

	l.failed = true
	return Token{}, l.errHere(pos, "invalid character %q", r)
}

// readNumber lexes an integer or float literal starting at byte offset
// start (already includes the first digit or the leading '.').
func (l *Lexer) readNumber(start int, pos ast.SourceLocation, leading []ast.Comment) (Token, error) {
	// hex
	if l.src[start] == '0' {
		if nr, _ := l.peekRune(); nr == 'x' || nr == 'X' {
			l.advance()
			hexStart := l.pos
			for {
				r, sz := l.peekRune()
				if sz == 0 || !isHexDigit(r) {
					break
				}
				l.advance()
			}
			if l.pos == hexStart {
				l.failed = true
				return Token{}, l.errHere(pos, "invalid hexadecimal integer literal")
			}
			text := string(l.src[hexStart:l.pos])
			v, err := strconv.ParseUint(text, 16, 64)
			if err != nil {
				l.failed = true
				return Token{}, l.errHere(pos, "invalid hexadecimal integer literal: %s", text)
			}
			return Token{Kind: KindIntegerLiteral, Pos: pos, Int: int64(v), Leading: leading}, nil
		}
	}

	isFloat := l.src[start] == '.'
	for {
		r, sz := l.peekRune()
		if sz == 0 {
			break
		}
		if isDigit(r) {
			l.advance()
			continue
		}
		if r == '.' {
			isFloat = true
			l.advance()
			continue
		}
		if r == 'e' || r == 'E' {
			isFloat = true
			l.advance()
			if r2, _ := l.peekRune(); r2 == '+' || r2 == '-' {
				l.advance()
			}
			continue
		}
		break
	}
	text := string(l.src[start:l.pos])

	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.failed = true
			return Token{}, l.errHere(pos, "invalid float literal: %s", text)
		}
		return Token{Kind: KindFloatLiteral, Pos: pos, Float: f, Leading: leading}, nil
	}

	base := 10
	if len(text) > 1 && text[0] == '0' {
		base = 8
	}
	v, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		l.failed = true
		kind := "integer"
		if base == 8 {
			kind = "octal integer"
		}
		return Token{}, l.errHere(pos, "invalid %s literal: %s", kind, text)
	}
	return Token{Kind: KindIntegerLiteral, Pos: pos, Int: int64(v), Leading: leading}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// readStringLiteral consumes a quoted string literal, decoding escape
// sequences, per spec.md §4.1 "StringLiteral(s) -- decoded".
func (l *Lexer) readStringLiteral(quote rune, pos ast.SourceLocation) (string, error) {
	var sb strings.Builder
	for {
		r, ok := l.advance()
		if !ok {
			return "", l.errHere(pos, "unterminated string literal")
		}
		if r == '\n' || r == '\r' {
			return "", l.errHere(pos, "unterminated string literal (newline before closing quote)")
		}
		if r == quote {
			return sb.String(), nil
		}
		if r != '\\' {
			sb.WriteRune(r)
			continue
		}
		esc, ok := l.advance()
		if !ok {
			return "", l.errHere(pos, "unterminated escape sequence in string literal")
		}
		switch esc {
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case '\\', '\'', '"', '?':
			sb.WriteByte(byte(esc))
		case 'x', 'X':
			v, err := l.readHexEscape(2)
			if err != nil {
				return "", l.errHere(pos, "invalid hex escape: %v", err)
			}
			sb.WriteByte(byte(v))
		case 'u':
			v, err := l.readHexEscapeExact(4)
			if err != nil {
				return "", l.errHere(pos, "invalid unicode escape: %v", err)
			}
			sb.WriteRune(rune(v))
		case 'U':
			v, err := l.readHexEscapeExact(8)
			if err != nil {
				return "", l.errHere(pos, "invalid unicode escape: %v", err)
			}
			if v > 0x10ffff {
				return "", l.errHere(pos, "unicode escape out of range: %x", v)
			}
			sb.WriteRune(rune(v))
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v := int64(esc - '0')
			for i := 0; i < 2; i++ {
				r2, sz := l.peekRune()
				if sz == 0 || r2 < '0' || r2 > '7' {
					break
				}
				l.advance()
				v = v*8 + int64(r2-'0')
			}
			if v > 0xff {
				return "", l.errHere(pos, "octal escape out of range: %o", v)
			}
			sb.WriteByte(byte(v))
		default:
			return "", l.errHere(pos, "invalid escape sequence: \\%c", esc)
		}
	}
}

func (l *Lexer) readHexEscape(maxDigits int) (int64, error) {
	start := l.pos
	for i := 0; i < maxDigits; i++ {
		r, sz := l.peekRune()
		if sz == 0 || !isHexDigit(r) {
			break
		}
		l.advance()
	}
	if l.pos == start {
		return 0, fmt.Errorf("expected hex digits")
	}
	return strconv.ParseInt(string(l.src[start:l.pos]), 16, 64)
}

func (l *Lexer) readHexEscapeExact(n int) (int64, error) {
	start := l.pos
	for i := 0; i < n; i++ {
		r, sz := l.peekRune()
		if sz == 0 || !isHexDigit(r) {
			return 0, fmt.Errorf("expected %d hex digits", n)
		}
		l.advance()
	}
	return strconv.ParseInt(string(l.src[start:l.pos]), 16, 64)
}
