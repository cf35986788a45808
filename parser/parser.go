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

// Package parser implements spec.md §4.2: a predictive recursive-descent
// parser, with one-token lookahead, over the lexer's token stream. It is
// authoritative for structural errors (spec.md §2): unexpected tokens,
// duplicate field numbers/names within a message, and reserved-range
// conflicts are all detected here, never re-checked by the validator.
package parser

import (
	"fmt"
	"regexp"

	"github.com/proto3lang/proto3c/ast"
	"github.com/proto3lang/proto3c/lexer"
	"github.com/proto3lang/proto3c/protoerr"
	"github.com/proto3lang/proto3c/reporter"
)

// identRegexp is the identifier shape required everywhere spec.md §3
// invariant 7 names it.
var identRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config mirrors spec.md §6 "Configuration".
type Config struct {
	MaxErrors       int
	ContinueOnError bool
}

// DefaultConfig returns the spec-mandated defaults: MaxErrors 100,
// ContinueOnError true.
func DefaultConfig() Config {
	return Config{MaxErrors: 100, ContinueOnError: true}
}

// Parser is a predictive recursive-descent parser over a single file's
// token stream (spec.md §4.2).
type Parser struct {
	lex     *lexer.Lexer
	handler *reporter.Handler

	cur     lexer.Token
	haveCur bool
	eof     bool

	filePath string

	// parser-owned duplicate-detection state, reset per file.
	sawSyntax  bool
	sawPackage bool
	sawNonSyntaxDecl bool
}

// New builds a Parser for src, reporting through handler.
func New(src []byte, filePath string, handler *reporter.Handler) *Parser {
	return &Parser{lex: lexer.New(src), handler: handler, filePath: filePath}
}

func (p *Parser) fail(err *protoerr.Error) error {
	return err.Report(p.handler)
}

// peek returns the current lookahead token, lexing it if necessary.
func (p *Parser) peek() lexer.Token {
	if !p.haveCur {
		tok, err := p.lex.Next()
		if err != nil {
			// Lexer failures are irrecoverable (spec.md §4.1): surface
			// immediately and mark EOF so the parser unwinds.
			_ = p.fail(lexErrToParseErr(err))
			p.cur = lexer.Token{Kind: lexer.KindEOF}
			p.haveCur = true
			p.eof = true
			return p.cur
		}
		p.cur = tok
		p.haveCur = true
		if tok.Kind == lexer.KindEOF {
			p.eof = true
		}
	}
	return p.cur
}

// advance consumes and returns the current token, priming the next one.
func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	p.haveCur = false
	return tok
}

func lexErrToParseErr(err error) *protoerr.Error {
	if ewp, ok := err.(reporter.ErrorWithPos); ok {
		pos, has := ewp.GetPosition()
		if has {
			return &protoerr.Error{Kind: protoerr.InvalidSyntax, Pos: ast.SourceLocation{Line: pos.Line, Column: pos.Column}, HasPos: true, Msg: ewp.Unwrap().Error()}
		}
	}
	return &protoerr.Error{Kind: protoerr.InvalidSyntax, Msg: err.Error()}
}

// Parse runs the parser and returns the resulting FileNode. Per spec.md
// §4.2 "Parser output": on success (zero errors) the FileNode is fully
// populated; callers may still inspect a partial AST even when errors
// were reported, for tooling scenarios.
func (p *Parser) Parse() (*ast.FileNode, error) {
	f := &ast.FileNode{FilePath: p.filePath, Syntax: "proto3"}

	for !p.atEOF() {
		if p.handler.Stopped() {
			break
		}
		tok := p.peek()
		if tok.Kind == lexer.KindSymbol && tok.Sym == ';' {
			p.advance() // stray/empty statement
			continue
		}
		if tok.Kind != lexer.KindKeyword {
			p.unexpectedToken(tok, "a top-level declaration")
			p.synchronizeTopLevel()
			continue
		}
		switch tok.Keyword {
		case lexer.KwSyntax:
			p.parseSyntax(f)
		case lexer.KwPackage:
			p.parsePackage(f)
			p.sawNonSyntaxDecl = true
		case lexer.KwImport:
			p.parseImport(f)
			p.sawNonSyntaxDecl = true
		case lexer.KwOption:
			if opt, ok := p.parseOptionStatement(); ok {
				f.Options = append(f.Options, opt)
			}
			p.sawNonSyntaxDecl = true
		case lexer.KwMessage:
			if m := p.parseMessage(); m != nil {
				f.Messages = append(f.Messages, m)
				f.Decls = append(f.Decls, ast.Definition{Kind: ast.DefMessage, Message: m})
			}
			p.sawNonSyntaxDecl = true
		case lexer.KwEnum:
			if e := p.parseEnum(); e != nil {
				f.Enums = append(f.Enums, e)
				f.Decls = append(f.Decls, ast.Definition{Kind: ast.DefEnum, Enum: e})
			}
			p.sawNonSyntaxDecl = true
		case lexer.KwService:
			if s := p.parseService(); s != nil {
				f.Services = append(f.Services, s)
				f.Decls = append(f.Decls, ast.Definition{Kind: ast.DefService, Service: s})
			}
			p.sawNonSyntaxDecl = true
		case lexer.KwExtend:
			if e := p.parseExtend(nil); e != nil {
				f.Extends = append(f.Extends, e)
				f.Decls = append(f.Decls, ast.Definition{Kind: ast.DefExtend, Extend: e})
			}
			p.sawNonSyntaxDecl = true
		default:
			p.unexpectedToken(tok, "a top-level declaration")
			p.synchronizeTopLevel()
		}
	}

	if len(p.handler.Errors()) > 0 {
		return f, reporter.ErrInvalidSource
	}
	return f, nil
}

func (p *Parser) atEOF() bool {
	return p.peek().Kind == lexer.KindEOF
}

func (p *Parser) unexpectedToken(tok lexer.Token, expected string) {
	_ = p.fail(&protoerr.Error{
		Kind: protoerr.UnexpectedToken, Pos: tok.Pos, HasPos: true,
		Found: tok.String(), Expected: expected,
	})
}

func (p *Parser) unexpectedEOF(expected string) {
	_ = p.fail(&protoerr.Error{Kind: protoerr.UnexpectedEndOfInput, Expected: expected})
}

// expectSymbol consumes the current token if it is the symbol r, else
// reports UnexpectedToken and returns ok=false without consuming.
func (p *Parser) expectSymbol(r rune) (lexer.Token, bool) {
	tok := p.peek()
	if tok.Kind == lexer.KindEOF {
		p.unexpectedEOF(fmt.Sprintf("%q", r))
		return tok, false
	}
	if tok.Kind == lexer.KindSymbol && tok.Sym == r {
		return p.advance(), true
	}
	p.unexpectedToken(tok, fmt.Sprintf("%q", r))
	return tok, false
}

func (p *Parser) trySymbol(r rune) bool {
	tok := p.peek()
	if tok.Kind == lexer.KindSymbol && tok.Sym == r {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectKeyword(kw lexer.Keyword) (lexer.Token, bool) {
	tok := p.peek()
	if tok.Kind == lexer.KindEOF {
		p.unexpectedEOF(string(kw))
		return tok, false
	}
	if tok.Kind == lexer.KindKeyword && tok.Keyword == kw {
		return p.advance(), true
	}
	p.unexpectedToken(tok, string(kw))
	return tok, false
}

// expectIdent consumes an identifier token (a bare Identifier; keywords
// are never valid identifiers in this grammar).
func (p *Parser) expectIdent() (string, ast.SourceLocation, bool) {
	tok := p.peek()
	if tok.Kind == lexer.KindEOF {
		p.unexpectedEOF("an identifier")
		return "", tok.Pos, false
	}
	if tok.Kind == lexer.KindIdentifier {
		p.advance()
		return tok.Ident, tok.Pos, true
	}
	p.unexpectedToken(tok, "an identifier")
	return "", tok.Pos, false
}

// expectIntLiteral consumes an integer literal, optionally preceded by a
// unary '-' (spec.md §4.1: "negative handled at parser level via the
// unary '-'").
func (p *Parser) expectIntLiteral() (int64, ast.SourceLocation, bool) {
	neg := false
	pos := p.peek().Pos
	if p.peek().Kind == lexer.KindSymbol && p.peek().Sym == '-' {
		neg = true
		p.advance()
	}
	tok := p.peek()
	if tok.Kind != lexer.KindIntegerLiteral {
		p.unexpectedToken(tok, "an integer literal")
		return 0, pos, false
	}
	p.advance()
	v := tok.Int
	if neg {
		v = -v
	}
	return v, pos, true
}

func isValidIdentName(s string) bool { return identRegexp.MatchString(s) }
