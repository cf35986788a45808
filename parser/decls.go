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

package parser

import (
	"github.com/proto3lang/proto3c/ast"
	"github.com/proto3lang/proto3c/lexer"
	"github.com/proto3lang/proto3c/protoerr"
)

// parseSyntax handles `syntax = "proto3";`. spec.md §4.2: "Only one
// syntax... permitted; syntax, when present, MUST be first."
func (p *Parser) parseSyntax(f *ast.FileNode) {
	tok, _ := p.expectKeyword(lexer.KwSyntax)
	if p.sawSyntax {
		_ = p.fail(&protoerr.Error{Kind: protoerr.DuplicateElement, Pos: tok.Pos, HasPos: true, Name: "syntax"})
	}
	if p.sawNonSyntaxDecl {
		_ = p.fail(&protoerr.Error{Kind: protoerr.InvalidSyntax, Pos: tok.Pos, HasPos: true, Msg: "syntax declaration must be the first statement in the file"})
	}
	p.sawSyntax = true

	if _, ok := p.expectSymbol('='); !ok {
		p.syncToSemi()
		return
	}
	strTok := p.peek()
	if strTok.Kind != lexer.KindStringLiteral {
		p.unexpectedToken(strTok, "a string literal")
		p.syncToSemi()
		return
	}
	p.advance()
	if strTok.Str != "proto3" {
		_ = p.fail(&protoerr.Error{Kind: protoerr.InvalidSyntaxVersion, Pos: strTok.Pos, HasPos: true, Name: strTok.Str})
	}
	f.Syntax = strTok.Str
	p.expectSymbol(';')
}

// parsePackage handles `package a.b.c;`. spec.md §4.2: "at most one
// package is permitted."
func (p *Parser) parsePackage(f *ast.FileNode) {
	tok, _ := p.expectKeyword(lexer.KwPackage)
	name, _ := p.parseDottedName()
	if p.sawPackage {
		_ = p.fail(&protoerr.Error{Kind: protoerr.DuplicatePackageName, Pos: tok.Pos, HasPos: true, Name: name})
	} else {
		f.Package = &name
	}
	p.sawPackage = true
	p.expectSymbol(';')
}

// parseDottedName consumes `ident(.ident)*`.
func (p *Parser) parseDottedName() (string, ast.SourceLocation) {
	name, pos, ok := p.expectIdent()
	if !ok {
		return name, pos
	}
	for p.peek().Kind == lexer.KindSymbol && p.peek().Sym == '.' {
		p.advance()
		part, _, ok := p.expectIdent()
		if !ok {
			break
		}
		name += "." + part
	}
	return name, pos
}

func (p *Parser) parseImport(f *ast.FileNode) {
	p.expectKeyword(lexer.KwImport)
	mod := ast.ImportNone
	if p.peek().Kind == lexer.KindKeyword && p.peek().Keyword == lexer.KwPublic {
		p.advance()
		mod = ast.ImportPublic
	} else if p.peek().Kind == lexer.KindKeyword && p.peek().Keyword == lexer.KwWeak {
		p.advance()
		mod = ast.ImportWeak
	}
	strTok := p.peek()
	if strTok.Kind != lexer.KindStringLiteral {
		p.unexpectedToken(strTok, "a string literal")
		p.syncToSemi()
		return
	}
	p.advance()
	imp := &ast.ImportNode{Path: strTok.Str, Modifier: mod}
	imp.Pos = strTok.Pos
	f.Imports = append(f.Imports, imp)
	p.expectSymbol(';')
}
