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

import "github.com/proto3lang/proto3c/lexer"

// topLevelSentinels is the set of keywords that begin a new top-level
// declaration, used by synchronizeTopLevel (spec.md §4.2 "Error
// recovery").
var topLevelSentinels = map[lexer.Keyword]bool{
	lexer.KwMessage: true, lexer.KwEnum: true, lexer.KwService: true,
	lexer.KwExtend: true, lexer.KwOption: true, lexer.KwImport: true,
	lexer.KwPackage: true, lexer.KwSyntax: true,
}

// synchronizeTopLevel advances tokens until the next semicolon at
// nesting depth 0 or a keyword that begins a new top-level declaration,
// per spec.md §4.2 "Error recovery".
func (p *Parser) synchronizeTopLevel() {
	depth := 0
	for {
		tok := p.peek()
		if tok.Kind == lexer.KindEOF {
			return
		}
		if depth == 0 {
			if tok.Kind == lexer.KindSymbol && tok.Sym == ';' {
				p.advance()
				return
			}
			if tok.Kind == lexer.KindKeyword && topLevelSentinels[tok.Keyword] {
				return
			}
		}
		if tok.Kind == lexer.KindSymbol {
			switch tok.Sym {
			case '{':
				depth++
			case '}':
				if depth == 0 {
					p.advance()
					return
				}
				depth--
			}
		}
		p.advance()
	}
}

// messageBodySentinels is the set of keywords that begin a new element
// inside a message/enum/service/oneof/extend body.
var messageBodySentinels = map[lexer.Keyword]bool{
	lexer.KwMessage: true, lexer.KwEnum: true, lexer.KwOption: true,
	lexer.KwOneof: true, lexer.KwMap: true, lexer.KwReserved: true,
	lexer.KwExtensions: true, lexer.KwExtend: true, lexer.KwRepeated: true,
	lexer.KwOptional: true, lexer.KwRpc: true,
}

// synchronizeBody advances tokens until the next semicolon at the
// current nesting depth (0 meaning directly inside this body), a
// sentinel keyword or an identifier at depth 0, or the body's closing '}' (not
// consumed, so the caller's own closing-brace check terminates the
// body loop).
func (p *Parser) synchronizeBody() {
	depth := 0
	for {
		tok := p.peek()
		if tok.Kind == lexer.KindEOF {
			return
		}
		if depth == 0 {
			if tok.Kind == lexer.KindSymbol && tok.Sym == ';' {
				p.advance()
				return
			}
			if tok.Kind == lexer.KindSymbol && tok.Sym == '}' {
				return
			}
			if tok.Kind == lexer.KindKeyword && messageBodySentinels[tok.Keyword] {
				return
			}
			if tok.Kind == lexer.KindIdentifier {
				return
			}
		}
		if tok.Kind == lexer.KindSymbol {
			switch tok.Sym {
			case '{':
				depth++
			case '}':
				depth--
			}
		}
		p.advance()
	}
}

// syncToSemi advances to and consumes the next semicolon at depth 0, or
// stops at EOF/closing brace. Used after a malformed single-statement
// declaration (syntax, package, import) to resume at the next statement.
func (p *Parser) syncToSemi() {
	for {
		tok := p.peek()
		if tok.Kind == lexer.KindEOF {
			return
		}
		if tok.Kind == lexer.KindSymbol && tok.Sym == ';' {
			p.advance()
			return
		}
		if tok.Kind == lexer.KindSymbol && tok.Sym == '}' {
			return
		}
		p.advance()
	}
}
