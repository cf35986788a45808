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
)

// parseExtend parses `extend TypeName { field* }`. proto3 permits
// `extend` only to attach custom options to one of the descriptor
// *Options messages (spec.md §4.2 "extend"), so the body grammar here
// is limited to field declarations -- no nested message/enum/oneof.
// parent is the enclosing MessageNode, or nil for a top-level extend.
func (p *Parser) parseExtend(parent *ast.MessageNode) *ast.ExtendNode {
	kwTok, _ := p.expectKeyword(lexer.KwExtend)
	typeRef, _, ok := p.parseTypeRef()
	if !ok {
		p.synchronizeTopLevel()
		return nil
	}
	ext := &ast.ExtendNode{TypeName: typeRef.String(), IsTopLevel: parent == nil, Parent: parent}
	ext.Pos = kwTok.Pos

	if _, ok := p.expectSymbol('{'); !ok {
		p.synchronizeTopLevel()
		return ext
	}
	for {
		tok := p.peek()
		if tok.Kind == lexer.KindEOF {
			p.unexpectedEOF("'}'")
			break
		}
		if tok.Kind == lexer.KindSymbol && tok.Sym == '}' {
			break
		}
		switch {
		case tok.Kind == lexer.KindSymbol && tok.Sym == ';':
			p.advance()
		case tok.Kind == lexer.KindKeyword && (tok.Keyword == lexer.KwRepeated || tok.Keyword == lexer.KwOptional):
			if f := p.parseField(false); f != nil {
				ext.Fields = append(ext.Fields, f)
			}
		case tok.Kind == lexer.KindIdentifier:
			if f := p.parseField(false); f != nil {
				ext.Fields = append(ext.Fields, f)
			}
		default:
			p.unexpectedToken(tok, "a field declaration")
			p.synchronizeBody()
		}
	}
	p.expectSymbol('}')
	return ext
}
