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

// parseEnumValue parses `NAME = NUMBER [options];`.
func (p *Parser) parseEnumValue() *ast.EnumValueNode {
	name, namePos, ok := p.expectIdent()
	if !ok {
		p.synchronizeBody()
		return nil
	}
	if !isValidIdentName(name) {
		_ = p.fail(&protoerr.Error{Kind: protoerr.InvalidEnumValueName, Pos: namePos, HasPos: true, Name: name})
	}
	if _, ok := p.expectSymbol('='); !ok {
		p.synchronizeBody()
		return nil
	}
	number, numPos, ok := p.expectIntLiteral()
	if !ok {
		p.synchronizeBody()
		return nil
	}
	opts := p.parseCompactOptions()
	p.expectSymbol(';')

	v := &ast.EnumValueNode{Name: name, Number: int32(number), Options: opts}
	v.Pos = namePos
	_ = numPos
	return v
}

// parseEnum parses `enum Name { ... }` (spec.md §4.2 "enum"). The
// "first declared value must be 0" check is structural (it never
// depends on anything outside the enum body) and so runs here rather
// than in the validator; duplicate-number/alias checks depend on the
// allow_alias option and are left to the validator (spec.md §4.4 "enum"
// pass).
func (p *Parser) parseEnum() *ast.EnumNode {
	kwTok, _ := p.expectKeyword(lexer.KwEnum)
	name, namePos, ok := p.expectIdent()
	if !ok {
		p.synchronizeTopLevel()
		return nil
	}
	if !isValidIdentName(name) {
		_ = p.fail(&protoerr.Error{Kind: protoerr.InvalidEnumName, Pos: namePos, HasPos: true, Name: name})
	}
	e := &ast.EnumNode{Name: name}
	e.Pos = kwTok.Pos

	if _, ok := p.expectSymbol('{'); !ok {
		p.synchronizeTopLevel()
		return e
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
		case tok.Kind == lexer.KindKeyword && tok.Keyword == lexer.KwOption:
			if opt, ok := p.parseOptionStatement(); ok {
				e.Options = append(e.Options, opt)
				if opt.Name == "allow_alias" {
					if b, ok := opt.Value.AsBool(); ok {
						e.AllowAlias = b
					}
				}
			}
		case tok.Kind == lexer.KindKeyword && tok.Keyword == lexer.KwReserved:
			e.Reserved = append(e.Reserved, p.parseReserved())
		case tok.Kind == lexer.KindIdentifier:
			if v := p.parseEnumValue(); v != nil {
				e.Values = append(e.Values, v)
			}
		default:
			p.unexpectedToken(tok, "an enum value")
			p.synchronizeBody()
		}
	}
	p.expectSymbol('}')

	if len(e.Values) > 0 && e.Values[0].Number != 0 {
		_ = p.fail(&protoerr.Error{Kind: protoerr.FirstEnumValueNotZero, Pos: e.Values[0].Pos, HasPos: true, Name: e.Name})
	}
	return e
}
