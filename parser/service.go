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

// parseRpc parses `rpc Name(stream? Type) returns (stream? Type) (;|{...});`
// (spec.md §4.2 "rpc"): the stream modifier may appear on either side
// independently, and the body may be an empty block or a bare semicolon.
func (p *Parser) parseRpc() *ast.RpcNode {
	kwTok, _ := p.expectKeyword(lexer.KwRpc)
	name, namePos, ok := p.expectIdent()
	if !ok {
		p.synchronizeBody()
		return nil
	}
	if !isValidIdentName(name) {
		_ = p.fail(&protoerr.Error{Kind: protoerr.InvalidRPCName, Pos: namePos, HasPos: true, Name: name})
	}
	r := &ast.RpcNode{Name: name}
	r.Pos = kwTok.Pos

	if _, ok := p.expectSymbol('('); !ok {
		p.synchronizeBody()
		return r
	}
	if p.peek().Kind == lexer.KindKeyword && p.peek().Keyword == lexer.KwStream {
		p.advance()
		r.ClientStreaming = true
	}
	inType, _, ok := p.parseTypeRef()
	if !ok {
		p.synchronizeBody()
		return r
	}
	r.InputType = inType.String()
	if _, ok := p.expectSymbol(')'); !ok {
		p.synchronizeBody()
		return r
	}
	if _, ok := p.expectKeyword(lexer.KwReturns); !ok {
		p.synchronizeBody()
		return r
	}
	if _, ok := p.expectSymbol('('); !ok {
		p.synchronizeBody()
		return r
	}
	if p.peek().Kind == lexer.KindKeyword && p.peek().Keyword == lexer.KwStream {
		p.advance()
		r.ServerStreaming = true
	}
	outType, _, ok := p.parseTypeRef()
	if !ok {
		p.synchronizeBody()
		return r
	}
	r.OutputType = outType.String()
	if _, ok := p.expectSymbol(')'); !ok {
		p.synchronizeBody()
		return r
	}

	switch {
	case p.trySymbol(';'):
		// no options
	case p.peek().Kind == lexer.KindSymbol && p.peek().Sym == '{':
		p.advance()
		for !(p.peek().Kind == lexer.KindSymbol && p.peek().Sym == '}') {
			if p.peek().Kind == lexer.KindEOF {
				p.unexpectedEOF("'}'")
				break
			}
			if p.peek().Kind == lexer.KindSymbol && p.peek().Sym == ';' {
				p.advance()
				continue
			}
			if p.peek().Kind == lexer.KindKeyword && p.peek().Keyword == lexer.KwOption {
				if opt, ok := p.parseOptionStatement(); ok {
					r.Options = append(r.Options, opt)
				}
				continue
			}
			p.unexpectedToken(p.peek(), "an rpc option or '}'")
			p.synchronizeBody()
		}
		p.expectSymbol('}')
	default:
		p.unexpectedToken(p.peek(), "';' or '{'")
		p.synchronizeBody()
	}
	return r
}

// parseService parses `service Name { (rpc|option)* }` (spec.md §4.2
// "service").
func (p *Parser) parseService() *ast.ServiceNode {
	kwTok, _ := p.expectKeyword(lexer.KwService)
	name, namePos, ok := p.expectIdent()
	if !ok {
		p.synchronizeTopLevel()
		return nil
	}
	if !isValidIdentName(name) {
		_ = p.fail(&protoerr.Error{Kind: protoerr.InvalidServiceName, Pos: namePos, HasPos: true, Name: name})
	}
	s := &ast.ServiceNode{Name: name}
	s.Pos = kwTok.Pos

	if _, ok := p.expectSymbol('{'); !ok {
		p.synchronizeTopLevel()
		return s
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
				s.Options = append(s.Options, opt)
			}
		case tok.Kind == lexer.KindKeyword && tok.Keyword == lexer.KwRpc:
			if r := p.parseRpc(); r != nil {
				s.Rpcs = append(s.Rpcs, r)
			}
		default:
			p.unexpectedToken(tok, "an rpc or option declaration")
			p.synchronizeBody()
		}
	}
	p.expectSymbol('}')
	return s
}
