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

// parseOptionStatement handles a top-level/message/enum/service-body
// `option name = value;` statement, per spec.md §4.2 "option".
func (p *Parser) parseOptionStatement() (*ast.Option, bool) {
	kwTok, _ := p.expectKeyword(lexer.KwOption)
	opt, ok := p.parseOptionNameAndValue(kwTok.Pos)
	p.expectSymbol(';')
	return opt, ok
}

// parseOptionNameAndValue parses `NAME = VALUE` (no surrounding
// punctuation), used by both the `option` statement and each entry of a
// compact `[...]` option list.
func (p *Parser) parseOptionNameAndValue(pos ast.SourceLocation) (*ast.Option, bool) {
	name, parts, isCustom, ok := p.parseOptionName()
	if !ok {
		return nil, false
	}
	if _, ok := p.expectSymbol('='); !ok {
		return nil, false
	}
	val, ok := p.parseOptionValue()
	if !ok {
		return nil, false
	}
	return ast.NewOption(name, parts, val, isCustom, pos), true
}

// parseOptionName parses either a bare dotted identifier or a
// parenthesised extension path optionally followed by further dotted
// selectors, e.g. `java_package`, `(my.pkg.ext).sub_field`.
func (p *Parser) parseOptionName() (name string, parts []ast.PathPart, isCustom bool, ok bool) {
	if p.peek().Kind == lexer.KindSymbol && p.peek().Sym == '(' {
		isCustom = true
		p.advance()
		extName, _ := p.parseDottedName()
		if _, k := p.expectSymbol(')'); !k {
			return "", nil, true, false
		}
		parts = append(parts, ast.PathPart{Name: extName, IsExtension: true})
		name = "(" + extName + ")"
		for p.peek().Kind == lexer.KindSymbol && p.peek().Sym == '.' {
			p.advance()
			part, _, k := p.expectIdent()
			if !k {
				return name, parts, true, false
			}
			parts = append(parts, ast.PathPart{Name: part})
			name += "." + part
		}
		return name, parts, true, true
	}
	first, _, k := p.expectIdent()
	if !k {
		return "", nil, false, false
	}
	parts = append(parts, ast.PathPart{Name: first})
	name = first
	for p.peek().Kind == lexer.KindSymbol && p.peek().Sym == '.' {
		p.advance()
		part, _, k := p.expectIdent()
		if !k {
			return name, parts, false, false
		}
		parts = append(parts, ast.PathPart{Name: part})
		name += "." + part
	}
	return name, parts, false, true
}

// parseOptionValue parses the value half of an option entry: a string,
// number, identifier (covers bool/enum literals), bracketed array, or
// braced aggregate (spec.md §4.2 "option").
func (p *Parser) parseOptionValue() (ast.OptionValue, bool) {
	tok := p.peek()
	switch {
	case tok.Kind == lexer.KindStringLiteral:
		p.advance()
		return ast.NewStringOptionValue(tok.Str, tok.Pos), true
	case tok.Kind == lexer.KindIntegerLiteral:
		p.advance()
		return ast.NewNumberOptionValue(float64(tok.Int), tok.Pos), true
	case tok.Kind == lexer.KindFloatLiteral:
		p.advance()
		return ast.NewNumberOptionValue(tok.Float, tok.Pos), true
	case tok.Kind == lexer.KindSymbol && (tok.Sym == '-' || tok.Sym == '+'):
		p.advance()
		sign := 1.0
		if tok.Sym == '-' {
			sign = -1.0
		}
		num := p.peek()
		if num.Kind == lexer.KindIntegerLiteral {
			p.advance()
			return ast.NewNumberOptionValue(sign*float64(num.Int), tok.Pos), true
		}
		if num.Kind == lexer.KindFloatLiteral {
			p.advance()
			return ast.NewNumberOptionValue(sign*num.Float, tok.Pos), true
		}
		p.unexpectedToken(num, "a numeric literal")
		return ast.OptionValue{}, false
	case tok.Kind == lexer.KindIdentifier:
		p.advance()
		name := tok.Ident
		for p.peek().Kind == lexer.KindSymbol && p.peek().Sym == '.' {
			p.advance()
			part, _, ok := p.expectIdent()
			if !ok {
				break
			}
			name += "." + part
		}
		return ast.NewIdentifierOptionValue(name, tok.Pos), true
	case tok.Kind == lexer.KindSymbol && tok.Sym == '[':
		return p.parseOptionArray(tok.Pos)
	case tok.Kind == lexer.KindSymbol && tok.Sym == '{':
		return p.parseOptionAggregate(tok.Pos)
	default:
		p.unexpectedToken(tok, "an option value")
		return ast.OptionValue{}, false
	}
}

func (p *Parser) parseOptionArray(pos ast.SourceLocation) (ast.OptionValue, bool) {
	p.advance() // '['
	var values []ast.OptionValue
	if !(p.peek().Kind == lexer.KindSymbol && p.peek().Sym == ']') {
		for {
			v, ok := p.parseOptionValue()
			if !ok {
				return ast.OptionValue{}, false
			}
			values = append(values, v)
			if p.trySymbol(',') {
				continue
			}
			break
		}
	}
	if _, ok := p.expectSymbol(']'); !ok {
		return ast.OptionValue{}, false
	}
	return ast.NewArrayOptionValue(values, pos), true
}

func (p *Parser) parseOptionAggregate(pos ast.SourceLocation) (ast.OptionValue, bool) {
	p.advance() // '{'
	var entries []ast.OptionMapEntry
	for !(p.peek().Kind == lexer.KindSymbol && p.peek().Sym == '}') {
		if p.peek().Kind == lexer.KindEOF {
			p.unexpectedEOF("'}'")
			return ast.OptionValue{}, false
		}
		key, _, ok := p.expectIdent()
		if !ok {
			return ast.OptionValue{}, false
		}
		if p.peek().Kind == lexer.KindSymbol && p.peek().Sym == ':' {
			p.advance()
		}
		val, ok := p.parseOptionValue()
		if !ok {
			return ast.OptionValue{}, false
		}
		entries = append(entries, ast.OptionMapEntry{Key: key, Value: val})
		p.trySymbol(',')
		p.trySymbol(';')
	}
	p.advance() // '}'
	return ast.NewMapOptionValue(entries, pos), true
}

// parseCompactOptions parses the bracketed `[opt = val, opt = val]`
// suffix permitted after a field, enum value, or extension range
// declaration.
func (p *Parser) parseCompactOptions() []*ast.Option {
	if !(p.peek().Kind == lexer.KindSymbol && p.peek().Sym == '[') {
		return nil
	}
	p.advance()
	var opts []*ast.Option
	if !(p.peek().Kind == lexer.KindSymbol && p.peek().Sym == ']') {
		for {
			pos := p.peek().Pos
			opt, ok := p.parseOptionNameAndValue(pos)
			if ok {
				opts = append(opts, opt)
			}
			if p.trySymbol(',') {
				continue
			}
			break
		}
	}
	p.expectSymbol(']')
	return opts
}
