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
	"strings"

	"github.com/proto3lang/proto3c/ast"
	"github.com/proto3lang/proto3c/lexer"
	"github.com/proto3lang/proto3c/protoerr"
)

// parseTypeRef parses a field/extend/rpc type reference: a scalar type
// name, or a (possibly dotted, possibly leading-dot) message/enum name
// stored verbatim (spec.md §3 "TypeRef").
func (p *Parser) parseTypeRef() (ast.TypeRef, ast.SourceLocation, bool) {
	if p.peek().Kind == lexer.KindSymbol && p.peek().Sym == '.' {
		dotPos := p.peek().Pos
		p.advance()
		name, _ := p.parseDottedName()
		return ast.NewNamedTypeRef("." + name), dotPos, true
	}
	tok := p.peek()
	if tok.Kind != lexer.KindIdentifier {
		p.unexpectedToken(tok, "a field type")
		return ast.TypeRef{}, tok.Pos, false
	}
	name, pos := p.parseDottedName()
	if !strings.Contains(name, ".") {
		if scalar, ok := ast.LookupScalarType(name); ok {
			return ast.NewScalarTypeRef(scalar), pos, true
		}
	}
	return ast.NewNamedTypeRef(name), pos, true
}

// checkFieldNumberRange reports FieldNumberOutOfRange or
// ReservedFieldNumber for a field number literal as soon as it is
// parsed -- this check needs no context beyond the literal itself, so
// it runs immediately rather than waiting for the whole message body
// (spec.md §4.2: field number range checks are parser-owned).
func (p *Parser) checkFieldNumberRange(n int64, pos ast.SourceLocation) bool {
	if n < ast.MinFieldNumber || n > ast.MaxFieldNumber {
		_ = p.fail(&protoerr.Error{Kind: protoerr.FieldNumberOutOfRange, Pos: pos, HasPos: true, Number: int32(n)})
		return false
	}
	if n >= ast.ReservedRangeStart && n <= ast.ReservedRangeEnd {
		_ = p.fail(&protoerr.Error{Kind: protoerr.ReservedFieldNumber, Pos: pos, HasPos: true, Number: int32(n)})
		return false
	}
	return true
}

// parseField parses a single field declaration. When inOneof is true,
// the `optional`/`repeated` prefix is not accepted (spec.md §4.2
// "oneof": "each inner field is a non-repeated, non-map field").
func (p *Parser) parseField(inOneof bool) *ast.FieldNode {
	startPos := p.peek().Pos
	f := &ast.FieldNode{OneofParent: ast.NoOneof}

	if !inOneof {
		switch {
		case p.peek().Kind == lexer.KindKeyword && p.peek().Keyword == lexer.KwRepeated:
			p.advance()
			f.IsRepeated = true
		case p.peek().Kind == lexer.KindKeyword && p.peek().Keyword == lexer.KwOptional:
			p.advance()
			f.IsOptional = true
		case p.peek().Kind == lexer.KindKeyword && p.peek().Keyword == lexer.KwRequired:
			tok := p.advance()
			_ = p.fail(&protoerr.Error{Kind: protoerr.InvalidSyntax, Pos: tok.Pos, HasPos: true, Msg: "'required' fields are not allowed in proto3"})
		}
	}

	typeRef, _, ok := p.parseTypeRef()
	if !ok {
		p.synchronizeBody()
		return nil
	}
	name, namePos, ok := p.expectIdent()
	if !ok {
		p.synchronizeBody()
		return nil
	}
	if !isValidIdentName(name) {
		_ = p.fail(&protoerr.Error{Kind: protoerr.InvalidFieldName, Pos: namePos, HasPos: true, Name: name})
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
	p.checkFieldNumberRange(number, numPos)

	opts := p.parseCompactOptions()
	p.expectSymbol(';')

	f.Pos = startPos
	f.Name = name
	f.Type = typeRef
	f.Number = int32(number)
	f.NumberPos = numPos
	f.Options = opts
	for _, o := range opts {
		if o.Name == "json_name" && o.Value.Kind() == ast.OptionValueString {
			s := o.Value.Str
			f.JSONName = &s
		}
	}
	return f
}

// parseMapField parses `map<key, value> name = number [options];`
// (spec.md §4.2 "map"). Neither `repeated` nor membership in a `oneof`
// is allowed syntactically; the oneof case is rejected by the caller.
func (p *Parser) parseMapField() *ast.FieldNode {
	mapTok, _ := p.expectKeyword(lexer.KwMap)
	if _, ok := p.expectSymbol('<'); !ok {
		p.synchronizeBody()
		return nil
	}
	keyName, keyPos, ok := p.expectIdent()
	if !ok {
		p.synchronizeBody()
		return nil
	}
	keyScalar, isScalar := ast.LookupScalarType(keyName)
	if !isScalar || !keyScalar.IsValidMapKey() {
		_ = p.fail(&protoerr.Error{Kind: protoerr.InvalidMapKeyType, Pos: keyPos, HasPos: true, Name: keyName})
		keyScalar = ast.String
	}
	if _, ok := p.expectSymbol(','); !ok {
		p.synchronizeBody()
		return nil
	}
	valueType, valuePos, ok := p.parseTypeRef()
	if !ok {
		p.synchronizeBody()
		return nil
	}
	if valueType.IsMap() {
		_ = p.fail(&protoerr.Error{Kind: protoerr.InvalidSyntax, Pos: valuePos, HasPos: true, Msg: "map value type must not itself be a map"})
	}
	if _, ok := p.expectSymbol('>'); !ok {
		p.synchronizeBody()
		return nil
	}
	name, _, ok := p.expectIdent()
	if !ok {
		p.synchronizeBody()
		return nil
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
	p.checkFieldNumberRange(number, numPos)
	opts := p.parseCompactOptions()
	p.expectSymbol(';')

	f := &ast.FieldNode{
		OneofParent: ast.NoOneof,
		Name:        name,
		Type:        ast.NewMapTypeRef(keyScalar, valueType),
		Number:      int32(number),
		NumberPos:   numPos,
		Options:     opts,
	}
	f.Pos = mapTok.Pos
	return f
}

// parseOneof parses `oneof name { field* }` (spec.md §4.2 "oneof").
func (p *Parser) parseOneof() *ast.OneofNode {
	kwTok, _ := p.expectKeyword(lexer.KwOneof)
	name, _, ok := p.expectIdent()
	if !ok {
		p.synchronizeBody()
		return nil
	}
	if _, ok := p.expectSymbol('{'); !ok {
		p.synchronizeBody()
		return nil
	}
	oneof := &ast.OneofNode{Name: name}
	oneof.Pos = kwTok.Pos

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
			p.parseOptionStatement()
		case tok.Kind == lexer.KindKeyword && tok.Keyword == lexer.KwMap:
			mf := p.parseMapField()
			if mf != nil {
				_ = p.fail(&protoerr.Error{Kind: protoerr.RepeatedMapField, Pos: mf.Pos, HasPos: true, Name: mf.Name})
			}
		default:
			if f := p.parseField(true); f != nil {
				oneof.Fields = append(oneof.Fields, f)
			}
		}
	}
	p.expectSymbol('}')
	return oneof
}

// parseReserved parses spec.md §4.2 "reserved": either a comma list of
// numbers and `start to end` ranges, or a comma list of quoted names.
// Mixing the two in one statement is rejected structurally, since the
// first token determines which branch is taken.
func (p *Parser) parseReserved() *ast.ReservedNode {
	kwTok, _ := p.expectKeyword(lexer.KwReserved)
	node := &ast.ReservedNode{}
	node.Pos = kwTok.Pos

	if p.peek().Kind == lexer.KindStringLiteral {
		for {
			tok := p.peek()
			if tok.Kind != lexer.KindStringLiteral {
				p.unexpectedToken(tok, "a reserved name")
				break
			}
			p.advance()
			node.Ranges = append(node.Ranges, ast.NewReservedName(tok.Str, tok.Pos))
			if p.trySymbol(',') {
				continue
			}
			break
		}
	} else {
		for {
			n, pos, ok := p.expectIntLiteral()
			if !ok {
				break
			}
			if p.peek().Kind == lexer.KindKeyword && p.peek().Keyword == lexer.KwTo {
				p.advance()
				var end int64
				if p.peek().Kind == lexer.KindIdentifier && p.peek().Ident == "max" {
					p.advance()
					end = ast.MaxFieldNumber
				} else {
					var ok2 bool
					end, _, ok2 = p.expectIntLiteral()
					if !ok2 {
						break
					}
				}
				node.Ranges = append(node.Ranges, ast.NewReservedRange(int32(n), int32(end), pos))
			} else {
				node.Ranges = append(node.Ranges, ast.NewReservedSingle(int32(n), pos))
			}
			if p.trySymbol(',') {
				continue
			}
			break
		}
	}
	p.expectSymbol(';')
	return node
}

// parseMessage parses a full `message Name { ... }` declaration,
// including the message-level duplicate checks spec.md §4.2 assigns to
// the parser: duplicate field number/name within the message, and
// reserved-number/name collisions.
func (p *Parser) parseMessage() *ast.MessageNode {
	kwTok, _ := p.expectKeyword(lexer.KwMessage)
	name, namePos, ok := p.expectIdent()
	if !ok {
		p.synchronizeTopLevel()
		return nil
	}
	if !isValidIdentName(name) {
		_ = p.fail(&protoerr.Error{Kind: protoerr.InvalidMessageName, Pos: namePos, HasPos: true, Name: name})
	}
	msg := &ast.MessageNode{Name: name}
	msg.Pos = kwTok.Pos

	if _, ok := p.expectSymbol('{'); !ok {
		p.synchronizeTopLevel()
		return msg
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
				msg.Options = append(msg.Options, opt)
			}
		case tok.Kind == lexer.KindKeyword && tok.Keyword == lexer.KwMessage:
			if nested := p.parseMessage(); nested != nil {
				msg.Messages = append(msg.Messages, nested)
			}
		case tok.Kind == lexer.KindKeyword && tok.Keyword == lexer.KwEnum:
			if nested := p.parseEnum(); nested != nil {
				msg.Enums = append(msg.Enums, nested)
			}
		case tok.Kind == lexer.KindKeyword && tok.Keyword == lexer.KwOneof:
			if oneof := p.parseOneof(); oneof != nil {
				id := ast.OneofId(len(msg.Oneofs))
				for _, f := range oneof.Fields {
					f.OneofParent = id
				}
				msg.Oneofs = append(msg.Oneofs, oneof)
			}
		case tok.Kind == lexer.KindKeyword && tok.Keyword == lexer.KwMap:
			if f := p.parseMapField(); f != nil {
				msg.Fields = append(msg.Fields, f)
			}
		case tok.Kind == lexer.KindKeyword && tok.Keyword == lexer.KwReserved:
			msg.Reserved = append(msg.Reserved, p.parseReserved())
		case tok.Kind == lexer.KindKeyword && tok.Keyword == lexer.KwExtensions:
			p.parseExtensionsRange()
		case tok.Kind == lexer.KindKeyword && tok.Keyword == lexer.KwExtend:
			if ext := p.parseExtend(msg); ext != nil {
				msg.Extends = append(msg.Extends, ext)
			}
		case tok.Kind == lexer.KindKeyword && (tok.Keyword == lexer.KwRepeated || tok.Keyword == lexer.KwOptional || tok.Keyword == lexer.KwRequired):
			if f := p.parseField(false); f != nil {
				msg.Fields = append(msg.Fields, f)
			}
		case tok.Kind == lexer.KindIdentifier:
			if f := p.parseField(false); f != nil {
				msg.Fields = append(msg.Fields, f)
			}
		default:
			p.unexpectedToken(tok, "a message element")
			p.synchronizeBody()
		}
	}
	p.expectSymbol('}')

	p.checkMessageDuplicates(msg)
	return msg
}

// parseExtensionsRange consumes a proto2-style `extensions ...;`
// statement for grammar compatibility, and rejects it: proto3 has no
// extension ranges on regular messages (only the `extend` declaration,
// which proto3 restricts to options).
func (p *Parser) parseExtensionsRange() {
	kwTok, _ := p.expectKeyword(lexer.KwExtensions)
	_ = p.fail(&protoerr.Error{Kind: protoerr.InvalidSyntax, Pos: kwTok.Pos, HasPos: true, Msg: "'extensions' is not allowed in proto3"})
	p.syncToSemi()
}

// checkMessageDuplicates enforces spec.md §4.2's parser-owned duplicate
// checks over msg's complete field/reserved set: duplicate field
// number, duplicate field name, reserved-number/field-number collision,
// reserved-name/field-name collision.
func (p *Parser) checkMessageDuplicates(msg *ast.MessageNode) {
	seenNumbers := map[int32]ast.SourceLocation{}
	seenNames := map[string]ast.SourceLocation{}

	fields := msg.AllFields()
	for _, f := range fields {
		if _, ok := seenNumbers[f.Number]; ok {
			_ = p.fail(&protoerr.Error{Kind: protoerr.DuplicateMessageFieldNumber, Pos: f.NumberPos, HasPos: true, Number: f.Number, Msg: msg.Name})
		} else {
			seenNumbers[f.Number] = f.NumberPos
		}
		if _, ok := seenNames[f.Name]; ok {
			_ = p.fail(&protoerr.Error{Kind: protoerr.DuplicateFieldName, Pos: f.Pos, HasPos: true, Name: f.Name, Msg: "duplicate field name in message " + msg.Name})
		} else {
			seenNames[f.Name] = f.Pos
		}
	}

	for _, r := range msg.Reserved {
		for _, rr := range r.Ranges {
			for _, f := range fields {
				switch rr.Kind() {
				case ast.ReservedName:
					if f.Name == rr.Name {
						_ = p.fail(&protoerr.Error{Kind: protoerr.DuplicateFieldName, Pos: f.Pos, HasPos: true, Name: f.Name, Msg: "collides with reserved name in message " + msg.Name})
					}
				default:
					if rr.Contains(f.Number) {
						_ = p.fail(&protoerr.Error{Kind: protoerr.ReservedFieldNumber, Pos: f.NumberPos, HasPos: true, Number: f.Number})
					}
				}
			}
		}
	}
}
