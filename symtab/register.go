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

package symtab

import (
	"fmt"

	"github.com/proto3lang/proto3c/ast"
)

// Collision records a full name that was declared more than once
// (spec.md §4.4 "registration" pass), for the validator to turn into a
// DuplicateTypeName/DuplicateNestedTypeName diagnostic.
type Collision struct {
	FullName string
	Pos      ast.SourceLocation
	Nested   bool // true if the colliding declaration is a nested type
}

// Register walks every message, enum, service, field, and extension
// declared in f and adds a Symbol for each to t, prefixed by f's
// package (spec.md §4.3: "full_name" is always package-qualified).
// Collisions are returned rather than reported directly, since Register
// has no reporter.Handler of its own (spec.md §2: the symbol table is a
// pure data structure; the validator owns diagnostics).
func Register(t *Table, f *ast.FileNode) []Collision {
	pkg := ""
	if f.Package != nil {
		pkg = *f.Package
	}
	var collisions []Collision
	add := func(sym *Symbol, pos ast.SourceLocation, nested bool) {
		if !t.Add(sym) {
			collisions = append(collisions, Collision{FullName: sym.FullName, Pos: pos, Nested: nested})
		}
	}

	qualify := func(parent, name string) string {
		if parent == "" {
			return name
		}
		return parent + "." + name
	}

	registerEnum := func(e *ast.EnumNode, parentFull string, nested bool) {
		full := qualify(parentFull, e.Name)
		add(&Symbol{FullName: full, Kind: KindEnum, Node: e, Parent: parentFull}, e.Location(), nested)
	}

	registerExtend := func(ext *ast.ExtendNode, parentFull string) {
		for _, field := range ext.Fields {
			fieldFull := qualify(parentFull, field.Name)
			add(&Symbol{
				FullName: fieldFull, Kind: KindExtension, Node: field, Parent: parentFull,
				ExtendedType: ext.TypeName, FieldNumber: field.Number, FieldType: &field.Type,
			}, field.Location(), false)
		}
	}

	var registerMessage func(m *ast.MessageNode, parentFull string, nested bool)
	registerMessage = func(m *ast.MessageNode, parentFull string, nested bool) {
		full := qualify(parentFull, m.Name)
		msgSym := &Symbol{FullName: full, Kind: KindMessage, Node: m, Parent: parentFull}
		add(msgSym, m.Location(), nested)

		for _, field := range m.AllFields() {
			fieldFull := fmt.Sprintf("%s.%s", full, field.Name)
			fieldSym := &Symbol{
				FullName: fieldFull, Kind: KindField, Node: field, Parent: full,
				FieldNumber: field.Number, FieldType: &field.Type,
			}
			add(fieldSym, field.Location(), false)
			msgSym.Children = append(msgSym.Children, fieldFull)
		}
		for _, nestedMsg := range m.Messages {
			registerMessage(nestedMsg, full, true)
			msgSym.Children = append(msgSym.Children, qualify(full, nestedMsg.Name))
		}
		for _, e := range m.Enums {
			registerEnum(e, full, true)
			msgSym.Children = append(msgSym.Children, qualify(full, e.Name))
		}
		for _, ext := range m.Extends {
			registerExtend(ext, full)
		}
	}

	for _, m := range f.Messages {
		registerMessage(m, pkg, false)
	}
	for _, e := range f.Enums {
		registerEnum(e, pkg, false)
	}
	for _, s := range f.Services {
		full := qualify(pkg, s.Name)
		add(&Symbol{FullName: full, Kind: KindService, Node: s, Parent: pkg}, s.Location(), false)
	}
	for _, ext := range f.Extends {
		registerExtend(ext, pkg)
	}

	return collisions
}
