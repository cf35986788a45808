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

// Package symtab implements spec.md §4.3: the registration and
// relative-name-resolution of every message, enum, service, field, and
// extension declared in (or imported into) a file.
package symtab

import "github.com/proto3lang/proto3c/ast"

// Kind discriminates the declarations a Symbol can name (spec.md §4.3
// "Symbol").
type Kind int

const (
	KindMessage Kind = iota
	KindEnum
	KindService
	KindField
	KindExtension
)

func (k Kind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindEnum:
		return "enum"
	case KindService:
		return "service"
	case KindField:
		return "field"
	case KindExtension:
		return "extension"
	default:
		return "unknown"
	}
}

// Symbol is spec.md §4.3 "Symbol": one registered entry, keyed by its
// fully-qualified dotted name (including package, with no leading dot).
type Symbol struct {
	FullName string
	Kind     Kind
	Node     ast.Node
	Parent   string   // full name of the enclosing message; the package name ("" if none) for file scope
	Children []string // full names of nested symbols, in declaration order

	// ExtendedType/FieldNumber/FieldType are populated only for
	// KindField and KindExtension symbols.
	ExtendedType string
	FieldNumber  int32
	FieldType    *ast.TypeRef
}
