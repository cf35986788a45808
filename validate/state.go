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

// Package validate implements spec.md §4.4: the semantic validator that
// runs after a successful parse, in the fixed pass order V1-V9.
package validate

import (
	"github.com/proto3lang/proto3c/ast"
	"github.com/proto3lang/proto3c/protoerr"
	"github.com/proto3lang/proto3c/reporter"
	"github.com/proto3lang/proto3c/symtab"
)

// State threads the shared, mutable validation context through every
// pass (spec.md §4.4 "ValidationState"): the file under validation, the
// symbol table it (and its imports) populate, the diagnostic sink, and
// the set of type full names made available by imports.
type State struct {
	File    *ast.FileNode
	Table   *symtab.Table
	Handler *reporter.Handler

	// ImportedTypes holds the full names of messages/enums visible
	// because some import exports them (spec.md §1: cross-file
	// resolution is provided by the caller, not discovered by reading
	// the filesystem here). Populated by SetImportedTypes before
	// Validate runs.
	ImportedTypes map[string]bool

	pkg string
}

// NewState builds a State for f, reporting diagnostics to h.
func NewState(f *ast.FileNode, h *reporter.Handler) *State {
	pkg := ""
	if f.Package != nil {
		pkg = *f.Package
	}
	return &State{File: f, Table: symtab.New(), Handler: h, ImportedTypes: map[string]bool{}, pkg: pkg}
}

// SetImportedTypes registers additional Symbols into st.Table for each
// full name in types, so reference resolution can see across files
// (spec.md §4.3 "an imported symbol is registered exactly like a
// locally declared one, except its Node is nil").
func (st *State) SetImportedTypes(types map[string]symtab.Kind) {
	for name, kind := range types {
		st.Table.Add(&symtab.Symbol{FullName: name, Kind: kind})
		st.ImportedTypes[name] = true
	}
}

func (st *State) fail(err *protoerr.Error) {
	_ = err.Report(st.Handler)
}
