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

package validate

import (
	"github.com/proto3lang/proto3c/ast"
	"github.com/proto3lang/proto3c/protoerr"
)

// passReference is spec.md §4.4 "V6": every Named TypeRef reachable
// from a field, map value, or extend target resolves to a registered
// message or enum, using the relative-name-resolution algorithm
// (spec.md §4.3) rooted at the referencing declaration's scope.
func passReference(st *State) {
	st.walkMessages(func(v messageVisit) {
		for _, f := range v.Message.AllFields() {
			st.resolveFieldType(f.Type, v.ScopeStack, v.FullName, f.Location())
		}
		for _, ext := range v.Message.Extends {
			st.resolveTypeName(ext.TypeName, v.ScopeStack, v.FullName, ext.Location())
		}
	})
	for _, ext := range st.File.Extends {
		st.resolveTypeName(ext.TypeName, nil, "", ext.Location())
	}
	for _, svc := range st.File.Services {
		for _, rpc := range svc.Rpcs {
			st.resolveTypeName(rpc.InputType, nil, svc.Name, rpc.Location())
			st.resolveTypeName(rpc.OutputType, nil, svc.Name, rpc.Location())
		}
	}
}

func (st *State) resolveFieldType(t ast.TypeRef, scope []string, referencedIn string, pos ast.SourceLocation) {
	switch t.RefKind() {
	case ast.TypeRefNamed:
		st.resolveTypeName(t.Name, scope, referencedIn, pos)
	case ast.TypeRefMap:
		st.resolveFieldType(*t.MapValue, scope, referencedIn, pos)
	}
}

func (st *State) resolveTypeName(name string, scope []string, referencedIn string, pos ast.SourceLocation) {
	if name == "" {
		return
	}
	if _, ok := st.Table.ResolveRelative(name, scope, st.pkg); !ok {
		st.fail(&protoerr.Error{Kind: protoerr.UndefinedType, Pos: pos, HasPos: true, Name: name, ReferencedIn: referencedIn})
	}
}
