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

package ast

// Visitor is notified of each message and enum encountered by Walk, in
// depth-first pre-order, left-to-right within each collection -- the
// traversal order spec.md §5 requires of every validation pass.
type Visitor struct {
	Message func(m *MessageNode, scope []string)
	Enum    func(e *EnumNode, scope []string)
}

// Walk traverses every message and enum in f, including nested ones,
// depth-first pre-order, invoking the matching Visitor callback. scope
// passed to a callback is the dotted chain of enclosing type names (not
// including the package), matching the scope_stack spec.md §4.3 uses for
// relative name resolution.
func Walk(f *FileNode, v Visitor) {
	for _, m := range f.Messages {
		walkMessage(m, nil, v)
	}
	for _, e := range f.Enums {
		if v.Enum != nil {
			v.Enum(e, nil)
		}
	}
}

func walkMessage(m *MessageNode, scope []string, v Visitor) {
	if v.Message != nil {
		v.Message(m, scope)
	}
	innerScope := append(append([]string{}, scope...), m.Name)
	for _, nested := range m.Messages {
		walkMessage(nested, innerScope, v)
	}
	for _, e := range m.Enums {
		if v.Enum != nil {
			v.Enum(e, innerScope)
		}
	}
}
