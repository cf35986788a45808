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

import "github.com/proto3lang/proto3c/ast"

// messageVisit is the context handed to each message encountered while
// walking the file, carrying enough to resolve names and build
// fully-qualified diagnostics.
type messageVisit struct {
	Message    *ast.MessageNode
	FullName   string
	ScopeStack []string // full names, outermost to innermost, ending with FullName
}

type enumVisit struct {
	Enum     *ast.EnumNode
	FullName string
}

// walkMessages invokes fn for every message in the file, including
// nested ones, depth-first pre-order (spec.md §5).
func (st *State) walkMessages(fn func(messageVisit)) {
	var walk func(m *ast.MessageNode, parentFull string, scope []string)
	walk = func(m *ast.MessageNode, parentFull string, scope []string) {
		full := qualify(parentFull, m.Name)
		innerScope := append(append([]string{}, scope...), full)
		fn(messageVisit{Message: m, FullName: full, ScopeStack: innerScope})
		for _, nested := range m.Messages {
			walk(nested, full, innerScope)
		}
	}
	for _, m := range st.File.Messages {
		walk(m, st.pkg, nil)
	}
}

// walkEnums invokes fn for every enum in the file, including nested ones.
func (st *State) walkEnums(fn func(enumVisit)) {
	var walkMsg func(m *ast.MessageNode, parentFull string)
	walkMsg = func(m *ast.MessageNode, parentFull string) {
		full := qualify(parentFull, m.Name)
		for _, e := range m.Enums {
			fn(enumVisit{Enum: e, FullName: qualify(full, e.Name)})
		}
		for _, nested := range m.Messages {
			walkMsg(nested, full)
		}
	}
	for _, e := range st.File.Enums {
		fn(enumVisit{Enum: e, FullName: qualify(st.pkg, e.Name)})
	}
	for _, m := range st.File.Messages {
		walkMsg(m, st.pkg)
	}
}

func qualify(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
