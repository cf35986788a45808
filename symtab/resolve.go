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

import "strings"

// ResolveRelative implements spec.md §4.3's relative-name-resolution
// algorithm for a TypeRef::Named reference.
//
// A reference starting with '.' is absolute: the leading dot is stripped
// and the rest is looked up as an exact full name, never probed against
// enclosing scopes or prefixed with the package.
//
// A relative reference is resolved by walking scopeStack from innermost
// to outermost, trying "<scope prefix>.<name>" at each step, then
// "<package>.<name>" (the file-level/package scope, when pkg is set) and
// finally the bare "<name>". The first candidate that resolves
// to a registered message or enum symbol wins, matching protoc's C++
// scoping rules.
//
// scopeStack holds the full dotted names of each enclosing message, from
// outermost to innermost (e.g. ["pkg.Outer", "pkg.Outer.Inner"]).
// pkg is the declaring file's package name, or "" if none.
func (t *Table) ResolveRelative(name string, scopeStack []string, pkg string) (*Symbol, bool) {
	if strings.HasPrefix(name, ".") {
		return t.LookupType(name[1:])
	}

	for i := len(scopeStack) - 1; i >= 0; i-- {
		candidate := scopeStack[i] + "." + name
		if sym, ok := t.LookupType(candidate); ok {
			return sym, true
		}
	}
	if pkg != "" {
		if sym, ok := t.LookupType(pkg + "." + name); ok {
			return sym, true
		}
	}
	if sym, ok := t.LookupType(name); ok {
		return sym, true
	}
	return nil, false
}

// ResolveOptionExtension resolves a custom option's parenthesised
// extension name, passed without the parentheses (e.g. "my.pkg.ext_name"
// for "(my.pkg.ext_name)"), the same way a field type
// reference is resolved but restricted to KindExtension symbols
// (spec.md §4.3 "resolve_option_type").
func (t *Table) ResolveOptionExtension(name string, scopeStack []string, pkg string) (*Symbol, bool) {
	name = strings.TrimPrefix(name, ".")
	candidates := make([]string, 0, len(scopeStack)+2)
	for i := len(scopeStack) - 1; i >= 0; i-- {
		candidates = append(candidates, scopeStack[i]+"."+name)
	}
	if pkg != "" {
		candidates = append(candidates, pkg+"."+name)
	}
	candidates = append(candidates, name)

	for _, c := range candidates {
		if sym, ok := t.Lookup(c); ok && sym.Kind == KindExtension {
			return sym, true
		}
	}
	return nil, false
}
