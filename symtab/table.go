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
	art "github.com/plar/go-adaptive-radix-tree"
)

// Table is the registry of every Symbol visible while validating a file:
// the file's own declarations plus everything exported by its imports
// (spec.md §4.3). It is backed by an adaptive radix tree keyed on the
// dotted full name, which makes the prefix probing the resolution
// algorithm performs (see resolve.go) a sequence of cheap tree lookups
// rather than map allocations per candidate.
type Table struct {
	tree art.Tree

	// extensions indexes KindExtension symbols by the type they extend,
	// supporting LookupExtensions (spec.md §4.3 "lookup_extensions").
	extensions map[string][]*Symbol
}

// New builds an empty Table.
func New() *Table {
	return &Table{tree: art.New(), extensions: make(map[string][]*Symbol)}
}

// Add registers sym under its FullName. ok is false if FullName is
// already registered (spec.md §4.4 "DuplicateTypeName"/
// "DuplicateNestedTypeName"; the validator is responsible for turning a false return into
// the appropriate diagnostic).
func (t *Table) Add(sym *Symbol) bool {
	key := art.Key(sym.FullName)
	if _, found := t.tree.Search(key); found {
		return false
	}
	t.tree.Insert(key, sym)
	if sym.Kind == KindExtension {
		t.extensions[sym.ExtendedType] = append(t.extensions[sym.ExtendedType], sym)
	}
	return true
}

// Lookup returns the Symbol registered under the exact full name fullName.
func (t *Table) Lookup(fullName string) (*Symbol, bool) {
	v, found := t.tree.Search(art.Key(fullName))
	if !found {
		return nil, false
	}
	return v.(*Symbol), true
}

// LookupType is Lookup restricted to message/enum symbols, for type
// reference resolution (spec.md §4.3 "lookup_type").
func (t *Table) LookupType(fullName string) (*Symbol, bool) {
	sym, ok := t.Lookup(fullName)
	if !ok || (sym.Kind != KindMessage && sym.Kind != KindEnum) {
		return nil, false
	}
	return sym, true
}

// LookupExtensions returns every extension field registered against the
// message named by extendedType (spec.md §4.3 "lookup_extensions").
func (t *Table) LookupExtensions(extendedType string) []*Symbol {
	return t.extensions[extendedType]
}

// HasField reports whether message fullName has a direct field named
// fieldName (spec.md §4.3 "has_field"). Extensions of the message are
// not considered.
func (t *Table) HasField(messageFullName, fieldName string) bool {
	msg, ok := t.Lookup(messageFullName)
	if !ok {
		return false
	}
	for _, childName := range msg.Children {
		child, ok := t.Lookup(childName)
		if ok && child.Kind == KindField && child.FullName == messageFullName+"."+fieldName {
			return true
		}
	}
	return false
}

// Clear empties the table, returning it to its zero state (spec.md §4.3
// "clear" -- used between independent validations of the same Table
// instance, e.g. in tests).
func (t *Table) Clear() {
	t.tree = art.New()
	t.extensions = make(map[string][]*Symbol)
}

// Len reports the number of registered symbols.
func (t *Table) Len() int { return t.tree.Size() }
