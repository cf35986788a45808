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

// OptionValueKind discriminates the OptionValue tagged variant
// (spec.md §3).
type OptionValueKind int

const (
	OptionValueString OptionValueKind = iota
	OptionValueNumber
	OptionValueIdentifier
	OptionValueArray
	OptionValueMap
)

// OptionValue is the tagged variant from spec.md §3:
//
//	String(s) | Number(f64) | Identifier(s) | Array([OptionValue]) | Map([(key, OptionValue)])
//
// Boolean literals appear as Identifier("true"|"false"); enum-valued
// options appear as Identifier(name).
type OptionValue struct {
	kind OptionValueKind
	node

	Str   string
	Num   float64
	Array []OptionValue
	Map   []OptionMapEntry
}

// OptionMapEntry is one `key: value` pair of an aggregate option value.
type OptionMapEntry struct {
	Key   string
	Value OptionValue
}

func (v OptionValue) Kind() OptionValueKind { return v.kind }

func NewStringOptionValue(s string, pos SourceLocation) OptionValue {
	return OptionValue{kind: OptionValueString, Str: s, node: node{Pos: pos}}
}

func NewNumberOptionValue(n float64, pos SourceLocation) OptionValue {
	return OptionValue{kind: OptionValueNumber, Num: n, node: node{Pos: pos}}
}

// NewIdentifierOptionValue builds an Identifier-kind value. Boolean
// literals (`true`/`false`) and enum value names both use this
// constructor, per spec.md §3.
func NewIdentifierOptionValue(ident string, pos SourceLocation) OptionValue {
	return OptionValue{kind: OptionValueIdentifier, Str: ident, node: node{Pos: pos}}
}

func NewArrayOptionValue(values []OptionValue, pos SourceLocation) OptionValue {
	return OptionValue{kind: OptionValueArray, Array: values, node: node{Pos: pos}}
}

func NewMapOptionValue(entries []OptionMapEntry, pos SourceLocation) OptionValue {
	return OptionValue{kind: OptionValueMap, Map: entries, node: node{Pos: pos}}
}

// AsBool returns the boolean denoted by an Identifier("true"|"false")
// value. ok is false for any other shape.
func (v OptionValue) AsBool() (b, ok bool) {
	if v.kind != OptionValueIdentifier {
		return false, false
	}
	switch v.Str {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// PathPart is one dotted component of an option name
// (spec.md §3 "Option").
type PathPart struct {
	Name        string
	IsExtension bool
}

// Option models a single `option ...;` statement or inline `[...]`
// option entry (spec.md §3 "Option").
type Option struct {
	node

	Name       string
	PathParts  []PathPart
	Value      OptionValue
	IsCustom   bool
}

func NewOption(name string, parts []PathPart, value OptionValue, isCustom bool, pos SourceLocation) *Option {
	return &Option{
		node:      node{Pos: pos},
		Name:      name,
		PathParts: parts,
		Value:     value,
		IsCustom:  isCustom,
	}
}
