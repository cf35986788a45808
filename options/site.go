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

// Package options implements spec.md §4.4 "V7" (option validation): the
// closed table of well-known option names per declaration site and the
// shape each one's value must take, plus custom/extension option
// resolution through the symbol table.
package options

import "github.com/proto3lang/proto3c/ast"

// Site identifies where an option statement appears, since the set of
// well-known options differs by site (spec.md §4.4 "option-type table").
type Site int

const (
	SiteFile Site = iota
	SiteMessage
	SiteField
	SiteEnum
	SiteEnumValue
	SiteService
	SiteMethod
)

func (s Site) String() string {
	switch s {
	case SiteFile:
		return "file"
	case SiteMessage:
		return "message"
	case SiteField:
		return "field"
	case SiteEnum:
		return "enum"
	case SiteEnumValue:
		return "enum value"
	case SiteService:
		return "service"
	case SiteMethod:
		return "method"
	default:
		return "unknown"
	}
}

// Shape describes the set of OptionValueKinds a known option accepts,
// plus, for identifier-valued options restricted to a closed set of
// names (like "optimize_for"), the set of names permitted.
type Shape struct {
	Kinds []ast.OptionValueKind

	// Values, when non-empty, restricts an Identifier-kind value to one
	// of these names (spec.md §4.4 "V7": optimize_for, idempotency_level).
	Values []string
}

func stringShape() Shape { return Shape{Kinds: []ast.OptionValueKind{ast.OptionValueString}} }
func boolShape() Shape   { return Shape{Kinds: []ast.OptionValueKind{ast.OptionValueIdentifier}} }
func identShape() Shape  { return Shape{Kinds: []ast.OptionValueKind{ast.OptionValueIdentifier}} }

// enumIdentShape is identShape restricted to a closed set of
// identifier values.
func enumIdentShape(values ...string) Shape {
	return Shape{Kinds: []ast.OptionValueKind{ast.OptionValueIdentifier}, Values: values}
}

func numericOrStringShape() Shape {
	return Shape{Kinds: []ast.OptionValueKind{ast.OptionValueNumber, ast.OptionValueString}}
}

// Accepts reports whether value's kind (and, for a restricted
// identifier shape, its name) is one s permits.
func (s Shape) Accepts(value ast.OptionValue) bool {
	kindOK := false
	for _, k := range s.Kinds {
		if k == value.Kind() {
			kindOK = true
			break
		}
	}
	if !kindOK {
		return false
	}
	if len(s.Values) == 0 {
		return true
	}
	for _, v := range s.Values {
		if v == value.Str {
			return true
		}
	}
	return false
}

// knownOptions is the closed per-site table of well-known (non-custom)
// option names spec.md §4.4's "V7" pass validates against.
var knownOptions = map[Site]map[string]Shape{
	SiteFile: {
		"java_package":          stringShape(),
		"java_outer_classname":  stringShape(),
		"java_multiple_files":   boolShape(),
		"go_package":            stringShape(),
		"csharp_namespace":      stringShape(),
		"objc_class_prefix":     stringShape(),
		"php_namespace":         stringShape(),
		"php_metadata_namespace": stringShape(),
		"ruby_package":          stringShape(),
		"swift_prefix":          stringShape(),
		"optimize_for":          enumIdentShape("SPEED", "CODE_SIZE", "LITE_RUNTIME"),
		"cc_enable_arenas":      boolShape(),
		"deprecated":            boolShape(),
	},
	SiteMessage: {
		"deprecated":                     boolShape(),
		"no_standard_descriptor_accessor": boolShape(),
		"map_entry":                      boolShape(),
	},
	SiteField: {
		"deprecated": boolShape(),
		"packed":     boolShape(),
		"lazy":       boolShape(),
		"weak":       boolShape(),
		"json_name":  stringShape(),
	},
	SiteEnum: {
		"allow_alias": boolShape(),
		"deprecated":  boolShape(),
	},
	SiteEnumValue: {
		"deprecated": boolShape(),
	},
	SiteService: {
		"deprecated": boolShape(),
	},
	SiteMethod: {
		"deprecated":         boolShape(),
		"idempotency_level":  enumIdentShape("IDEMPOTENCY_UNKNOWN", "NO_SIDE_EFFECTS", "IDEMPOTENT"),
		// Open Question (spec.md §9): whether "timeout" accepts only a
		// numeric seconds count or also a duration string like "30s".
		// Decided: accept both (see DESIGN.md).
		"timeout": numericOrStringShape(),
	},
}

// Lookup returns the Shape a well-known option name is required to
// match at site, if name names one.
func Lookup(site Site, name string) (Shape, bool) {
	s, ok := knownOptions[site][name]
	return s, ok
}
