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

package options

import (
	"github.com/proto3lang/proto3c/ast"
	"github.com/proto3lang/proto3c/symtab"
)

// Outcome is the result of checking a single Option against Site's
// known-option table.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeUnknown
	OutcomeBadShape
	OutcomeCustomUnresolved
	OutcomeDuplicate
)

// Check validates opt against the known-option table for site. Custom
// options (opt.IsCustom, i.e. a parenthesised extension name) are
// resolved through tbl instead of the static table: spec.md §9 makes
// file-option rejection of unknown names strict but leaves service-site
// rejection tolerant (unrecognized but syntactically valid extension
// options on a service are accepted without resolution, since service
// options are rarely registered locally). See DESIGN.md for the
// rationale.
func Check(site Site, opt *ast.Option, tbl *symtab.Table, scopeStack []string, pkg string) Outcome {
	if opt.IsCustom {
		if _, ok := tbl.ResolveOptionExtension(opt.PathParts[0].Name, scopeStack, pkg); ok {
			return OutcomeOK
		}
		if site == SiteService || site == SiteMethod {
			return OutcomeOK
		}
		return OutcomeCustomUnresolved
	}
	shape, known := Lookup(site, opt.Name)
	if !known {
		return OutcomeUnknown
	}
	if !shape.Accepts(opt.Value) {
		return OutcomeBadShape
	}
	return OutcomeOK
}

// CheckDuplicates returns the names that appear more than once in opts
// (spec.md §4.4 "DuplicateOption": a well-known or custom option set
// more than once on the same declaration).
func CheckDuplicates(opts []*ast.Option) []string {
	seen := make(map[string]int, len(opts))
	var dups []string
	for _, o := range opts {
		seen[o.Name]++
		if seen[o.Name] == 2 {
			dups = append(dups, o.Name)
		}
	}
	return dups
}
