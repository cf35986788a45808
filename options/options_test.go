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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proto3lang/proto3c/ast"
	"github.com/proto3lang/proto3c/symtab"
)

func TestLookupKnownOption(t *testing.T) {
	shape, ok := Lookup(SiteFile, "java_package")
	require.True(t, ok)
	require.True(t, shape.Accepts(ast.NewStringOptionValue("com.example", ast.SourceLocation{})))
	require.False(t, shape.Accepts(ast.NewNumberOptionValue(1, ast.SourceLocation{})))
}

func TestLookupUnknownOption(t *testing.T) {
	_, ok := Lookup(SiteFile, "not_a_real_option")
	require.False(t, ok)
}

func TestCheckUnknownWellKnownOption(t *testing.T) {
	opt := ast.NewOption("bogus", nil, ast.NewStringOptionValue("x", ast.SourceLocation{}), false, ast.SourceLocation{})
	outcome := Check(SiteFile, opt, symtab.New(), nil, "")
	require.Equal(t, OutcomeUnknown, outcome)
}

func TestCheckBadShape(t *testing.T) {
	opt := ast.NewOption("deprecated", nil, ast.NewStringOptionValue("yes", ast.SourceLocation{}), false, ast.SourceLocation{})
	outcome := Check(SiteField, opt, symtab.New(), nil, "")
	require.Equal(t, OutcomeBadShape, outcome)
}

func TestCheckKnownOptionOK(t *testing.T) {
	opt := ast.NewOption("json_name", nil, ast.NewStringOptionValue("s", ast.SourceLocation{}), false, ast.SourceLocation{})
	outcome := Check(SiteField, opt, symtab.New(), nil, "")
	require.Equal(t, OutcomeOK, outcome)
}

func TestCheckTimeoutAcceptsNumberOrString(t *testing.T) {
	tbl := symtab.New()
	numOpt := ast.NewOption("timeout", nil, ast.NewNumberOptionValue(30, ast.SourceLocation{}), false, ast.SourceLocation{})
	require.Equal(t, OutcomeOK, Check(SiteMethod, numOpt, tbl, nil, ""))

	strOpt := ast.NewOption("timeout", nil, ast.NewStringOptionValue("30s", ast.SourceLocation{}), false, ast.SourceLocation{})
	require.Equal(t, OutcomeOK, Check(SiteMethod, strOpt, tbl, nil, ""))
}

func TestCheckOptimizeForRejectsOutsideClosedSet(t *testing.T) {
	tbl := symtab.New()
	bogus := ast.NewOption("optimize_for", nil, ast.NewIdentifierOptionValue("BOGUS", ast.SourceLocation{}), false, ast.SourceLocation{})
	require.Equal(t, OutcomeBadShape, Check(SiteFile, bogus, tbl, nil, ""))

	speed := ast.NewOption("optimize_for", nil, ast.NewIdentifierOptionValue("SPEED", ast.SourceLocation{}), false, ast.SourceLocation{})
	require.Equal(t, OutcomeOK, Check(SiteFile, speed, tbl, nil, ""))
}

func TestCheckIdempotencyLevelRejectsOutsideClosedSet(t *testing.T) {
	tbl := symtab.New()
	bogus := ast.NewOption("idempotency_level", nil, ast.NewIdentifierOptionValue("BOGUS", ast.SourceLocation{}), false, ast.SourceLocation{})
	require.Equal(t, OutcomeBadShape, Check(SiteMethod, bogus, tbl, nil, ""))

	ok := ast.NewOption("idempotency_level", nil, ast.NewIdentifierOptionValue("NO_SIDE_EFFECTS", ast.SourceLocation{}), false, ast.SourceLocation{})
	require.Equal(t, OutcomeOK, Check(SiteMethod, ok, tbl, nil, ""))
}

func TestCheckCustomOptionResolves(t *testing.T) {
	tbl := symtab.New()
	tbl.Add(&symtab.Symbol{FullName: "pkg.my_ext", Kind: symtab.KindExtension, ExtendedType: "pkg.FieldOptions"})
	opt := ast.NewOption("(pkg.my_ext)", []ast.PathPart{{Name: "pkg.my_ext", IsExtension: true}},
		ast.NewStringOptionValue("v", ast.SourceLocation{}), true, ast.SourceLocation{})
	outcome := Check(SiteField, opt, tbl, nil, "pkg")
	require.Equal(t, OutcomeOK, outcome)
}

func TestCheckCustomOptionUnresolvedStrictAtField(t *testing.T) {
	opt := ast.NewOption("(unknown.ext)", []ast.PathPart{{Name: "unknown.ext", IsExtension: true}},
		ast.NewStringOptionValue("v", ast.SourceLocation{}), true, ast.SourceLocation{})
	outcome := Check(SiteField, opt, symtab.New(), nil, "")
	require.Equal(t, OutcomeCustomUnresolved, outcome)
}

func TestCheckCustomOptionToleratedAtServiceAndMethod(t *testing.T) {
	opt := ast.NewOption("(unknown.ext)", []ast.PathPart{{Name: "unknown.ext", IsExtension: true}},
		ast.NewStringOptionValue("v", ast.SourceLocation{}), true, ast.SourceLocation{})
	require.Equal(t, OutcomeOK, Check(SiteService, opt, symtab.New(), nil, ""))
	require.Equal(t, OutcomeOK, Check(SiteMethod, opt, symtab.New(), nil, ""))
}

func TestCheckDuplicates(t *testing.T) {
	opts := []*ast.Option{
		ast.NewOption("deprecated", nil, ast.NewIdentifierOptionValue("true", ast.SourceLocation{}), false, ast.SourceLocation{}),
		ast.NewOption("packed", nil, ast.NewIdentifierOptionValue("true", ast.SourceLocation{}), false, ast.SourceLocation{}),
		ast.NewOption("deprecated", nil, ast.NewIdentifierOptionValue("false", ast.SourceLocation{}), false, ast.SourceLocation{}),
	}
	dups := CheckDuplicates(opts)
	require.Equal(t, []string{"deprecated"}, dups)
}

func TestSiteString(t *testing.T) {
	require.Equal(t, "file", SiteFile.String())
	require.Equal(t, "enum value", SiteEnumValue.String())
	require.Equal(t, "method", SiteMethod.String())
}
