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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableAddAndLookup(t *testing.T) {
	tbl := New()
	ok := tbl.Add(&Symbol{FullName: "pkg.Foo", Kind: KindMessage})
	require.True(t, ok)
	sym, ok := tbl.Lookup("pkg.Foo")
	require.True(t, ok)
	require.Equal(t, KindMessage, sym.Kind)
}

func TestTableAddDuplicateFails(t *testing.T) {
	tbl := New()
	require.True(t, tbl.Add(&Symbol{FullName: "pkg.Foo", Kind: KindMessage}))
	require.False(t, tbl.Add(&Symbol{FullName: "pkg.Foo", Kind: KindEnum}))
}

func TestTableLookupTypeExcludesNonTypeKinds(t *testing.T) {
	tbl := New()
	tbl.Add(&Symbol{FullName: "pkg.Svc", Kind: KindService})
	_, ok := tbl.LookupType("pkg.Svc")
	require.False(t, ok)

	tbl.Add(&Symbol{FullName: "pkg.Msg", Kind: KindMessage})
	sym, ok := tbl.LookupType("pkg.Msg")
	require.True(t, ok)
	require.Equal(t, "pkg.Msg", sym.FullName)
}

func TestTableLookupExtensions(t *testing.T) {
	tbl := New()
	tbl.Add(&Symbol{FullName: "pkg.Opts.ext", Kind: KindExtension, ExtendedType: "pkg.Opts"})
	tbl.Add(&Symbol{FullName: "pkg.Opts.ext2", Kind: KindExtension, ExtendedType: "pkg.Opts"})
	exts := tbl.LookupExtensions("pkg.Opts")
	require.Len(t, exts, 2)
	require.Empty(t, tbl.LookupExtensions("pkg.Other"))
}

func TestTableClearResetsState(t *testing.T) {
	tbl := New()
	tbl.Add(&Symbol{FullName: "pkg.Foo", Kind: KindMessage})
	require.Equal(t, 1, tbl.Len())
	tbl.Clear()
	require.Equal(t, 0, tbl.Len())
	_, ok := tbl.Lookup("pkg.Foo")
	require.False(t, ok)
}

func TestResolveRelativeInnermostScopeWins(t *testing.T) {
	tbl := New()
	tbl.Add(&Symbol{FullName: "pkg.Outer.Inner", Kind: KindMessage})
	tbl.Add(&Symbol{FullName: "pkg.Inner", Kind: KindMessage})

	scope := []string{"pkg.Outer"}
	sym, ok := tbl.ResolveRelative("Inner", scope, "pkg")
	require.True(t, ok)
	require.Equal(t, "pkg.Outer.Inner", sym.FullName)
}

func TestResolveRelativeFallsBackToPackageScope(t *testing.T) {
	tbl := New()
	tbl.Add(&Symbol{FullName: "pkg.Top", Kind: KindMessage})

	sym, ok := tbl.ResolveRelative("Top", []string{"pkg.Outer"}, "pkg")
	require.True(t, ok)
	require.Equal(t, "pkg.Top", sym.FullName)
}

func TestResolveRelativeAbsoluteReference(t *testing.T) {
	tbl := New()
	tbl.Add(&Symbol{FullName: "pkg.Top", Kind: KindMessage})

	sym, ok := tbl.ResolveRelative(".pkg.Top", nil, "otherpkg")
	require.True(t, ok)
	require.Equal(t, "pkg.Top", sym.FullName)
}

func TestResolveRelativeUnresolvedReturnsFalse(t *testing.T) {
	tbl := New()
	_, ok := tbl.ResolveRelative("Missing", []string{"pkg.Outer"}, "pkg")
	require.False(t, ok)
}

func TestResolveOptionExtensionRestrictedToExtensionKind(t *testing.T) {
	tbl := New()
	tbl.Add(&Symbol{FullName: "pkg.not_an_ext", Kind: KindMessage})
	tbl.Add(&Symbol{FullName: "pkg.my_ext", Kind: KindExtension, ExtendedType: "pkg.Options"})

	_, ok := tbl.ResolveOptionExtension("not_an_ext", nil, "pkg")
	require.False(t, ok)

	sym, ok := tbl.ResolveOptionExtension("my_ext", nil, "pkg")
	require.True(t, ok)
	require.Equal(t, "pkg.my_ext", sym.FullName)
}

func TestHasField(t *testing.T) {
	tbl := New()
	tbl.Add(&Symbol{FullName: "pkg.M", Kind: KindMessage, Children: []string{"pkg.M.f"}})
	tbl.Add(&Symbol{FullName: "pkg.M.f", Kind: KindField})

	require.True(t, tbl.HasField("pkg.M", "f"))
	require.False(t, tbl.HasField("pkg.M", "g"))
	require.False(t, tbl.HasField("pkg.Missing", "f"))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "message", KindMessage.String())
	require.Equal(t, "enum", KindEnum.String())
	require.Equal(t, "service", KindService.String())
	require.Equal(t, "field", KindField.String())
	require.Equal(t, "extension", KindExtension.String())
}
