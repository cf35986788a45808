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

	"github.com/proto3lang/proto3c/ast"
	"github.com/proto3lang/proto3c/parser"
	"github.com/proto3lang/proto3c/reporter"
)

func mustParse(t *testing.T, src string) *ast.FileNode {
	t.Helper()
	h := reporter.NewHandler(100, true)
	p := parser.New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)
	return f
}

func TestRegisterMessagesFieldsAndNesting(t *testing.T) {
	f := mustParse(t, `syntax = "proto3";
package pkg;
message Outer {
  message Inner { string s = 1; }
  Inner inner = 1;
}`)
	tbl := New()
	collisions := Register(tbl, f)
	require.Empty(t, collisions)

	_, ok := tbl.LookupType("pkg.Outer")
	require.True(t, ok)
	_, ok = tbl.LookupType("pkg.Outer.Inner")
	require.True(t, ok)
	_, ok = tbl.Lookup("pkg.Outer.inner")
	require.True(t, ok)
}

func TestRegisterServiceSymbol(t *testing.T) {
	f := mustParse(t, `syntax = "proto3";
package pkg;
message Req {}
message Resp {}
service S { rpc Do(Req) returns (Resp); }`)
	tbl := New()
	Register(tbl, f)

	sym, ok := tbl.Lookup("pkg.S")
	require.True(t, ok)
	require.Equal(t, KindService, sym.Kind)
}

func TestRegisterDuplicateTopLevelNameIsCollision(t *testing.T) {
	f := mustParse(t, `syntax = "proto3"; message M {} enum M { Z = 0; }`)
	tbl := New()
	collisions := Register(tbl, f)
	require.Len(t, collisions, 1)
	require.Equal(t, "M", collisions[0].FullName)
	require.False(t, collisions[0].Nested)
}

func TestRegisterDuplicateNestedNameIsCollisionFlaggedNested(t *testing.T) {
	f := mustParse(t, `syntax = "proto3";
message Outer {
  message Dup {}
  enum Dup { Z = 0; }
}`)
	tbl := New()
	collisions := Register(tbl, f)
	require.Len(t, collisions, 1)
	require.True(t, collisions[0].Nested)
}

func TestRegisterExtendFieldsAreExtensionKind(t *testing.T) {
	f := mustParse(t, `syntax = "proto3";
package pkg;
message Opts {}
extend Opts { string label = 50001; }`)
	tbl := New()
	Register(tbl, f)

	exts := tbl.LookupExtensions("Opts")
	require.Len(t, exts, 1)
	require.Equal(t, KindExtension, exts[0].Kind)
	require.Equal(t, int32(50001), exts[0].FieldNumber)
}
