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

package proto3c

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proto3lang/proto3c/protoerr"
	"github.com/proto3lang/proto3c/symtab"
)

// Scenario A -- minimal valid file.
func TestScenarioMinimalValidFile(t *testing.T) {
	result, err := ParseString(`syntax = "proto3"; message M { string s = 1; }`, "a.proto", DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.Equal(t, "proto3", result.File.Syntax)
	require.Len(t, result.File.Messages, 1)
	m := result.File.Messages[0]
	require.Equal(t, "M", m.Name)
	require.Len(t, m.Fields, 1)
	require.Equal(t, "s", m.Fields[0].Name)
	require.True(t, m.Fields[0].Type.IsScalar())
	require.Equal(t, int32(1), m.Fields[0].Number)
}

// Scenario B -- enum with alias.
func TestScenarioEnumWithAlias(t *testing.T) {
	src := `syntax = "proto3"; enum E { option allow_alias = true; U = 0; A = 1; B = 1; }`
	result, err := ParseString(src, "b.proto", DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.Len(t, result.File.Enums, 1)
	e := result.File.Enums[0]
	require.True(t, e.AllowAlias)
	require.Len(t, e.Values, 3)
}

// Scenario C -- field number in reserved range.
func TestScenarioReservedFieldNumberRange(t *testing.T) {
	src := `syntax = "proto3"; message M { string s = 19500; }`
	_, err := ParseString(src, "c.proto", DefaultConfig())
	require.Error(t, err)
}

// Scenario D -- map inside oneof must fail at parse time.
func TestScenarioMapInsideOneofRejected(t *testing.T) {
	src := `syntax = "proto3"; message M { oneof o { map<string, string> m = 1; } }`
	result, err := ParseString(src, "d.proto", DefaultConfig())
	require.Error(t, err)
	require.NotEmpty(t, result.Errors)
}

// Scenario E -- unresolved type.
func TestScenarioUnresolvedType(t *testing.T) {
	src := `syntax = "proto3"; message M { UndefinedType x = 1; }`
	result, err := ParseString(src, "e.proto", DefaultConfig())
	require.Error(t, err)
	require.NotEmpty(t, result.Errors)
	var found bool
	for _, e := range result.Errors {
		if pe, ok := e.Unwrap().(*protoerr.Error); ok && pe.Kind == protoerr.UndefinedType {
			found = true
			require.Equal(t, "UndefinedType", pe.Name)
			require.Equal(t, "M", pe.ReferencedIn)
		}
	}
	require.True(t, found, "expected an UndefinedType error, got %v", result.Errors)
}

// Scenario F -- streaming RPC round-trip.
func TestScenarioStreamingRPC(t *testing.T) {
	src := `syntax = "proto3";
message Req {}
message Resp {}
service S { rpc Chat(stream Req) returns (stream Resp); }`
	result, err := ParseString(src, "f.proto", DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.Len(t, result.File.Services, 1)
	svc := result.File.Services[0]
	require.Len(t, svc.Rpcs, 1)
	rpc := svc.Rpcs[0]
	require.Equal(t, "Chat", rpc.Name)
	require.True(t, rpc.ClientStreaming)
	require.True(t, rpc.ServerStreaming)
}

// Scenario G -- duplicate package.
func TestScenarioDuplicatePackage(t *testing.T) {
	src := `syntax = "proto3"; package a; package b;`
	result, err := ParseString(src, "g.proto", DefaultConfig())
	require.Error(t, err)
	var found bool
	for _, e := range result.Errors {
		if pe, ok := e.Unwrap().(*protoerr.Error); ok && pe.Kind == protoerr.DuplicatePackageName {
			found = true
		}
	}
	require.True(t, found, "expected DuplicatePackageName, got %v", result.Errors)
}

func TestFieldNumberBoundaries(t *testing.T) {
	cases := []struct {
		number  string
		wantErr bool
	}{
		{"1", false},
		{"18999", false},
		{"19000", true},  // reserved range start
		{"19999", true},  // reserved range end
		{"20000", false},
		{"536870911", false}, // max
		{"536870912", true},  // out of range
		{"0", true},           // below min
	}
	for _, c := range cases {
		src := `syntax = "proto3"; message M { string s = ` + c.number + `; }`
		_, err := ParseString(src, "boundary.proto", DefaultConfig())
		if c.wantErr {
			require.Error(t, err, "number=%s", c.number)
		} else {
			require.NoError(t, err, "number=%s", c.number)
		}
	}
}

func TestNegativeFieldNumberRejected(t *testing.T) {
	src := `syntax = "proto3"; message M { string s = -1; }`
	_, err := ParseString(src, "neg.proto", DefaultConfig())
	require.Error(t, err)
}

func TestEmptyFileParsesWithoutDeclarations(t *testing.T) {
	result, err := ParseString("", "empty.proto", DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, result.File.Messages)
	require.Empty(t, result.File.Enums)
}

func TestWhitespaceOnlyFileParses(t *testing.T) {
	result, err := ParseString("   \n\t\n  ", "ws.proto", DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, result.File.Messages)
}

func TestSyntaxOnlyFileParses(t *testing.T) {
	result, err := ParseString(`syntax = "proto3";`, "syntax.proto", DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, "proto3", result.File.Syntax)
}

func TestMapKeyScalarPermittedAndForbidden(t *testing.T) {
	permitted := []string{"int32", "int64", "uint32", "uint64", "sint32", "sint64",
		"fixed32", "fixed64", "sfixed32", "sfixed64", "bool", "string"}
	for _, key := range permitted {
		src := `syntax = "proto3"; message M { map<` + key + `, string> f = 1; }`
		_, err := ParseString(src, "mapkey.proto", DefaultConfig())
		require.NoError(t, err, "key=%s", key)
	}
	forbidden := []string{"float", "double", "bytes"}
	for _, key := range forbidden {
		src := `syntax = "proto3"; message M { map<` + key + `, string> f = 1; }`
		_, err := ParseString(src, "mapkey.proto", DefaultConfig())
		require.Error(t, err, "key=%s", key)
	}
}

func TestMapKeyMessageTypeForbidden(t *testing.T) {
	src := `syntax = "proto3"; message Key {} message M { map<Key, string> f = 1; }`
	_, err := ParseString(src, "mapkeymsg.proto", DefaultConfig())
	require.Error(t, err)
}

func TestEnumAliasDisabledRejectsDuplicateValue(t *testing.T) {
	src := `syntax = "proto3"; enum E { U = 0; A = 1; B = 1; }`
	result, err := ParseString(src, "noalias.proto", DefaultConfig())
	require.Error(t, err)
	var found bool
	for _, e := range result.Errors {
		if pe, ok := e.Unwrap().(*protoerr.Error); ok && pe.Kind == protoerr.DuplicateEnumValue {
			found = true
		}
	}
	require.True(t, found, "expected DuplicateEnumValue, got %v", result.Errors)
}

func TestIdempotentReValidation(t *testing.T) {
	src := `syntax = "proto3"; message M { string s = 1; }`
	r1, err1 := ParseString(src, "idem.proto", DefaultConfig())
	require.NoError(t, err1)
	r2, err2 := ParseString(src, "idem.proto", DefaultConfig())
	require.NoError(t, err2)
	require.Equal(t, len(r1.Errors), len(r2.Errors))
	require.Equal(t, r1.File.Messages[0].Name, r2.File.Messages[0].Name)
}

func TestParseFileWithImportsResolvesCrossFileType(t *testing.T) {
	src := `syntax = "proto3"; message M { Imported x = 1; }`
	tmp := t.TempDir() + "/m.proto"
	require.NoError(t, os.WriteFile(tmp, []byte(src), 0o644))
	result, err := ParseFileWithImports(tmp, DefaultConfig(), map[string]symtab.Kind{"Imported": symtab.KindMessage})
	require.NoError(t, err)
	require.Empty(t, result.Errors)
}
