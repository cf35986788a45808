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

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proto3lang/proto3c/reporter"
)

func TestParseSyntaxMustBeFirst(t *testing.T) {
	h := reporter.NewHandler(100, true)
	p := New([]byte(`message M {} syntax = "proto3";`), "t.proto", h)
	_, err := p.Parse()
	require.Error(t, err)
	require.NotEmpty(t, h.Errors())
}

func TestParseDuplicateSyntax(t *testing.T) {
	h := reporter.NewHandler(100, true)
	p := New([]byte(`syntax = "proto3"; syntax = "proto3";`), "t.proto", h)
	_, err := p.Parse()
	require.Error(t, err)
}

func TestParseInvalidSyntaxVersion(t *testing.T) {
	h := reporter.NewHandler(100, true)
	p := New([]byte(`syntax = "proto2";`), "t.proto", h)
	_, err := p.Parse()
	require.Error(t, err)
}

func TestParseMessageWithNestedMessageAndEnum(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3";
message Outer {
  message Inner { string s = 1; }
  enum Color { RED = 0; BLUE = 1; }
  Inner inner = 1;
  Color color = 2;
}`
	p := New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, f.Messages, 1)
	outer := f.Messages[0]
	require.Len(t, outer.Messages, 1)
	require.Equal(t, "Inner", outer.Messages[0].Name)
	require.Len(t, outer.Enums, 1)
	require.Equal(t, "Color", outer.Enums[0].Name)
	require.Len(t, outer.Fields, 2)
}

func TestParseOneofField(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; message M { oneof choice { string a = 1; int32 b = 2; } }`
	p := New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)
	m := f.Messages[0]
	require.Len(t, m.Oneofs, 1)
	require.Equal(t, "choice", m.Oneofs[0].Name)
	require.Len(t, m.Oneofs[0].Fields, 2)
	require.Equal(t, m.Oneofs[0].Fields[0].OneofParent, m.Oneofs[0].Fields[1].OneofParent)
}

func TestParseRepeatedField(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; message M { repeated string tags = 1; }`
	p := New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)
	require.True(t, f.Messages[0].Fields[0].IsRepeated)
}

func TestParseRequiredFieldRejected(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; message M { required string s = 1; }`
	p := New([]byte(src), "t.proto", h)
	_, err := p.Parse()
	require.Error(t, err)
}

func TestParseDuplicateFieldNumber(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; message M { string a = 1; string b = 1; }`
	p := New([]byte(src), "t.proto", h)
	_, err := p.Parse()
	require.Error(t, err)
}

func TestParseDuplicateFieldName(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; message M { string a = 1; int32 a = 2; }`
	p := New([]byte(src), "t.proto", h)
	_, err := p.Parse()
	require.Error(t, err)
}

func TestParseReservedNumberCollidesWithField(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; message M { reserved 1; string a = 1; }`
	p := New([]byte(src), "t.proto", h)
	_, err := p.Parse()
	require.Error(t, err)
}

func TestParseReservedNameCollidesWithField(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; message M { reserved "a"; string a = 1; }`
	p := New([]byte(src), "t.proto", h)
	_, err := p.Parse()
	require.Error(t, err)
}

func TestParseReservedRange(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; message M { reserved 2 to 5, 9; string a = 1; }`
	p := New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, f.Messages[0].Reserved[0].Ranges, 2)
}

func TestParseReservedMaxRange(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; message M { reserved 100 to max; string a = 1; }`
	p := New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)
	require.Equal(t, int32(536870911), f.Messages[0].Reserved[0].Ranges[0].End)
}

func TestParseExtensionsRejected(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; message M { extensions 100 to 200; }`
	p := New([]byte(src), "t.proto", h)
	_, err := p.Parse()
	require.Error(t, err)
}

func TestParseMapField(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; message M { map<string, int32> counts = 1; }`
	p := New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)
	field := f.Messages[0].Fields[0]
	require.True(t, field.Type.IsMap())
}

func TestParseExtend(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3";
message Opts {}
extend Opts { string label = 50001; }`
	p := New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, f.Extends, 1)
	require.Equal(t, "Opts", f.Extends[0].TypeName)
	require.True(t, f.Extends[0].IsTopLevel)
	require.Len(t, f.Extends[0].Fields, 1)
}

func TestParseEnumFirstValueMustBeZero(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; enum E { A = 1; }`
	p := New([]byte(src), "t.proto", h)
	_, err := p.Parse()
	require.Error(t, err)
}

func TestParseServiceWithMultipleRpcs(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3";
message Req {}
message Resp {}
service S {
  rpc Unary(Req) returns (Resp);
  rpc ClientStream(stream Req) returns (Resp);
  rpc ServerStream(Req) returns (stream Resp);
}`
	p := New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, f.Services[0].Rpcs, 3)
	require.True(t, f.Services[0].Rpcs[1].ClientStreaming)
	require.False(t, f.Services[0].Rpcs[1].ServerStreaming)
	require.True(t, f.Services[0].Rpcs[2].ServerStreaming)
	require.False(t, f.Services[0].Rpcs[2].ClientStreaming)
}

func TestParseImportWithModifier(t *testing.T) {
	h := reporter.NewHandler(100, true)
	src := `syntax = "proto3"; import public "other.proto";`
	p := New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, f.Imports, 1)
	require.Equal(t, "other.proto", f.Imports[0].Path)
}

func TestParseMaxErrorsStopsEarly(t *testing.T) {
	h := reporter.NewHandler(1, true)
	src := `syntax = "proto3"; message M { string a = 1; string a = 1; string a = 1; }`
	p := New([]byte(src), "t.proto", h)
	_, err := p.Parse()
	require.Error(t, err)
	require.LessOrEqual(t, len(h.Errors()), 1)
}
