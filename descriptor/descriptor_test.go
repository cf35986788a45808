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

package descriptor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/proto3lang/proto3c/parser"
	"github.com/proto3lang/proto3c/reporter"
)

func TestFromFileMapsMessagesFieldsAndEnums(t *testing.T) {
	src := `syntax = "proto3";
package pkg;
message M {
  string s = 1;
  repeated int32 nums = 2;
  Color c = 3;
}
enum Color { RED = 0; BLUE = 1; }`
	h := reporter.NewHandler(100, true)
	p := parser.New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)

	fd := FromFile(f)
	require.Equal(t, "proto3", fd.GetSyntax())
	require.Equal(t, "pkg", fd.GetPackage())
	require.Len(t, fd.MessageType, 1)
	require.Len(t, fd.EnumType, 1)

	m := fd.MessageType[0]
	require.Equal(t, "M", m.GetName())
	require.Len(t, m.Field, 3)
	require.Equal(t, descriptorpb.FieldDescriptorProto_LABEL_REPEATED, m.Field[1].GetLabel())

	enumField := m.Field[2]
	require.Equal(t, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, enumField.GetType())
	require.Equal(t, "Color", enumField.GetTypeName())
}

func TestFromFileMapsMapFieldAsMessageEntry(t *testing.T) {
	src := `syntax = "proto3"; message M { map<string, int32> counts = 1; }`
	h := reporter.NewHandler(100, true)
	p := parser.New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)

	fd := FromFile(f)
	field := fd.MessageType[0].Field[0]
	require.Equal(t, descriptorpb.FieldDescriptorProto_LABEL_REPEATED, field.GetLabel())
	require.Equal(t, "countsEntry", field.GetTypeName())
}

func TestFromFileMapsOneofFields(t *testing.T) {
	src := `syntax = "proto3"; message M { oneof choice { string a = 1; int32 b = 2; } }`
	h := reporter.NewHandler(100, true)
	p := parser.New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)

	fd := FromFile(f)
	m := fd.MessageType[0]
	require.Len(t, m.OneofDecl, 1)
	require.Equal(t, "choice", m.OneofDecl[0].GetName())
	for _, field := range m.Field {
		require.Equal(t, int32(0), field.GetOneofIndex())
	}
}

func TestFromFileMapsService(t *testing.T) {
	src := `syntax = "proto3";
message Req {}
message Resp {}
service S { rpc Chat(stream Req) returns (stream Resp); }`
	h := reporter.NewHandler(100, true)
	p := parser.New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)

	fd := FromFile(f)
	require.Len(t, fd.Service, 1)
	method := fd.Service[0].Method[0]
	require.Equal(t, "Chat", method.GetName())
	require.True(t, method.GetClientStreaming())
	require.True(t, method.GetServerStreaming())
}

func TestFromFileMapsReservedRangesAndNames(t *testing.T) {
	src := `syntax = "proto3"; message M { reserved 2 to 5; reserved "old_field"; string s = 1; }`
	h := reporter.NewHandler(100, true)
	p := parser.New([]byte(src), "t.proto", h)
	f, err := p.Parse()
	require.NoError(t, err)

	fd := FromFile(f)
	m := fd.MessageType[0]
	require.Len(t, m.ReservedRange, 1)
	require.Equal(t, int32(2), m.ReservedRange[0].GetStart())
	require.Equal(t, int32(6), m.ReservedRange[0].GetEnd())
	require.Equal(t, []string{"old_field"}, m.ReservedName)
}
