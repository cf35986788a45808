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

// Package descriptor maps a validated AST (spec.md §3) onto the
// structural shape of google.golang.org/protobuf/types/descriptorpb.
// This is a pure in-memory mapping for tooling that wants a descriptor-
// shaped view of the parsed file (e.g. feeding protoreflect-based
// consumers); it performs no wire (de)serialization, which is out of
// scope (spec.md §1 Non-goals).
package descriptor

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/proto3lang/proto3c/ast"
)

// FromFile builds a FileDescriptorProto from f. f is assumed to have
// already passed validate.Validate; no further checking is performed
// here.
func FromFile(f *ast.FileNode) *descriptorpb.FileDescriptorProto {
	fd := &descriptorpb.FileDescriptorProto{
		Name:    proto.String(f.FilePath),
		Syntax:  proto.String("proto3"),
		Package: f.Package,
	}
	for _, imp := range f.Imports {
		fd.Dependency = append(fd.Dependency, imp.Path)
	}
	for _, m := range f.Messages {
		fd.MessageType = append(fd.MessageType, messageDescriptor(m))
	}
	for _, e := range f.Enums {
		fd.EnumType = append(fd.EnumType, enumDescriptor(e))
	}
	for _, s := range f.Services {
		fd.Service = append(fd.Service, serviceDescriptor(s))
	}
	for _, ext := range f.Extends {
		fd.Extension = append(fd.Extension, extendFields(ext)...)
	}
	return fd
}

func messageDescriptor(m *ast.MessageNode) *descriptorpb.DescriptorProto {
	d := &descriptorpb.DescriptorProto{Name: proto.String(m.Name)}
	for _, f := range m.Fields {
		d.Field = append(d.Field, fieldDescriptor(f))
	}
	for oi, o := range m.Oneofs {
		d.OneofDecl = append(d.OneofDecl, &descriptorpb.OneofDescriptorProto{Name: proto.String(o.Name)})
		for _, f := range o.Fields {
			fd := fieldDescriptor(f)
			fd.OneofIndex = proto.Int32(int32(oi))
			d.Field = append(d.Field, fd)
		}
	}
	for _, nested := range m.Messages {
		d.NestedType = append(d.NestedType, messageDescriptor(nested))
	}
	for _, e := range m.Enums {
		d.EnumType = append(d.EnumType, enumDescriptor(e))
	}
	for _, ext := range m.Extends {
		d.Extension = append(d.Extension, extendFields(ext)...)
	}
	for _, r := range m.Reserved {
		for _, rr := range r.Ranges {
			switch rr.Kind() {
			case ast.ReservedName:
				d.ReservedName = append(d.ReservedName, rr.Name)
			default:
				d.ReservedRange = append(d.ReservedRange, &descriptorpb.DescriptorProto_ReservedRange{
					Start: proto.Int32(rr.Start),
					End:   proto.Int32(rr.End + 1), // descriptorpb ranges are end-exclusive
				})
			}
		}
	}
	return d
}

func extendFields(ext *ast.ExtendNode) []*descriptorpb.FieldDescriptorProto {
	out := make([]*descriptorpb.FieldDescriptorProto, 0, len(ext.Fields))
	for _, f := range ext.Fields {
		fd := fieldDescriptor(f)
		fd.Extendee = proto.String(ext.TypeName)
		out = append(out, fd)
	}
	return out
}

func fieldDescriptor(f *ast.FieldNode) *descriptorpb.FieldDescriptorProto {
	fd := &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(f.Name),
		Number:   proto.Int32(f.Number),
		JsonName: proto.String(f.EffectiveJSONName()),
		Label:    proto.Enum(descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL),
	}
	if f.IsRepeated || f.Type.IsMap() {
		fd.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	}
	if f.InOneof() {
		fd.OneofIndex = proto.Int32(int32(f.OneofParent))
	}
	switch f.Type.RefKind() {
	case ast.TypeRefScalar:
		fd.Type = scalarFieldType(f.Type.Kind).Enum()
	case ast.TypeRefNamed:
		fd.TypeName = proto.String(f.Type.Name)
		// The concrete TYPE_MESSAGE/TYPE_ENUM distinction requires
		// resolving the reference through the symbol table, which this
		// purely-structural mapping does not have access to; callers
		// needing it should consult symtab.Table.LookupType directly.
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
	case ast.TypeRefMap:
		fd.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
		fd.TypeName = proto.String(f.Name + "Entry")
	}
	return fd
}

func scalarFieldType(t ast.ScalarType) descriptorpb.FieldDescriptorProto_Type {
	switch t {
	case ast.Double:
		return descriptorpb.FieldDescriptorProto_TYPE_DOUBLE
	case ast.Float:
		return descriptorpb.FieldDescriptorProto_TYPE_FLOAT
	case ast.Int32:
		return descriptorpb.FieldDescriptorProto_TYPE_INT32
	case ast.Int64:
		return descriptorpb.FieldDescriptorProto_TYPE_INT64
	case ast.UInt32:
		return descriptorpb.FieldDescriptorProto_TYPE_UINT32
	case ast.UInt64:
		return descriptorpb.FieldDescriptorProto_TYPE_UINT64
	case ast.SInt32:
		return descriptorpb.FieldDescriptorProto_TYPE_SINT32
	case ast.SInt64:
		return descriptorpb.FieldDescriptorProto_TYPE_SINT64
	case ast.Fixed32:
		return descriptorpb.FieldDescriptorProto_TYPE_FIXED32
	case ast.Fixed64:
		return descriptorpb.FieldDescriptorProto_TYPE_FIXED64
	case ast.SFixed32:
		return descriptorpb.FieldDescriptorProto_TYPE_SFIXED32
	case ast.SFixed64:
		return descriptorpb.FieldDescriptorProto_TYPE_SFIXED64
	case ast.Bool:
		return descriptorpb.FieldDescriptorProto_TYPE_BOOL
	case ast.String:
		return descriptorpb.FieldDescriptorProto_TYPE_STRING
	case ast.Bytes:
		return descriptorpb.FieldDescriptorProto_TYPE_BYTES
	default:
		return descriptorpb.FieldDescriptorProto_TYPE_STRING
	}
}

func enumDescriptor(e *ast.EnumNode) *descriptorpb.EnumDescriptorProto {
	ed := &descriptorpb.EnumDescriptorProto{Name: proto.String(e.Name)}
	for _, v := range e.Values {
		ed.Value = append(ed.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(v.Name),
			Number: proto.Int32(v.Number),
		})
	}
	return ed
}

func serviceDescriptor(s *ast.ServiceNode) *descriptorpb.ServiceDescriptorProto {
	sd := &descriptorpb.ServiceDescriptorProto{Name: proto.String(s.Name)}
	for _, rpc := range s.Rpcs {
		sd.Method = append(sd.Method, &descriptorpb.MethodDescriptorProto{
			Name:            proto.String(rpc.Name),
			InputType:       proto.String(rpc.InputType),
			OutputType:      proto.String(rpc.OutputType),
			ClientStreaming: proto.Bool(rpc.ClientStreaming),
			ServerStreaming: proto.Bool(rpc.ServerStreaming),
		})
	}
	return sd
}
