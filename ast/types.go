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

// ScalarType is one of the closed set of proto3 scalar field types
// (spec.md §3 "Scalar types").
type ScalarType string

const (
	Double   ScalarType = "double"
	Float    ScalarType = "float"
	Int32    ScalarType = "int32"
	Int64    ScalarType = "int64"
	UInt32   ScalarType = "uint32"
	UInt64   ScalarType = "uint64"
	SInt32   ScalarType = "sint32"
	SInt64   ScalarType = "sint64"
	Fixed32  ScalarType = "fixed32"
	Fixed64  ScalarType = "fixed64"
	SFixed32 ScalarType = "sfixed32"
	SFixed64 ScalarType = "sfixed64"
	Bool     ScalarType = "bool"
	String   ScalarType = "string"
	Bytes    ScalarType = "bytes"
)

// scalarTypes is the closed set from spec.md §3, used to recognize a bare
// identifier as a scalar type name rather than a message/enum reference.
var scalarTypes = map[string]ScalarType{
	string(Double): Double, string(Float): Float,
	string(Int32): Int32, string(Int64): Int64,
	string(UInt32): UInt32, string(UInt64): UInt64,
	string(SInt32): SInt32, string(SInt64): SInt64,
	string(Fixed32): Fixed32, string(Fixed64): Fixed64,
	string(SFixed32): SFixed32, string(SFixed64): SFixed64,
	string(Bool): Bool, string(String): String, string(Bytes): Bytes,
}

// LookupScalarType returns the ScalarType named by s, if any.
func LookupScalarType(s string) (ScalarType, bool) {
	t, ok := scalarTypes[s]
	return t, ok
}

// IsIntegral reports whether t is one of the integral scalar types
// permitted as a map key (spec.md §3: "Map key type MUST be one of the
// integral scalars or bool or string").
func (t ScalarType) IsIntegral() bool {
	switch t {
	case Int32, Int64, UInt32, UInt64, SInt32, SInt64, Fixed32, Fixed64, SFixed32, SFixed64:
		return true
	}
	return false
}

// IsValidMapKey reports whether t may be used as a map key type.
func (t ScalarType) IsValidMapKey() bool {
	return t.IsIntegral() || t == Bool || t == String
}

// TypeRefKind discriminates the TypeRef tagged variant.
type TypeRefKind int

const (
	TypeRefScalar TypeRefKind = iota
	TypeRefNamed
	TypeRefMap
)

// TypeRef is the tagged variant from spec.md §3:
//
//	TypeRef = Scalar(ScalarType) | Named(String) | Map(key: ScalarType, value: TypeRef)
//
// A Named reference is stored verbatim as written: it may be relative,
// dotted, or start with a leading '.' for an absolute reference.
type TypeRef struct {
	Kind ScalarType // TypeRefScalar: the type. TypeRefMap: the key type.
	Name string     // TypeRefNamed: the verbatim reference text.
	// MapValue is non-nil only for TypeRefMap. Its Kind must not itself be
	// TypeRefMap (spec.md §3 invariant: "Map value type MUST NOT itself be
	// a map"); the parser enforces this.
	MapValue *TypeRef

	kind TypeRefKind
}

// NewScalarTypeRef builds a TypeRef wrapping a scalar type.
func NewScalarTypeRef(t ScalarType) TypeRef {
	return TypeRef{kind: TypeRefScalar, Kind: t}
}

// NewNamedTypeRef builds a TypeRef referencing a message or enum by name,
// stored exactly as written in source.
func NewNamedTypeRef(name string) TypeRef {
	return TypeRef{kind: TypeRefNamed, Name: name}
}

// NewMapTypeRef builds a TypeRef for `map<key, value>`.
func NewMapTypeRef(key ScalarType, value TypeRef) TypeRef {
	v := value
	return TypeRef{kind: TypeRefMap, Kind: key, MapValue: &v}
}

// RefKind reports which branch of the tagged variant this TypeRef is.
func (t TypeRef) RefKind() TypeRefKind { return t.kind }

func (t TypeRef) IsScalar() bool { return t.kind == TypeRefScalar }
func (t TypeRef) IsNamed() bool  { return t.kind == TypeRefNamed }
func (t TypeRef) IsMap() bool    { return t.kind == TypeRefMap }

// String renders the type reference the way it would appear in source,
// for diagnostics.
func (t TypeRef) String() string {
	switch t.kind {
	case TypeRefScalar:
		return string(t.Kind)
	case TypeRefNamed:
		return t.Name
	case TypeRefMap:
		return "map<" + string(t.Kind) + ", " + t.MapValue.String() + ">"
	default:
		return "<invalid type>"
	}
}
