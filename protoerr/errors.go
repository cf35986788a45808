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

// Package protoerr implements spec.md §4.5: the single ParseError/
// ValidationError sum shared by the parser (structural errors) and the
// validator (semantic errors), so both report through the same Handler
// (spec.md §7 "Propagation policy") and render identically (spec.md §7
// "User-visible behaviour", spec.md §8 property 6: "two equal errors
// produce equal description strings").
package protoerr

import (
	"fmt"

	"github.com/proto3lang/proto3c/ast"
	"github.com/proto3lang/proto3c/reporter"
)

// Kind is the closed set of error variants from spec.md §4.5.
type Kind int

const (
	UnexpectedToken Kind = iota
	UnexpectedEndOfInput
	MissingRequiredElement
	DuplicateElement
	InvalidSyntax
	InvalidSyntaxVersion
	InvalidPackageName
	InvalidImport
	InvalidMessageName
	InvalidEnumName
	InvalidEnumValueName
	InvalidServiceName
	InvalidRPCName
	InvalidFieldName
	InvalidFieldNumber
	ReservedFieldNumber
	FieldNumberOutOfRange
	DuplicateFieldNumber
	DuplicateFieldName
	DuplicateMessageFieldNumber
	DuplicatePackageName
	InvalidMapKeyType
	FirstEnumValueNotZero
	EmptyEnum
	EmptyOneof
	DuplicateEnumValue
	DuplicateTypeName
	DuplicateNestedTypeName
	UndefinedType
	UnknownOption
	DuplicateOption
	InvalidOptionValue
	RepeatedMapField
	MissingEnumZeroValue
	Custom
	InternalError
)

var kindNames = map[Kind]string{
	UnexpectedToken:             "UnexpectedToken",
	UnexpectedEndOfInput:        "UnexpectedEndOfInput",
	MissingRequiredElement:      "MissingRequiredElement",
	DuplicateElement:            "DuplicateElement",
	InvalidSyntax:               "InvalidSyntax",
	InvalidSyntaxVersion:        "InvalidSyntaxVersion",
	InvalidPackageName:          "InvalidPackageName",
	InvalidImport:               "InvalidImport",
	InvalidMessageName:          "InvalidMessageName",
	InvalidEnumName:             "InvalidEnumName",
	InvalidEnumValueName:        "InvalidEnumValueName",
	InvalidServiceName:          "InvalidServiceName",
	InvalidRPCName:              "InvalidRPCName",
	InvalidFieldName:            "InvalidFieldName",
	InvalidFieldNumber:          "InvalidFieldNumber",
	ReservedFieldNumber:         "ReservedFieldNumber",
	FieldNumberOutOfRange:       "FieldNumberOutOfRange",
	DuplicateFieldNumber:        "DuplicateFieldNumber",
	DuplicateFieldName:          "DuplicateFieldName",
	DuplicateMessageFieldNumber: "DuplicateMessageFieldNumber",
	DuplicatePackageName:        "DuplicatePackageName",
	InvalidMapKeyType:           "InvalidMapKeyType",
	FirstEnumValueNotZero:       "FirstEnumValueNotZero",
	EmptyEnum:                   "EmptyEnum",
	EmptyOneof:                  "EmptyOneof",
	DuplicateEnumValue:          "DuplicateEnumValue",
	DuplicateTypeName:           "DuplicateTypeName",
	DuplicateNestedTypeName:     "DuplicateNestedTypeName",
	UndefinedType:               "UndefinedType",
	UnknownOption:               "UnknownOption",
	DuplicateOption:             "DuplicateOption",
	InvalidOptionValue:          "InvalidOptionValue",
	RepeatedMapField:            "RepeatedMapField",
	MissingEnumZeroValue:        "MissingEnumZeroValue",
	Custom:                      "Custom",
	InternalError:               "InternalError",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UnknownErrorKind"
}

// Error is the single error type implementing every variant in spec.md
// §4.5. Every variant carries a precise source location except
// UnexpectedEndOfInput and InternalError (per spec.md §4.5), reflected
// here by HasPos.
//
// Error renders as a pure function of its fields (spec.md §7, §8
// property 6): two Errors with equal fields produce an equal Error()
// string.
type Error struct {
	Kind Kind
	Pos  ast.SourceLocation
	HasPos bool

	// Found/Expected: UnexpectedToken, UnexpectedEndOfInput.
	Found, Expected string
	// Name: most name-bearing variants (MissingRequiredElement ...
	// DuplicateOption, ReferencedIn for UndefinedType).
	Name string
	// ReferencedIn: UndefinedType only -- the enclosing message/service name.
	ReferencedIn string
	// Number: field-number-bearing variants.
	Number int32
	// Msg: InvalidSyntax, InvalidFieldNumber, DuplicateFieldName,
	// DuplicateMessageFieldNumber, InvalidOptionValue, Custom, InternalError.
	Msg string
}

func (e *Error) Error() string {
	var body string
	switch e.Kind {
	case UnexpectedToken:
		body = fmt.Sprintf("unexpected token %s, expected %s", e.Found, e.Expected)
	case UnexpectedEndOfInput:
		body = fmt.Sprintf("unexpected end of input, expected %s", e.Expected)
	case MissingRequiredElement:
		body = fmt.Sprintf("missing required element: %s", e.Name)
	case DuplicateElement:
		body = fmt.Sprintf("duplicate element: %s", e.Name)
	case InvalidSyntax:
		body = e.Msg
	case InvalidSyntaxVersion:
		body = fmt.Sprintf("invalid syntax version: %q (expected \"proto3\")", e.Name)
	case InvalidPackageName:
		body = fmt.Sprintf("invalid package name: %q", e.Name)
	case InvalidImport:
		body = fmt.Sprintf("invalid import: %s", e.Name)
	case InvalidMessageName:
		body = fmt.Sprintf("invalid message name: %q", e.Name)
	case InvalidEnumName:
		body = fmt.Sprintf("invalid enum name: %q", e.Name)
	case InvalidEnumValueName:
		body = fmt.Sprintf("invalid enum value name: %q", e.Name)
	case InvalidServiceName:
		body = fmt.Sprintf("invalid service name: %q", e.Name)
	case InvalidRPCName:
		body = fmt.Sprintf("invalid rpc name: %q", e.Name)
	case InvalidFieldName:
		body = fmt.Sprintf("invalid field name: %q", e.Name)
	case InvalidFieldNumber:
		body = fmt.Sprintf("invalid field number %d: %s", e.Number, e.Msg)
	case ReservedFieldNumber:
		body = fmt.Sprintf("field number %d is in the reserved range [%d, %d]", e.Number, ast.ReservedRangeStart, ast.ReservedRangeEnd)
	case FieldNumberOutOfRange:
		body = fmt.Sprintf("field number %d is out of range [%d, %d]", e.Number, ast.MinFieldNumber, ast.MaxFieldNumber)
	case DuplicateFieldNumber:
		body = fmt.Sprintf("duplicate field number: %d", e.Number)
	case DuplicateFieldName:
		body = fmt.Sprintf("duplicate field name %q: %s", e.Name, e.Msg)
	case DuplicateMessageFieldNumber:
		body = fmt.Sprintf("duplicate field number %d in message: %s", e.Number, e.Msg)
	case DuplicatePackageName:
		body = fmt.Sprintf("duplicate package declaration: %q", e.Name)
	case InvalidMapKeyType:
		body = fmt.Sprintf("invalid map key type: %s", e.Name)
	case FirstEnumValueNotZero:
		body = fmt.Sprintf("first value of enum %q must have number 0", e.Name)
	case EmptyEnum:
		body = fmt.Sprintf("enum %q must have at least one value", e.Name)
	case EmptyOneof:
		body = fmt.Sprintf("oneof %q must have at least one field", e.Name)
	case DuplicateEnumValue:
		body = fmt.Sprintf("duplicate enum value number %d for %q", e.Number, e.Name)
	case DuplicateTypeName:
		body = fmt.Sprintf("duplicate type name: %q", e.Name)
	case DuplicateNestedTypeName:
		body = fmt.Sprintf("duplicate nested type name: %q", e.Name)
	case UndefinedType:
		body = fmt.Sprintf("undefined type %q referenced in %q", e.Name, e.ReferencedIn)
	case UnknownOption:
		body = fmt.Sprintf("unknown option: %q", e.Name)
	case DuplicateOption:
		body = fmt.Sprintf("option %q set more than once", e.Name)
	case InvalidOptionValue:
		body = e.Msg
	case RepeatedMapField:
		body = fmt.Sprintf("map field %q may not be repeated and may not appear in a oneof", e.Name)
	case MissingEnumZeroValue:
		body = fmt.Sprintf("enum %q is missing a value with number 0", e.Name)
	case Custom:
		body = e.Msg
	case InternalError:
		body = fmt.Sprintf("internal error: %s", e.Msg)
	default:
		body = "unknown error"
	}
	if e.HasPos {
		return fmt.Sprintf("%s: %s", e.Pos, body)
	}
	return body
}

// At builds an Error of the given kind at pos; callers then set the
// variant-specific fields directly.
func At(kind Kind, pos ast.SourceLocation) *Error {
	return &Error{Kind: kind, Pos: pos, HasPos: true}
}

// NoPos builds an Error of the given kind with no known position
// (only valid for UnexpectedEndOfInput and InternalError).
func NoPos(kind Kind) *Error {
	return &Error{Kind: kind}
}

// WithPos adapts e to reporter.ErrorWithPos so it can be handed to a
// reporter.Handler by the parser or validator.
func (e *Error) WithPos() reporter.ErrorWithPos {
	if !e.HasPos {
		return reporter.ErrorNoPos(e)
	}
	return reporter.Error(reporter.Position{Line: e.Pos.Line, Column: e.Pos.Column}, e)
}

// Report files e with h, returning h.HandleError's result.
func (e *Error) Report(h *reporter.Handler) error {
	return h.HandleError(e.WithPos())
}
