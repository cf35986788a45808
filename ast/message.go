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

// ReservedRangeKind discriminates the ReservedRange tagged variant.
type ReservedRangeKind int

const (
	ReservedSingle ReservedRangeKind = iota
	ReservedSpan
	ReservedName
)

// ReservedRange is spec.md §3:
//
//	ReservedRange = Single(n) | Range(start, end inclusive) | Name(s)
type ReservedRange struct {
	kind       ReservedRangeKind
	Start, End int32 // End inclusive; for Single, Start == End
	Name       string
	Pos        SourceLocation
}

func (r ReservedRange) Kind() ReservedRangeKind { return r.kind }

func NewReservedSingle(n int32, pos SourceLocation) ReservedRange {
	return ReservedRange{kind: ReservedSingle, Start: n, End: n, Pos: pos}
}

func NewReservedRange(start, end int32, pos SourceLocation) ReservedRange {
	return ReservedRange{kind: ReservedSpan, Start: start, End: end, Pos: pos}
}

func NewReservedName(name string, pos SourceLocation) ReservedRange {
	return ReservedRange{kind: ReservedName, Name: name, Pos: pos}
}

// Contains reports whether number n falls within a Single or Range
// reservation. It is meaningless for a Name reservation.
func (r ReservedRange) Contains(n int32) bool {
	return r.kind != ReservedName && n >= r.Start && n <= r.End
}

// ReservedNode is spec.md §3 "ReservedNode".
type ReservedNode struct {
	node
	Ranges []ReservedRange
}

// MinFieldNumber and MaxFieldNumber bound legal user-assigned field
// numbers (spec.md §3 invariant 2).
const (
	MinFieldNumber = 1
	MaxFieldNumber = 536870911

	ReservedRangeStart = 19000
	ReservedRangeEnd   = 19999
)

// MessageNode is spec.md §3 "MessageNode". Nested types are owned by
// their containing message.
type MessageNode struct {
	node

	Name     string
	Fields   []*FieldNode
	Oneofs   []*OneofNode
	Options  []*Option
	Reserved []*ReservedNode
	Messages []*MessageNode
	Enums    []*EnumNode
	Extends  []*ExtendNode
}

// AllFields returns every field directly owned by m, including those that
// are members of a oneof, in source order. This is the set over which
// field-number and field-name uniqueness (spec.md §3 invariants 2-3) is
// checked.
func (m *MessageNode) AllFields() []*FieldNode {
	fields := make([]*FieldNode, 0, len(m.Fields))
	fields = append(fields, m.Fields...)
	for _, o := range m.Oneofs {
		fields = append(fields, o.Fields...)
	}
	return fields
}
