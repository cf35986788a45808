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

// Package ast defines the abstract syntax tree produced by the parser:
// the full data model of spec.md §3.
package ast

import "fmt"

// SourceLocation is a 1-based line/column position in source text.
type SourceLocation struct {
	Line   uint32
	Column uint32
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// IsZero reports whether l was never set (some nodes, like file-level
// synthesized syntax declarations, may lack a real position).
func (l SourceLocation) IsZero() bool { return l.Line == 0 && l.Column == 0 }

// Comment is a single leading or trailing `//` or `/* */` comment,
// recorded verbatim with the comment delimiters left in place.
type Comment struct {
	Text string
	Pos  SourceLocation
}

// node is embedded by every AST node to carry its position and comment
// fields. The parser does not fill the comment fields: LeadingComments
// stays empty and TrailingComment stays nil on every parsed node. It is
// immutable once constructed, per spec.md §3 "Lifecycle".
type node struct {
	Pos              SourceLocation
	LeadingComments  []Comment
	TrailingComment  *Comment
}

// Location returns the node's source position.
func (n node) Location() SourceLocation { return n.Pos }

// Leading returns the node's leading comments (spec.md §3: "optional
// leading comment list"); empty for nodes built by the parser.
func (n node) Leading() []Comment { return n.LeadingComments }

// Trailing returns the node's same-line trailing comment, if any
// (spec.md §3: "trailing comment"); nil for nodes built by the parser.
func (n node) Trailing() *Comment { return n.TrailingComment }

// Node is implemented by every AST node.
type Node interface {
	Location() SourceLocation
	Leading() []Comment
	Trailing() *Comment
}
