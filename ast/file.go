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

// ImportModifier is spec.md §3 "ImportNode" modifier: None | Public | Weak.
type ImportModifier int

const (
	ImportNone ImportModifier = iota
	ImportPublic
	ImportWeak
)

// ImportNode is spec.md §3 "ImportNode".
type ImportNode struct {
	node

	Path     string
	Modifier ImportModifier
}

// DefinitionKind discriminates the Definition sum stored in FileNode.Decls:
// declarations may be stored as a single ordered sequence split by kind,
// preserving source order for diagnostics. FileNode exposes both:
// per-kind slices for convenient access, and Decls, the single ordered
// sequence, for diagnostics and source-order-preserving tooling.
type DefinitionKind int

const (
	DefMessage DefinitionKind = iota
	DefEnum
	DefService
	DefExtend
)

// Definition is one entry of FileNode.Decls: a kind tag plus the
// concrete node, preserving declaration order across kinds.
type Definition struct {
	Kind    DefinitionKind
	Message *MessageNode
	Enum    *EnumNode
	Service *ServiceNode
	Extend  *ExtendNode
}

// FileNode is spec.md §3 "FileNode", the root of the AST produced by the
// parser for a single proto3 source file.
type FileNode struct {
	node

	Syntax   string // always "proto3" once validated; spec.md §3 invariant 1
	Package  *string
	Imports  []*ImportNode
	Options  []*Option
	Messages []*MessageNode
	Enums    []*EnumNode
	Services []*ServiceNode
	Extends  []*ExtendNode

	// Decls preserves the source-level interleaving of top-level
	// declarations across kinds, per spec.md §3.
	Decls []Definition

	FilePath string
}
