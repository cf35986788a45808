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

// RpcNode is spec.md §3 "RpcNode".
type RpcNode struct {
	node

	Name             string
	InputType        string
	OutputType       string
	ClientStreaming  bool
	ServerStreaming  bool
	Options          []*Option
}

// ServiceNode is spec.md §3 "ServiceNode".
type ServiceNode struct {
	node

	Name    string
	Rpcs    []*RpcNode
	Options []*Option
}

// ExtendNode is spec.md §3 "ExtendNode". Parent is a relation, not an
// ownership link (spec.md §9): an index into the enclosing MessageNode's
// Extends slice chain is not needed since the node already lives in its
// owner's Extends slice; Parent instead names the enclosing message by
// pointer for quick lookup, and is nil for a top-level extend.
type ExtendNode struct {
	node

	TypeName   string
	Fields     []*FieldNode
	IsTopLevel bool
	Parent     *MessageNode
}

// MessageIdentity returns a stable identity for the extend's enclosing
// message, or the empty string if IsTopLevel.
func (e *ExtendNode) MessageIdentity() string {
	if e.Parent == nil {
		return ""
	}
	return e.Parent.Name
}
