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

// EnumValueNode is spec.md §3 "EnumValueNode".
type EnumValueNode struct {
	node

	Name    string
	Number  int32
	Options []*Option
}

// EnumNode is spec.md §3 "EnumNode". AllowAlias is derived from an
// `allow_alias = true` option and cached on the node (spec.md §3: "the
// allow_alias flag is derived... and cached").
type EnumNode struct {
	node

	Name       string
	Values     []*EnumValueNode
	Options    []*Option
	Reserved   []*ReservedNode
	AllowAlias bool
}
