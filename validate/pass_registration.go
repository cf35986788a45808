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

package validate

import (
	"github.com/proto3lang/proto3c/protoerr"
	"github.com/proto3lang/proto3c/symtab"
)

// passRegistration is spec.md §4.4 "V3": populates st.Table with every
// message/enum/service/field/extension the file declares, reporting a
// DuplicateTypeName (top-level) or DuplicateNestedTypeName (nested) for
// each full name declared more than once.
func passRegistration(st *State) {
	collisions := symtab.Register(st.Table, st.File)
	for _, c := range collisions {
		kind := protoerr.DuplicateTypeName
		if c.Nested {
			kind = protoerr.DuplicateNestedTypeName
		}
		st.fail(&protoerr.Error{Kind: kind, Pos: c.Pos, HasPos: true, Name: c.FullName})
	}
}
