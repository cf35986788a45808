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

import "github.com/proto3lang/proto3c/protoerr"

// passMessage is spec.md §4.4 "V5": every message has a valid
// (uppercase-leading) name, every oneof is non-empty, and every nested
// type namespace (messages and enums sharing one namespace per
// message) has no collisions -- the last of these is already reported
// by passRegistration as DuplicateNestedTypeName, since registration
// indexes messages and enums into the same Table.
func passMessage(st *State) {
	st.walkMessages(func(v messageVisit) {
		m := v.Message
		if !startsUppercase(m.Name) {
			st.fail(&protoerr.Error{Kind: protoerr.InvalidMessageName, Pos: m.Location(), HasPos: true, Name: m.Name})
		}
		for _, o := range m.Oneofs {
			if len(o.Fields) == 0 {
				st.fail(&protoerr.Error{Kind: protoerr.EmptyOneof, Pos: o.Location(), HasPos: true, Name: o.Name})
			}
		}
	})
}
