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

// passEnum is spec.md §4.4 "V4": every enum has a valid (uppercase-
// leading) name, at least one value, value names matching
// [A-Z][A-Z0-9_]* with no duplicates, and no duplicate value numbers
// unless allow_alias permits aliasing.
func passEnum(st *State) {
	st.walkEnums(func(v enumVisit) {
		e := v.Enum
		if !startsUppercase(e.Name) {
			st.fail(&protoerr.Error{Kind: protoerr.InvalidEnumName, Pos: e.Location(), HasPos: true, Name: e.Name})
		}
		if len(e.Values) == 0 {
			st.fail(&protoerr.Error{Kind: protoerr.EmptyEnum, Pos: e.Location(), HasPos: true, Name: e.Name})
			return
		}
		names := map[string]bool{}
		for _, val := range e.Values {
			if !isUpperSnakeCase(val.Name) {
				st.fail(&protoerr.Error{Kind: protoerr.InvalidEnumValueName, Pos: val.Location(), HasPos: true, Name: val.Name})
			}
			if names[val.Name] {
				st.fail(&protoerr.Error{Kind: protoerr.DuplicateElement, Pos: val.Location(), HasPos: true, Name: "enum value " + val.Name})
			}
			names[val.Name] = true
		}
		if !e.AllowAlias {
			seen := map[int32]bool{}
			for _, val := range e.Values {
				if seen[val.Number] {
					st.fail(&protoerr.Error{Kind: protoerr.DuplicateEnumValue, Pos: val.Location(), HasPos: true, Number: val.Number, Name: e.Name})
				}
				seen[val.Number] = true
			}
		}
	})
}

func startsUppercase(name string) bool {
	if name == "" {
		return false
	}
	return name[0] >= 'A' && name[0] <= 'Z'
}

// isUpperSnakeCase reports whether name matches [A-Z][A-Z0-9_]*
// (spec.md §4.4 "V4(c)": enum value names are all-uppercase).
func isUpperSnakeCase(name string) bool {
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') && c != '_' {
			return false
		}
	}
	return true
}
