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

// passDependency is spec.md §4.4 "V9": the last pass, run once every
// local and cross-file name has been resolved. It checks that every
// import actually has a non-empty path, which is the one import-level
// invariant the parser cannot check (spec.md §4.2 parses the string
// literal but does not know if it is a well-formed path) and the
// resolution passes above do not otherwise surface.
func passDependency(st *State) {
	for _, imp := range st.File.Imports {
		if imp.Path == "" {
			st.fail(&protoerr.Error{Kind: protoerr.InvalidImport, Pos: imp.Location(), HasPos: true, Name: imp.Path})
		}
	}
}
