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

// passSyntax is spec.md §4.4 "V1": the file's syntax is always "proto3"
// by the time the parser hands it over (InvalidSyntaxVersion is
// reported at parse time for any other literal); this pass re-asserts
// the invariant so later passes can rely on it unconditionally.
func passSyntax(st *State) {
	if st.File.Syntax != "proto3" {
		st.fail(&protoerr.Error{Kind: protoerr.InvalidSyntax, HasPos: false, Msg: "file does not declare proto3 syntax"})
	}
}
