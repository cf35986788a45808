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
	"regexp"

	"github.com/proto3lang/proto3c/protoerr"
)

// packageRegexp is spec.md §3 invariant: package names match
// [a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*.
var packageRegexp = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)

// passPackage is spec.md §4.4 "V2": validates the package name's shape,
// if a package was declared. Duplicate-package detection already
// happened in the parser (spec.md §4.2).
func passPackage(st *State) {
	if st.File.Package == nil {
		return
	}
	name := *st.File.Package
	if !packageRegexp.MatchString(name) {
		st.fail(&protoerr.Error{Kind: protoerr.InvalidPackageName, Name: name})
	}
}
