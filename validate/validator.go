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

import "github.com/proto3lang/proto3c/reporter"

// pass is one of the nine ordered validation stages (spec.md §4.4).
type pass func(*State)

// order is the fixed pass sequence: syntax, package, registration,
// enum, message, reference, option, service, dependency. Later passes
// assume earlier ones already ran -- e.g. the reference pass assumes
// registration has populated st.Table.
var order = []pass{
	passSyntax,
	passPackage,
	passRegistration,
	passEnum,
	passMessage,
	passReference,
	passOption,
	passService,
	passDependency,
}

// Validate runs every pass over st.File in order, stopping early if the
// handler has been told to stop (continueOnError=false, or maxErrors
// reached). It returns reporter.ErrInvalidSource if any pass reported
// an error, matching the parser's Parse contract.
func Validate(st *State) error {
	for _, p := range order {
		if st.Handler.Stopped() {
			break
		}
		p(st)
	}
	if len(st.Handler.Errors()) > 0 {
		return reporter.ErrInvalidSource
	}
	return nil
}
