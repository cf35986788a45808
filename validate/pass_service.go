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
	"strings"

	"github.com/proto3lang/proto3c/ast"
	"github.com/proto3lang/proto3c/protoerr"
	"github.com/proto3lang/proto3c/symtab"
)

// timeoutUnitSuffixes are the duration-string suffixes spec.md §4.4
// "V8(d)" accepts for the method "timeout" option when its value is a
// string (the numeric form, decided as an Open Question in spec.md §9,
// needs no suffix).
var timeoutUnitSuffixes = []string{"ns", "us", "ms", "s"}

func hasTimeoutUnitSuffix(s string) bool {
	for _, suf := range timeoutUnitSuffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// passService is spec.md §4.4 "V8": every service/rpc name is valid,
// and every rpc's input/output type resolves to a message (not an
// enum). Whether an empty service (zero rpcs) is acceptable was an
// Open Question (spec.md §9): decided to accept it, since a service
// with no methods yet is a common intermediate state in iterative API
// design and rejecting it would make the validator reject valid,
// if incomplete, schemas (see DESIGN.md).
func passService(st *State) {
	for _, svc := range st.File.Services {
		if !startsUppercase(svc.Name) {
			st.fail(&protoerr.Error{Kind: protoerr.InvalidServiceName, Pos: svc.Location(), HasPos: true, Name: svc.Name})
		}
		for _, rpc := range svc.Rpcs {
			if !startsUppercase(rpc.Name) {
				st.fail(&protoerr.Error{Kind: protoerr.InvalidRPCName, Pos: rpc.Location(), HasPos: true, Name: rpc.Name})
			}
			st.checkRPCTypeIsMessage(rpc.InputType, svc.Name, rpc)
			st.checkRPCTypeIsMessage(rpc.OutputType, svc.Name, rpc)
			st.checkRPCTimeoutOption(rpc)
		}
	}
}

// checkRPCTimeoutOption enforces that a string-valued "timeout" option
// ends in a unit suffix (spec.md §4.4 "V8(d)"); a numeric value needs
// none, since numeric seconds was the Open Question resolution in
// spec.md §9.
func (st *State) checkRPCTimeoutOption(rpc *ast.RpcNode) {
	for _, o := range rpc.Options {
		if o.Name != "timeout" || o.Value.Kind() != ast.OptionValueString {
			continue
		}
		if !hasTimeoutUnitSuffix(o.Value.Str) {
			st.fail(&protoerr.Error{Kind: protoerr.InvalidOptionValue, Pos: o.Location(), HasPos: true, Msg: "Invalid RPC option: timeout"})
		}
	}
}

// checkRPCTypeIsMessage re-resolves typeName (already confirmed to
// resolve to *some* symbol by passReference) and rejects it if that
// symbol is an enum rather than a message.
func (st *State) checkRPCTypeIsMessage(typeName, svcName string, rpc *ast.RpcNode) {
	sym, ok := st.Table.ResolveRelative(typeName, nil, st.pkg)
	if !ok || sym.Kind != symtab.KindMessage {
		if ok {
			st.fail(&protoerr.Error{Kind: protoerr.UndefinedType, Pos: rpc.Location(), HasPos: true, Name: typeName, ReferencedIn: svcName + "." + rpc.Name})
		}
	}
}
