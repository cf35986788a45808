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
	"github.com/proto3lang/proto3c/ast"
	"github.com/proto3lang/proto3c/options"
	"github.com/proto3lang/proto3c/protoerr"
)

// passOption is spec.md §4.4 "V7": every option statement, at every
// site (file, message, field, enum, enum value, service, method), is
// either a well-known option whose value matches the expected shape, or
// a custom/extension option that resolves through the symbol table.
func passOption(st *State) {
	st.checkOptions(options.SiteFile, st.File.Options, nil, "")

	st.walkMessages(func(v messageVisit) {
		st.checkOptions(options.SiteMessage, v.Message.Options, v.ScopeStack, v.FullName)
		for _, f := range v.Message.AllFields() {
			st.checkOptions(options.SiteField, f.Options, v.ScopeStack, v.FullName)
		}
	})
	st.walkEnums(func(v enumVisit) {
		st.checkOptions(options.SiteEnum, v.Enum.Options, nil, v.FullName)
		for _, val := range v.Enum.Values {
			st.checkOptions(options.SiteEnumValue, val.Options, nil, v.FullName)
		}
	})
	for _, svc := range st.File.Services {
		st.checkOptions(options.SiteService, svc.Options, nil, svc.Name)
		for _, rpc := range svc.Rpcs {
			st.checkOptions(options.SiteMethod, rpc.Options, nil, svc.Name+"."+rpc.Name)
		}
	}
}

func (st *State) checkOptions(site options.Site, opts []*ast.Option, scope []string, referencedIn string) {
	for _, name := range options.CheckDuplicates(opts) {
		st.fail(&protoerr.Error{Kind: protoerr.DuplicateOption, Name: name})
	}
	for _, o := range opts {
		switch options.Check(site, o, st.Table, scope, st.pkg) {
		case options.OutcomeUnknown:
			st.fail(&protoerr.Error{Kind: protoerr.UnknownOption, Pos: o.Location(), HasPos: true, Name: o.Name})
		case options.OutcomeBadShape:
			st.fail(&protoerr.Error{Kind: protoerr.InvalidOptionValue, Pos: o.Location(), HasPos: true, Msg: "option " + o.Name + " has an invalid value for " + site.String() + " options"})
		case options.OutcomeCustomUnresolved:
			st.fail(&protoerr.Error{Kind: protoerr.UnknownOption, Pos: o.Location(), HasPos: true, Name: o.Name, ReferencedIn: referencedIn})
		}
	}
}
