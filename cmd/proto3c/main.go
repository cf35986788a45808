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

// Command proto3c parses and validates a single proto3 source file,
// printing any diagnostics (to stderr, or to stdout as JSON with --json)
// and exiting non-zero if the file is invalid.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/proto3lang/proto3c"
)

func main() {
	var maxErrors int
	var asJSON bool

	root := &cobra.Command{
		Use:   "proto3c <file.proto>",
		Short: "Parse and validate a single proto3 source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := proto3c.Config{MaxErrors: maxErrors, ContinueOnError: true}
			result, err := proto3c.ParseFile(args[0], cfg)
			if asJSON {
				printJSON(result)
			} else {
				printText(args[0], result)
			}
			if err != nil {
				os.Exit(1)
			}
			return nil
		},
	}
	root.Flags().IntVar(&maxErrors, "max-errors", 100, "stop accumulating diagnostics after this many errors (0 means unbounded)")
	root.Flags().BoolVar(&asJSON, "json", false, "print diagnostics as a JSON array instead of plain text")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printText(path string, result *proto3c.Result) {
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "%s: error: %s\n", path, e.Error())
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "%s: warning: %s\n", path, w.Error())
	}
	if len(result.Errors) == 0 {
		fmt.Printf("%s: OK\n", path)
	}
}

type diagnostic struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func printJSON(result *proto3c.Result) {
	diags := make([]diagnostic, 0, len(result.Errors)+len(result.Warnings))
	for _, e := range result.Errors {
		diags = append(diags, diagnostic{Severity: "error", Message: e.Error()})
	}
	for _, w := range result.Warnings {
		diags = append(diags, diagnostic{Severity: "warning", Message: w.Error()})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(diags)
}
