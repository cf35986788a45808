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

package proto3c

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver turns an import path, as written in a `import "...";`
// statement, into that file's source bytes. Resolving imports to
// actual file content -- and feeding the result to ParseFileWithImports
// -- is ambient, out-of-core plumbing (spec.md §1): the parser and
// validator never touch the filesystem or a module cache themselves.
type Resolver interface {
	Resolve(importPath string) ([]byte, error)
}

// MapResolver resolves import paths from an in-memory map, useful for
// tests and for embedding a fixed set of .proto files into a binary.
type MapResolver map[string][]byte

func (m MapResolver) Resolve(importPath string) ([]byte, error) {
	src, ok := m[importPath]
	if !ok {
		return nil, fmt.Errorf("proto3c: no source registered for import %q", importPath)
	}
	return src, nil
}

// DirResolver resolves import paths relative to a base directory on
// disk, the common case for a CLI invocation.
type DirResolver struct {
	Base string
}

func (d DirResolver) Resolve(importPath string) ([]byte, error) {
	full := filepath.Join(d.Base, importPath)
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("proto3c: resolving import %q: %w", importPath, err)
	}
	return data, nil
}
