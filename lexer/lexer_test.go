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

package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	l := New([]byte(src))
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == KindEOF {
			return toks
		}
	}
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	toks := lexAll(t, "message Foo { string bar = 1; }")
	require.Equal(t, KindKeyword, toks[0].Kind)
	require.Equal(t, KwMessage, toks[0].Keyword)
	require.Equal(t, KindIdentifier, toks[1].Kind)
	require.Equal(t, "Foo", toks[1].Ident)
	require.Equal(t, KindSymbol, toks[2].Kind)
	require.Equal(t, '{', toks[2].Sym)
	// "string" is a scalar type name, not a lexer keyword.
	require.Equal(t, KindIdentifier, toks[3].Kind)
	require.Equal(t, "string", toks[3].Ident)
}

func TestLexIntegerLiterals(t *testing.T) {
	cases := map[string]int64{
		"0":     0,
		"1":     1,
		"123":   123,
		"0x1F":  31,
		"0X1f":  31,
		"017":   15, // octal
		"19000": 19000,
	}
	for src, want := range cases {
		toks := lexAll(t, src)
		require.Equal(t, KindIntegerLiteral, toks[0].Kind, src)
		require.Equal(t, want, toks[0].Int, src)
	}
}

func TestLexFloatLiterals(t *testing.T) {
	toks := lexAll(t, "3.14")
	require.Equal(t, KindFloatLiteral, toks[0].Kind)
	require.InDelta(t, 3.14, toks[0].Float, 1e-9)

	toks = lexAll(t, "1e10")
	require.Equal(t, KindFloatLiteral, toks[0].Kind)
	require.InDelta(t, 1e10, toks[0].Float, 1)

	toks = lexAll(t, ".5")
	require.Equal(t, KindFloatLiteral, toks[0].Kind)
	require.InDelta(t, 0.5, toks[0].Float, 1e-9)
}

func TestLexStringLiteralEscapes(t *testing.T) {
	toks := lexAll(t, `"hello\nworld\t\x41"`)
	require.Equal(t, KindStringLiteral, toks[0].Kind)
	require.Equal(t, "hello\nworld\tA", toks[0].Str)
}

func TestLexUnterminatedStringFails(t *testing.T) {
	l := New([]byte(`"unterminated`))
	_, err := l.Next()
	require.Error(t, err)
}

func TestLexInvalidCharacterFails(t *testing.T) {
	l := New([]byte("message Foo { string s = 1; } $"))
	var lastErr error
	for {
		tok, err := l.Next()
		if err != nil {
			lastErr = err
			break
		}
		if tok.Kind == KindEOF {
			break
		}
	}
	require.Error(t, lastErr)
}

func TestLexPositionsAreOneBasedAndInSourceOrder(t *testing.T) {
	toks := lexAll(t, "message Foo {\n  string bar = 1;\n}")
	require.Equal(t, uint32(1), toks[0].Pos.Line)
	require.Equal(t, uint32(1), toks[0].Pos.Column)

	// "string" begins the second line, indented 2 columns.
	var strTok Token
	for _, tk := range toks {
		if tk.Kind == KindIdentifier && tk.Ident == "string" {
			strTok = tk
			break
		}
	}
	require.Equal(t, uint32(2), strTok.Pos.Line)
	require.Equal(t, uint32(3), strTok.Pos.Column)

	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1].Pos, toks[i].Pos
		require.True(t, cur.Line > prev.Line || (cur.Line == prev.Line && cur.Column >= prev.Column))
	}
}

func TestLexLineCommentAttachedAsLeading(t *testing.T) {
	toks := lexAll(t, "// a comment\nmessage Foo {}")
	require.Equal(t, KindKeyword, toks[0].Kind)
	require.Len(t, toks[0].Leading, 1)
	require.Equal(t, "// a comment", toks[0].Leading[0].Text)
}

func TestLexBlockComment(t *testing.T) {
	toks := lexAll(t, "/* block\ncomment */message Foo {}")
	require.Equal(t, KindKeyword, toks[0].Kind)
	require.Len(t, toks[0].Leading, 1)
}

func TestLexCRLFLineEndings(t *testing.T) {
	toks := lexAll(t, "message Foo {\r\n  string bar = 1;\r\n}")
	require.Equal(t, KindKeyword, toks[0].Kind)
	var closeBrace Token
	for _, tk := range toks {
		if tk.Kind == KindSymbol && tk.Sym == '}' {
			closeBrace = tk
		}
	}
	require.Equal(t, uint32(3), closeBrace.Pos.Line)
}
