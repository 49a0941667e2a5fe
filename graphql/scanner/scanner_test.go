package scanner

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ccbrown/gql-check/graphql/token"
)

func TestScanner(t *testing.T) {
	s := New([]byte(`{ node(id: "foo") {}}`), ScanIgnored)
	var tokens []token.Token
	var literals []string
	for s.Scan() {
		tokens = append(tokens, s.Token())
		literals = append(literals, s.Literal())
	}
	assert.Equal(t, []token.Token{
		token.PUNCTUATOR,
		token.WHITE_SPACE,
		token.NAME,
		token.PUNCTUATOR,
		token.NAME,
		token.PUNCTUATOR,
		token.WHITE_SPACE,
		token.STRING_VALUE,
		token.PUNCTUATOR,
		token.WHITE_SPACE,
		token.PUNCTUATOR,
		token.PUNCTUATOR,
		token.PUNCTUATOR,
	}, tokens)
	assert.Equal(t, []string{"{", " ", "node", "(", "id", ":", " ", `"foo"`, ")", " ", "{", "}", "}"}, literals)
	assert.Empty(t, s.Errors())
}

func TestScanner_IllegalCharacter(t *testing.T) {
	s := New([]byte(`{😃}`), 0)
	var tokens []token.Token
	var literals []string
	for s.Scan() {
		tokens = append(tokens, s.Token())
		literals = append(literals, s.Literal())
	}
	assert.Equal(t, []token.Token{token.PUNCTUATOR, token.PUNCTUATOR}, tokens)
	assert.Equal(t, []string{"{", "}"}, literals)
	assert.Len(t, s.Errors(), 1)
}

func TestScanner_Strings(t *testing.T) {
	for src, value := range map[string]string{
		`"simple"`:                                  `simple`,
		`" white space "`:                           ` white space `,
		`"quote \""`:                                `quote "`,
		`"escaped \n\r\b\t\f"`:                      "escaped \n\r\b\t\f",
		`"slashes \\ \/"`:                           `slashes \ /`,
		`"unicode \u1234\u5678\u90AB\uCDEF"`:        "unicode \u1234\u5678\u90AB\uCDEF",
		`"variable width \u{1F600}"`:               "variable width \U0001F600",
		`"surrogate pair \uD83D\uDE00"`:            "surrogate pair \U0001F600",
		`"""simple"""`:                              `simple`,
		`""" white space """`:                       ` white space `,
		`"""contains " quote"""`:                    `contains " quote`,
		`"""contains \""" triplequote"""`:           `contains """ triplequote`,
		`"""multi` + "\n" + `line"""`:               "multi\nline",
		`"""` + "multi\rline\r\nnormalized" + `"""`: "multi\nline\nnormalized",
		`"""unescaped \n\r\b\t\f\u1234"""`:          `unescaped \n\r\b\t\f\u1234`,
		`"""slashes \\ \/"""`:                       `slashes \\ \/`,
		`"""

          spans
            multiple
              lines

          """`: "spans\n  multiple\n    lines",
		`"""trailing triplequote \""""""`: `trailing triplequote """`,
	} {
		s := New([]byte(src), ScanIgnored)
		assert.True(t, s.Scan())
		assert.Equal(t, src, s.Literal())
		assert.Equal(t, value, s.StringValue())
		assert.False(t, s.Scan())
		assert.Empty(t, s.Errors())
	}
}

func TestScanner_Numbers(t *testing.T) {
	for src, tok := range map[string]token.Token{
		"4":         token.INT_VALUE,
		"-4":        token.INT_VALUE,
		"9":         token.INT_VALUE,
		"0":         token.INT_VALUE,
		"-0":        token.INT_VALUE,
		"4.123":     token.FLOAT_VALUE,
		"0.123":     token.FLOAT_VALUE,
		"123e4":     token.FLOAT_VALUE,
		"-123e-4":   token.FLOAT_VALUE,
		"-123e4567": token.FLOAT_VALUE,
	} {
		s := New([]byte(src), ScanIgnored)
		assert.True(t, s.Scan())
		assert.Equal(t, tok, s.Token(), src)
		assert.Equal(t, src, s.Literal())
		assert.False(t, s.Scan())
		assert.Empty(t, s.Errors())
	}
}

func TestScanner_Floats(t *testing.T) {
	for _, src := range []string{
		"4.123",
		"-4.123",
		"0.123",
		"123e4",
		"123E4",
		"123e-4",
		"123e+4",
		"-123E4",
		"-123e-4",
		"-123e+4",
		"-123e4567",
	} {
		s := New([]byte(src), ScanIgnored)
		assert.True(t, s.Scan())
		assert.Equal(t, src, s.Literal())
		assert.False(t, s.Scan())
		assert.Empty(t, s.Errors())
	}
}

func TestScanner_BadStrings(t *testing.T) {
	for _, src := range []string{
		`"unterminated`,
		"\"multi\nline\"",
		`"bad escape \x"`,
		`"short unicode \u12"`,
		`"lone surrogate \uD83D"`,
		`"escaped surrogate \u{D83D}"`,
		`"too big \u{110000}"`,
		`"empty \u{}"`,
		"\"control \x01\"",
		`"""unterminated block`,
	} {
		s := New([]byte(src), 0)
		for s.Scan() {
		}
		assert.NotEmpty(t, s.Errors(), src)
	}
}

func TestScanner_BadNumbers(t *testing.T) {
	for _, src := range []string{
		"00",
		"01",
		"1.",
		"1.e2",
		"1e",
		"1e+",
		"1.2.3",
		"0xF",
		"123abc",
		"-",
		"-a",
	} {
		s := New([]byte(src), 0)
		for s.Scan() {
		}
		assert.NotEmpty(t, s.Errors(), src)
	}
}

func TestScanner_TooManyErrors(t *testing.T) {
	s := New([]byte("??????????????????????????????"), 0)
	assert.False(t, s.Scan())
	assert.Len(t, s.Errors(), maxErrors)
}

func TestBlockStringValue(t *testing.T) {
	assert.Equal(t, "  a\nb", blockStringValue("  a\n    b"))
	assert.Equal(t, "a\n\nb", blockStringValue("\n  a\n \n  b\n  "))
	assert.Equal(t, "", blockStringValue("  \n \t "))
}

func TestScanner_BOM(t *testing.T) {
	s := New([]byte("\ufefffoo"), ScanIgnored)
	var tokens []token.Token
	for s.Scan() {
		tokens = append(tokens, s.Token())
	}
	assert.Equal(t, []token.Token{token.UNICODE_BOM, token.NAME}, tokens)
	assert.Empty(t, s.Errors())

	s = New([]byte("foo\ufeff"), ScanIgnored)
	for s.Scan() {
	}
	assert.Len(t, s.Errors(), 1)
}

func TestScanner_SkipsIgnored(t *testing.T) {
	s := New([]byte("{\n node {\n  #foo\n },\n}"), 0)
	var tokens []token.Token
	var literals []string
	for s.Scan() {
		tokens = append(tokens, s.Token())
		literals = append(literals, s.Literal())
	}
	assert.Equal(t, []token.Token{
		token.PUNCTUATOR,
		token.NAME,
		token.PUNCTUATOR,
		token.PUNCTUATOR,
		token.PUNCTUATOR,
	}, tokens)
	assert.Equal(t, []string{"{", "node", "{", "}", "}"}, literals)
	assert.Empty(t, s.Errors())
}

func TestScanner_Positions(t *testing.T) {
	s := New([]byte("query {\r\n  node(id: \"é\") # c\n\t$x\r}"), 0)
	var positions []token.Position
	var literals []string
	for s.Scan() {
		positions = append(positions, s.Position())
		literals = append(literals, s.Literal())
	}
	assert.Equal(t, []string{"query", "{", "node", "(", "id", ":", `"é"`, ")", "$", "x", "}"}, literals)
	assert.Equal(t, []token.Position{
		{Line: 1, Column: 1},
		{Line: 1, Column: 7},
		{Line: 2, Column: 3},
		{Line: 2, Column: 7},
		{Line: 2, Column: 8},
		{Line: 2, Column: 10},
		{Line: 2, Column: 12},
		{Line: 2, Column: 15},
		{Line: 3, Column: 2},
		{Line: 3, Column: 3},
		{Line: 4, Column: 1},
	}, positions)
	assert.Empty(t, s.Errors())
}

func TestScanner_LongLine(t *testing.T) {
	const n = 1 << 18
	s := New([]byte("{ "+strings.Repeat(`"é" `, n)+"}"), 0)
	start := time.Now()
	count := 0
	var last token.Position
	for s.Scan() {
		count++
		last = s.Position()
	}
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, n+2, count)
	assert.Equal(t, token.Position{Line: 1, Column: 3 + 4*n}, last)
	assert.Empty(t, s.Errors())
}

func TestScanner_TrailingComment(t *testing.T) {
	s := New([]byte("{a} # trailing"), 0)
	n := 0
	for s.Scan() {
		n++
	}
	assert.Equal(t, 3, n)
	assert.Empty(t, s.Errors())
}

func TestScanner_ErrorLocation(t *testing.T) {
	s := New([]byte("{\n  a ?}"), 0)
	for s.Scan() {
	}
	if assert.Len(t, s.Errors(), 1) {
		assert.Equal(t, token.Position{Line: 2, Column: 5}, s.Errors()[0].Location)
	}
}
