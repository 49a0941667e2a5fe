package scanner

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/ccbrown/gql-check/graphql/token"
)

// scanString scans a StringValue. Both quoted and block strings are supported.
//
// https://spec.graphql.org/October2021/#sec-String-Value
func (s *Scanner) scanString() token.Token {
	if s.peek() == '"' && s.peekAt(2) == '"' {
		s.next()
		s.next()
		s.next()
		return s.scanBlockString()
	}
	s.next()

	var b strings.Builder
	for {
		switch {
		case s.atEOF() || s.r == '\n' || s.r == '\r':
			s.errorf("unterminated string")
			s.tokValue = b.String()
			return token.STRING_VALUE
		case s.r == '"':
			s.next()
			s.tokValue = b.String()
			return token.STRING_VALUE
		case s.r == '\\':
			s.next()
			s.scanEscape(&b)
		case s.invalidUTF8():
			s.errorf("invalid utf-8 character in string")
			s.next()
		case !isSourceCharacter(s.r):
			s.errorf("illegal character %#U in string", s.r)
			s.next()
		default:
			b.WriteRune(s.next())
		}
		if len(s.errors) >= maxErrors {
			return token.INVALID
		}
	}
}

func (s *Scanner) scanEscape(b *strings.Builder) {
	switch r := s.r; r {
	case '"', '\\', '/':
		b.WriteRune(s.next())
	case 'b':
		s.next()
		b.WriteByte('\b')
	case 'f':
		s.next()
		b.WriteByte('\f')
	case 'n':
		s.next()
		b.WriteByte('\n')
	case 'r':
		s.next()
		b.WriteByte('\r')
	case 't':
		s.next()
		b.WriteByte('\t')
	case 'u':
		s.next()
		if r, ok := s.scanUnicodeEscape(); ok {
			b.WriteRune(r)
		}
	default:
		s.errorf("illegal escape sequence")
	}
}

// scanUnicodeEscape is invoked after "\u". It accepts the fixed width form, a surrogate pair of
// fixed width escapes, or the variable width form "\u{1F600}".
func (s *Scanner) scanUnicodeEscape() (rune, bool) {
	if s.r == '{' {
		s.next()
		var code rune
		digits := 0
		for s.r != '}' {
			v := hexValue(s.r)
			if v < 0 || code > 0x10ffff {
				s.errorf("illegal unicode escape sequence")
				return 0, false
			}
			code = code<<4 | v
			digits++
			s.next()
		}
		s.next()
		if digits == 0 || code > 0x10ffff || utf16.IsSurrogate(code) {
			s.errorf("illegal unicode escape sequence")
			return 0, false
		}
		return code, true
	}

	code, ok := s.scanHexDigits(4)
	if !ok {
		return 0, false
	}
	if !utf16.IsSurrogate(code) {
		return code, true
	}

	// a leading surrogate must be followed by an escaped trailing surrogate
	if s.r == '\\' && s.peek() == 'u' {
		s.next()
		s.next()
		trailing, ok := s.scanHexDigits(4)
		if !ok {
			return 0, false
		}
		if r := utf16.DecodeRune(code, trailing); r != unicode.ReplacementChar {
			return r, true
		}
	}
	s.errorf("illegal unicode escape sequence")
	return 0, false
}

func (s *Scanner) scanHexDigits(n int) (rune, bool) {
	var code rune
	for i := 0; i < n; i++ {
		v := hexValue(s.r)
		if v < 0 {
			s.errorf("illegal unicode escape sequence")
			return 0, false
		}
		code = code<<4 | v
		s.next()
	}
	return code, true
}

func hexValue(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return 10 + r - 'a'
	case r >= 'A' && r <= 'F':
		return 10 + r - 'A'
	}
	return -1
}

// scanBlockString is invoked after the opening triple quote. The only escape sequence in a block
// string is \""".
func (s *Scanner) scanBlockString() token.Token {
	var raw strings.Builder
	for {
		switch {
		case s.atEOF():
			s.errorf("unterminated string")
			s.tokValue = blockStringValue(raw.String())
			return token.STRING_VALUE
		case s.r == '"' && s.peek() == '"' && s.peekAt(2) == '"':
			s.next()
			s.next()
			s.next()
			s.tokValue = blockStringValue(raw.String())
			return token.STRING_VALUE
		case s.r == '\\' && s.peek() == '"' && s.peekAt(2) == '"' && s.peekAt(3) == '"':
			s.next()
			s.next()
			s.next()
			s.next()
			raw.WriteString(`"""`)
		case s.r == '\r':
			s.next()
			if s.r == '\n' {
				s.next()
			}
			raw.WriteByte('\n')
		case s.invalidUTF8():
			s.errorf("invalid utf-8 character in string")
			s.next()
		case !isSourceCharacter(s.r):
			s.errorf("illegal character %#U in string", s.r)
			s.next()
		default:
			raw.WriteRune(s.next())
		}
		if len(s.errors) >= maxErrors {
			return token.INVALID
		}
	}
}

func isBlank(line string) bool {
	return strings.Trim(line, " \t") == ""
}

// blockStringValue removes the common indentation and the leading and trailing blank lines from
// the raw value of a block string. Line terminators are already normalized to "\n".
//
// https://spec.graphql.org/October2021/#BlockStringValue()
func blockStringValue(raw string) string {
	lines := strings.Split(raw, "\n")

	commonIndent := -1
	for _, line := range lines[1:] {
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < len(line) && (commonIndent < 0 || indent < commonIndent) {
			commonIndent = indent
		}
	}
	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) < commonIndent {
				lines[i] = ""
			} else {
				lines[i] = lines[i][commonIndent:]
			}
		}
	}

	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
