package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/ccbrown/gql-check/graphql/token"
)

type Error struct {
	Message  string
	Location token.Position
}

func (err *Error) Error() string {
	return fmt.Sprintf("%v: %v", err.Location, err.Message)
}

// Mode controls which tokens are returned by Scan.
type Mode uint

const (
	// ScanIgnored causes white space, commas, comments, and other ignored tokens to be returned.
	ScanIgnored Mode = 1 << iota
)

// Scanner splits GraphQL source text into tokens. Errors don't stop the scan. Instead they are
// accumulated until there are too many of them.
type Scanner struct {
	src    []byte
	mode   Mode
	errors []*Error

	// offset of r, the rune being looked at
	offset int
	r      rune
	width  int

	line       int
	lineOffset int

	// column of colOffset, which is always on the current line
	colOffset int
	column    int

	tok         token.Token
	tokStart    int
	tokEnd      int
	tokPosition token.Position
	tokValue    string
}

const maxErrors = 10

func New(src []byte, mode Mode) *Scanner {
	s := &Scanner{
		src:  src,
		mode: mode,
		line: 1,
	}
	s.decode()
	return s
}

func (s *Scanner) Errors() []*Error {
	return s.errors
}

func (s *Scanner) errorf(format string, args ...interface{}) {
	s.errorAt(s.offset, format, args...)
}

func (s *Scanner) errorAt(offset int, format string, args ...interface{}) {
	s.errors = append(s.errors, &Error{
		Message:  fmt.Sprintf(format, args...),
		Location: s.position(offset),
	})
}

// position converts an offset on the current line to a line and column. Columns are counted
// forward from the last position computed so a long line is only counted once.
func (s *Scanner) position(offset int) token.Position {
	if offset < s.colOffset {
		s.colOffset, s.column = s.lineOffset, 0
	}
	s.column += utf8.RuneCount(s.src[s.colOffset:offset])
	s.colOffset = offset
	return token.Position{
		Line:   s.line,
		Column: s.column + 1,
	}
}

// decode loads the rune at the current offset. At the end of the source, r is -1.
func (s *Scanner) decode() {
	if s.offset >= len(s.src) {
		s.r, s.width = -1, 0
		return
	}
	s.r, s.width = utf8.DecodeRune(s.src[s.offset:])
}

func (s *Scanner) peekAt(n int) rune {
	offset := s.offset
	for i := 0; i < n; i++ {
		if offset >= len(s.src) {
			return -1
		}
		_, width := utf8.DecodeRune(s.src[offset:])
		offset += width
	}
	if offset >= len(s.src) {
		return -1
	}
	r, _ := utf8.DecodeRune(s.src[offset:])
	return r
}

func (s *Scanner) peek() rune {
	return s.peekAt(1)
}

// next advances past the current rune and returns it, keeping track of lines.
func (s *Scanner) next() rune {
	r := s.r
	s.offset += s.width
	s.decode()
	if r == '\n' || (r == '\r' && s.r != '\n') {
		s.line++
		s.lineOffset = s.offset
		s.colOffset, s.column = s.offset, 0
	}
	return r
}

func (s *Scanner) atEOF() bool {
	return s.offset >= len(s.src)
}

func (s *Scanner) done() bool {
	return len(s.errors) >= maxErrors || s.atEOF()
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameContinue(r rune) bool {
	return isNameStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSourceCharacter(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' || r >= 0x20
}

// invalidUTF8 is true if the current rune couldn't be decoded. An encoded U+FFFD is legal.
func (s *Scanner) invalidUTF8() bool {
	return s.r == utf8.RuneError && s.width == 1
}

// Scan advances to the next token. It returns false once the source is exhausted or too many errors
// have occurred.
func (s *Scanner) Scan() bool {
	for !s.done() {
		s.tokStart = s.offset
		s.tokPosition = s.position(s.offset)
		s.tok = s.scanToken()
		s.tokEnd = s.offset
		if s.tok == token.INVALID || (s.tok.IsIgnored() && s.mode&ScanIgnored == 0) {
			continue
		}
		return true
	}
	return false
}

func (s *Scanner) scanToken() token.Token {
	switch r := s.r; {
	case r == ' ' || r == '\t':
		for s.r == ' ' || s.r == '\t' {
			s.next()
		}
		return token.WHITE_SPACE
	case r == '\n' || r == '\r':
		s.next()
		if r == '\r' && s.r == '\n' {
			s.next()
		}
		return token.LINE_TERMINATOR
	case r == ',':
		s.next()
		return token.COMMA
	case r == '#':
		for !s.atEOF() && s.r != '\n' && s.r != '\r' {
			s.next()
		}
		return token.COMMENT
	case r == 0xfeff:
		s.next()
		if s.tokStart != 0 {
			s.errorAt(s.tokStart, "illegal byte order mark")
			return token.INVALID
		}
		return token.UNICODE_BOM
	case r == '.':
		if s.peek() == '.' && s.peekAt(2) == '.' {
			s.next()
			s.next()
			s.next()
			return token.PUNCTUATOR
		}
		s.errorf("illegal character %#U", r)
		s.next()
		return token.INVALID
	case isPunctuator(r):
		s.next()
		return token.PUNCTUATOR
	case r == '"':
		return s.scanString()
	case r == '-' || isDigit(r):
		return s.scanNumber()
	case isNameStart(r):
		for isNameContinue(s.r) {
			s.next()
		}
		return token.NAME
	case s.invalidUTF8():
		s.errorf("invalid utf-8 character")
	default:
		s.errorf("illegal character %#U", r)
	}
	s.next()
	return token.INVALID
}

func isPunctuator(r rune) bool {
	switch r {
	case '!', '$', '&', '(', ')', ':', '=', '@', '[', ']', '{', '|', '}':
		return true
	}
	return false
}

func (s *Scanner) Token() token.Token {
	return s.tok
}

// Position returns the location of the first character of the current token.
func (s *Scanner) Position() token.Position {
	return s.tokPosition
}

func (s *Scanner) Literal() string {
	return string(s.src[s.tokStart:s.tokEnd])
}

// StringValue returns the interpreted value of a string token, or the literal for any other token.
func (s *Scanner) StringValue() string {
	if s.tok == token.STRING_VALUE {
		return s.tokValue
	}
	return s.Literal()
}
