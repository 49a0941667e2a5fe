package scanner

import "github.com/ccbrown/gql-check/graphql/token"

// scanNumber scans an IntValue or FloatValue.
//
// https://spec.graphql.org/October2021/#sec-Int-Value
func (s *Scanner) scanNumber() token.Token {
	tok := token.INT_VALUE

	if s.r == '-' {
		s.next()
		if !isDigit(s.r) {
			s.errorf("expected digit after '-'")
			return token.INVALID
		}
	}

	if s.next() == '0' {
		if isDigit(s.r) {
			s.errorf("unexpected digit after 0")
			s.skipDigits()
			return token.INVALID
		}
	} else {
		s.skipDigits()
	}

	if s.r == '.' {
		tok = token.FLOAT_VALUE
		s.next()
		if !s.expectDigits() {
			return token.INVALID
		}
	}

	if s.r == 'e' || s.r == 'E' {
		tok = token.FLOAT_VALUE
		s.next()
		if s.r == '+' || s.r == '-' {
			s.next()
		}
		if !s.expectDigits() {
			return token.INVALID
		}
	}

	// Numbers can't be immediately followed by a name or another dot. "1.2.3" and "0xF" are
	// errors rather than several tokens.
	if s.r == '.' || isNameStart(s.r) {
		s.errorf("invalid number, unexpected %#U", s.r)
		return token.INVALID
	}

	return tok
}

func (s *Scanner) skipDigits() {
	for isDigit(s.r) {
		s.next()
	}
}

func (s *Scanner) expectDigits() bool {
	if !isDigit(s.r) {
		if s.atEOF() {
			s.errorf("invalid number, expected digit")
		} else {
			s.errorf("invalid number, expected digit but got %#U", s.r)
		}
		return false
	}
	s.skipDigits()
	return true
}
