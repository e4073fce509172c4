package jet

import (
	"fmt"
	"strings"

	"go4.org/mem"
)

// Fixed cause messages reported for lexical errors.
const (
	msgCommentForbidden = "Comments are not permitted in JSON."
	msgEndOfString      = "Unexpected end of string."
	msgBadToken         = "Expected JSON object, array or literal."
	msgValueExpected    = "Value expected."
	msgBadNumber        = "Invalid number format."
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Integer              // number: integer with no fraction or exponent
	Number               // number with fraction and/or exponent
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
	EOF                  // end of input
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Integer: "integer",
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
	EOF:     "end of input",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Scanner reads lexical tokens from a source buffer.  Each call to Next
// advances the scanner to the next token, or reports an error.  The end of
// the input is reported as a zero-width EOF token, not an error, so that a
// caller can treat exhaustion of the input uniformly with other tokens.
type Scanner struct {
	src []byte
	cur int // read cursor, 0-based offset into src
	pos int // start offset of the current token
	tok Token
	err error

	// Apparent line and column offsets (line 0-based here; 1-based outside)
	pline, pcol int // at the start of the current token
	eline, ecol int // at the read cursor
}

// NewScanner constructs a lexical scanner that consumes the given source.
// The scanner does not modify or copy src, and the caller must not mutate
// it while the scanner is in use.
func NewScanner(src []byte) *Scanner { return &Scanner{src: src} }

// Next advances s to the next token of the input, or reports a *SyntaxError
// describing a lexical fault. Once the input is exhausted, Next succeeds and
// reports an EOF token on every subsequent call.
func (s *Scanner) Next() error {
	s.err = nil
	s.tok = Invalid

	// Discard whitespace.
	for s.cur < len(s.src) {
		ch := s.src[s.cur]
		if ch == '\n' {
			s.cur++
			s.eline++
			s.ecol = 0
		} else if ch == ' ' || ch == '\t' || ch == '\r' {
			s.cur++
			s.ecol++
		} else {
			break
		}
	}
	s.pos, s.pline, s.pcol = s.cur, s.eline, s.ecol

	if s.cur >= len(s.src) {
		s.tok = EOF
		return nil
	}

	ch := s.src[s.cur]

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		s.advance()
		s.tok = t
		return nil
	}

	// Handle string values.
	if ch == '"' {
		s.advance()
		return s.scanString()
	}

	// Handle numbers.
	if isNumStart(ch) {
		return s.scanNumber()
	}

	// A slash can only begin a comment, and comments are not part of the
	// grammar. Reject it eagerly so the message names the real problem
	// rather than a generic bad token.
	if ch == '/' {
		return s.fail(msgCommentForbidden)
	}

	// Handle constants: true, false, null
	var want mem.RO
	switch ch {
	case 't':
		s.tok = True
		want = mem.S("true")
	case 'f':
		s.tok = False
		want = mem.S("false")
	case 'n':
		s.tok = Null
		want = mem.S("null")
	default:
		return s.fail(msgBadToken)
	}
	s.scanName()
	if got := mem.B(s.text()); !got.Equal(want) {
		s.tok = Invalid
		return s.failAtToken(msgValueExpected)
	}
	return nil // OK, token is already set
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns the raw (undecoded) text of the current token. The returned
// slice aliases the source buffer and must not be modified.
func (s *Scanner) Text() []byte { return s.text() }

// Copy returns a copy of the raw text of the current token.
func (s *Scanner) Copy() []byte { return append([]byte(nil), s.text()...) }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.cur} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.eline + 1, Column: s.ecol},
	}
}

func (s *Scanner) text() []byte { return s.src[s.pos:s.cur] }

func (s *Scanner) advance() {
	s.cur++
	s.ecol++
}

// scanString consumes the body of a string whose opening quote has already
// been consumed. The scanner does not interpret escape sequences beyond
// noting that a quote preceded by a backslash does not close the string;
// decoding is the business of Unquote. Raw newlines are tolerated here so
// that positions stay accurate, even though they are not valid JSON.
func (s *Scanner) scanString() error {
	var esc bool
	for s.cur < len(s.src) {
		ch := s.src[s.cur]
		if ch == '\n' {
			s.cur++
			s.eline++
			s.ecol = 0
			esc = false
			continue
		}
		s.advance()
		if esc {
			esc = false
			continue
		}
		switch ch {
		case '\\':
			esc = true
		case '"':
			s.tok = String
			return nil
		}
	}
	return s.fail(msgEndOfString)
}

func (s *Scanner) scanNumber() error {
	if s.src[s.cur] == '-' {
		s.advance()
		// A leading sign requires at least one digit after it.
		if s.cur >= len(s.src) || !isDigit(s.src[s.cur]) {
			return s.fail(msgValueExpected)
		}
	}

	// Consume the integer part.
	s.digits()

	// Check for extra leading zeroes, which are disallowed by the JSON spec.
	// That is: 0.12 is OK, 01.2 is not.
	if hasExtraLeadingZeroes(s.text()) {
		return s.failAtToken(msgBadNumber)
	}

	// If a decimal point follows, consume a fractional part.
	var isFloat bool
	if s.cur < len(s.src) && s.src[s.cur] == '.' {
		s.advance()
		if s.digits() == 0 {
			return s.fail(msgBadNumber)
		}
		isFloat = true
	}

	// If an exponent follows, consume it. An exponent forces the Number
	// kind even without a decimal point (1e3 is a float).
	if s.cur < len(s.src) && (s.src[s.cur] == 'e' || s.src[s.cur] == 'E') {
		s.advance()
		if s.cur < len(s.src) && (s.src[s.cur] == '-' || s.src[s.cur] == '+') {
			s.advance()
		}
		if s.digits() == 0 {
			return s.fail(msgBadNumber)
		}
		isFloat = true
	}

	if isFloat {
		s.tok = Number
	} else {
		s.tok = Integer
	}
	return nil
}

// scanName consumes a run of lowercase letters.
func (s *Scanner) scanName() {
	for s.cur < len(s.src) && isNameByte(s.src[s.cur]) {
		s.advance()
	}
}

// digits consumes a run of decimal digits and reports how many were seen.
func (s *Scanner) digits() int {
	var n int
	for s.cur < len(s.src) && isDigit(s.src[s.cur]) {
		s.advance()
		n++
	}
	return n
}

// fail records and returns a syntax error at the current read position.
func (s *Scanner) fail(msg string) error {
	return s.setErr(&SyntaxError{
		Location: LineCol{Line: s.eline + 1, Column: s.ecol},
		Message:  msg,
	})
}

// failAtToken records and returns a syntax error at the start of the
// current token.
func (s *Scanner) failAtToken(msg string) error {
	return s.setErr(&SyntaxError{
		Location: LineCol{Line: s.pline + 1, Column: s.pcol},
		Message:  msg,
	})
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return ch >= 'a' && ch <= 'z' }

// hasExtraLeadingZeroes reports whether the representation of an integer in
// buf has redundant leading zeroes, disallowed by the JSON grammar.
//
// OK: 0, 0.1, -1.0, -0.1 are all OK.
// Bad: -01, 01.2, -01.0, 00.1.
func hasExtraLeadingZeroes(buf []byte) bool {
	if buf[0] == '-' {
		buf = buf[1:] // skip leading sign
	}
	if buf[0] == '0' {
		// A leading zero is OK if it's the only digit.
		return len(buf) > 1
	}
	return false
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}

// SyntaxError is the concrete type of all errors reported by the scanner
// and parser. Location identifies the offending token or byte.
type SyntaxError struct {
	Location LineCol
	Message  string
	Err      error // underlying cause, if any
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.Err }
