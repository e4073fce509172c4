package ast

import (
	"strconv"

	"github.com/jjfrost/jet"
)

// Fixed cause messages reported for structural errors.
const (
	msgValueExpected    = "Value expected."
	msgColonExpected    = "Colon expected."
	msgPropertyExpected = "Property expected."
	msgTrailingComma    = "Trailing comma"
	msgCommaOrBracket   = "Expected comma or closing bracket."
	msgCommaOrBrace     = "Expected comma or closing brace."
	msgBadNumber        = "Invalid number format."
	msgBadEscape        = "Invalid character escape in string."
	msgTooDeep          = "Maximum nesting depth exceeded."
	msgEndOfInput       = "End of input expected."
)

// defaultMaxDepth bounds container nesting so that hostile input cannot
// exhaust the goroutine stack through parser recursion.
const defaultMaxDepth = 1000

// A Parser is a recursive-descent parser that builds a Value tree from a
// source buffer. The parser pulls tokens from its scanner one at a time as
// recursion demands them; memory use is bounded by nesting depth, not by
// document size.
type Parser struct {
	sc       *jet.Scanner
	maxDepth int
}

// NewParser constructs a parser that consumes the given source.
func NewParser(src []byte) *Parser {
	return &Parser{sc: jet.NewScanner(src), maxDepth: defaultMaxDepth}
}

// SetMaxDepth sets the maximum permitted nesting depth of arrays and
// objects. Input nested more deeply fails with a syntax error rather than
// recursing without bound. Values less than 1 are ignored.
func (p *Parser) SetMaxDepth(n int) {
	if n >= 1 {
		p.maxDepth = n
	}
}

// Parse parses the source as a single JSON document and returns its value
// tree. Empty input (or input containing only whitespace) parses to Null.
// Any input remaining after one complete value is an error.
//
// On error Parse returns a nil Value and a *jet.SyntaxError locating the
// fault; no partially built tree is ever returned.
func (p *Parser) Parse() (Value, error) {
	if err := p.sc.Next(); err != nil {
		return nil, err
	}
	if p.sc.Token() == jet.EOF {
		return Null{}, nil
	}
	v, err := p.parseValue(1)
	if err != nil {
		return nil, err
	}
	if err := p.sc.Next(); err != nil {
		return nil, err
	}
	if p.sc.Token() != jet.EOF {
		return nil, p.errAtToken(msgEndOfInput)
	}
	return v, nil
}

// Parse parses src as a single JSON document. It is shorthand for
// NewParser(src).Parse.
func Parse(src []byte) (Value, error) { return NewParser(src).Parse() }

// parseValue converts the current token into a Value, delegating to
// parseObject or parseArray for containers.
func (p *Parser) parseValue(depth int) (Value, error) {
	if depth > p.maxDepth {
		return nil, p.errAtToken(msgTooDeep)
	}
	switch p.sc.Token() {
	case jet.LBrace:
		return p.parseObject(depth)
	case jet.LSquare:
		return p.parseArray(depth)
	case jet.Integer:
		v, err := strconv.ParseInt(string(p.sc.Text()), 10, 32)
		if err != nil {
			return nil, p.errWrap(msgBadNumber, err)
		}
		return Int(v), nil
	case jet.Number:
		v, err := strconv.ParseFloat(string(p.sc.Text()), 64)
		if err != nil {
			return nil, p.errWrap(msgBadNumber, err)
		}
		return Float(v), nil
	case jet.String:
		text, err := jet.Unquote(p.sc.Text())
		if err != nil {
			return nil, p.errWrap(msgBadEscape, err)
		}
		return String(text), nil
	case jet.True:
		return Bool(true), nil
	case jet.False:
		return Bool(false), nil
	case jet.Null:
		return Null{}, nil
	default: // EOF, RBrace, RSquare, Comma, Colon
		return nil, p.errAtToken(msgValueExpected)
	}
}

// parseArray consumes the elements of an array and its closing bracket.
// Precondition: the current token is LSquare.
func (p *Parser) parseArray(depth int) (Value, error) {
	arr := new(Array)
	var comma bool // a separator was seen and awaits a value
	var commaLoc jet.LineCol
	for {
		if err := p.sc.Next(); err != nil {
			return nil, err
		}
		switch p.sc.Token() {
		case jet.RSquare:
			if comma {
				return nil, &jet.SyntaxError{Location: commaLoc, Message: msgTrailingComma}
			}
			return arr, nil

		case jet.Comma:
			if comma || len(arr.Values) == 0 {
				return nil, p.errAtToken(msgValueExpected)
			}
			comma = true
			commaLoc = p.sc.Location().First

		case jet.EOF:
			if comma {
				return nil, p.errAtToken(msgValueExpected)
			}
			return nil, p.errAtToken(msgCommaOrBracket)

		default:
			if len(arr.Values) > 0 && !comma {
				return nil, p.errAtToken(msgCommaOrBracket)
			}
			v, err := p.parseValue(depth + 1)
			if err != nil {
				return nil, err
			}
			arr.Values = append(arr.Values, v)
			comma = false
		}
	}
}

// parseObject consumes the members of an object and its closing brace.
// Precondition: the current token is LBrace.
func (p *Parser) parseObject(depth int) (Value, error) {
	obj := new(Object)
	var comma bool
	var commaLoc jet.LineCol
	for {
		if err := p.sc.Next(); err != nil {
			return nil, err
		}
		switch p.sc.Token() {
		case jet.RBrace:
			if comma {
				return nil, &jet.SyntaxError{Location: commaLoc, Message: msgTrailingComma}
			}
			return obj, nil

		case jet.Comma:
			if comma || len(obj.Members) == 0 {
				return nil, p.errAtToken(msgPropertyExpected)
			}
			comma = true
			commaLoc = p.sc.Location().First

		case jet.String:
			if len(obj.Members) > 0 && !comma {
				return nil, p.errAtToken(msgCommaOrBrace)
			}
			key, err := jet.Unquote(p.sc.Text())
			if err != nil {
				return nil, p.errWrap(msgBadEscape, err)
			}
			if err := p.sc.Next(); err != nil {
				return nil, err
			}
			if p.sc.Token() != jet.Colon {
				return nil, p.errAtToken(msgColonExpected)
			}
			if err := p.sc.Next(); err != nil {
				return nil, err
			}
			v, err := p.parseValue(depth + 1)
			if err != nil {
				return nil, err
			}
			obj.Set(string(key), v) // a repeated key keeps the last value
			comma = false

		case jet.EOF:
			if comma {
				return nil, p.errAtToken(msgPropertyExpected)
			}
			return nil, p.errAtToken(msgCommaOrBrace)

		default:
			return nil, p.errAtToken(msgPropertyExpected)
		}
	}
}

// errAtToken returns a syntax error at the start of the current token.
func (p *Parser) errAtToken(msg string) error {
	return &jet.SyntaxError{Location: p.sc.Location().First, Message: msg}
}

// errWrap returns a syntax error at the current token wrapping an
// underlying cause, preserved for errors.Unwrap.
func (p *Parser) errWrap(msg string, err error) error {
	return &jet.SyntaxError{Location: p.sc.Location().First, Message: msg, Err: err}
}
