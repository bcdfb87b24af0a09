package parser

import (
	"strconv"

	"github.com/mira-lang/mira/internal/ast"
	"github.com/mira-lang/mira/internal/diagnostics"
)

// parseNumber recognizes `"-"? digits ("." digits)?`. The sign applies
// to the whole number; a fractional part upgrades the result from
// Integer to Float.
func (p *Parser) parseNumber() (ast.ConstantValue, error) {
	start := p.pos
	if p.peek() == '-' {
		p.advance()
	}
	if !isDigit(p.peek()) {
		p.pos = start
		return nil, diagnostics.NewParseError("P-NUM", "expected a digit", p.pos)
	}
	for isDigit(p.peek()) {
		p.advance()
	}
	isFloat := false
	if p.peek() == '.' && isDigit(p.peekAt(1)) {
		isFloat = true
		p.advance()
		for isDigit(p.peek()) {
			p.advance()
		}
	}
	text := p.src[start:p.pos]
	if isFloat {
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, diagnostics.NewParseError("P-NUM", "malformed float literal: "+text, start)
		}
		return ast.FloatConstant{Value: float32(v)}, nil
	}
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return nil, diagnostics.NewParseError("P-NUM", "malformed integer literal: "+text, start)
	}
	return ast.IntegerConstant{Value: int32(v)}, nil
}

// parseString recognizes `"\"" (non-quote)* "\""`. No escape sequences
// are supported.
func (p *Parser) parseString() (ast.ConstantValue, error) {
	if p.peek() != '"' {
		return nil, diagnostics.NewParseError("P-STR", "expected opening '\"'", p.pos)
	}
	p.advance()
	start := p.pos
	for {
		if p.eof() {
			return nil, diagnostics.NewParseError("P-STR", "unterminated string literal", start)
		}
		if p.peek() == '"' {
			break
		}
		p.advance()
	}
	text := p.src[start:p.pos]
	p.advance() // closing quote
	return ast.StringConstant{Value: text}, nil
}

// parseConstant tries a string literal, then a number literal.
func (p *Parser) parseConstant() (ast.ConstantValue, error) {
	p.skipWhitespace()
	if p.peek() == '"' {
		return p.parseString()
	}
	return p.parseNumber()
}
