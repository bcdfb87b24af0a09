// Package parser is a recursive-descent parser for the language's
// grammar. It consumes a source string directly — there is no separate
// token stream — and produces a Module[Unverified]. Parse is a pure
// function: no I/O, no global state.
package parser

import (
	"github.com/mira-lang/mira/internal/ast"
	"github.com/mira-lang/mira/internal/diagnostics"
	"github.com/mira-lang/mira/internal/typesystem"
)

// Parser holds the scanning position over a source string.
type Parser struct {
	src string
	pos int
}

// New creates a Parser over source.
func New(source string) *Parser {
	return &Parser{src: source}
}

// Parse parses a complete source string into an unverified module.
// Top-level parsing must consume all input modulo trailing whitespace;
// residual input after the last variable_def is a fatal parse error
// that reports the unconsumed prefix.
func Parse(source string) (ast.Module[ast.Unverified], error) {
	p := New(source)
	return p.ParseModule()
}

// ParseExpr parses a single standalone expr, consuming all of source
// modulo trailing whitespace. RunEnv uses this to evaluate an ad-hoc
// expression against an accumulated environment, outside of any
// variable_def.
func ParseExpr(source string) (*ast.Expr, error) {
	p := New(source)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if !p.eof() {
		return nil, diagnostics.NewParseError(
			"P-RESIDUE",
			"unconsumed input: "+p.src[p.pos:],
			p.pos,
		)
	}
	return expr, nil
}

// ParseModule implements `module := variable_def*`.
func (p *Parser) ParseModule() (ast.Module[ast.Unverified], error) {
	var vars []ast.NamedVariableDef[ast.Unverified]
	for {
		p.skipWhitespace()
		if p.eof() {
			break
		}
		if !p.peekLiteral("let") {
			break
		}
		name, def, err := p.parseVariableDef()
		if err != nil {
			return ast.Module[ast.Unverified]{}, err
		}
		vars = append(vars, ast.NamedVariableDef[ast.Unverified]{Name: name, Def: def})
	}
	p.skipWhitespace()
	if !p.eof() {
		return ast.Module[ast.Unverified]{}, diagnostics.NewParseError(
			"P-RESIDUE",
			"unconsumed input: "+p.src[p.pos:],
			p.pos,
		)
	}
	// ID is left zero-valued here: the parser is a pure function with no
	// source of entropy, so module identity is assigned by RunEnv at
	// registration time instead (see runenv.ParseAndAdd).
	return ast.Module[ast.Unverified]{Variables: vars}, nil
}

// parseVariableDef implements:
//
//	variable_def := "let" WS ("mut" WS)? name (":" variable_type)? "=" expr ";"?
//
// The binding is mutable when either the leading "mut" or a "mut" on the
// declared type is present.
func (p *Parser) parseVariableDef() (string, *ast.VariableDef[ast.Unverified], error) {
	if !p.consumeKeyword("let") {
		return "", nil, diagnostics.NewParseError("P-LET", "expected 'let'", p.pos)
	}
	mutable := p.consumeKeyword("mut")
	name, ok := p.parseName()
	if !ok {
		return "", nil, diagnostics.NewParseError("P-LET", "expected a variable name", p.pos)
	}

	vtype := typesystem.Unknown(mutable)
	if p.consumeLiteral(":") {
		declared, err := p.parseVariableType()
		if err != nil {
			return "", nil, err
		}
		vtype = typesystem.VariableType{Mutable: mutable || declared.Mutable, Info: declared.Info}
	}

	if !p.consumeLiteral("=") {
		return "", nil, diagnostics.NewParseError("P-LET", "expected '=' in variable definition", p.pos)
	}
	value, err := p.parseExpr()
	if err != nil {
		return "", nil, err
	}
	p.consumeLiteral(";")

	return name, &ast.VariableDef[ast.Unverified]{Value: value, VType: vtype}, nil
}
