package parser

import (
	"github.com/mira-lang/mira/internal/ast"
	"github.com/mira-lang/mira/internal/diagnostics"
)

// parseLambda implements:
//
//	lambda := "<" (name ":" variable_type)(* ",") ">"
//	          ("<" (("mut ")? name)(* ",") ">")?
//	          ":" variable_type "->" expr
//
// The leading "<" has already been confirmed present by the caller but
// not yet consumed.
func (p *Parser) parseLambda() (*ast.FunctionDef, error) {
	if !p.consumeLiteral("<") {
		return nil, diagnostics.NewParseError("P-LAMBDA", "expected '<' to open parameter list", p.pos)
	}

	var params []ast.Parameter
	p.skipWhitespace()
	if p.peek() != '>' {
		for {
			name, ok := p.parseName()
			if !ok {
				return nil, diagnostics.NewParseError("P-LAMBDA", "expected a parameter name", p.pos)
			}
			if !p.consumeLiteral(":") {
				return nil, diagnostics.NewParseError("P-LAMBDA", "expected ':' after parameter name", p.pos)
			}
			vtype, err := p.parseVariableType()
			if err != nil {
				return nil, err
			}
			params = append(params, ast.Parameter{Name: name, VType: vtype})
			p.skipWhitespace()
			if p.peek() == ',' {
				p.advance()
				continue
			}
			break
		}
	}
	if !p.consumeLiteral(">") {
		return nil, diagnostics.NewParseError("P-LAMBDA", "expected '>' to close parameter list", p.pos)
	}

	var closure []ast.ClosureCapture
	if p.peekLiteral("<") {
		p.consumeLiteral("<")
		p.skipWhitespace()
		if p.peek() != '>' {
			for {
				mutable := p.consumeKeyword("mut")
				name, ok := p.parseName()
				if !ok {
					return nil, diagnostics.NewParseError("P-LAMBDA", "expected a captured variable name", p.pos)
				}
				closure = append(closure, ast.ClosureCapture{Name: name, Mutable: mutable})
				p.skipWhitespace()
				if p.peek() == ',' {
					p.advance()
					continue
				}
				break
			}
		}
		if !p.consumeLiteral(">") {
			return nil, diagnostics.NewParseError("P-LAMBDA", "expected '>' to close capture list", p.pos)
		}
	}

	if !p.consumeLiteral(":") {
		return nil, diagnostics.NewParseError("P-LAMBDA", "expected ':' before return type", p.pos)
	}
	returnType, err := p.parseVariableType()
	if err != nil {
		return nil, err
	}
	if !p.consumeLiteral("->") {
		return nil, diagnostics.NewParseError("P-LAMBDA", "expected '->' before function body", p.pos)
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDef{
		Parameters: params,
		Closure:    closure,
		ReturnType: returnType,
		Body:       body,
	}, nil
}
