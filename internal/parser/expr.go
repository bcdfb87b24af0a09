package parser

import (
	"github.com/mira-lang/mira/internal/ast"
	"github.com/mira-lang/mira/internal/diagnostics"
)

// parseExpr implements `expr := partial_expr (operand partial_expr)*`.
// Operands are left-associative with equal precedence — the flat fold
// is built here, not in the checker or evaluator.
func (p *Parser) parseExpr() (*ast.Expr, error) {
	first, err := p.parsePartialExpr()
	if err != nil {
		return nil, err
	}
	expr := &ast.Expr{Parts: []ast.PartialExpr{first}}
	for {
		op, ok := p.tryParseOperand()
		if !ok {
			break
		}
		next, err := p.parsePartialExpr()
		if err != nil {
			return nil, err
		}
		expr.Operands = append(expr.Operands, op)
		expr.Parts = append(expr.Parts, next)
	}
	return expr, nil
}

// tryParseOperand consumes one of "+", "-", "<" if present. It never
// partially consumes: on failure the position is unchanged.
func (p *Parser) tryParseOperand() (ast.Operand, bool) {
	save := p.pos
	p.skipWhitespace()
	switch p.peek() {
	case '+':
		p.advance()
		return ast.Plus, true
	case '-':
		p.advance()
		return ast.Minus, true
	case '<':
		p.advance()
		return ast.Lt, true
	}
	p.pos = save
	return 0, false
}

// parsePartialExpr implements `partial_expr`. Alternatives are tried in
// the fixed order if, lambda ("<"), tuple ("("), name (a func_call when
// followed by "(", otherwise a variable), then constant: once a
// keyword or leading character commits to a branch, failure inside that
// branch is a hard parse error rather than a fallback to the next
// alternative — a name that equals a keyword is only a parse error when
// the keyword branch consumes it.
func (p *Parser) parsePartialExpr() (ast.PartialExpr, error) {
	p.skipWhitespace()

	if p.consumeKeyword("if") {
		return p.parseIf()
	}
	if p.peek() == '<' {
		def, err := p.parseLambda()
		if err != nil {
			return nil, err
		}
		return ast.Lambda{Def: def}, nil
	}
	if p.peek() == '(' {
		return p.parseTuple()
	}
	if isNameStart(p.peek()) {
		name, _ := p.parseName()
		save := p.pos
		p.skipWhitespace()
		if p.peek() == '(' {
			return p.parseFunctionCall(name)
		}
		p.pos = save
		return ast.Variable{Expr: ast.VariableExpr{Name: name}}, nil
	}
	if p.peek() == '"' || isDigit(p.peek()) || (p.peek() == '-' && isDigit(p.peekAt(1))) {
		c, err := p.parseConstant()
		if err != nil {
			return nil, err
		}
		return ast.Variable{Expr: ast.VariableExpr{Constant: c}}, nil
	}
	return nil, diagnostics.NewParseError("P-EXPR", "expected an expression", p.pos)
}

// parseIf implements `if_expr := "if" expr expr ("else" expr)?`. The
// leading "if" keyword has already been consumed by the caller.
func (p *Parser) parseIf() (ast.If, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return ast.If{}, err
	}
	main, err := p.parseExpr()
	if err != nil {
		return ast.If{}, err
	}
	node := ast.If{Cond: *cond, Main: *main}
	if p.consumeKeyword("else") {
		elseExpr, err := p.parseExpr()
		if err != nil {
			return ast.If{}, err
		}
		node.Else = elseExpr
	}
	return node, nil
}

// parseFunctionCall implements `func_call := name "(" expr_list ")"`.
// name has already been consumed by the caller.
func (p *Parser) parseFunctionCall(name string) (ast.FunctionCall, error) {
	if !p.consumeLiteral("(") {
		return ast.FunctionCall{}, diagnostics.NewParseError("P-CALL", "expected '(' to open call arguments", p.pos)
	}
	params, err := p.parseExprList(')')
	if err != nil {
		return ast.FunctionCall{}, err
	}
	return ast.FunctionCall{Name: name, Params: params}, nil
}

// parseTuple implements `tuple_expr := "(" expr_list ")"`.
func (p *Parser) parseTuple() (ast.Tuple, error) {
	if !p.consumeLiteral("(") {
		return ast.Tuple{}, diagnostics.NewParseError("P-TUPLE", "expected '(' to open tuple", p.pos)
	}
	items, err := p.parseExprList(')')
	if err != nil {
		return ast.Tuple{}, err
	}
	return ast.Tuple{Items: items}, nil
}

// parseExprList parses a comma-separated list of expr up to and
// including the closing byte. The opening delimiter has already been
// consumed by the caller.
func (p *Parser) parseExprList(closeByte byte) ([]*ast.Expr, error) {
	var items []*ast.Expr
	p.skipWhitespace()
	if p.peek() == closeByte {
		p.advance()
		return items, nil
	}
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, e)
		p.skipWhitespace()
		if p.peek() == ',' {
			p.advance()
			continue
		}
		if p.peek() == closeByte {
			p.advance()
			break
		}
		return nil, diagnostics.NewParseError("P-LIST", "expected ',' or closing bracket", p.pos)
	}
	return items, nil
}
