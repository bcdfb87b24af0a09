package parser

import (
	"github.com/mira-lang/mira/internal/diagnostics"
	"github.com/mira-lang/mira/internal/typesystem"
)

// parseType implements:
//
//	type := name
//	      | "<" type_list ">" ":" variable_type   (function)
//	      | "(" type_list ")"                     (tuple)
func (p *Parser) parseType() (typesystem.Type, error) {
	p.skipWhitespace()
	switch p.peek() {
	case '<':
		p.advance()
		params, err := p.parseTypeList('>')
		if err != nil {
			return nil, err
		}
		if !p.consumeLiteral(":") {
			return nil, diagnostics.NewParseError("P-TYPE", "expected ':' before function return type", p.pos)
		}
		ret, err := p.parseVariableType()
		if err != nil {
			return nil, err
		}
		paramTypes := make([]typesystem.VariableType, len(params))
		for i, t := range params {
			paramTypes[i] = typesystem.VariableType{Mutable: false, Info: t}
		}
		return typesystem.FunctionType{Func: typesystem.FuncType{Params: paramTypes, Return: ret}}, nil
	case '(':
		p.advance()
		items, err := p.parseTypeList(')')
		if err != nil {
			return nil, err
		}
		return typesystem.TupleType{Items: items}, nil
	default:
		name, ok := p.parseName()
		if !ok {
			return nil, diagnostics.NewParseError("P-TYPE", "expected a type", p.pos)
		}
		return typesystem.StructType{Name: name}, nil
	}
}

// parseTypeList parses a comma-separated list of `type` up to and
// including the closing byte.
func (p *Parser) parseTypeList(closeByte byte) ([]typesystem.Type, error) {
	var items []typesystem.Type
	p.skipWhitespace()
	if p.peek() == closeByte {
		p.advance()
		return items, nil
	}
	for {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		items = append(items, t)
		p.skipWhitespace()
		if p.peek() == ',' {
			p.advance()
			continue
		}
		if p.peek() == closeByte {
			p.advance()
			break
		}
		return nil, diagnostics.NewParseError("P-TYPE", "expected ',' or closing bracket in type list", p.pos)
	}
	return items, nil
}

// parseVariableType implements `variable_type := ("mut" WS)? type`.
func (p *Parser) parseVariableType() (typesystem.VariableType, error) {
	mutable := p.consumeKeyword("mut")
	t, err := p.parseType()
	if err != nil {
		return typesystem.VariableType{}, err
	}
	return typesystem.VariableType{Mutable: mutable, Info: t}, nil
}
