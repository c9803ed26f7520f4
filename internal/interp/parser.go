package interp

import "fmt"

type parser struct {
	toks []token
	pos  int
}

func parse(src string) ([]stmt, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var prog []stmt
	for p.peek().kind != tokEOF {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		prog = append(prog, s)
	}
	return prog, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, fmt.Errorf("line %d: expected %s, found %q", t.line, what, t.text)
	}
	return t, nil
}

func (p *parser) statement() (stmt, error) {
	t := p.peek()
	switch t.kind {
	case tokIdent:
		return p.assignment()
	case tokPrint:
		return p.printCall()
	case tokWhile:
		return p.whileLoop()
	case tokIf:
		return p.ifBranch()
	default:
		return nil, fmt.Errorf("line %d: expected statement, found %q", t.line, t.text)
	}
}

func (p *parser) assignment() (stmt, error) {
	name := p.next()
	if _, err := p.expect(tokAssign, `":="`); err != nil {
		return nil, err
	}
	// input() may only stand alone on the right side of an assignment;
	// anywhere else there would be no single point to suspend at.
	if p.peek().kind == tokInput {
		p.next()
		if _, err := p.expect(tokLParen, `"("`); err != nil {
			return nil, err
		}
		prompt, err := p.expect(tokString, "prompt string")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return &assignStmt{name: name.text, value: &inputExpr{prompt: prompt.text}}, nil
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &assignStmt{name: name.text, value: value}, nil
}

func (p *parser) printCall() (stmt, error) {
	p.next()
	if _, err := p.expect(tokLParen, `"("`); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, `")"`); err != nil {
		return nil, err
	}
	return &printStmt{value: value}, nil
}

func (p *parser) whileLoop() (stmt, error) {
	p.next()
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &whileStmt{cond: cond, body: body}, nil
}

func (p *parser) ifBranch() (stmt, error) {
	p.next()
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	s := &ifStmt{cond: cond, then: then}
	if p.peek().kind == tokElse {
		p.next()
		els, err := p.block()
		if err != nil {
			return nil, err
		}
		s.els = els
	}
	return s, nil
}

func (p *parser) block() ([]stmt, error) {
	if _, err := p.expect(tokLBrace, `"{"`); err != nil {
		return nil, err
	}
	var body []stmt
	for p.peek().kind != tokRBrace {
		if p.peek().kind == tokEOF {
			return nil, fmt.Errorf("line %d: unterminated block", p.peek().line)
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
	p.next()
	return body, nil
}

func (p *parser) expression() (expr, error) {
	return p.comparison()
}

func (p *parser) comparison() (expr, error) {
	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		switch t.kind {
		case tokEq, tokNe, tokLt, tokLe, tokGt, tokGe:
			p.next()
			right, err := p.additive()
			if err != nil {
				return nil, err
			}
			left = &binaryExpr{op: t.text, l: left, r: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) additive() (expr, error) {
	left, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokPlus && t.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{op: t.text, l: left, r: right}
	}
}

func (p *parser) multiplicative() (expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokStar && t.kind != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{op: t.text, l: left, r: right}
	}
}

func (p *parser) unary() (expr, error) {
	t := p.peek()
	switch t.kind {
	case tokMinus:
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{op: "-", x: x}, nil
	case tokNot:
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{op: "not", x: x}, nil
	}
	return p.primary()
}

func (p *parser) primary() (expr, error) {
	t := p.next()
	switch t.kind {
	case tokInt:
		var v int64
		if _, err := fmt.Sscanf(t.text, "%d", &v); err != nil {
			return nil, fmt.Errorf("line %d: malformed number %q", t.line, t.text)
		}
		return &intLit{value: v}, nil
	case tokFloat:
		var v float64
		if _, err := fmt.Sscanf(t.text, "%g", &v); err != nil {
			return nil, fmt.Errorf("line %d: malformed number %q", t.line, t.text)
		}
		return &floatLit{value: v}, nil
	case tokString:
		return &stringLit{value: t.text}, nil
	case tokTrue:
		return &boolLit{value: true}, nil
	case tokFalse:
		return &boolLit{value: false}, nil
	case tokIdent:
		return &varRef{name: t.text}, nil
	case tokLParen:
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return inner, nil
	case tokInput:
		return nil, fmt.Errorf("line %d: input() is only allowed as the right side of an assignment", t.line)
	default:
		return nil, fmt.Errorf("line %d: expected expression, found %q", t.line, t.text)
	}
}
