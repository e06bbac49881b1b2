// Package parse turns the text typed into the formula, variable and range
// fields into expression trees.
//
// The grammar is a conventional infix notation. From lowest to highest
// precedence:
//
//	:                      axis label prefix      x: -5..5
//	=                      assignment, equation   (right associative)
//	? :                    conditional
//	??                     coalesce
//	|| or
//	^^ xor
//	&& and
//	|
//	&
//	== !=
//	< > <= >= in clamp
//	.. ..-                 ranges
//	<< >>
//	+ -
//	* / % mod MOD P C
//	- + ! ~                unary
//	** ^                   power (right associative)
//
// A parenthesized list with more than one element is a tuple. Statements
// are separated by semicolons or newlines, // starts a comment and
// @attr prefixes attach attributes to the statement's expression.
package parse

import (
	"github.com/vdobler/graphcalc/expr"
)

var binaryLevels = [][]string{
	{"??"},
	{"||", "or"},
	{"^^", "xor"},
	{"&&", "and"},
	{"|"},
	{"&"},
	{"==", "!="},
	{"<", ">", "<=", ">=", "in", "clamp"},
	{"..", "..-"},
	{"<<", ">>"},
	{"+", "-"},
	{"*", "/", "%", "mod", "MOD", "P", "C"},
}

var precedence = map[string]int{}

func init() {
	for i, level := range binaryLevels {
		for _, o := range level {
			precedence[o] = i + 1
		}
	}
}

type parser struct {
	src  string
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != eof {
		p.i++
	}
	return t
}

func (p *parser) is(text string) bool {
	t := p.peek()
	return t.kind == op && t.text == text
}

func (p *parser) errorf(t token, msg string) error {
	return &Error{Src: p.src, Pos: t.pos, Msg: msg}
}

func (p *parser) expect(text string) error {
	if !p.is(text) {
		return p.errorf(p.peek(), "expected "+text)
	}
	p.next()
	return nil
}

// Statements parses src into a list of expressions, one per non-empty
// statement.
func Statements(src string) ([]expr.Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	var list []expr.Expr
	for {
		for p.peek().kind == sep {
			p.next()
		}
		if p.peek().kind == eof {
			return list, nil
		}
		e, err := p.statement()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
		if t := p.peek(); t.kind != sep && t.kind != eof {
			return nil, p.errorf(t, "unexpected "+t.text)
		}
	}
}

// Expr parses src which must contain exactly one statement.
func Expr(src string) (expr.Expr, error) {
	list, err := Statements(src)
	if err != nil {
		return nil, err
	}
	if len(list) != 1 {
		return nil, &Error{Src: src, Msg: "expected exactly one expression"}
	}
	return list[0], nil
}

func (p *parser) statement() (expr.Expr, error) {
	var attrs []expr.Expr
	for p.is("@") {
		p.next()
		a, err := p.primary()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	e, err := p.colon()
	if err != nil {
		return nil, err
	}
	if len(attrs) > 0 {
		e = expr.WithAttrs(e, attrs...)
	}
	return e, nil
}

func (p *parser) colon() (expr.Expr, error) {
	lhs, err := p.assign()
	if err != nil {
		return nil, err
	}
	for p.is(expr.Colon) {
		p.next()
		rhs, err := p.assign()
		if err != nil {
			return nil, err
		}
		lhs = expr.NewCall(expr.Colon, lhs, rhs)
	}
	return lhs, nil
}

func (p *parser) assign() (expr.Expr, error) {
	lhs, err := p.ternary()
	if err != nil || !p.is(expr.Assign) {
		return lhs, err
	}
	p.next()
	rhs, err := p.assign()
	if err != nil {
		return nil, err
	}
	return expr.NewCall(expr.Assign, lhs, rhs), nil
}

func (p *parser) ternary() (expr.Expr, error) {
	cond, err := p.binary(1)
	if err != nil || !p.is("?") {
		return cond, err
	}
	p.next()
	a, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if err := p.expect(":"); err != nil {
		return nil, err
	}
	b, err := p.ternary()
	if err != nil {
		return nil, err
	}
	return expr.NewCall(expr.Ternary, cond, a, b), nil
}

// binaryOp returns the binary operator at the current position, including
// the word operators.
func (p *parser) binaryOp() (string, int) {
	t := p.peek()
	if t.kind != op && t.kind != name {
		return "", 0
	}
	return t.text, precedence[t.text]
}

// binary parses left associative operators with at least precedence min.
func (p *parser) binary(min int) (expr.Expr, error) {
	lhs, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		o, prec := p.binaryOp()
		if prec < min || prec == 0 {
			return lhs, nil
		}
		p.next()
		rhs, err := p.binary(prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = expr.NewCall(o, lhs, rhs)
	}
}

func (p *parser) unary() (expr.Expr, error) {
	if t := p.peek(); t.kind == op {
		switch t.text {
		case "-", "+", "!", "~":
			p.next()
			a, err := p.unary()
			if err != nil {
				return nil, err
			}
			return expr.NewCall(t.text, a), nil
		}
	}
	return p.power()
}

func (p *parser) power() (expr.Expr, error) {
	base, err := p.primary()
	if err != nil || !p.is("**") {
		return base, err
	}
	p.next()
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return expr.NewCall("**", base, exp), nil
}

func (p *parser) primary() (expr.Expr, error) {
	t := p.next()
	switch t.kind {
	case number:
		return expr.Num(t.num), nil
	case str:
		return expr.Str(t.text), nil
	case name:
		if !p.is("(") {
			return expr.Ident(t.text), nil
		}
		p.next()
		args, err := p.list()
		if err != nil {
			return nil, err
		}
		return expr.NewCall(t.text, args...), nil
	case op:
		if t.text != "(" {
			break
		}
		args, err := p.list()
		if err != nil {
			return nil, err
		}
		switch len(args) {
		case 0:
			return nil, p.errorf(t, "empty parentheses")
		case 1:
			return args[0], nil
		}
		return expr.NewCall(expr.Tuple, args...), nil
	case eof:
		return nil, p.errorf(t, "unexpected end of input")
	}
	return nil, p.errorf(t, "unexpected "+t.text)
}

// list parses comma separated expressions up to and including the closing
// parenthesis.
func (p *parser) list() ([]expr.Expr, error) {
	var args []expr.Expr
	if p.is(")") {
		p.next()
		return args, nil
	}
	for {
		a, err := p.colon()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.is(",") {
			p.next()
			continue
		}
		return args, p.expect(")")
	}
}
