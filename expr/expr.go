// Package expr provides the expression trees consumed by the graphing
// calculator together with a small numeric interpreter for them.
//
// An expression is an immutable tree of three node kinds: a Literal holding a
// number (or something convertible to one), an Identifier naming a variable
// and a Call applying an operator or a function to its arguments.
// Operators use their symbol as name ("+", "**", "==", ...), functions use
// their identifier ("sin", "clamp", ...). The ternary operator is the call
// "?" with three arguments and a parenthesized list is the call "tuple".
//
// Every node may carry attributes. Attributes are out-of-band tags like a
// color name, a dash style or a line width; they never influence evaluation.
package expr

import (
	"strconv"
	"strings"
)

// Expr is a node of an expression tree.
type Expr interface {
	// String renders the expression in infix notation.
	String() string

	// Attributes returns the attributes attached to this node.
	Attributes() []Expr

	withAttrs(attrs []Expr) Expr
}

// Common call names.
const (
	Assign = "="
	Equal  = "=="
	Sub    = "-"
	Colon  = ":"
	DotDot = ".."
	// DotDotNeg is the range operator with a negated upper bound as
	// produced by front-ends that glue "..-" into one token.
	DotDotNeg = "..-"
	Tuple     = "tuple"
	Ternary   = "?"
)

type node struct {
	attrs []Expr
}

func (n node) Attributes() []Expr { return n.attrs }

// ----------------------------------------------------------------------------
// Literal

// Literal is a constant. Value is typically a float64 but ints, bools and
// numeric strings are accepted and converted on evaluation.
type Literal struct {
	node
	Value interface{}
}

// Num returns a numeric literal.
func Num(v float64) *Literal { return &Literal{Value: v} }

// Str returns a string literal. String literals are used as labels in
// attributes.
func Str(s string) *Literal { return &Literal{Value: s} }

func (l *Literal) withAttrs(attrs []Expr) Expr {
	c := *l
	c.attrs = attrs
	return &c
}

func (l *Literal) String() string {
	var s string
	switch v := l.Value.(type) {
	case float64:
		s = strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		s = strconv.Quote(v)
	default:
		s = toString(v)
	}
	return withAttrPrefix(l.attrs, s)
}

// Float converts the literal's value to a float64.
func (l *Literal) Float() (float64, error) {
	switch v := l.Value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, &UnsupportedExpressionError{Expr: l}
		}
		return f, nil
	}
	return 0, &UnsupportedExpressionError{Expr: l}
}

// ----------------------------------------------------------------------------
// Identifier

// Identifier references a variable or one of the grid axes x and y.
type Identifier struct {
	node
	Name string
}

// Ident returns an identifier.
func Ident(name string) *Identifier { return &Identifier{Name: name} }

func (id *Identifier) withAttrs(attrs []Expr) Expr {
	c := *id
	c.attrs = attrs
	return &c
}

func (id *Identifier) String() string { return withAttrPrefix(id.attrs, id.Name) }

// ----------------------------------------------------------------------------
// Call

// Call applies the operator or function Name to Args.
type Call struct {
	node
	Name string
	Args []Expr
}

// NewCall returns the call name(args...).
func NewCall(name string, args ...Expr) *Call {
	return &Call{Name: name, Args: args}
}

func (c *Call) withAttrs(attrs []Expr) Expr {
	cp := *c
	cp.attrs = attrs
	return &cp
}

// Calls reports whether e is a call of name with arity arguments and returns
// it.
func Calls(e Expr, name string, arity int) (*Call, bool) {
	c, ok := e.(*Call)
	if !ok || c.Name != name || len(c.Args) != arity {
		return nil, false
	}
	return c, true
}

// WithAttrs returns a copy of e carrying attrs.
func WithAttrs(e Expr, attrs ...Expr) Expr {
	return e.withAttrs(attrs)
}

func (c *Call) String() string {
	return withAttrPrefix(c.attrs, c.infix())
}

func (c *Call) infix() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
		if isOperatorCall(a) && len(c.Args) > 1 && c.Name != Tuple && isOperator(c.Name) {
			args[i] = "(" + args[i] + ")"
		}
	}
	switch {
	case c.Name == Tuple:
		return "(" + strings.Join(args, ", ") + ")"
	case c.Name == Ternary && len(args) == 3:
		return args[0] + " ? " + args[1] + " : " + args[2]
	case isOperator(c.Name) && len(args) == 1:
		if isOperatorCall(c.Args[0]) {
			return c.Name + "(" + args[0] + ")"
		}
		return c.Name + args[0]
	case isOperator(c.Name) && len(args) == 2:
		return args[0] + " " + c.Name + " " + args[1]
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

func isOperator(name string) bool {
	if name == "" {
		return false
	}
	ch := name[0]
	return !(ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z')
}

func isOperatorCall(e Expr) bool {
	c, ok := e.(*Call)
	return ok && isOperator(c.Name) && c.Name != Tuple
}

func withAttrPrefix(attrs []Expr, s string) string {
	if len(attrs) == 0 {
		return s
	}
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString("@")
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	b.WriteString(s)
	return b.String()
}

func toString(v interface{}) string {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	}
	return "?"
}
