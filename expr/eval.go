package expr

import (
	"math"
	"math/rand/v2"
)

// Lookup resolves identifiers to numbers during evaluation.
type Lookup interface {
	Lookup(name string) (float64, error)
}

// LookupFunc adapts an ordinary function to the Lookup interface.
type LookupFunc func(name string) (float64, error)

// Lookup calls f(name).
func (f LookupFunc) Lookup(name string) (float64, error) { return f(name) }

// Eval evaluates e. Identifiers are resolved through l.
//
// NaN and infinities are ordinary results and propagate. Errors are
// *UnknownIdentifierError (from l), *UnsupportedExpressionError for calls
// not in the operator tables and *CyclicDefinitionError (from Point).
func Eval(e Expr, l Lookup) (float64, error) {
	switch e := e.(type) {
	case *Literal:
		return e.Float()
	case *Identifier:
		return l.Lookup(e.Name)
	case *Call:
		return evalCall(e, l)
	}
	return 0, &UnsupportedExpressionError{Expr: e}
}

func evalCall(c *Call, l Lookup) (float64, error) {
	if f, ok := specialForms[opKey{c.Name, len(c.Args)}]; ok {
		return f(c, l)
	}
	switch len(c.Args) {
	case 1:
		if f, ok := unaryOps[c.Name]; ok {
			a, err := Eval(c.Args[0], l)
			if err != nil {
				return 0, err
			}
			return f(a), nil
		}
	case 2:
		if f, ok := binaryOps[c.Name]; ok {
			a, err := Eval(c.Args[0], l)
			if err != nil {
				return 0, err
			}
			b, err := Eval(c.Args[1], l)
			if err != nil {
				return 0, err
			}
			return f(a, b), nil
		}
	}
	return 0, &UnsupportedExpressionError{Expr: c}
}

type opKey struct {
	name  string
	arity int
}

// specialForms need access to the unevaluated arguments: they evaluate
// lazily or expect a tuple as argument. Filled in init to break the
// initialization cycle through Eval.
var specialForms map[opKey]func(c *Call, l Lookup) (float64, error)

func init() {
	specialForms = map[opKey]func(c *Call, l Lookup) (float64, error){
		{Ternary, 3}: evalTernary,
		{"??", 2}:    evalCoalesce,
		{"in", 2}:    evalIn,
		{"clamp", 2}: evalClampTuple,
		{"clamp", 3}: evalClamp,
		{"rnd", 0}:   func(*Call, Lookup) (float64, error) { return rand.Float64(), nil },
	}
}

func evalTernary(c *Call, l Lookup) (float64, error) {
	cond, err := Eval(c.Args[0], l)
	if err != nil {
		return 0, err
	}
	if cond != 0 {
		return Eval(c.Args[1], l)
	}
	return Eval(c.Args[2], l)
}

func evalCoalesce(c *Call, l Lookup) (float64, error) {
	a, err := Eval(c.Args[0], l)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return Eval(c.Args[1], l)
	}
	return a, nil
}

// evalAll evaluates es in order and stops at the first error.
func evalAll(l Lookup, es ...Expr) ([]float64, error) {
	vals := make([]float64, len(es))
	for i, e := range es {
		v, err := Eval(e, l)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// rangeArgs evaluates calls of the form f(x, (lo, hi)).
func rangeArgs(c *Call, l Lookup) (x, lo, hi float64, err error) {
	t, ok := Calls(c.Args[1], Tuple, 2)
	if !ok {
		return 0, 0, 0, &UnsupportedExpressionError{Expr: c}
	}
	v, err := evalAll(l, c.Args[0], t.Args[0], t.Args[1])
	if err != nil {
		return 0, 0, 0, err
	}
	return v[0], v[1], v[2], nil
}

func evalIn(c *Call, l Lookup) (float64, error) {
	x, lo, hi, err := rangeArgs(c, l)
	if err != nil {
		return 0, err
	}
	return boolean(lo <= x && x <= hi), nil
}

func evalClampTuple(c *Call, l Lookup) (float64, error) {
	x, lo, hi, err := rangeArgs(c, l)
	if err != nil {
		return 0, err
	}
	return clamp(x, lo, hi), nil
}

func evalClamp(c *Call, l Lookup) (float64, error) {
	v, err := evalAll(l, c.Args...)
	if err != nil {
		return 0, err
	}
	return clamp(v[0], v[1], v[2]), nil
}

var unaryOps = map[string]func(a float64) float64{
	"-":      func(a float64) float64 { return -a },
	"+":      math.Abs,
	"!":      func(a float64) float64 { return boolean(a == 0) },
	"~":      func(a float64) float64 { return float64(^toInt64(a)) },
	"square": func(a float64) float64 { return a * a },
	"sqrt":   math.Sqrt,
	"sin":    math.Sin,
	"cos":    math.Cos,
	"tan":    math.Tan,
	"asin":   math.Asin,
	"acos":   math.Acos,
	"atan":   math.Atan,
	"sec":    func(a float64) float64 { return 1 / math.Cos(a) },
	"csc":    func(a float64) float64 { return 1 / math.Sin(a) },
	"cot":    func(a float64) float64 { return 1 / math.Tan(a) },
	"exp":    math.Exp,
	"ln":     math.Log,
	"log":    math.Log10,
	"ceil":   math.Ceil,
	"floor":  math.Floor,
	"sign":   sign,
	"abs":    math.Abs,
	"fact":   Factorial,
	"rnd":    func(a float64) float64 { return randInt(0, a) },
}

var binaryOps = map[string]func(a, b float64) float64{
	"+":     func(a, b float64) float64 { return a + b },
	"-":     func(a, b float64) float64 { return a - b },
	"*":     func(a, b float64) float64 { return a * b },
	"/":     func(a, b float64) float64 { return a / b },
	"%":     math.Mod,
	"**":    math.Pow,
	">>":    func(a, b float64) float64 { return math.Ldexp(a, -int(toInt64(b))) },
	"<<":    func(a, b float64) float64 { return math.Ldexp(a, int(toInt64(b))) },
	">":     func(a, b float64) float64 { return boolean(a > b) },
	"<":     func(a, b float64) float64 { return boolean(a < b) },
	">=":    func(a, b float64) float64 { return boolean(a >= b) },
	"<=":    func(a, b float64) float64 { return boolean(a <= b) },
	"==":    func(a, b float64) float64 { return boolean(a == b) },
	"!=":    func(a, b float64) float64 { return boolean(a != b) },
	"&":     func(a, b float64) float64 { return float64(toInt64(a) & toInt64(b)) },
	"|":     func(a, b float64) float64 { return float64(toInt64(a) | toInt64(b)) },
	"&&":    and,
	"and":   and,
	"||":    or,
	"or":    or,
	"^^":    func(a, b float64) float64 { return boolean((a != 0) != (b != 0)) },
	"xor":   func(a, b float64) float64 { return float64(toInt64(a) ^ toInt64(b)) },
	"min":   math.Min,
	"max":   math.Max,
	"mod":   Mod,
	"MOD":   Mod,
	"atan":  math.Atan2,
	"log":   func(a, b float64) float64 { return math.Log(a) / math.Log(b) },
	"P":     func(a, b float64) float64 { return Permutations(int(math.Round(a)), int(math.Round(b))) },
	"C":     func(a, b float64) float64 { return Combinations(toUint64(math.Round(a)), toUint64(math.Round(b))) },
	"rnd":   randInt,
}
