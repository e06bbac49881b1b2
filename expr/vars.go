package expr

// MaxDepth is the maximum number of nested variable lookups while resolving
// a single identifier.
const MaxDepth = 256

// Vars is an ordered set of variable definitions. The zero value is an empty
// set. A Vars is not modified after ParseVarList returned it and may be
// shared by concurrent evaluations.
type Vars struct {
	names []string
	defs  map[string]Expr
}

// Len returns the number of defined variables.
func (v *Vars) Len() int {
	if v == nil {
		return 0
	}
	return len(v.names)
}

// Names lists the variable names in definition order.
func (v *Vars) Names() []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.names...)
}

// Get returns the definition of name.
func (v *Vars) Get(name string) (Expr, bool) {
	if v == nil {
		return nil, false
	}
	e, ok := v.defs[name]
	return e, ok
}

// define adds or replaces name. A replaced variable keeps its position.
func (v *Vars) define(name string, e Expr) {
	if v.defs == nil {
		v.defs = make(map[string]Expr)
	}
	if _, ok := v.defs[name]; !ok {
		v.names = append(v.names, name)
	}
	v.defs[name] = e
}

// ParseVarList builds a variable environment from a list of assignments
// name = expression. Each right hand side is evaluated against the
// variables defined before it and stored as a literal if that succeeds;
// right hand sides depending on x, y or later definitions are kept as they
// are and evaluated on use.
func ParseVarList(assignments []Expr) (*Vars, error) {
	vars := &Vars{}
	for _, a := range assignments {
		c, ok := Calls(a, Assign, 2)
		if !ok {
			return nil, &InvalidAssignmentError{Expr: a, Reason: "not an assignment"}
		}
		id, ok := c.Args[0].(*Identifier)
		if !ok {
			return nil, &InvalidAssignmentError{Expr: a, Reason: "left side is not a name"}
		}
		rhs := c.Args[1]
		p := &Point{Axes: NoAxes, Vars: vars}
		if v, err := Eval(rhs, p); err == nil {
			rhs = Num(v)
		}
		vars.define(id.Name, rhs)
	}
	return vars, nil
}

// Axes tells which grid axes a Point provides.
type Axes int

const (
	// NoAxes resolves variables only. x and y come from Vars if defined
	// there.
	NoAxes Axes = iota
	// XAxis provides x, y is an unknown identifier unless defined in Vars.
	XAxis
	// XYAxes provides x and y.
	XYAxes
)

// Point is the evaluation context for one sample: the grid coordinates and
// the variables. A Point must not be used concurrently.
type Point struct {
	X, Y float64
	Axes Axes
	Vars *Vars

	// UsedY records whether y was requested, directly or through a
	// variable.
	UsedY bool

	depth int
}

// Lookup implements Lookup.
func (p *Point) Lookup(name string) (float64, error) {
	switch {
	case name == "x" && p.Axes >= XAxis:
		return p.X, nil
	case name == "y" && p.Axes == XYAxes:
		p.UsedY = true
		return p.Y, nil
	}
	e, ok := p.Vars.Get(name)
	if !ok {
		return 0, &UnknownIdentifierError{Name: name}
	}
	if lit, ok := e.(*Literal); ok {
		return lit.Float()
	}
	if p.depth >= MaxDepth {
		return 0, &CyclicDefinitionError{Name: name}
	}
	p.depth++
	v, err := Eval(e, p)
	p.depth--
	return v, err
}

// EvalVars evaluates e with only the variables in vars and no grid axes.
func EvalVars(e Expr, vars *Vars) (float64, error) {
	return Eval(e, &Point{Vars: vars})
}
