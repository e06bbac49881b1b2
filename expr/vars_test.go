package expr

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func assign(name string, e Expr) Expr { return NewCall(Assign, Ident(name), e) }

func TestParseVarListFolds(t *testing.T) {
	vars, err := ParseVarList([]Expr{
		assign("pi", Num(3.14159265358979)),
		assign("r", NewCall("sqrt", bin("+",
			bin("**", Ident("x"), Num(2)),
			bin("**", Ident("y"), Num(2))))),
		assign("d", bin("*", Num(2), Ident("pi"))),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"pi", "r", "d"}, vars.Names())

	pi, _ := vars.Get("pi")
	require.IsType(t, &Literal{}, pi)
	r, _ := vars.Get("r")
	require.IsType(t, &Call{}, r)
	d, _ := vars.Get("d")
	v, err := d.(*Literal).Float()
	require.NoError(t, err)
	require.InDelta(t, 6.2831853071795, v, 1e-12)

	got, err := Eval(Ident("r"), &Point{X: 3, Y: 4, Axes: XYAxes, Vars: vars})
	require.NoError(t, err)
	require.Equal(t, 5.0, got)
}

func TestParseVarListRedefinition(t *testing.T) {
	vars, err := ParseVarList([]Expr{
		assign("a", Num(1)),
		assign("b", Num(2)),
		assign("a", bin("+", Ident("a"), Num(10))),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, vars.Names())
	got, err := EvalVars(Ident("a"), vars)
	require.NoError(t, err)
	require.Equal(t, 11.0, got)
}

func TestParseVarListInvalid(t *testing.T) {
	for _, e := range []Expr{
		bin("+", Ident("a"), Num(1)),
		NewCall(Assign, Num(1), Num(2)),
		NewCall(Assign, bin("+", Ident("a"), Num(1)), Num(2)),
	} {
		_, err := ParseVarList([]Expr{e})
		var invalid *InvalidAssignmentError
		require.True(t, errors.As(err, &invalid), e.String())
	}
}

func TestNoForwardReference(t *testing.T) {
	vars, err := ParseVarList([]Expr{
		assign("a", bin("+", Ident("b"), Num(1))),
		assign("b", Num(2)),
	})
	require.NoError(t, err)
	a, _ := vars.Get("a")
	require.IsType(t, &Call{}, a)
}

func TestCyclicDefinition(t *testing.T) {
	vars, err := ParseVarList([]Expr{
		assign("a", bin("+", Ident("b"), Ident("x"))),
		assign("b", bin("+", Ident("a"), Num(1))),
	})
	require.NoError(t, err)

	_, err = Eval(Ident("b"), &Point{Axes: XAxis, Vars: vars})
	var cyclic *CyclicDefinitionError
	require.True(t, errors.As(err, &cyclic))
}

func TestPointAxes(t *testing.T) {
	vars, err := ParseVarList([]Expr{
		assign("x", Num(100)),
		assign("k", bin("*", Ident("y"), Num(2))),
	})
	require.NoError(t, err)

	got, err := Eval(Ident("x"), &Point{X: 1, Axes: XAxis, Vars: vars})
	require.NoError(t, err)
	require.Equal(t, 1.0, got, "grid axis shadows definition")

	got, err = EvalVars(Ident("x"), vars)
	require.NoError(t, err)
	require.Equal(t, 100.0, got)

	p := &Point{X: 1, Y: 3, Axes: XYAxes, Vars: vars}
	got, err = Eval(Ident("k"), p)
	require.NoError(t, err)
	require.Equal(t, 6.0, got)
	require.True(t, p.UsedY)

	_, err = Eval(Ident("k"), &Point{Axes: XAxis, Vars: vars})
	var unknown *UnknownIdentifierError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "y", unknown.Name)
}

func TestEmptyVars(t *testing.T) {
	var v *Vars
	require.Zero(t, v.Len())
	require.Nil(t, v.Names())
	got, err := EvalVars(bin("+", Num(1), Num(math.Pi)), nil)
	require.NoError(t, err)
	require.Equal(t, 1+math.Pi, got)
}
