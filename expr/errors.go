package expr

import "fmt"

// UnknownIdentifierError is returned if a name can neither be resolved as a
// grid axis nor as a variable.
type UnknownIdentifierError struct {
	Name string
}

// Error returns the error string representation for UnknownIdentifierError.
func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown identifier %q", e.Name)
}

// UnsupportedExpressionError is returned if the evaluator does not know the
// operator or function of a call, or not with the given number of arguments.
type UnsupportedExpressionError struct {
	Expr Expr
}

// Error returns the error string representation for
// UnsupportedExpressionError.
func (e *UnsupportedExpressionError) Error() string {
	return fmt.Sprintf("expression not understood: %s", e.Expr)
}

// InvalidAssignmentError is returned by ParseVarList for entries which are
// not of the form name = expression.
type InvalidAssignmentError struct {
	Expr   Expr
	Reason string
}

// Error returns the error string representation for InvalidAssignmentError.
func (e *InvalidAssignmentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Expr)
}

// CyclicDefinitionError is returned if resolving a variable needs more than
// MaxDepth nested variable lookups, which happens for self-referencing
// definitions like a = b; b = a.
type CyclicDefinitionError struct {
	Name string
}

// Error returns the error string representation for CyclicDefinitionError.
func (e *CyclicDefinitionError) Error() string {
	return fmt.Sprintf("definition of %q is cyclic or nested too deeply", e.Name)
}
