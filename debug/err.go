package debug

import (
	"github.com/ezrec/ulc3/translate"
)

var f = translate.From

// ErrBreakpointSyntax indicates a breakpoint argument that does not
// parse as addr[:expr].
type ErrBreakpointSyntax string

func (err ErrBreakpointSyntax) Error() string {
	return f("'%v' is not a breakpoint (want addr[:expr])", string(err))
}

// ErrCondExpression indicates a condition that is not a valid
// expression.
type ErrCondExpression string

func (err ErrCondExpression) Error() string {
	return f("'%v' is not a condition expression", string(err))
}
