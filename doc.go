// Package symbolic implements a small computer algebra system over the four
// arithmetic operations.
//
// Expressions are immutable trees of constants, variables, and binary
// operations. They are built with Num, Var, Add, Sub, Mul, and Div, or parsed
// from text. The parser accepts only fully parenthesized formulas whose
// variables are single letters, e.g. "(x + (2 * y))". Every binary operation
// needs its own parentheses; "x + 2 * y" is an error.
//
// An expression can be printed with the fewest parentheses that keep its
// meaning, differentiated by a variable, simplified, or evaluated with a set
// of variable bindings. Differentiation does not simplify its result, so the
// two are usually composed:
//
//	e, _ := symbolic.ParseString("(x * y)")
//	d, _ := e.Deriv("x").Simplify()
//	fmt.Println(d) // y
package symbolic
