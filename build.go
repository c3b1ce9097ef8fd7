package symbolic

import "strconv"

// Operand is the set of types accepted by the arithmetic builders. Numbers
// become constants and strings become variables.
type Operand interface {
	*Expr | int | int64 | float64 | string
}

// Num creates a numeric constant.
func Num(v float64) *Expr {
	return &Expr{kind: KindNum, val: v}
}

// Var creates a variable. Panics if name is empty.
func Var(name string) *Expr {
	if name == "" {
		panic("symbolic: empty variable name")
	}
	return &Expr{kind: KindVar, name: name}
}

// Binary creates a binary operation of the given kind. Panics if kind is not
// one of KindAdd, KindSub, KindMul, or KindDiv, or if either operand is nil.
// The operands are stored as given; since expressions are never mutated, it
// is safe to use one expression as an operand of several others.
func Binary(kind Kind, left, right *Expr) *Expr {
	if !kind.Binary() {
		panic("symbolic: " + kind.String() + " is not a binary operation")
	}
	if left == nil || right == nil {
		panic("symbolic: nil operand to " + kind.String())
	}
	return &Expr{kind: kind, left: left, right: right}
}

// Add creates left + right.
func Add[L, R Operand](left L, right R) *Expr {
	return Binary(KindAdd, operand(left), operand(right))
}

// Sub creates left - right.
func Sub[L, R Operand](left L, right R) *Expr {
	return Binary(KindSub, operand(left), operand(right))
}

// Mul creates left * right.
func Mul[L, R Operand](left L, right R) *Expr {
	return Binary(KindMul, operand(left), operand(right))
}

// Div creates left / right.
func Div[L, R Operand](left L, right R) *Expr {
	return Binary(KindDiv, operand(left), operand(right))
}

// operand converts a builder argument to an expression.
func operand[T Operand](v T) *Expr {
	switch v := any(v).(type) {
	case *Expr:
		return v
	case int:
		return Num(float64(v))
	case int64:
		return Num(float64(v))
	case float64:
		return Num(v)
	case string:
		return Var(v)
	default:
		// Operand admits no other types.
		panic("symbolic: unexpected operand type")
	}
}

// formatNum formats a constant in the shortest decimal form that reads back
// to the same value.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
