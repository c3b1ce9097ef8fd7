package symbolic

// Deriv returns the derivative of the expression with respect to the named
// variable. The result is not simplified and shares no nodes with e.
func (e *Expr) Deriv(name string) *Expr {
	switch e.kind {
	case KindNum:
		return Num(0)
	case KindVar:
		if e.name == name {
			return Num(1)
		}
		return Num(0)
	case KindAdd, KindSub:
		return Binary(e.kind, e.left.Deriv(name), e.right.Deriv(name))
	case KindMul:
		// l r' + r l'
		return Add(
			Mul(e.left.clone(), e.right.Deriv(name)),
			Mul(e.right.clone(), e.left.Deriv(name)),
		)
	case KindDiv:
		// (r l' - l r') / r²
		return Div(
			Sub(
				Mul(e.right.clone(), e.left.Deriv(name)),
				Mul(e.left.clone(), e.right.Deriv(name)),
			),
			Mul(e.right.clone(), e.right.clone()),
		)
	default:
		panic("symbolic: derivative of invalid expression kind " + e.kind.String())
	}
}
