package symbolic

// Simplify applies constant folding and the identities 0+x, x+0, x-0, 1*x,
// x*1, 0*x, x*0, x/1, and 0/x in a single bottom-up pass. Operands of 0*x and
// 0/x are dropped without being evaluated. The only error is a *DomainError
// from folding a division of two constants with a zero divisor.
//
// The result shares no nodes with e. Simplification is idempotent, but it
// does not search for further rewrites once a node has been rebuilt from its
// simplified operands, so it is not a normal form in general.
func (e *Expr) Simplify() (*Expr, error) {
	switch e.kind {
	case KindNum, KindVar:
		return e.clone(), nil
	case KindAdd, KindSub, KindMul, KindDiv:
		// handled below
	default:
		panic("symbolic: simplify of invalid expression kind " + e.kind.String())
	}

	left, err := e.left.Simplify()
	if err != nil {
		return nil, err
	}
	right, err := e.right.Simplify()
	if err != nil {
		return nil, err
	}

	// Constant folding takes priority over every identity.
	if left.kind == KindNum && right.kind == KindNum {
		v, err := arith(e.kind, left.val, right.val)
		if err != nil {
			return nil, err
		}
		return Num(v), nil
	}

	switch e.kind {
	case KindAdd:
		// 0 + x = x
		if left.IsZero() {
			return right, nil
		}
		// x + 0 = x
		if right.IsZero() {
			return left, nil
		}

	case KindSub:
		// x - 0 = x; 0 - x stays as it is.
		if right.IsZero() {
			return left, nil
		}

	case KindMul:
		// 1 * x = x
		if left.IsOne() {
			return right, nil
		}
		// x * 1 = x
		if right.IsOne() {
			return left, nil
		}
		// 0 * x = x * 0 = 0
		if left.IsZero() || right.IsZero() {
			return Num(0), nil
		}

	case KindDiv:
		// x / 1 = x
		if right.IsOne() {
			return left, nil
		}
		// 0 / x = 0
		if left.IsZero() {
			return Num(0), nil
		}
	}

	return Binary(e.kind, left, right), nil
}
