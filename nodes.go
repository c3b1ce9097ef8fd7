package symbolic

import (
	"math"
	"slices"
)

// Expr is a node in an expression tree. An Expr is either a numeric constant,
// a named variable, or a binary operation owning exactly two children. Exprs
// are immutable: every transformation returns a newly constructed tree.
//
// The zero Expr is invalid. Use Num, Var, Add, Sub, Mul, Div, or Parse to
// create expressions.
type Expr struct {
	kind Kind

	// val is the value of a KindNum node.
	val float64
	// name is the name of a KindVar node.
	name string

	left  *Expr
	right *Expr
}

// Kind identifies the shape of an Expr.
type Kind int8

const (
	KindInvalid Kind = iota

	KindNum // numeric constant
	KindVar // named variable

	KindAdd // left + right
	KindSub // left - right
	KindMul // left * right
	KindDiv // left / right
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

// Binary reports whether k is one of the binary operation kinds.
func (k Kind) Binary() bool {
	return KindAdd <= k && k <= KindDiv
}

// Kind returns the kind of the expression.
func (e *Expr) Kind() Kind {
	return e.kind
}

// Value returns the value of a numeric constant. The second result is false
// if e is not a constant.
func (e *Expr) Value() (float64, bool) {
	if e.kind != KindNum {
		return 0, false
	}
	return e.val, true
}

// Name returns the name of a variable, or the empty string if e is not a
// variable.
func (e *Expr) Name() string {
	if e.kind != KindVar {
		return ""
	}
	return e.name
}

// Left returns the left operand of a binary operation, or nil for leaves.
func (e *Expr) Left() *Expr {
	return e.left
}

// Right returns the right operand of a binary operation, or nil for leaves.
func (e *Expr) Right() *Expr {
	return e.right
}

// Rank returns the precedence rank of the expression, used to decide which
// operands need parentheses when printing. Leaves bind tightest.
func (e *Expr) Rank() int {
	switch e.kind {
	case KindNum, KindVar:
		return math.MaxInt
	case KindAdd, KindSub:
		return 1
	case KindMul, KindDiv:
		return 2
	default:
		panic("symbolic: rank of invalid expression kind " + e.kind.String())
	}
}

// Symbol returns the operator symbol of a binary operation, or the empty
// string for leaves.
func (e *Expr) Symbol() string {
	switch e.kind {
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	default:
		return ""
	}
}

// IsZero reports whether e is the constant 0.
func (e *Expr) IsZero() bool {
	return e.kind == KindNum && e.val == 0
}

// IsOne reports whether e is the constant 1.
func (e *Expr) IsOne() bool {
	return e.kind == KindNum && e.val == 1
}

// ConstantsEqual reports whether a and b are both constants with the same
// value. It is false whenever either is not a constant, even for two
// variables of the same name.
func ConstantsEqual(a, b *Expr) bool {
	return a.kind == KindNum && b.kind == KindNum && a.val == b.val
}

// Equal reports whether a and b are structurally identical trees. Unlike
// ConstantsEqual, Equal considers NaN constants equal to each other.
func Equal(a, b *Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNum:
		return a.val == b.val || math.IsNaN(a.val) && math.IsNaN(b.val)
	case KindVar:
		return a.name == b.name
	case KindAdd, KindSub, KindMul, KindDiv:
		return Equal(a.left, b.left) && Equal(a.right, b.right)
	default:
		return false
	}
}

// Vars returns the sorted names of the variables used in the expression.
func (e *Expr) Vars() []string {
	seen := make(map[string]bool)
	e.names(seen)
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

func (e *Expr) names(seen map[string]bool) {
	switch e.kind {
	case KindNum:
	case KindVar:
		seen[e.name] = true
	case KindAdd, KindSub, KindMul, KindDiv:
		e.left.names(seen)
		e.right.names(seen)
	default:
		panic("symbolic: invalid expression kind " + e.kind.String())
	}
}

// clone returns a deep copy of e that shares no nodes with it.
func (e *Expr) clone() *Expr {
	switch e.kind {
	case KindNum, KindVar:
		return &Expr{kind: e.kind, val: e.val, name: e.name}
	case KindAdd, KindSub, KindMul, KindDiv:
		return &Expr{kind: e.kind, left: e.left.clone(), right: e.right.clone()}
	default:
		panic("symbolic: clone of invalid expression kind " + e.kind.String())
	}
}
