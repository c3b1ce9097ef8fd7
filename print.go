package symbolic

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders the expression in infix form with the fewest parentheses
// that preserve its structure.
func (e *Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

// GoString renders the expression as the builder calls that create it, e.g.
// Add(Var("x"), Num(2)).
func (e *Expr) GoString() string {
	var b strings.Builder
	e.fmtgo(&b)
	return b.String()
}

// Format implements fmt.Formatter. The %v and %s verbs produce the same text
// as String. %+v wraps every operation in parentheses, which is the form that
// Parse accepts. %#v produces the same text as GoString, and %q quotes the
// output of String.
func (e *Expr) Format(f fmt.State, verb rune) {
	var b strings.Builder
	switch verb {
	case 'v':
		switch {
		case f.Flag('#'):
			e.fmtgo(&b)
		case f.Flag('+'):
			e.fmtfull(&b)
		default:
			e.fmt(&b)
		}
	case 's':
		e.fmt(&b)
	case 'q':
		b.WriteString(strconv.Quote(e.String()))
	default:
		fmt.Fprintf(f, "%%!%c(*symbolic.Expr=%s)", verb, e.String())
		return
	}
	io.WriteString(f, b.String())
}

func (e *Expr) fmt(b *strings.Builder) {
	switch e.kind {
	case KindNum:
		b.WriteString(formatNum(e.val))
	case KindVar:
		b.WriteString(e.name)
	case KindAdd, KindSub, KindMul, KindDiv:
		rank := e.Rank()
		e.left.fmtoperand(b, e.left.Rank() < rank)
		b.WriteByte(' ')
		b.WriteString(e.Symbol())
		b.WriteByte(' ')
		// Subtraction and division do not associate, so an equally ranked
		// right operand keeps its parentheses: x - (y - z).
		r := e.right.Rank()
		switch e.kind {
		case KindSub, KindDiv:
			e.right.fmtoperand(b, r <= rank)
		default:
			e.right.fmtoperand(b, r < rank)
		}
	default:
		panic("symbolic: invalid expression kind " + e.kind.String() + " after writing " + b.String())
	}
}

func (e *Expr) fmtoperand(b *strings.Builder, paren bool) {
	if !paren {
		e.fmt(b)
		return
	}
	b.WriteByte('(')
	e.fmt(b)
	b.WriteByte(')')
}

func (e *Expr) fmtfull(b *strings.Builder) {
	switch e.kind {
	case KindNum:
		b.WriteString(formatNum(e.val))
	case KindVar:
		b.WriteString(e.name)
	case KindAdd, KindSub, KindMul, KindDiv:
		b.WriteByte('(')
		e.left.fmtfull(b)
		b.WriteByte(' ')
		b.WriteString(e.Symbol())
		b.WriteByte(' ')
		e.right.fmtfull(b)
		b.WriteByte(')')
	default:
		panic("symbolic: invalid expression kind " + e.kind.String() + " after writing " + b.String())
	}
}

func (e *Expr) fmtgo(b *strings.Builder) {
	switch e.kind {
	case KindNum:
		b.WriteString("Num(")
		b.WriteString(formatNum(e.val))
		b.WriteByte(')')
	case KindVar:
		b.WriteString("Var(")
		b.WriteString(strconv.Quote(e.name))
		b.WriteByte(')')
	case KindAdd, KindSub, KindMul, KindDiv:
		b.WriteString(e.kind.String())
		b.WriteByte('(')
		e.left.fmtgo(b)
		b.WriteString(", ")
		e.right.fmtgo(b)
		b.WriteByte(')')
	default:
		panic("symbolic: invalid expression kind " + e.kind.String() + " after writing " + b.String())
	}
}
