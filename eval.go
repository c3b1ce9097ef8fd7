package symbolic

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUndefinedVariable is the error that a NameError unwraps to.
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrDivisionByZero is the error that a DomainError from division
	// unwraps to.
	ErrDivisionByZero = errors.New("division by zero")
)

// Context holds variable bindings for evaluating expressions. Evaluation does
// not modify the context, so a Context may evaluate expressions concurrently
// as long as no goroutine calls Set at the same time.
type Context struct {
	names map[string]float64
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	return ctx.Clone(opts...)
}

// Eval evaluates an expression with the variables defined in ctx. If the
// expression uses a variable that ctx does not define, the error is a
// *NameError. Division by zero results in a *DomainError.
func (ctx *Context) Eval(e *Expr) (float64, error) {
	return e.eval(ctx)
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, value float64) *Context {
	if ctx.names == nil {
		ctx.names = make(map[string]float64)
	}
	ctx.names[name] = value
	return ctx
}

// Lookup returns the value of a variable. The second result is false if there
// is no such variable in the context.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.names[name]
	return v, ok
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{names: make(map[string]float64, len(ctx.names))}
	for name, val := range ctx.names {
		n.names[name] = val
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		default:
			panic("symbolic: unknown option type")
		}
	}
	return &n
}

// Eval evaluates the expression with the given variable bindings.
func (e *Expr) Eval(vars map[string]float64) (float64, error) {
	return e.eval(&Context{names: vars})
}

func (e *Expr) eval(ctx *Context) (float64, error) {
	switch e.kind {
	case KindNum:
		return e.val, nil
	case KindVar:
		v, ok := ctx.names[e.name]
		if !ok {
			return 0, &NameError{Name: e.name}
		}
		return v, nil
	case KindAdd, KindSub, KindMul, KindDiv:
		l, err := e.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		r, err := e.right.eval(ctx)
		if err != nil {
			return 0, err
		}
		return arith(e.kind, l, r)
	default:
		panic("symbolic: invalid expression kind " + e.kind.String())
	}
}

// arith applies a binary operation to two values. Division by zero is a
// *DomainError, whether the dividend is zero or not.
func arith(kind Kind, l, r float64) (float64, error) {
	switch kind {
	case KindAdd:
		return l + r, nil
	case KindSub:
		return l - r, nil
	case KindMul:
		return l * r, nil
	case KindDiv:
		if r == 0 {
			return 0, &DomainError{X: r, Arg: 2, Func: "/"}
		}
		return l / r, nil
	default:
		panic("symbolic: " + kind.String() + " is not a binary operation")
	}
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...ContextOption) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return NewContext(opts...).Eval(a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation context. NameError unwraps to ErrUndefinedVariable.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

func (err *NameError) Unwrap() error {
	return ErrUndefinedVariable
}

// DomainError is an error returned when an operation is applied to arguments
// outside its domain. The only such operation is division by zero, so
// DomainError unwraps to ErrDivisionByZero.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	r := formatNum(err.X) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return ErrDivisionByZero
}
