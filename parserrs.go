package symbolic

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrMalformedExpression is the error that every parse error resulting from
// invalid input unwraps to.
var ErrMalformedExpression = errors.New("malformed expression")

// OperatorError is an error indicating a missing binary operator or an
// operator token that is not understood by the parser. It implements
// InputError.
type OperatorError struct {
	// Col is the position of the operator, or of the token where an operator
	// was expected.
	Col int
	// Operator is the token that was not understood. It is empty if the
	// operator was missing.
	Operator string
}

func (err *OperatorError) Error() string {
	if err.Operator == "" {
		return errpos(err.Col, "missing binary operator")
	}
	return errpos(err.Col, "unknown binary operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Unwrap() error {
	return ErrMalformedExpression
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis, or empty if a close parenthesis had no
	// opening match.
	Left string
	// Right is the closing parenthesis, or empty if an open parenthesis was
	// never closed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrMalformedExpression
}

// TermError is an error indicating a token where the parser expected the end
// of a term, e.g. the second letter of a multi-letter name or an operator
// outside parentheses. It implements InputError.
type TermError struct {
	// Col is the position of the unexpected token.
	Col int
	// Text is the unexpected token.
	Text string
}

func (err *TermError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after term")
}

func (err *TermError) Pos() int {
	return err.Col
}

func (err *TermError) Unwrap() error {
	return ErrMalformedExpression
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrMalformedExpression
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TermError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
