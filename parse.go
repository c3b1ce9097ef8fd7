package symbolic

import (
	"io"
	"strconv"
	"strings"
)

// Expr = num | name | '(' Expr op Expr ')'
// op = '+' | '-' | '*' | '/'
//
// Every binary operation is parenthesized, so there is no precedence to
// resolve: the left operand is either a single token or the bracketed span
// starting at the first token, and the operator follows it.

// Parse parses a fully parenthesized expression. The given options are
// applied in order. Invalid input results in an error that implements
// InputError and unwraps to ErrMalformedExpression.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	scan := lex(src, p.greedy)
	var toks []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			if err := checkbrackets(toks); err != nil {
				return nil, err
			}
			return parsespan(toks, tok)
		}
		toks = append(toks, tok)
	}
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// checkbrackets verifies that parentheses are balanced across the whole
// input, so that every later match is guaranteed to succeed.
func checkbrackets(toks []lexToken) error {
	var open []lexToken
	for _, tok := range toks {
		switch tok.kind {
		case tokenOpen:
			open = append(open, tok)
		case tokenClose:
			if len(open) == 0 {
				return &BracketError{Col: tok.pos, Right: tok.text}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return &BracketError{Col: open[len(open)-1].pos, Left: open[len(open)-1].text}
	}
	return nil
}

// matchbracket finds the index of the close parenthesis matching the open
// parenthesis at toks[k]. Panics if there is none, since checkbrackets has
// already rejected unbalanced input.
func matchbracket(toks []lexToken, k int) int {
	n := 0
	for i := k; i < len(toks); i++ {
		switch toks[i].kind {
		case tokenOpen:
			n++
		case tokenClose:
			n--
		}
		if n == 0 {
			return i
		}
	}
	panic("symbolic: unbalanced span at " + toks[k].String())
}

// parsespan parses a balanced span of tokens. end is the token following the
// span, used to position errors for empty spans.
func parsespan(toks []lexToken, end lexToken) (*Expr, error) {
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	if toks[0].kind != tokenOpen {
		return parseatom(toks)
	}
	k := matchbracket(toks, 0)
	if k != len(toks)-1 {
		// (x + y) z or (x) + (y)
		return nil, &TermError{Col: toks[k+1].pos, Text: toks[k+1].text}
	}
	cl := toks[k]
	inner := toks[1:k]
	if len(inner) == 0 {
		return nil, &EmptyExpressionError{Col: cl.pos, End: cl.text}
	}
	split := 0
	switch inner[0].kind {
	case tokenOpen:
		split = matchbracket(inner, 0)
	case tokenOp:
		// ( + y)
		return nil, &EmptyExpressionError{Col: inner[0].pos, End: inner[0].text}
	}
	if split+1 >= len(inner) {
		return nil, &OperatorError{Col: cl.pos}
	}
	op := inner[split+1]
	if op.kind != tokenOp {
		// (xy + z), or (x -2) with greedy minus
		return nil, &TermError{Col: op.pos, Text: op.text}
	}
	kind := binop(op)
	if kind == KindInvalid {
		return nil, &OperatorError{Col: op.pos, Operator: op.text}
	}
	lhs, err := parsespan(inner[:split+1], op)
	if err != nil {
		return nil, err
	}
	rhs, err := parsespan(inner[split+2:], cl)
	if err != nil {
		return nil, err
	}
	return Binary(kind, lhs, rhs), nil
}

// parseatom parses a span that should hold exactly one number or name.
func parseatom(toks []lexToken) (*Expr, error) {
	if len(toks) > 1 {
		return nil, &TermError{Col: toks[1].pos, Text: toks[1].text}
	}
	tok := toks[0]
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			// Only out of range numbers get here.
			return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		return Num(v), nil
	case tokenIdent:
		return Var(tok.text), nil
	default:
		return nil, &TermError{Col: tok.pos, Text: tok.text}
	}
}

// binop gets the operation kind for an operator token. If the token is not a
// binary operator, the result is KindInvalid.
func binop(tok lexToken) Kind {
	if tok.kind != tokenOp {
		return KindInvalid
	}
	switch tok.text {
	case "+":
		return KindAdd
	case "-":
		return KindSub
	case "*":
		return KindMul
	case "/":
		return KindDiv
	default:
		return KindInvalid
	}
}
