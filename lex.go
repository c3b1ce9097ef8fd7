package symbolic

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an integer or real literal, possibly negative.
	tokenNum
	// tokenIdent is a single-letter variable name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read so far.
	col int
	// prev is the kind of the last token scanned.
	prev tokenKind
	// greedy makes every - extend a digit run, regardless of position.
	greedy bool
	eof    bool
}

func lex(src io.RuneScanner, greedy bool) *lexer {
	return &lexer{src: src, greedy: greedy}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// operand reports whether the next token is in a position where the parser
// expects an operand rather than an operator. A - in operand position that is
// followed by a digit is a sign. The parser only ever wants an operator right
// after a complete left operand, i.e. after a number, name, or close
// parenthesis.
func (l *lexer) operand() bool {
	switch l.prev {
	case tokenNone, tokenOpen, tokenOp:
		return true
	default:
		return false
	}
}

// next scans the next token from the input. The first time EOF is
// encountered, the result is an EOF token with a nil error. Subsequent calls
// return an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	tok, err := l.scan()
	if err == nil {
		l.prev = tok.kind
	}
	return tok, err
}

func (l *lexer) scan() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				return lexToken{kind: tokenEOF, pos: l.col + 1}, nil
			}
			return lexToken{pos: l.col + 1}, errors.Wrapf(err, "reading column %d", l.col+1)
		}
		tok := lexToken{pos: l.col}
		switch {
		case unicode.IsSpace(r):
			continue
		case l.greedy && (r == '-' || '0' <= r && r <= '9'):
			l.unreadRune()
			return l.scanGreedy(tok)
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '-' && l.operand():
			d, err := l.peekDigit()
			if err != nil {
				return tok, err
			}
			if !d {
				tok.text = "-"
				tok.kind = tokenOp
				return tok, nil
			}
			l.buf.WriteByte('-')
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
			tok.text = string(r)
			tok.kind = tokenIdent
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			kind := ""
			if unicode.IsLetter(r) {
				kind = "identifier"
			}
			return tok, l.error(kind, tok.pos)
		}
	}
}

// peekDigit reports whether the next rune is a digit or decimal point without
// consuming it.
func (l *lexer) peekDigit() (bool, error) {
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, errors.Wrapf(err, "reading column %d", l.col+1)
	}
	l.unreadRune()
	return '0' <= r && r <= '9' || r == '.', nil
}

// scanNum scans digits with at most one decimal point into the buffer. The
// number ends at the first rune that is neither.
func (l *lexer) scanNum() error {
	start := l.col + 1 - l.buf.Len()
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return errors.Wrapf(err, "reading column %d", l.col+1)
		}
		if r == '.' {
			l.buf.WriteRune(r)
			if dot {
				return l.error("number", start)
			}
			dot = true
			continue
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		dig = true
	}
	if !dig {
		return l.error("number", start)
	}
	return nil
}

// scanGreedy scans a run of digits, decimal points, and minus signs. A run
// consisting of a single - is the subtraction operator; any other run must be
// a valid number.
func (l *lexer) scanGreedy(tok lexToken) (lexToken, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tok, errors.Wrapf(err, "reading column %d", l.col+1)
		}
		if r != '-' && r != '.' && (r < '0' || '9' < r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	tok.text = l.buf.String()
	if tok.text == "-" {
		tok.kind = tokenOp
		return tok, nil
	}
	if _, err := strconv.ParseFloat(tok.text, 64); err != nil {
		return lexToken{pos: tok.pos}, l.error("number", tok.pos)
	}
	tok.kind = tokenNum
	return tok, nil
}

func (l *lexer) error(kind string, col int) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  col,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "identifier", or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the position of the start of the invalid token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return ErrMalformedExpression
}
