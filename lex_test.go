package symbolic

import (
	"io"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		greedy bool
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", false, nil, 0},
		{" \t \r\n ", false, nil, 0},
		// numbers
		{"0", false, []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", false, []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"12 34", false, []lexToken{{text: "12", kind: tokenNum, pos: 1}, {text: "34", kind: tokenNum, pos: 4}}, 0},
		{"1.5", false, []lexToken{{text: "1.5", kind: tokenNum, pos: 1}}, 0},
		{".5", false, []lexToken{{text: ".5", kind: tokenNum, pos: 1}}, 0},
		{"-1", false, []lexToken{{text: "-1", kind: tokenNum, pos: 1}}, 0},
		{".", false, []lexToken{{pos: 1}}, 1},
		{"1.2.3", false, []lexToken{{pos: 1}, {text: "3", kind: tokenNum, pos: 5}}, 1},
		// identifiers
		{"x", false, []lexToken{{text: "x", kind: tokenIdent, pos: 1}}, 0},
		{"Q", false, []lexToken{{text: "Q", kind: tokenIdent, pos: 1}}, 0},
		{"xy", false, []lexToken{{text: "x", kind: tokenIdent, pos: 1}, {text: "y", kind: tokenIdent, pos: 2}}, 0},
		{"2x", false, []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "x", kind: tokenIdent, pos: 2}}, 0},
		// operators and parentheses
		{"(x+y)", false, []lexToken{
			{text: "(", kind: tokenOpen, pos: 1},
			{text: "x", kind: tokenIdent, pos: 2},
			{text: "+", kind: tokenOp, pos: 3},
			{text: "y", kind: tokenIdent, pos: 4},
			{text: ")", kind: tokenClose, pos: 5},
		}, 0},
		{"*/", false, []lexToken{{text: "*", kind: tokenOp, pos: 1}, {text: "/", kind: tokenOp, pos: 2}}, 0},
		{"-x", false, []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "x", kind: tokenIdent, pos: 2}}, 0},
		// erroneous symbols
		{"$", false, []lexToken{{pos: 1}}, 1},
		{"x$", false, []lexToken{{text: "x", kind: tokenIdent, pos: 1}, {pos: 2}}, 1},
		{"$x", false, []lexToken{{pos: 1}, {text: "x", kind: tokenIdent, pos: 2}}, 1},
		{"é", false, []lexToken{{pos: 1}}, 1},
		{"_", false, []lexToken{{pos: 1}}, 1},
		{"^", false, []lexToken{{pos: 1}}, 1},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src), c.greedy)
		errs := 0
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if err != nil {
				errs++
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %s", c.src, want, repr.String(got))
			}
		}
		if got, err := scan.next(); err != nil || got.kind != tokenEOF {
			t.Errorf("scanning %q: expected EOF, got %v (err %v)", c.src, got, err)
		}
		if _, err := scan.next(); err != io.EOF {
			t.Errorf("scanning %q: expected io.EOF after EOF token, got %v", c.src, err)
		}
		if errs != c.errs {
			t.Errorf("scanning %q: want %d errors, got %d", c.src, c.errs, errs)
		}
	}
}

// TestLexMinus checks how - next to digits is split between operators and
// signed numbers. The parser only asks for an operator directly after a
// complete left operand, so - after a number, name, or close parenthesis must
// be an operator, while - after ( or another operator may be a sign.
func TestLexMinus(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		greedy bool
		tokens []lexToken
		errs   int
	}{
		{
			name: "sub-nums",
			src:  "(2-3)",
			tokens: []lexToken{
				{text: "(", kind: tokenOpen, pos: 1},
				{text: "2", kind: tokenNum, pos: 2},
				{text: "-", kind: tokenOp, pos: 3},
				{text: "3", kind: tokenNum, pos: 4},
				{text: ")", kind: tokenClose, pos: 5},
			},
		},
		{
			name: "sub-neg",
			src:  "(x - -2)",
			tokens: []lexToken{
				{text: "(", kind: tokenOpen, pos: 1},
				{text: "x", kind: tokenIdent, pos: 2},
				{text: "-", kind: tokenOp, pos: 4},
				{text: "-2", kind: tokenNum, pos: 6},
				{text: ")", kind: tokenClose, pos: 8},
			},
		},
		{
			name: "name-then-digit",
			src:  "(x -2)",
			tokens: []lexToken{
				{text: "(", kind: tokenOpen, pos: 1},
				{text: "x", kind: tokenIdent, pos: 2},
				{text: "-", kind: tokenOp, pos: 4},
				{text: "2", kind: tokenNum, pos: 5},
				{text: ")", kind: tokenClose, pos: 6},
			},
		},
		{
			name: "close-then-digit",
			src:  "((1)-(2))",
			tokens: []lexToken{
				{text: "(", kind: tokenOpen, pos: 1},
				{text: "(", kind: tokenOpen, pos: 2},
				{text: "1", kind: tokenNum, pos: 3},
				{text: ")", kind: tokenClose, pos: 4},
				{text: "-", kind: tokenOp, pos: 5},
				{text: "(", kind: tokenOpen, pos: 6},
				{text: "2", kind: tokenNum, pos: 7},
				{text: ")", kind: tokenClose, pos: 8},
				{text: ")", kind: tokenClose, pos: 9},
			},
		},
		{
			name: "open-then-neg",
			src:  "(-2 * x)",
			tokens: []lexToken{
				{text: "(", kind: tokenOpen, pos: 1},
				{text: "-2", kind: tokenNum, pos: 2},
				{text: "*", kind: tokenOp, pos: 5},
				{text: "x", kind: tokenIdent, pos: 7},
				{text: ")", kind: tokenClose, pos: 8},
			},
		},
		{
			name: "neg-fraction",
			src:  "(3 / -.5)",
			tokens: []lexToken{
				{text: "(", kind: tokenOpen, pos: 1},
				{text: "3", kind: tokenNum, pos: 2},
				{text: "/", kind: tokenOp, pos: 4},
				{text: "-.5", kind: tokenNum, pos: 6},
				{text: ")", kind: tokenClose, pos: 9},
			},
		},
		{
			name: "neg-name",
			src:  "(1 * -x)",
			tokens: []lexToken{
				{text: "(", kind: tokenOpen, pos: 1},
				{text: "1", kind: tokenNum, pos: 2},
				{text: "*", kind: tokenOp, pos: 4},
				{text: "-", kind: tokenOp, pos: 6},
				{text: "x", kind: tokenIdent, pos: 7},
				{text: ")", kind: tokenClose, pos: 8},
			},
		},
		{
			name:   "greedy-sub-nums",
			src:    "(2-3)",
			greedy: true,
			tokens: []lexToken{
				{text: "(", kind: tokenOpen, pos: 1},
				{pos: 2},
				{text: ")", kind: tokenClose, pos: 5},
			},
			errs: 1,
		},
		{
			name:   "greedy-name-then-digit",
			src:    "(x -2)",
			greedy: true,
			tokens: []lexToken{
				{text: "(", kind: tokenOpen, pos: 1},
				{text: "x", kind: tokenIdent, pos: 2},
				{text: "-2", kind: tokenNum, pos: 4},
				{text: ")", kind: tokenClose, pos: 6},
			},
		},
		{
			name:   "greedy-spaced",
			src:    "(x - 2)",
			greedy: true,
			tokens: []lexToken{
				{text: "(", kind: tokenOpen, pos: 1},
				{text: "x", kind: tokenIdent, pos: 2},
				{text: "-", kind: tokenOp, pos: 4},
				{text: "2", kind: tokenNum, pos: 6},
				{text: ")", kind: tokenClose, pos: 7},
			},
		},
		{
			name:   "greedy-names",
			src:    "(x-y)",
			greedy: true,
			tokens: []lexToken{
				{text: "(", kind: tokenOpen, pos: 1},
				{text: "x", kind: tokenIdent, pos: 2},
				{text: "-", kind: tokenOp, pos: 3},
				{text: "y", kind: tokenIdent, pos: 4},
				{text: ")", kind: tokenClose, pos: 5},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scan := lex(strings.NewReader(c.src), c.greedy)
			errs := 0
			for _, want := range c.tokens {
				got, err := scan.next()
				if err != nil {
					errs++
				}
				if got != want {
					t.Errorf("want %v, got %s", want, repr.String(got))
				}
			}
			if got, err := scan.next(); err != nil || got.kind != tokenEOF {
				t.Errorf("expected EOF, got %v (err %v)", got, err)
			}
			if errs != c.errs {
				t.Errorf("want %d errors, got %d", c.errs, errs)
			}
		})
	}
}
