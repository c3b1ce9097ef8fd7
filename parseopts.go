package symbolic

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type greedyopt bool

// parsectx holds general data for parsing.
type parsectx struct {
	// greedy makes the lexer treat every - as part of a number.
	greedy bool
}

// GreedyMinus makes the lexer absorb every - into the digit run around it,
// regardless of whether the parser would expect an operator there. A lone -
// is still subtraction, but "(2-3)" becomes the invalid number "2-3" and
// "(x -2)" becomes x followed by the number -2 with no operator. Without this
// option, - begins a number only in operand position, i.e. at the start of
// the input or after ( or another operator, and only when a digit follows.
func GreedyMinus() ParseOption {
	return greedyopt(true)
}

func (o greedyopt) parseOption(p parsectx) parsectx {
	p.greedy = bool(o)
	return p
}
