package arith

import "strconv"

// Op identifies one of the four supported binary operators. Its value is
// the operator's symbol character.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

// String returns the operator symbol.
func (o Op) String() string { return string(o) }

// apply computes the operator over two operands. Division truncates toward
// zero and, like any Go integer division, panics on a zero divisor.
func (o Op) apply(a, b int) int {
	switch o {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	}

	panic("arith: unknown operator " + strconv.QuoteRune(rune(o)))
}

// Expr is an immutable integer computation produced by [Parse].
// Implementations are safe for concurrent use by multiple goroutines.
type Expr interface {
	// Eval computes the value of the expression. It is pure: repeated calls
	// return the same result with no side effects.
	Eval() int

	// String renders the expression fully parenthesized.
	String() string
}

// Literal is an integer literal.
type Literal int

// Eval returns the literal value.
func (l Literal) Eval() int { return int(l) }

// String returns the decimal representation of the literal.
func (l Literal) String() string { return strconv.Itoa(int(l)) }

// Binary combines two subexpressions with an operator.
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

// Eval evaluates the operands depth-first, left to right, then applies the
// operator.
func (b Binary) Eval() int { return b.Op.apply(b.Left.Eval(), b.Right.Eval()) }

// String renders the combination parenthesized, so the output always
// parses back to an identical tree regardless of operator precedence.
func (b Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}
