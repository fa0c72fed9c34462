package arith

import (
	"log/slog"
	"strconv"
)

// Operator sets for the two precedence tiers.
const (
	lowPriorityOps  = "+-"
	highPriorityOps = "*/"
)

// Parse parses expression and returns its evaluable tree.
//
// The grammar is parsed by recursive descent in two precedence tiers, both
// built from the same operand-operator chain rule. Rules that find nothing
// to parse return a nil Expr without consuming input, so the caller
// backtracks for free; rules that find a structural violation abort the
// whole parse with an [*Error].
func Parse(expression string) (Expr, error) {
	if err := validate(expression); err != nil {
		return nil, err
	}

	p := &parser{scan: scanner{input: expression}}

	expr, err := p.parseLowPriority()
	if err != nil {
		return nil, err
	}

	if expr == nil {
		// Unreachable: validation guarantees a leading digit.
		return nil, ErrNoExpression
	}

	if err := p.finish(); err != nil {
		return nil, err
	}

	return expr, nil
}

// validate rejects blank input, disallowed characters, and input whose
// first character after any prefix of whitespace and '(' is not a digit.
// Missing or extra '(' at the start are tolerated; a leading operator or
// ')' is not.
func validate(expression string) error {
	blank := true

	for i := 0; i < len(expression); i++ {
		c := expression[i]
		if !isSpace(c) {
			blank = false
		}

		switch {
		case isDigit(c), isSpace(c),
			c == '(', c == ')', c == '+', c == '-', c == '*', c == '/':
		default:
			return ErrInvalidCharacters.WithOffset(i).
				With(slog.String("character", string(c)))
		}
	}

	if blank {
		return ErrNoExpression
	}

	for i := 0; i < len(expression); i++ {
		c := expression[i]
		if isSpace(c) || c == '(' {
			continue
		}

		if !isDigit(c) {
			return ErrLeadingCharacter.WithOffset(i).
				With(slog.String("character", string(c)))
		}

		break
	}

	return nil
}

// parser holds the parse state for one invocation of Parse. It is never
// shared: concurrent Parse calls each own their scanner exclusively.
type parser struct {
	scan scanner
}

// operandFunc parses one operand of a binary chain. A nil Expr with a nil
// error means the operand rule matched nothing and consumed nothing.
type operandFunc func() (Expr, error)

// parseBinaryChain parses operand (operator operand)*, folding the chain
// left-associatively into a Binary tree. It generalizes both precedence
// tiers; the tiers differ only in the rules plugged in.
//
// If the leading operand is absent the whole chain is absent. Once an
// operator has been consumed, a missing right operand is a hard error.
func (p *parser) parseBinaryChain(operand operandFunc, operators string) (Expr, error) {
	left, err := operand()
	if left == nil || err != nil {
		return left, err
	}

	for {
		op, ok := p.scan.oneOf(operators)
		if !ok {
			return left, nil
		}

		right, err := operand()
		if err != nil {
			return nil, err
		}

		if right == nil {
			return nil, ErrOperandExpected.WithOffset(p.scan.offset()).
				With(slog.String("operator", string(op)))
		}

		left = Binary{Op: Op(op), Left: left, Right: right}
	}
}

// parseLowPriority parses a chain of high-priority expressions joined by
// '+' and '-'. This is the expression entry point, invoked recursively for
// parenthesized subexpressions.
func (p *parser) parseLowPriority() (Expr, error) {
	return p.parseBinaryChain(p.parseHighPriority, lowPriorityOps)
}

// parseHighPriority parses a chain of atomic expressions joined by '*'
// and '/'.
func (p *parser) parseHighPriority() (Expr, error) {
	return p.parseBinaryChain(p.parseAtomic, highPriorityOps)
}

// parseAtomic parses a number or a parenthesized expression, optionally
// surrounded by whitespace. Whitespace consumed before a failed match is
// not restored; whitespace between tokens is always legal, so an enclosing
// chain that stops here is unaffected.
func (p *parser) parseAtomic() (Expr, error) {
	p.scan.space()

	expr, err := p.parseNumber()
	if expr == nil && err == nil {
		expr, err = p.parseParenthesized()
	}

	if expr != nil {
		p.scan.space()
	}

	return expr, err
}

// parseNumber parses a run of one or more digits as a base-10 literal.
// Digit runs exceeding the platform int width are a deterministic error.
func (p *parser) parseNumber() (Expr, error) {
	start := p.scan.offset()

	digits, ok := p.scan.digits()
	if !ok {
		return nil, nil
	}

	n, err := strconv.ParseInt(digits, 10, strconv.IntSize)
	if err != nil {
		return nil, ErrNumberRange.WithOffset(start).
			With(slog.String("literal", digits))
	}

	return Literal(n), nil
}

// parseParenthesized parses '(' expression [')']. An absent '(' is not an
// error, letting the atomic rule's number branch (or the caller) decide.
// An absent ')' is tolerated: it is accounted for either by the top-level
// trailing-input check or by an enclosing group's own missing ')'.
func (p *parser) parseParenthesized() (Expr, error) {
	open := p.scan.offset()

	if !p.scan.char('(') {
		return nil, nil
	}

	expr, err := p.parseLowPriority()
	if err != nil {
		return nil, err
	}

	if expr == nil {
		return nil, ErrEmptyParens.WithOffset(open)
	}

	p.scan.char(')')

	return expr, nil
}

// finish consumes trailing whitespace and stray ')' characters, which
// represent excess closers with no matching opener, then rejects anything
// left over.
func (p *parser) finish() error {
	for p.scan.space() || p.scan.char(')') {
	}

	if !p.scan.eof() {
		return ErrTrailingCharacters.WithOffset(p.scan.offset()).
			With(slog.String("remainder", p.scan.rest()))
	}

	return nil
}
