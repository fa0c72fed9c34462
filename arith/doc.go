// Package arith parses and evaluates arithmetic expressions over
// non-negative integer literals.
//
// The grammar supports the four basic operators with the usual precedence
// (* and / bind tighter than + and -), left associativity, parentheses for
// grouping, and arbitrary whitespace between tokens. Division is integer
// division, truncating toward zero.
//
// Mismatched parentheses are tolerated when the missing parentheses would
// sit at the start or end of the input: extra leading '(' and extra
// trailing ')' both parse successfully. All other malformed input is
// rejected with a descriptive [*Error].
//
// # Basic Usage
//
//	expr, err := arith.Parse("(50 - 11) * 2")
//	if err != nil {
//		// err describes the first violation and its offset
//	}
//	fmt.Println(expr.Eval()) // 78
//
// Parsed expressions are immutable trees. [Expr.Eval] is pure and
// repeatable, and a parsed tree may be evaluated concurrently by any
// number of goroutines.
//
// # Limits
//
// Integer literals must fit the platform int width; longer digit runs are
// rejected during parsing. Arithmetic wraps per Go int semantics, and a
// zero divisor panics with Go's native integer-division runtime error.
// There are no unary operators, variables, or non-integer values.
package arith
