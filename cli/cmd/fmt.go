package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/intexpr/arith"
)

// Fmt prints expressions in canonical fully parenthesized form without
// evaluating them. Tolerated parenthesis mismatches come out repaired.
type Fmt struct {
	Expr []string `arg:"" help:"Expression to format" name:"expr" optional:""`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if len(f.Expr) > 0 {
		expr, err := parseArgs(f.Expr)
		if err != nil {
			return err
		}

		fmt.Println(expr.String())

		return nil
	}

	return forEachExpr(ctx, func(expr arith.Expr) error {
		fmt.Println(expr.String())

		return nil
	})
}
