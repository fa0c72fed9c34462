package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/intexpr/arith"
	"github.com/ardnew/intexpr/log"
)

// Eval parses and evaluates integer arithmetic expressions.
//
// The expression is read from the command-line arguments when given,
// otherwise one expression per non-blank line from the source files (or
// stdin) named with --source.
type Eval struct {
	Expr []string `arg:"" help:"Expression to evaluate" name:"expr" optional:""`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if len(e.Expr) > 0 {
		expr, err := parseArgs(e.Expr)
		if err != nil {
			return err
		}

		return printValue(expr)
	}

	return forEachExpr(ctx, printValue)
}

func printValue(expr arith.Expr) error {
	value, err := evaluate(expr)
	if err != nil {
		return err
	}

	fmt.Println(value)

	return nil
}

// parseArgs parses the command-line arguments as a single expression.
// Newlines are ordinary whitespace to the parser, so a quoted multi-line
// argument still holds one expression.
func parseArgs(args []string) (arith.Expr, error) {
	return arith.Parse(strings.Join(args, " "))
}

// forEachExpr parses each non-blank line of the source files carried in
// ctx and calls fn with the parsed expression. Lines go through the parse
// cache, so repeated expressions share one tree.
func forEachExpr(ctx context.Context, fn func(arith.Expr) error) error {
	src := sourceFilesFrom(ctx)
	if src == nil || src.IsZero() {
		return ErrNoInput
	}

	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		expr, err := arith.ParseReader(
			ctx,
			strings.NewReader(line),
			arith.WithLogger(log.Default()),
		)
		if err != nil {
			return arith.WrapError(err).
				With(slog.String("line", line))
		}

		if err := fn(expr); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// evaluate computes the value of expr, converting evaluation faults such as
// integer division by zero into an error.
func evaluate(expr arith.Expr) (value int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrEvalFault.With(
				slog.Any("fault", r),
				slog.String("expression", expr.String()),
			)
		}
	}()

	return expr.Eval(), nil
}
