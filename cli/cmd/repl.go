package cmd

import (
	"context"

	"github.com/ardnew/intexpr/cli/cmd/repl"
	"github.com/ardnew/intexpr/log"
)

// Repl starts the interactive calculator.
type Repl struct{}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	cacheDir, ok := ktx.Model.Vars()[CacheIdentifier]
	if !ok {
		panic("internal error: cache namespace undefined")
	}

	return repl.Run(ctx, cacheDir, log.Default())
}
