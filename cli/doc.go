// Package cli implements the intexpr command-line interface.
//
// The CLI is declared as a [kong] grammar with grouped flag structs for
// logging and profiling, a YAML configuration file resolver, and one
// subcommand per operation (eval, fmt, init, repl).
package cli
