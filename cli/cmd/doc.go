// Package cmd implements the intexpr subcommands (eval, fmt, init, repl)
// and the context plumbing shared between them.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the base
	// path of the configuration file (without extension).
	ConfigIdentifier = "config"
)
