//go:build !pprof

package profile

import "sync"

// Modes returns no profiling modes when built without the pprof tag.
//
//nolint:gochecknoglobals
var Modes = sync.OnceValue(
	func() []string { return nil },
)

// start is a no-op when built without the pprof tag.
func start(string, string, bool) interface{ Stop() } {
	return ignore{}
}
