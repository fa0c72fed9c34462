package arith

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/intexpr/log"
)

// Option configures a call to [ParseReader].
type Option func(*config)

type config struct {
	logger log.Logger
	cache  bool
}

// WithLogger attaches a logger used to trace parse attempts and cache
// activity. The zero Logger discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithCache controls whether parse results are memoized. Enabled by
// default.
func WithCache(enable bool) Option {
	return func(c *config) { c.cache = enable }
}

// result is one memoized outcome of Parse.
type result struct {
	expr Expr
	err  error
}

// parsedCache stores parse results keyed by the xxh3 hash of the input.
// Parsed trees are immutable, so cache hits share the same Expr.
//
//nolint:gochecknoglobals
var parsedCache sync.Map

// ParseReader reads one complete expression from r and parses it.
//
// The reader is wrapped with asynchronous read-ahead so input is
// pre-fetched while earlier chunks are processed. Results, including
// failures, are memoized by input hash unless disabled with
// [WithCache].
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (Expr, error) {
	cfg := config{cache: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	source := string(data)

	cfg.logger.TraceContext(ctx, "read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	if !cfg.cache {
		return Parse(source)
	}

	key := xxh3.HashString(source)

	if v, ok := parsedCache.Load(key); ok {
		if hit, ok := v.(result); ok {
			cfg.logger.DebugContext(ctx, "cache hit",
				slog.String("source_hash", strconv.FormatUint(key, 16)),
			)

			return hit.expr, hit.err
		}
	}

	expr, err := Parse(source)
	parsedCache.Store(key, result{expr: expr, err: err})

	cfg.logger.DebugContext(ctx, "cache store",
		slog.String("source_hash", strconv.FormatUint(key, 16)),
		slog.Bool("valid", err == nil),
	)

	return expr, err
}

// ClearCache removes all memoized parse results. This is primarily useful
// for testing or when memory needs to be reclaimed.
func ClearCache() {
	parsedCache.Clear()
}
