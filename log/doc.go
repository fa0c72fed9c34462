// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stdout)
//	logger.Info("parse complete", slog.String("source", src))
//
// A zero-value [Logger] is valid and discards all messages, so library
// code can log unconditionally through an optional logger.
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stdout,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package also maintains a default logger used by the package-level
// functions ([Info], [Error], ...), reconfigured with [Config].
//
// # Supported Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded. Trace sits below slog's debug level and is rendered as
// "TRACE".
//
// # Output Formats
//
// Two output formats are supported, [FormatJSON] (default) and
// [FormatText], each with an optional colorized pretty variant enabled by
// [WithPretty].
package log
