package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyHandler implements a colorized slog.Handler for both text and
// JSON output formats.
type prettyHandler struct {
	opts       slog.HandlerOptions
	mu         *sync.Mutex
	w          io.Writer
	formatTime FormatTime
	format     Format
	attrs      []slog.Attr
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	format Format,
	formatTime FormatTime,
) *prettyHandler {
	return &prettyHandler{
		opts:       *opts,
		mu:         &sync.Mutex{},
		w:          w,
		formatTime: formatTime,
		format:     format,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if h.format == FormatJSON {
		buf.WriteString("{\n")
	}

	if !r.Time.IsZero() {
		if formatted := h.formatTime(r.Time); formatted != "" {
			h.writeField(buf, slog.TimeKey, slog.StringValue(formatted))
		}
	}

	h.writeField(buf, slog.LevelKey, slog.AnyValue(r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeField(buf, slog.SourceKey,
				slog.StringValue(fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	h.writeField(buf, slog.MessageKey, slog.StringValue(r.Message))

	for _, a := range h.attrs {
		h.writeField(buf, a.Key, a.Value)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeField(buf, a.Key, a.Value)

		return true
	})

	if h.format == FormatJSON {
		buf.WriteString("\n}")
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &clone
}

func (h *prettyHandler) WithGroup(string) slog.Handler {
	// Groups are flattened in pretty output.
	return h
}

func (h *prettyHandler) writeField(
	buf *bytes.Buffer,
	key string,
	v slog.Value,
) {
	if h.format == FormatJSON {
		if buf.Len() > 2 { // past the opening "{\n"
			buf.WriteString(",\n")
		}

		buf.WriteString("  ")
		buf.WriteString(colorGray)
		buf.WriteString(key)
		buf.WriteString(colorReset)
		buf.WriteString(": ")
	} else {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(colorGray)
		buf.WriteString(key)
		buf.WriteString(colorReset)
		buf.WriteByte('=')
	}

	h.writeValue(buf, v)
}

func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	v = v.Resolve()

	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(colorCyan)
		buf.WriteString(v.String())
		buf.WriteString(colorReset)

	case slog.KindInt64:
		buf.WriteString(colorYellow)
		buf.WriteString(strconv.FormatInt(v.Int64(), 10))
		buf.WriteString(colorReset)

	case slog.KindUint64:
		buf.WriteString(colorYellow)
		buf.WriteString(strconv.FormatUint(v.Uint64(), 10))
		buf.WriteString(colorReset)

	case slog.KindFloat64:
		buf.WriteString(colorYellow)
		buf.WriteString(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
		buf.WriteString(colorReset)

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(colorGreen)
			buf.WriteString("true")
		} else {
			buf.WriteString(colorRed)
			buf.WriteString("false")
		}

		buf.WriteString(colorReset)

	case slog.KindDuration:
		buf.WriteString(colorMagenta)
		buf.WriteString(v.Duration().String())
		buf.WriteString(colorReset)

	case slog.KindTime:
		buf.WriteString(colorBlue)
		buf.WriteString(v.Time().Format(time.RFC3339))
		buf.WriteString(colorReset)

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			switch {
			case level >= slog.LevelError:
				buf.WriteString(colorRed)
			case level >= slog.LevelWarn:
				buf.WriteString(colorYellow)
			case level >= slog.LevelInfo:
				buf.WriteString(colorGreen)
			default:
				buf.WriteString(colorBlue)
			}

			buf.WriteString(levelName(level))
			buf.WriteString(colorReset)

			return
		}

		buf.WriteString(colorCyan)
		fmt.Fprint(buf, v.Any())
		buf.WriteString(colorReset)

	default:
		buf.WriteString(colorCyan)
		buf.WriteString(v.String())
		buf.WriteString(colorReset)
	}
}

func levelName(level slog.Level) string {
	if Level(level) == LevelTrace {
		return "TRACE"
	}

	return level.String()
}
