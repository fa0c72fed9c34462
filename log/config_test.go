package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{" text ", FormatText},
		{"text", FormatText},
		{"bogus", DefaultFormat},
		{"", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevels_YieldsAllLevels(t *testing.T) {
	want := []string{"trace", "debug", "info", "warn", "error"}

	got := slices.Collect(Levels())
	if !slices.Equal(got, want) {
		t.Errorf("Levels() = %v, want %v", got, want)
	}
}

func TestFormats_YieldsAllFormats(t *testing.T) {
	want := []string{"json", "text"}

	got := slices.Collect(Formats())
	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	ref := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"named rfc3339", "RFC3339", ref.Format(time.RFC3339)},
		{"named kitchen", "Kitchen", ref.Format(time.Kitchen)},
		{"none disables time", "none", ""},
		{"empty disables time", "", ""},
		{"custom layout verbatim", "2006-01-02", "2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := makeFormatTimeFunc(tt.layout)
			if got := format(ref); got != tt.want {
				t.Errorf("format(%v) = %q, want %q", ref, got, tt.want)
			}
		})
	}
}
