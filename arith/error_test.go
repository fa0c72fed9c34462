package arith

import (
	"errors"
	"testing"
)

func TestError_IsMatchesDerived(t *testing.T) {
	derived := ErrTrailingCharacters.WithOffset(5)

	if !errors.Is(derived, ErrTrailingCharacters) {
		t.Error("derived error does not match its sentinel")
	}

	if errors.Is(derived, ErrNoExpression) {
		t.Error("derived error matches an unrelated sentinel")
	}
}

func TestError_OffsetInMessage(t *testing.T) {
	err := ErrInvalidCharacters.WithOffset(3)

	want := "Input expression contains invalid characters at offset 3"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	offset, ok := err.Offset()
	if !ok || offset != 3 {
		t.Errorf("Offset() = %d, %v, want 3, true", offset, ok)
	}

	if _, ok := ErrInvalidCharacters.Offset(); ok {
		t.Error("sentinel reports an offset")
	}
}

func TestError_WrapUnwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := ErrReadInput.Wrap(cause)

	if !errors.Is(err, ErrReadInput) {
		t.Error("wrapped error does not match its sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("wrapped error does not match its cause")
	}

	want := "failed to read input: disk on fire"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapError(t *testing.T) {
	if got := WrapError(ErrEmptyParens); got != ErrEmptyParens {
		t.Errorf("WrapError of *Error = %v, want same value", got)
	}

	plain := errors.New("plain")

	wrapped := WrapError(plain)
	if !errors.Is(wrapped, plain) {
		t.Error("WrapError of plain error does not match its cause")
	}
}
