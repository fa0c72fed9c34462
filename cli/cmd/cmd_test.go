package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// TestWithSourceFilesEmpty tests that an empty source list returns nil reader.
func TestWithSourceFilesEmpty(t *testing.T) {
	ctx := WithSourceFiles(context.Background(), nil)
	reader := sourceFilesFrom(ctx)

	if reader != nil {
		t.Error("WithSourceFiles(nil) should store nil reader")
	}

	ctx = WithSourceFiles(context.Background(), []string{})
	reader = sourceFilesFrom(ctx)

	if reader != nil {
		t.Error("WithSourceFiles([]) should store nil reader")
	}
}

// TestWithSourceFilesSingleFile tests reading from a single file.
func TestWithSourceFilesSingleFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "intexpr-test-*.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := "1 + 2"
	if _, err := tmpfile.WriteString(content); err != nil {
		t.Fatal(err)
	}

	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	ctx := WithSourceFiles(context.Background(), []string{tmpfile.Name()})
	reader := sourceFilesFrom(ctx)

	if reader == nil {
		t.Fatal("WithSourceFiles should return non-nil reader for valid file")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("reading from source files: %v", err)
	}

	if string(data) != content {
		t.Errorf("got %q, want %q", string(data), content)
	}
}

// TestWithSourceFilesMultipleFiles tests reading from multiple files.
func TestWithSourceFilesMultipleFiles(t *testing.T) {
	tmpdir := t.TempDir()

	file1 := filepath.Join(tmpdir, "file1.txt")
	file2 := filepath.Join(tmpdir, "file2.txt")

	if err := os.WriteFile(file1, []byte("(1 + 2)"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(file2, []byte(" * 3"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := WithSourceFiles(context.Background(), []string{file1, file2})
	reader := sourceFilesFrom(ctx)

	if reader == nil {
		t.Fatal("WithSourceFiles should return non-nil reader")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("reading from source files: %v", err)
	}

	if string(data) != "(1 + 2) * 3" {
		t.Errorf("got %q, want %q", string(data), "(1 + 2) * 3")
	}
}

// TestWithSourceFilesDuplicatePaths tests deduplication of identical paths.
func TestWithSourceFilesDuplicatePaths(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "intexpr-test-*.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := "562"
	if _, err := tmpfile.WriteString(content); err != nil {
		t.Fatal(err)
	}

	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Pass same file multiple times
	ctx := WithSourceFiles(context.Background(), []string{
		tmpfile.Name(),
		tmpfile.Name(),
		tmpfile.Name(),
	})
	reader := sourceFilesFrom(ctx)

	if reader == nil {
		t.Fatal("WithSourceFiles should return non-nil reader")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("reading from source files: %v", err)
	}

	// Should only read once despite being listed 3 times
	if string(data) != content {
		t.Errorf("got %q, want %q (file should only be read once)",
			string(data), content)
	}
}

// TestWithSourceFilesNonexistent tests that unreadable files are skipped.
func TestWithSourceFilesNonexistent(t *testing.T) {
	ctx := WithSourceFiles(context.Background(), []string{
		filepath.Join(t.TempDir(), "does-not-exist"),
	})

	if reader := sourceFilesFrom(ctx); reader != nil {
		t.Error("expected nil reader when no source could be opened")
	}
}
