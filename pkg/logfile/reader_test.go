package logfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListFiles(t *testing.T) {
	// 1. Create a directory with files in non-lexical creation order plus a subdirectory
	tmpDir := t.TempDir()
	for _, name := range []string{"b.log", "a.log"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x\n"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "sub"), 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "sub", "c.log"), []byte("x\n"), 0644); err != nil {
		t.Fatalf("Failed to create nested file: %v", err)
	}

	// 2. List the directory
	files, err := ListFiles(tmpDir)
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}

	// 3. Only the top-level files, in lexical order
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d: %v", len(files), files)
	}
	if files[0] != filepath.Join(tmpDir, "a.log") || files[1] != filepath.Join(tmpDir, "b.log") {
		t.Errorf("Files not in lexical order: %v", files)
	}
}

func TestListFiles_MissingDirectory(t *testing.T) {
	if _, err := ListFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("Expected an error for a missing directory, got nil")
	}
}

func TestReader_ReadLines(t *testing.T) {
	// Blank lines are lines too; the reader must deliver them.
	path := filepath.Join(t.TempDir(), "sample.log")
	if err := os.WriteFile(path, []byte("one\n\nthree\n"), 0644); err != nil {
		t.Fatalf("Failed to write sample file: %v", err)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("Failed to create reader: %v", err)
	}
	defer reader.Close()

	var lines []string
	if err := reader.ReadLines(func(line string) {
		lines = append(lines, line)
	}); err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}

	want := []string{"one", "", "three"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestReader_LongLine(t *testing.T) {
	// A line past bufio's default 64K token limit must still be readable.
	long := strings.Repeat("x", 100*1024)
	path := filepath.Join(t.TempDir(), "long.log")
	if err := os.WriteFile(path, []byte(long+"\nshort\n"), 0644); err != nil {
		t.Fatalf("Failed to write sample file: %v", err)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("Failed to create reader: %v", err)
	}
	defer reader.Close()

	var lines []string
	if err := reader.ReadLines(func(line string) {
		lines = append(lines, line)
	}); err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if len(lines[0]) != len(long) {
		t.Errorf("Long line truncated: expected %d bytes, got %d", len(long), len(lines[0]))
	}
	if lines[1] != "short" {
		t.Errorf("Expected trailing line %q, got %q", "short", lines[1])
	}
}

func TestReader_OversizedLine(t *testing.T) {
	// A line past maxLineBytes surfaces as a read error, after any lines
	// before it were delivered.
	path := filepath.Join(t.TempDir(), "oversized.log")
	content := "first\n" + strings.Repeat("x", maxLineBytes+1) + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write sample file: %v", err)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("Failed to create reader: %v", err)
	}
	defer reader.Close()

	var lines []string
	err = reader.ReadLines(func(line string) {
		lines = append(lines, line)
	})
	if err == nil {
		t.Fatal("Expected an error for an oversized line, got nil")
	}
	if len(lines) != 1 || lines[0] != "first" {
		t.Errorf("Lines before the oversized one lost: %v", lines)
	}
}

func TestReader_MissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "nope.log")); err == nil {
		t.Fatal("Expected an error for a missing file, got nil")
	}
}
