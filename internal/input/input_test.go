package input

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "day01.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPath(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, filepath.Join("/aoc", "puzzle_inputs", "day01.txt")},
		{4, filepath.Join("/aoc", "puzzle_inputs", "day04.txt")},
		{17, filepath.Join("/aoc", "puzzle_inputs", "day17.txt")},
	}
	for _, tt := range tests {
		if got := Path("/aoc", tt.day); got != tt.want {
			t.Errorf("Path(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	content := "line one\nline two\nline three\n"
	path := writeTempFile(t, content)

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Lines != 3 {
		t.Errorf("expected 3 lines, got %d", f.Lines)
	}
	if !strings.HasPrefix(f.Hash, "sha256:") {
		t.Errorf("expected sha256 prefix, got %s", f.Hash)
	}
	if string(f.Data) != content {
		t.Error("raw content mismatch")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/puzzle_inputs/day01.txt")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestCountLinesWithoutTrailingNewline(t *testing.T) {
	if got := FromBytes("x", []byte("a\nb")).Lines; got != 2 {
		t.Errorf("got %d lines, want 2", got)
	}
	if got := FromBytes("x", nil).Lines; got != 0 {
		t.Errorf("got %d lines, want 0", got)
	}
}

func TestSourceTrimsLines(t *testing.T) {
	src := NewSource(strings.NewReader("  abc  \n\tdef\n\nghi\r\n"))
	var got []string
	for line := range src.Lines() {
		got = append(got, line)
	}
	if err := src.Err(); err != nil {
		t.Fatal(err)
	}
	want := []string{"abc", "def", "", "ghi"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSourceIsSingleUse(t *testing.T) {
	src := NewSource(strings.NewReader("a\nb\n"))
	first := 0
	for range src.Lines() {
		first++
	}
	second := 0
	for range src.Lines() {
		second++
	}
	if first != 2 || second != 0 {
		t.Errorf("first pass %d lines, second pass %d; want 2 and 0", first, second)
	}
}

func TestSourceEarlyBreak(t *testing.T) {
	src := NewSource(strings.NewReader("a\nb\nc\n"))
	for line := range src.Lines() {
		if line == "a" {
			break
		}
	}
	if err := src.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("1\n2\n3"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 3 || lines[2] != "3" {
		t.Errorf("got %q", lines)
	}
}

func TestReadLinesTooLong(t *testing.T) {
	long := strings.Repeat("x", maxLineSize+1)
	_, err := ReadLines(strings.NewReader(long))
	if err == nil {
		t.Error("expected error for oversized line")
	}
}
