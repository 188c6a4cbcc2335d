// Package input handles locating, reading, and line-splitting puzzle input files.
package input

import (
	"bufio"
	"crypto/sha256"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Dir is the directory under the project root that holds puzzle inputs.
const Dir = "puzzle_inputs"

const maxLineSize = 1 << 20

// File holds a loaded puzzle input with its content and metadata.
type File struct {
	FilePath string
	Data     []byte
	Lines    int
	Hash     string
}

// Path returns the input file path for a day, e.g. <home>/puzzle_inputs/day04.txt.
func Path(home string, day int) string {
	return filepath.Join(home, Dir, fmt.Sprintf("day%02d.txt", day))
}

// Load reads an input file and computes its SHA-256 hash.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input.Load: %w", err)
	}
	return FromBytes(path, data), nil
}

// FromBytes wraps in-memory input, such as a catalog sample, as a File.
func FromBytes(name string, data []byte) *File {
	h := sha256.Sum256(data)
	return &File{
		FilePath: name,
		Data:     data,
		Lines:    countLines(data),
		Hash:     fmt.Sprintf("sha256:%x", h),
	}
}

func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := strings.Count(string(data), "\n")
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}

// Source is a single-use sequence of trimmed lines read from r.
type Source struct {
	sc   *bufio.Scanner
	used bool
	err  error
}

// NewSource returns a Source reading from r.
func NewSource(r io.Reader) *Source {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Source{sc: sc}
}

// Lines yields each line with surrounding whitespace removed, in file order.
// The sequence can be ranged over once; later calls yield nothing.
func (s *Source) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s.used {
			return
		}
		s.used = true
		for s.sc.Scan() {
			if !yield(strings.TrimSpace(s.sc.Text())) {
				return
			}
		}
		if err := s.sc.Err(); err != nil {
			s.err = fmt.Errorf("input.Source: %w", err)
		}
	}
}

// Err returns the first read error encountered by Lines.
func (s *Source) Err() error {
	return s.err
}

// ReadLines materializes every trimmed line of r.
func ReadLines(r io.Reader) ([]string, error) {
	src := NewSource(r)
	var lines []string
	for line := range src.Lines() {
		lines = append(lines, line)
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
