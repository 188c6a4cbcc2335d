// Package day03 enumerates the cells of an engine schematic grid.
//
// Only coordinate enumeration is provided; part-number and gear-ratio
// detection are not implemented.
package day03

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/aoc2023/internal/input"
)

const symbols = "*$+&-=%#@/"

// Cell is one character of the grid at column X and row Y, both 0-based.
type Cell struct {
	X    int
	Y    int
	Char rune
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d): %c", c.X, c.Y, c.Char)
}

// Cells lists every cell of lines in row-major order.
func Cells(lines []string) []Cell {
	var cells []Cell
	for y, line := range lines {
		x := 0
		for _, ch := range line {
			cells = append(cells, Cell{X: x, Y: y, Char: ch})
			x++
		}
	}
	return cells
}

// IsSymbol reports whether r is one of the schematic symbols.
func IsSymbol(r rune) bool {
	return strings.ContainsRune(symbols, r)
}

// Symbols keeps only the cells holding a schematic symbol.
func Symbols(cells []Cell) []Cell {
	var out []Cell
	for _, c := range cells {
		if IsSymbol(c.Char) {
			out = append(out, c)
		}
	}
	return out
}

// Dump writes one "(x, y): c" line per cell of the grid read from r.
func Dump(r io.Reader, w io.Writer) error {
	lines, err := input.ReadLines(r)
	if err != nil {
		return fmt.Errorf("day03.Dump: %w", err)
	}
	bw := bufio.NewWriter(w)
	for _, c := range Cells(lines) {
		if _, err := fmt.Fprintln(bw, c); err != nil {
			return fmt.Errorf("day03.Dump: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("day03.Dump: %w", err)
	}
	return nil
}
