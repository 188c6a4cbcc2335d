// Package day01 recovers calibration values from lines of text.
package day01

import (
	"io"
	"strings"

	"github.com/dshills/aoc2023/internal/input"
)

var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// DigitPair combines the first and last ASCII numeral in line as a two-digit
// number. A line with a single numeral uses it twice. It returns 0 if line has
// no numerals.
func DigitPair(line string) int {
	first := strings.IndexFunc(line, isDigit)
	if first < 0 {
		return 0
	}
	last := strings.LastIndexFunc(line, isDigit)
	return int(line[first]-'0')*10 + int(line[last]-'0')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// SubstituteWords replaces every spelled-out digit in line with its numeral,
// keeping the word's first and last letters: "one" becomes "o1e". Words that
// share letters are all found, so "oneight" becomes "o1e8t".
func SubstituteWords(line string) string {
	n := len(line)
	digitAt := make([]byte, n)
	inner := make([]bool, n)
	edge := make([]bool, n)

	for d, w := range digitWords {
		for start := 0; start+len(w) <= n; start++ {
			if line[start:start+len(w)] != w {
				continue
			}
			end := start + len(w) - 1
			digitAt[start] = byte('1' + d)
			edge[start], edge[end] = true, true
			for i := start + 1; i < end; i++ {
				inner[i] = true
			}
		}
	}

	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		if !inner[i] || edge[i] {
			b.WriteByte(line[i])
		}
		if digitAt[i] != 0 {
			b.WriteByte(digitAt[i])
		}
	}
	return b.String()
}

// Part1 sums the digit pair of every line.
func Part1(r io.Reader) (int, error) {
	return sumLines(r, DigitPair)
}

// Part2 sums the digit pair of every line after spelled-out digits are substituted.
func Part2(r io.Reader) (int, error) {
	return sumLines(r, func(line string) int {
		return DigitPair(SubstituteWords(line))
	})
}

func sumLines(r io.Reader, score func(string) int) (int, error) {
	src := input.NewSource(r)
	total := 0
	for line := range src.Lines() {
		total += score(line)
	}
	return total, src.Err()
}
