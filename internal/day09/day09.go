// Package day09 extrapolates integer sequences by repeated differencing.
package day09

import (
	"fmt"
	"io"

	"github.com/dshills/aoc2023/internal/input"
	"github.com/dshills/aoc2023/internal/numbers"
)

// Differences returns the gaps between neighbouring values of seq.
func Differences(seq []int) []int {
	if len(seq) < 2 {
		return nil
	}
	out := make([]int, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		out[i-1] = seq[i] - seq[i-1]
	}
	return out
}

func constant(seq []int) bool {
	for _, v := range seq[1:] {
		if v != seq[0] {
			return false
		}
	}
	return true
}

// Next extrapolates the value after the end of seq. An empty sequence yields 0.
func Next(seq []int) int {
	if len(seq) == 0 {
		return 0
	}
	last := seq[len(seq)-1]
	if constant(seq) {
		return last
	}
	return last + Next(Differences(seq))
}

// Prev extrapolates the value before the start of seq. An empty sequence yields 0.
func Prev(seq []int) int {
	if len(seq) == 0 {
		return 0
	}
	if constant(seq) {
		return seq[0]
	}
	return seq[0] - Prev(Differences(seq))
}

// Part1 sums the next value of every sequence.
func Part1(r io.Reader) (int, error) {
	return sumSequences(r, Next)
}

// Part2 sums the previous value of every sequence.
func Part2(r io.Reader) (int, error) {
	return sumSequences(r, Prev)
}

func sumSequences(r io.Reader, extrapolate func([]int) int) (int, error) {
	src := input.NewSource(r)
	var vals []int
	for line := range src.Lines() {
		seq, err := numbers.Ints(line)
		if err != nil {
			return 0, fmt.Errorf("day09: %w", err)
		}
		vals = append(vals, extrapolate(seq))
	}
	if err := src.Err(); err != nil {
		return 0, err
	}
	return numbers.Sum(vals...), nil
}
