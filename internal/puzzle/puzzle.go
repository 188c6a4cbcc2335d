// Package puzzle maps day numbers to their solvers.
package puzzle

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/dshills/aoc2023/internal/day01"
	"github.com/dshills/aoc2023/internal/day02"
	"github.com/dshills/aoc2023/internal/day03"
	"github.com/dshills/aoc2023/internal/day04"
	"github.com/dshills/aoc2023/internal/day06"
	"github.com/dshills/aoc2023/internal/day09"
	"github.com/dshills/aoc2023/internal/report"
)

// PartFunc computes one part's answer from puzzle input.
type PartFunc func(io.Reader) (int, error)

// Solver holds everything that can be run for one day.
type Solver struct {
	Day int
	// Parts[0] is part 1, Parts[1] is part 2.
	Parts []PartFunc
	// Dump, if set, writes a listing of the input instead of answers.
	Dump func(io.Reader, io.Writer) error
}

var solvers = map[int]Solver{
	1: {Day: 1, Parts: []PartFunc{day01.Part1, day01.Part2}},
	2: {Day: 2, Parts: []PartFunc{day02.Part1, day02.Part2}},
	3: {Day: 3, Dump: day03.Dump},
	4: {Day: 4, Parts: []PartFunc{day04.Part1, day04.Part2}},
	6: {Day: 6, Parts: []PartFunc{day06.Part1, day06.Part2}},
	9: {Day: 9, Parts: []PartFunc{day09.Part1, day09.Part2}},
}

// Lookup returns the solver for day.
func Lookup(day int) (Solver, bool) {
	s, ok := solvers[day]
	return s, ok
}

// Days returns every day with a solver, ascending.
func Days() []int {
	days := make([]int, 0, len(solvers))
	for d := range solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Run computes the answer to part, or to every part when part is 0. Each part
// reads data from the start.
func (s Solver) Run(data []byte, part int) ([]report.Answer, error) {
	if part < 0 || part > len(s.Parts) {
		return nil, fmt.Errorf("puzzle.Run: day %d has no part %d", s.Day, part)
	}
	var answers []report.Answer
	for i, fn := range s.Parts {
		p := i + 1
		if part != 0 && part != p {
			continue
		}
		v, err := fn(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("puzzle.Run: day %d part %d: %w", s.Day, p, err)
		}
		answers = append(answers, report.Answer{Part: p, Value: v})
	}
	return answers, nil
}
