// Package day06 counts the ways to beat boat race records.
package day06

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/aoc2023/internal/input"
	"github.com/dshills/aoc2023/internal/numbers"
)

var (
	// ErrMalformedRaces is returned when the Time and Distance lines are missing or uneven.
	ErrMalformedRaces = errors.New("malformed races")
	// ErrNoWin is returned when no hold time beats the record.
	ErrNoWin = errors.New("record cannot be beaten")
)

// Race is a race duration and the record distance for it.
type Race struct {
	Time     int
	Distance int
}

// WaysToWin counts the hold times that travel farther than distance within
// time. It reports false if no hold time wins.
func WaysToWin(time, distance int) (int, bool) {
	// Travel is symmetric around time/2, so the first winning hold time
	// also fixes the last one.
	for hold := 1; hold <= time/2; hold++ {
		if hold*(time-hold) > distance {
			return time + 1 - 2*hold, true
		}
	}
	return 0, false
}

func readTable(r io.Reader) (times, distances string, err error) {
	lines, err := input.ReadLines(r)
	if err != nil {
		return "", "", err
	}
	for _, line := range lines {
		label, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(label) {
		case "Time":
			times = rest
		case "Distance":
			distances = rest
		}
	}
	if times == "" || distances == "" {
		return "", "", fmt.Errorf("day06: %w: need Time and Distance lines", ErrMalformedRaces)
	}
	return times, distances, nil
}

// ParseRaces pairs each time with the distance in the same column.
func ParseRaces(r io.Reader) ([]Race, error) {
	timeField, distField, err := readTable(r)
	if err != nil {
		return nil, err
	}
	times, err := numbers.Ints(timeField)
	if err != nil {
		return nil, fmt.Errorf("day06.ParseRaces: %w", err)
	}
	dists, err := numbers.Ints(distField)
	if err != nil {
		return nil, fmt.Errorf("day06.ParseRaces: %w", err)
	}
	if len(times) != len(dists) {
		return nil, fmt.Errorf("day06.ParseRaces: %w: %d times, %d distances", ErrMalformedRaces, len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Distance: dists[i]}
	}
	return races, nil
}

// joinDigits reads the digits of s as one number, ignoring the spaces between them.
func joinDigits(s string) (int, error) {
	n, err := strconv.Atoi(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return 0, fmt.Errorf("day06: %w: %v", ErrMalformedRaces, err)
	}
	return n, nil
}

// Part1 multiplies together the ways to win each race that can be won.
func Part1(r io.Reader) (int, error) {
	races, err := ParseRaces(r)
	if err != nil {
		return 0, err
	}
	var ways []int
	for _, race := range races {
		if n, ok := WaysToWin(race.Time, race.Distance); ok {
			ways = append(ways, n)
		}
	}
	return numbers.Product(ways...), nil
}

// Part2 treats each line as a single race with its digits run together.
func Part2(r io.Reader) (int, error) {
	timeField, distField, err := readTable(r)
	if err != nil {
		return 0, err
	}
	time, err := joinDigits(timeField)
	if err != nil {
		return 0, err
	}
	dist, err := joinDigits(distField)
	if err != nil {
		return 0, err
	}
	n, ok := WaysToWin(time, dist)
	if !ok {
		return 0, fmt.Errorf("day06.Part2: %w: time %d, distance %d", ErrNoWin, time, dist)
	}
	return n, nil
}
