// Package day04 scores scratchcards and counts the copies they win.
package day04

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/dshills/aoc2023/internal/input"
	"github.com/dshills/aoc2023/internal/numbers"
)

var (
	// ErrMalformedCard is returned for lines not shaped like "Card N: ... | ...".
	ErrMalformedCard = errors.New("malformed card")
	// ErrCardOrder is returned when card ids are not 1, 2, 3, ... in input order.
	ErrCardOrder = errors.New("card ids out of sequence")
)

// Card is a parsed scratchcard.
type Card struct {
	ID      int
	Winning []int
	Have    []int
	// Matches is how many distinct numbers appear in both Winning and Have.
	Matches int
}

var cardPattern = regexp.MustCompile(`^Card\s+(\d+):([\d\s]*)\|([\d\s]*)$`)

// ParseCard parses a line like "Card 1: 41 48 83 | 83 86  6".
func ParseCard(line string) (Card, error) {
	m := cardPattern.FindStringSubmatch(line)
	if m == nil {
		return Card{}, fmt.Errorf("day04.ParseCard: %w: %q", ErrMalformedCard, line)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Card{}, fmt.Errorf("day04.ParseCard: %w", err)
	}
	winning, err := numbers.Ints(m[2])
	if err != nil {
		return Card{}, fmt.Errorf("day04.ParseCard: %w", err)
	}
	have, err := numbers.Ints(m[3])
	if err != nil {
		return Card{}, fmt.Errorf("day04.ParseCard: %w", err)
	}
	return Card{
		ID:      id,
		Winning: winning,
		Have:    have,
		Matches: numbers.Intersect(numbers.Set(winning), numbers.Set(have)),
	}, nil
}

// Score is 2^(matches-1), or 0 when nothing matches.
func Score(matches int) int {
	if matches < 1 {
		return 0
	}
	return 1 << (matches - 1)
}

// Propagate returns how many copies of each card exist once every card has
// awarded copies of the cards after it. matches[i] is the match count of the
// card at position i. Each card starts with one copy; card i adds its copy
// count to each of the next matches[i] cards, stopping at the last card.
func Propagate(matches []int) []int {
	n := len(matches)
	copies := make([]int, n)
	for i := range copies {
		copies[i] = 1
	}
	// Cards are finalized left to right; this loop must stay sequential.
	for i, m := range matches {
		last := min(i+m, n-1)
		for j := i + 1; j <= last; j++ {
			copies[j] += copies[i]
		}
	}
	return copies
}

// ReadCards parses every non-blank line of r and checks that ids run 1..n.
func ReadCards(r io.Reader) ([]Card, error) {
	src := input.NewSource(r)
	var cards []Card
	for line := range src.Lines() {
		if line == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, err
		}
		if want := len(cards) + 1; c.ID != want {
			return nil, fmt.Errorf("day04.ReadCards: %w: got card %d, want %d", ErrCardOrder, c.ID, want)
		}
		cards = append(cards, c)
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

// Part1 sums the score of every card.
func Part1(r io.Reader) (int, error) {
	src := input.NewSource(r)
	total := 0
	for line := range src.Lines() {
		if line == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return 0, err
		}
		total += Score(c.Matches)
	}
	return total, src.Err()
}

// Part2 counts every card, original and won copies alike.
func Part2(r io.Reader) (int, error) {
	cards, err := ReadCards(r)
	if err != nil {
		return 0, err
	}
	matches := make([]int, len(cards))
	for i, c := range cards {
		matches[i] = c.Matches
	}
	return numbers.Sum(Propagate(matches)...), nil
}
