// Package day02 checks cube-drawing games against a bag's contents.
package day02

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/dshills/aoc2023/internal/input"
)

// ErrMalformedGame is returned for lines that do not describe a game.
var ErrMalformedGame = errors.New("malformed game")

// Bag is the cube count part 1 checks every draw against.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Cubes counts cubes of each color.
type Cubes struct {
	Red   int
	Green int
	Blue  int
}

// Within reports whether every color count of c is at most that of limit.
func (c Cubes) Within(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

// Max returns the per-color maximum of c and o.
func (c Cubes) Max(o Cubes) Cubes {
	return Cubes{
		Red:   max(c.Red, o.Red),
		Green: max(c.Green, o.Green),
		Blue:  max(c.Blue, o.Blue),
	}
}

// Power is the product of the three counts.
func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

// Game is one line of input: an id and the draws revealed in it.
type Game struct {
	ID    int
	Draws []Cubes
}

var (
	gamePattern = regexp.MustCompile(`^Game\s+(\d+):\s*(.*)$`)
	drawPattern = regexp.MustCompile(`^(\d+)\s+([a-z]+)$`)
)

// ParseGame parses a line like "Game 3: 8 green, 6 blue; 5 blue, 4 red".
func ParseGame(line string) (Game, error) {
	m := gamePattern.FindStringSubmatch(line)
	if m == nil {
		return Game{}, fmt.Errorf("day02.ParseGame: %w: %q", ErrMalformedGame, line)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Game{}, fmt.Errorf("day02.ParseGame: %w", err)
	}
	g := Game{ID: id}
	if strings.TrimSpace(m[2]) == "" {
		return g, nil
	}
	for _, set := range strings.Split(m[2], ";") {
		var c Cubes
		for _, part := range strings.Split(set, ",") {
			dm := drawPattern.FindStringSubmatch(strings.TrimSpace(part))
			if dm == nil {
				return Game{}, fmt.Errorf("day02.ParseGame: %w: draw %q", ErrMalformedGame, part)
			}
			n, err := strconv.Atoi(dm[1])
			if err != nil {
				return Game{}, fmt.Errorf("day02.ParseGame: %w", err)
			}
			switch dm[2] {
			case "red":
				c.Red = n
			case "green":
				c.Green = n
			case "blue":
				c.Blue = n
			default:
				return Game{}, fmt.Errorf("day02.ParseGame: %w: unexpected color %q", ErrMalformedGame, dm[2])
			}
		}
		g.Draws = append(g.Draws, c)
	}
	return g, nil
}

// Possible reports whether every draw of g fits in bag.
func (g Game) Possible(bag Cubes) bool {
	for _, d := range g.Draws {
		if !d.Within(bag) {
			return false
		}
	}
	return true
}

// Minimum folds the draws into the per-color maximum, starting from one cube
// of each color.
func (g Game) Minimum() Cubes {
	m := Cubes{Red: 1, Green: 1, Blue: 1}
	for _, d := range g.Draws {
		m = m.Max(d)
	}
	return m
}

// Part1 sums the ids of the games possible with Bag.
func Part1(r io.Reader) (int, error) {
	return sumGames(r, func(g Game) int {
		if g.Possible(Bag) {
			return g.ID
		}
		return 0
	})
}

// Part2 sums the power of each game's minimum cube set.
func Part2(r io.Reader) (int, error) {
	return sumGames(r, func(g Game) int {
		return g.Minimum().Power()
	})
}

func sumGames(r io.Reader, score func(Game) int) (int, error) {
	src := input.NewSource(r)
	total := 0
	for line := range src.Lines() {
		if line == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return 0, err
		}
		total += score(g)
	}
	return total, src.Err()
}
