package day06

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Time:      7  15   30
Distance:  9  40  200
`

func TestWaysToWin(t *testing.T) {
	tests := []struct {
		time, dist int
		want       int
		ok         bool
	}{
		{7, 9, 4, true},
		{15, 40, 8, true},
		{30, 200, 9, true},
		{71530, 940200, 71503, true},
		{3, 10, 0, false},
		{0, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := WaysToWin(tt.time, tt.dist)
		assert.Equal(t, tt.ok, ok, "WaysToWin(%d, %d)", tt.time, tt.dist)
		assert.Equal(t, tt.want, got, "WaysToWin(%d, %d)", tt.time, tt.dist)
	}
}

func TestParseRaces(t *testing.T) {
	races, err := ParseRaces(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, []Race{{7, 9}, {15, 40}, {30, 200}}, races)
}

func TestParseRacesMalformed(t *testing.T) {
	tests := map[string]string{
		"missing distance": "Time: 7 15\n",
		"uneven columns":   "Time: 7 15\nDistance: 9\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRaces(strings.NewReader(in))
			assert.ErrorIs(t, err, ErrMalformedRaces)
		})
	}
}

func TestPart1(t *testing.T) {
	got, err := Part1(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 288, got)
}

func TestPart1SkipsUnwinnable(t *testing.T) {
	got, err := Part1(strings.NewReader("Time: 7 3\nDistance: 9 10\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 71503, got)
}

func TestPart2NoWin(t *testing.T) {
	_, err := Part2(strings.NewReader("Time: 3\nDistance: 10\n"))
	assert.ErrorIs(t, err, ErrNoWin)
}
