package day09

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45 
`

func TestDifferences(t *testing.T) {
	assert.Equal(t, []int{3, 3, 3, 3, 3}, Differences([]int{0, 3, 6, 9, 12, 15}))
	assert.Nil(t, Differences([]int{4}))
}

func TestNext(t *testing.T) {
	tests := []struct {
		seq  []int
		want int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18},
		{[]int{1, 3, 6, 10, 15, 21}, 28},
		{[]int{10, 13, 16, 21, 30, 45}, 68},
		{[]int{5}, 5},
		{nil, 0},
		{[]int{-2, -4, -6}, -8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Next(tt.seq), "Next(%v)", tt.seq)
	}
}

func TestPrev(t *testing.T) {
	tests := []struct {
		seq  []int
		want int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 5},
		{nil, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Prev(tt.seq), "Prev(%v)", tt.seq)
	}
}

func TestPart1(t *testing.T) {
	got, err := Part1(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 114, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}
