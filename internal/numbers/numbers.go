// Package numbers holds small integer helpers shared by the puzzle solvers.
package numbers

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

var intPattern = regexp.MustCompile(`-?\d+`)

// Ints extracts every integer in s, in order. A leading '-' is kept as a sign.
func Ints(s string) ([]int, error) {
	matches := intPattern.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("numbers.Ints: %w", err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Sum returns the sum of nums, or zero for no arguments.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of nums, or one for no arguments.
func Product[T Number](nums ...T) T {
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// Set builds a membership set from nums.
func Set[T comparable](nums []T) map[T]struct{} {
	s := make(map[T]struct{}, len(nums))
	for _, n := range nums {
		s[n] = struct{}{}
	}
	return s
}

// Intersect returns how many members of a are also in b.
func Intersect[T comparable](a, b map[T]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}
