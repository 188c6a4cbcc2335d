// Package catalog loads the built-in puzzle descriptions and their samples.
package catalog

import (
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Entry describes one day's puzzle.
type Entry struct {
	Day   int    `yaml:"day"`
	Title string `yaml:"title"`
	Parts []Part `yaml:"parts"`
}

// Part holds the sample input for one part and the answer it should produce.
type Part struct {
	Part   int    `yaml:"part"`
	Sample string `yaml:"sample"`
	Want   int    `yaml:"want"`
}

// LoadBuiltin loads the built-in entry for day.
func LoadBuiltin(day int) (*Entry, error) {
	filename := fmt.Sprintf("day%02d.yaml", day)
	data, err := builtinFS.ReadFile("builtin/" + filename)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadBuiltin: unknown day %d: %w", day, err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog entry.
func Parse(data []byte) (*Entry, error) {
	var e Entry
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("catalog.Parse: %w", err)
	}
	if errs := Validate(&e); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, ve := range errs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("catalog.Parse: day %d: %s", e.Day, strings.Join(msgs, "; "))
	}
	return &e, nil
}

// List returns the days that have a built-in entry, in ascending order.
func List() ([]int, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var days []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if !strings.HasPrefix(n, "day") || !strings.HasSuffix(n, ".yaml") {
			continue
		}
		d, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(n, "day"), ".yaml"))
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	sort.Ints(days)
	return days, nil
}

// Sample returns the sample input and expected answer for part.
func (e *Entry) Sample(part int) (string, int, bool) {
	for _, p := range e.Parts {
		if p.Part == part {
			return p.Sample, p.Want, true
		}
	}
	return "", 0, false
}
