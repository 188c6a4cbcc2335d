package internal

import (
	"bytes"
	"testing"

	"github.com/dshills/aoc2023/internal/catalog"
	"github.com/dshills/aoc2023/internal/input"
	"github.com/dshills/aoc2023/internal/puzzle"
	"github.com/dshills/aoc2023/internal/render"
	"github.com/dshills/aoc2023/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogMatchesRegistry(t *testing.T) {
	days, err := catalog.List()
	require.NoError(t, err)
	assert.Equal(t, puzzle.Days(), days, "every solver needs a catalog entry and vice versa")

	for _, day := range days {
		entry, err := catalog.LoadBuiltin(day)
		require.NoError(t, err)
		solver, ok := puzzle.Lookup(day)
		require.True(t, ok)
		if solver.Dump != nil {
			assert.Empty(t, entry.Parts, "day %d is dump-only", day)
			continue
		}
		assert.Len(t, entry.Parts, len(solver.Parts), "day %d", day)
	}
}

func TestSamples(t *testing.T) {
	days, err := catalog.List()
	require.NoError(t, err)

	for _, day := range days {
		entry, err := catalog.LoadBuiltin(day)
		require.NoError(t, err)
		solver, _ := puzzle.Lookup(day)

		for _, p := range entry.Parts {
			t.Run(entry.Title, func(t *testing.T) {
				in := input.FromBytes("sample", []byte(p.Sample))
				answers, err := solver.Run(in.Data, p.Part)
				require.NoError(t, err)
				require.Len(t, answers, 1)
				assert.Equal(t, p.Want, answers[0].Value, "day %d part %d", day, p.Part)

				// Same bytes, same answer.
				again, err := solver.Run(in.Data, p.Part)
				require.NoError(t, err)
				assert.Equal(t, answers, again)
			})
		}
	}
}

func TestSampleReportPipeline(t *testing.T) {
	entry, err := catalog.LoadBuiltin(4)
	require.NoError(t, err)
	sample, _, ok := entry.Sample(1)
	require.True(t, ok)

	in := input.FromBytes("day04-sample.txt", []byte(sample))
	solver, _ := puzzle.Lookup(4)
	answers, err := solver.Run(in.Data, 0)
	require.NoError(t, err)

	rep := &report.Report{
		Tool:    "aoc",
		Version: "test",
		Day:     entry.Day,
		Title:   entry.Title,
		Input:   report.Input{File: in.FilePath, Hash: in.Hash, Lines: in.Lines, Sample: true},
		Answers: answers,
	}
	assert.Equal(t, "13\n30\n", render.Text(rep))

	md := render.Markdown(rep)
	assert.Contains(t, md, "| 2 | 30 |")
	assert.Contains(t, md, "6 lines")
}

func TestDumpSample(t *testing.T) {
	solver, _ := puzzle.Lookup(3)
	var buf bytes.Buffer
	require.NoError(t, solver.Dump(bytes.NewReader([]byte("1*\n")), &buf))
	assert.Equal(t, "(0, 0): 1\n(1, 0): *\n", buf.String())
}
