package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dshills/aoc2023/internal/catalog"
	"github.com/dshills/aoc2023/internal/config"
	"github.com/dshills/aoc2023/internal/input"
	"github.com/dshills/aoc2023/internal/puzzle"
	"github.com/dshills/aoc2023/internal/render"
	"github.com/dshills/aoc2023/internal/report"
	"github.com/spf13/cobra"
)

type solveFlags struct {
	inputPath string
	home      string
	part      int
	sample    bool
	format    string
	out       string
	verbose   bool

	stdout io.Writer
}

func newSolveCmd() *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve one day's puzzle and print the answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return exitError(3, "invalid day %q", args[0])
			}
			f.stdout = cmd.OutOrStdout()
			return runSolve(day, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.inputPath, "input", "", "Input file path (default: <home>/puzzle_inputs/dayNN.txt)")
	flags.StringVar(&f.home, "home", "", "Project root holding puzzle_inputs/ (default: $AOC_HOME or nearest parent)")
	flags.IntVar(&f.part, "part", 0, "Part to run: 1 or 2 (default: all)")
	flags.BoolVar(&f.sample, "sample", false, "Use the built-in sample input instead of a file")
	flags.StringVar(&f.format, "format", "text", "Output format: text, md, or json")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runSolve(day int, f *solveFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}
	stdout := f.stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	// 1. Find solver
	solver, ok := puzzle.Lookup(day)
	if !ok {
		return exitError(3, "no solver for day %d", day)
	}
	var title string
	if entry, err := catalog.LoadBuiltin(day); err == nil {
		title = entry.Title
	}

	// 2. Load input
	in, err := loadInput(day, f)
	if err != nil {
		return err
	}
	verbose("Loaded %s (%d lines, %s)", in.FilePath, in.Lines, in.Hash)

	// 3. Dump-only days write straight to the output
	if solver.Dump != nil {
		verbose("Day %d has no answers; dumping grid cells", day)
		w, closeOut, err := openOutput(f.out, stdout)
		if err != nil {
			return err
		}
		defer closeOut()
		if err := solver.Dump(bytes.NewReader(in.Data), w); err != nil {
			return exitError(5, "day %d: %v", day, err)
		}
		return nil
	}

	// 4. Solve
	verbose("Solving day %d", day)
	answers, err := solver.Run(in.Data, f.part)
	if err != nil {
		return exitError(5, "%v", err)
	}
	for _, a := range answers {
		verbose("Part %d: %d", a.Part, a.Value)
	}

	// 5. Render
	rep := &report.Report{
		Tool:    "aoc",
		Version: version,
		Day:     day,
		Title:   title,
		Input: report.Input{
			File:   filepath.Base(in.FilePath),
			Hash:   in.Hash,
			Lines:  in.Lines,
			Sample: f.sample,
		},
		Answers: answers,
	}
	output, err := render.Format(rep, f.format)
	if err != nil {
		return exitError(3, "unknown format: %s", f.format)
	}

	// 6. Output
	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(stdout, output)
	return err
}

// loadInput reads the puzzle input file, or the catalog sample with --sample.
// Without --part, the sample for part 1 feeds every part.
func loadInput(day int, f *solveFlags) (*input.File, error) {
	if f.sample {
		entry, err := catalog.LoadBuiltin(day)
		if err != nil {
			return nil, exitError(3, "failed to load catalog: %v", err)
		}
		part := f.part
		if part == 0 {
			part = 1
		}
		sample, _, ok := entry.Sample(part)
		if !ok {
			return nil, exitError(3, "day %d has no sample for part %d", day, part)
		}
		return input.FromBytes(fmt.Sprintf("day%02d-sample.txt", day), []byte(sample)), nil
	}

	path := f.inputPath
	if path == "" {
		home, err := config.ResolveHome(f.home)
		if err != nil {
			return nil, exitError(3, "failed to resolve home: %v", err)
		}
		path = input.Path(home, day)
	}
	file, err := input.Load(path)
	if err != nil {
		return nil, exitError(3, "failed to load input: %v", err)
	}
	return file, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return fh, func() { fh.Close() }, nil
}
