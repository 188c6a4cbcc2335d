package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dshills/aoc2023/internal/catalog"
	"github.com/dshills/aoc2023/internal/puzzle"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type checkFlags struct {
	noColor bool
}

func newCheckCmd() *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [day...]",
		Short: "Run the solvers against the built-in sample inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if f.noColor {
				color.NoColor = true
			}
			return runCheck(cmd.OutOrStdout(), days)
		},
	}

	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	return cmd
}

func parseDays(args []string) ([]int, error) {
	if len(args) == 0 {
		return puzzle.Days(), nil
	}
	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil {
			return nil, exitError(3, "invalid day %q", a)
		}
		days = append(days, d)
	}
	return days, nil
}

// checkResult is the outcome of one sample run.
type checkResult struct {
	day, part int
	got, want int
	err       error
}

func (r checkResult) ok() bool { return r.err == nil && r.got == r.want }

func runCheck(w io.Writer, days []int) error {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()
	skip := color.New(color.FgYellow).SprintFunc()

	var failed int
	for _, day := range days {
		solver, ok := puzzle.Lookup(day)
		if !ok {
			return exitError(3, "no solver for day %d", day)
		}
		entry, err := catalog.LoadBuiltin(day)
		if err != nil {
			return exitError(3, "failed to load catalog: %v", err)
		}
		if len(entry.Parts) == 0 {
			fmt.Fprintf(w, "%s day %d: %s (no samples)\n", skip("-"), day, entry.Title)
			continue
		}
		for _, r := range checkDay(solver, entry) {
			switch {
			case r.err != nil:
				failed++
				fmt.Fprintf(w, "%s day %d part %d: %v\n", fail("✗"), r.day, r.part, r.err)
			case !r.ok():
				failed++
				fmt.Fprintf(w, "%s day %d part %d: got %d, want %d\n", fail("✗"), r.day, r.part, r.got, r.want)
			default:
				fmt.Fprintf(w, "%s day %d part %d: %d\n", pass("✓"), r.day, r.part, r.got)
			}
		}
	}

	if failed > 0 {
		return exitError(2, "%d sample check(s) failed", failed)
	}
	return nil
}

func checkDay(solver puzzle.Solver, entry *catalog.Entry) []checkResult {
	var results []checkResult
	for _, p := range entry.Parts {
		r := checkResult{day: entry.Day, part: p.Part, want: p.Want}
		answers, err := solver.Run([]byte(p.Sample), p.Part)
		switch {
		case err != nil:
			r.err = err
		case len(answers) != 1:
			r.err = fmt.Errorf("expected one answer, got %d", len(answers))
		default:
			r.got = answers[0].Value
		}
		results = append(results, r)
	}
	return results
}
