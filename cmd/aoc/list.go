package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dshills/aoc2023/internal/catalog"
	"github.com/dshills/aoc2023/internal/puzzle"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days that have solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout())
		},
	}
}

func runList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tTITLE\tPARTS")
	for _, day := range puzzle.Days() {
		solver, _ := puzzle.Lookup(day)
		title := "-"
		if entry, err := catalog.LoadBuiltin(day); err == nil {
			title = entry.Title
		}
		parts := fmt.Sprint(len(solver.Parts))
		if solver.Dump != nil {
			parts = "dump"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", day, title, parts)
	}
	return tw.Flush()
}
