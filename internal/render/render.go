// Package render produces text, Markdown, and JSON output from a report.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dshills/aoc2023/internal/report"
)

// Text renders one answer per line in part order, the plain CLI output.
func Text(r *report.Report) string {
	var b strings.Builder
	for _, a := range r.Answers {
		fmt.Fprintf(&b, "%d\n", a.Value)
	}
	return b.String()
}

// Markdown renders a report as a short Markdown summary.
func Markdown(r *report.Report) string {
	var b strings.Builder

	if r.Title != "" {
		fmt.Fprintf(&b, "# Day %d: %s\n\n", r.Day, r.Title)
	} else {
		fmt.Fprintf(&b, "# Day %d\n\n", r.Day)
	}

	source := r.Input.File
	if r.Input.Sample {
		source += " (sample)"
	}
	fmt.Fprintf(&b, "**Input:** %s, %d lines\n", source, r.Input.Lines)
	fmt.Fprintf(&b, "**Hash:** `%s`\n\n", r.Input.Hash)

	if len(r.Answers) == 0 {
		b.WriteString("No answers.\n")
		return b.String()
	}

	b.WriteString("| Part | Answer |\n")
	b.WriteString("|------|--------|\n")
	for _, a := range r.Answers {
		fmt.Fprintf(&b, "| %d | %d |\n", a.Part, a.Value)
	}
	return b.String()
}

// JSON renders a report as indented JSON followed by a newline.
func JSON(r *report.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render.JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// Format renders r in the named format: text, md, or json.
func Format(r *report.Report, format string) (string, error) {
	switch format {
	case "text", "":
		return Text(r), nil
	case "md":
		return Markdown(r), nil
	case "json":
		return JSON(r)
	default:
		return "", fmt.Errorf("render.Format: unknown format %q", format)
	}
}
