package main

import (
	"io"

	"github.com/example/pathaudio/internal/workflow"
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderSummary prints the run outcome as tables: per-file candidate
// counts (when the run scanned files) and the generation totals.
func renderSummary(w io.Writer, sum *workflow.Summary) {
	if sum == nil {
		return
	}

	if len(sum.Files) > 0 {
		files := table.NewWriter()
		files.SetOutputMirror(w)
		files.SetStyle(table.StyleLight)
		files.AppendHeader(table.Row{"learning path", "candidates"})
		for _, f := range sum.Files {
			files.AppendRow(table.Row{f.Path, f.Candidates})
		}
		files.AppendFooter(table.Row{"unique texts", sum.Candidates})
		files.Render()
	}

	totals := table.NewWriter()
	totals.SetOutputMirror(w)
	totals.SetStyle(table.StyleLight)
	totals.AppendHeader(table.Row{"generated", "reused", "skipped", "failed", "collisions"})
	totals.AppendRow(table.Row{
		sum.Generated,
		sum.Reused,
		sum.SkippedEmpty + sum.SkippedLong,
		sum.Failed,
		sum.Collisions,
	})
	totals.Render()
}
