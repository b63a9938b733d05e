// Package printers renders habit snapshots for the command line.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/habitflow/pkg/habit"
	"tableflip.dev/habitflow/pkg/view"
)

const barWidth = 20

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Snapshot prints every row followed by the progress line.
func (pp *PrettyPrint) Snapshot(s view.Snapshot) {
	if s.Empty() {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no habits yet, add one with `habitflow add <name>`\n\n")
		pp.Progress(s)
		return
	}

	done := color.New(color.FgGreen)
	pending := color.New(color.FgYellow)
	faint := color.New(color.Faint)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range s.Rows {
		status := pending.Sprint("○ " + string(r.Status))
		if r.Status == habit.Completed {
			status = done.Sprint("● " + string(r.Status))
		}
		if pp.ShowID {
			tbl.AddRow(id.Sprint(r.ID.String()), status, r.Name, faint.Sprint(r.StreakLabel))
		} else {
			tbl.AddRow(status, r.Name, faint.Sprint(r.StreakLabel))
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
	pp.Progress(s)
}

// Progress prints a bar and the completion percentage.
func (pp *PrettyPrint) Progress(s view.Snapshot) {
	filled := s.ProgressPercent * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	c := color.New(color.FgGreen)
	if s.ProgressPercent < 100 {
		c = color.New(color.FgCyan)
	}
	_, _ = c.Fprint(pp.out(), bar)
	_, _ = fmt.Fprintf(pp.out(), " %d%% (%d/%d)\n", s.ProgressPercent, s.Completed, s.Total)
}
