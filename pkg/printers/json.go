package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/habitflow/pkg/view"
)

// JSON writes the snapshot as a single JSON document.
func JSON(out io.Writer, s view.Snapshot) error {
	if out == nil {
		out = color.Output
	}
	if s.Rows == nil {
		s.Rows = []view.Row{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

// Options selects how a snapshot is written.
type Options struct {
	JSON   bool
	ShowID bool
	Out    io.Writer
}

// Render writes s as JSON or as the pretty table.
func Render(o Options, s view.Snapshot) error {
	if o.JSON {
		return JSON(o.Out, s)
	}
	pp := PrettyPrint{ShowID: o.ShowID, Out: o.Out}
	pp.NewLine()
	pp.Snapshot(s)
	return nil
}
