// Package info prints where habits are stored and when they were last reset.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/store"
)

type Info struct {
	Config store.Config
	Store  *app.Store
	Out    io.Writer
}

func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("HABITFLOW_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "HABITFLOW_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "HABITFLOW_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Store == nil {
		return fmt.Errorf("failed to open the habit store")
	}

	last := n.Store.LastReset().String()
	if last == "" {
		last = "never"
	}
	snap := n.Store.Snapshot()

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("path"), n.Config.BasePath())
	tbl.AddRow(bold.Sprint("reset period"), n.Config.ResetPeriod())
	tbl.AddRow(bold.Sprint("last reset"), last)
	tbl.AddRow(bold.Sprint("habits"), fmt.Sprintf("%d (%d done)", snap.Total, snap.Completed))
	if err := n.Store.PersistErr(); err != nil {
		tbl.AddRow(bold.Sprint("last write"), color.RedString(err.Error()))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
