package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/habit"
	"tableflip.dev/habitflow/pkg/store"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HABITFLOW_CONFIG_PATH", t.TempDir())
	t.Setenv("HABITFLOW_PATH", dir)
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceErrors = true
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func storedHabits(t *testing.T, dir string) habit.List {
	t.Helper()
	p, err := store.Load(store.StaticConfig{Path: dir})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	list, err := p.LoadHabits(context.Background())
	if err != nil {
		t.Fatalf("load habits: %v", err)
	}
	return list
}

func TestAddToggleRenameDelete(t *testing.T) {
	dir := setupEnv(t)

	if _, err := execute(t, "add", "drink", "water"); err != nil {
		t.Fatalf("add: %v", err)
	}
	list := storedHabits(t, dir)
	if len(list) != 1 || list[0].Name != "drink water" {
		t.Fatalf("unexpected list %+v", list)
	}
	id := list[0].ID.String()

	if _, err := execute(t, "done", id); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !storedHabits(t, dir)[0].Completed {
		t.Fatalf("expected habit completed")
	}

	if _, err := execute(t, "edit", id, "drink", "tea"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if got := storedHabits(t, dir)[0].Name; got != "drink tea" {
		t.Fatalf("name = %q", got)
	}

	if _, err := execute(t, "rm", id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n := len(storedHabits(t, dir)); n != 0 {
		t.Fatalf("expected empty list, got %d", n)
	}
}

func TestToggleUnknownID(t *testing.T) {
	setupEnv(t)
	_, err := execute(t, "toggle", "42")
	if !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleRejectsBadID(t *testing.T) {
	setupEnv(t)
	_, err := execute(t, "toggle", "water")
	if err == nil || !strings.Contains(err.Error(), "invalid habit id") {
		t.Fatalf("expected id parse error, got %v", err)
	}
}

func TestStartupResetOnStaleMarker(t *testing.T) {
	dir := setupEnv(t)
	p, err := store.Load(store.StaticConfig{Path: dir})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.SaveHabits(habit.List{{ID: 1, Name: "Run", Completed: true}}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := p.SaveResetMarker(habit.Day{Year: 2000, Month: 1, Day: 1}); err != nil {
		t.Fatalf("seed marker: %v", err)
	}

	if _, err := execute(t, "list"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if storedHabits(t, dir)[0].Completed {
		t.Fatalf("stale marker should reset completion on start")
	}
	marker, err := p.LoadResetMarker(context.Background())
	if err != nil {
		t.Fatalf("marker: %v", err)
	}
	if marker.Year == 2000 {
		t.Fatalf("marker was not advanced")
	}
}

func TestBadResetPeriod(t *testing.T) {
	setupEnv(t)
	t.Setenv("HABITFLOW_RESET_PERIOD", "soon")
	if _, err := execute(t, "run"); err == nil || !strings.Contains(err.Error(), "reset.period") {
		t.Fatalf("expected reset.period error, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}
