package app

import (
	"errors"
	"testing"

	"tableflip.dev/habitflow/pkg/view"
)

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"add":      KindAdd,
		"Toggle":   KindToggle,
		"done":     KindToggle,
		"complete": KindToggle,
		"edit":     KindRename,
		"rm":       KindDelete,
		" reset ":  KindReset,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseKind(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseKind("explode"); err == nil {
		t.Fatalf("expected error for unknown verb")
	}
}

func TestApplyReprojectsAfterEveryCommand(t *testing.T) {
	p := newMemoryPersistence(twoHabits()...)
	s := openStore(t, p)

	snap, err := Apply(s, Command{Kind: KindToggle, ID: 2})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if snap.ProgressPercent != 100 {
		t.Fatalf("percent after toggle = %d, want 100", snap.ProgressPercent)
	}

	snap, err = Apply(s, Command{Kind: KindAdd, Name: "Write"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(snap.Rows) != 3 || snap.Rows[2].Name != "Write" {
		t.Fatalf("unexpected rows after add: %+v", snap.Rows)
	}
	if snap.ProgressPercent != 67 {
		t.Fatalf("percent after add = %d, want 67", snap.ProgressPercent)
	}

	snap, err = Apply(s, Command{Kind: KindRename, ID: 1, Name: "Jog"})
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if snap.Rows[0].Name != "Jog" {
		t.Fatalf("rename not projected: %+v", snap.Rows[0])
	}

	snap, err = Apply(s, Command{Kind: KindReset})
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if snap.ProgressPercent != 0 {
		t.Fatalf("percent after reset = %d, want 0", snap.ProgressPercent)
	}

	snap, err = Apply(s, Command{Kind: KindDelete, ID: 2})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(snap.Rows) != 2 {
		t.Fatalf("rows after delete = %d, want 2", len(snap.Rows))
	}

	want := view.Project(s.Habits())
	if len(want.Rows) != len(snap.Rows) {
		t.Fatalf("snapshot diverged from store")
	}
}

func TestApplyNotFound(t *testing.T) {
	p := newMemoryPersistence(twoHabits()...)
	s := openStore(t, p)

	snap, err := Apply(s, Command{Kind: KindDelete, ID: 99})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(snap.Rows) != 2 {
		t.Fatalf("list changed on not-found delete")
	}
}

func TestApplyUnknownKind(t *testing.T) {
	s := openStore(t, newMemoryPersistence())
	if _, err := Apply(s, Command{Kind: Kind(42)}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
