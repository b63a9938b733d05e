package add

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/printers"
	"tableflip.dev/habitflow/pkg/store"
	"tableflip.dev/habitflow/pkg/view"
)

func TestAddPrintsSnapshot(t *testing.T) {
	p, err := store.Load(store.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s, err := app.Open(context.Background(), p)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	var buf bytes.Buffer
	r := Add{Name: "  Meditate ", Store: s, Output: printers.Options{JSON: true, Out: &buf}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}

	var snap view.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &snap); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if snap.Total != 1 || snap.Rows[0].Name != "Meditate" || snap.Rows[0].Status != "Pending" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	stored, err := p.LoadHabits(context.Background())
	if err != nil || len(stored) != 1 {
		t.Fatalf("expected persisted habit, got %v (%v)", stored, err)
	}
}

func TestAddBlankNameIsNoop(t *testing.T) {
	p, err := store.Load(store.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s, err := app.Open(context.Background(), p)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	r := Add{Name: "   ", Store: s, Output: printers.Options{Out: &bytes.Buffer{}}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(s.Habits()) != 0 {
		t.Fatalf("blank add should not create a habit")
	}
}
