package toggle

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/habit"
	"tableflip.dev/habitflow/pkg/printers"
	"tableflip.dev/habitflow/pkg/store"
)

func openStore(t *testing.T, seed habit.List) *app.Store {
	t.Helper()
	p, err := store.Load(store.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.SaveHabits(seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s, err := app.Open(context.Background(), p)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func TestToggleMarksDone(t *testing.T) {
	s := openStore(t, habit.List{{ID: 7, Name: "Run"}})
	var buf bytes.Buffer
	r := Toggle{ID: 7, Store: s, Output: printers.Options{JSON: true, Out: &buf}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !s.Habits()[0].Completed {
		t.Fatalf("expected habit to be completed")
	}
	if !strings.Contains(buf.String(), `"progressPercent":100`) {
		t.Fatalf("unexpected output %s", buf.String())
	}
}

func TestToggleUnknown(t *testing.T) {
	s := openStore(t, habit.List{{ID: 7, Name: "Run"}})
	r := Toggle{ID: 8, Store: s, Output: printers.Options{Out: &bytes.Buffer{}}}
	err := r.Do(context.Background())
	if !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "habit 8") {
		t.Fatalf("error should name the id: %v", err)
	}
	if s.Habits()[0].Completed {
		t.Fatalf("unknown id must not change state")
	}
}
