package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/habitflow/pkg/habit"
	"tableflip.dev/habitflow/pkg/view"
)

func init() {
	color.NoColor = true
}

func TestSnapshotPrintsRowsAndProgress(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{ShowID: true, Out: &buf}
	pp.Snapshot(view.Project(habit.List{
		{ID: 1, Name: "Run", Completed: true, Streak: 2},
		{ID: 2, Name: "Read"},
	}))

	out := buf.String()
	for _, want := range []string{"Run", "Read", "Completed", "Pending", "Streak : 2", "50% (1/2)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Run") > strings.Index(out, "Read") {
		t.Fatalf("rows out of order:\n%s", out)
	}
}

func TestSnapshotEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Snapshot(view.Project(nil))
	out := buf.String()
	if !strings.Contains(out, "no habits yet") || !strings.Contains(out, "0% (0/0)") {
		t.Fatalf("unexpected empty output:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, view.Project(nil)); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rows, ok := got["rows"].([]any); !ok || len(rows) != 0 {
		t.Fatalf("expected empty rows array, got %v", got["rows"])
	}
	if got["progressPercent"] != float64(0) {
		t.Fatalf("unexpected percent %v", got["progressPercent"])
	}
}
