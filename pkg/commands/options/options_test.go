package options

import (
	"errors"
	"testing"

	"tableflip.dev/habitflow/pkg/habit"
)

func TestParseID(t *testing.T) {
	io := &IDOptions{}
	if err := io.ParseID(" 1712345678901 "); err != nil {
		t.Fatalf("ParseID: %v", err)
	}
	if io.ID != habit.ID(1712345678901) {
		t.Fatalf("id = %d", io.ID)
	}

	for _, bad := range []string{"", "abc", "-4", "0", "1.5"} {
		if err := io.ParseID(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestPrinterOptions(t *testing.T) {
	oo := &OutputOptions{JSON: true}
	p := oo.Printer(&IDOptions{ShowID: true})
	if !p.JSON || !p.ShowID {
		t.Fatalf("unexpected printer options %+v", p)
	}
	if p := (&OutputOptions{}).Printer(nil); p.JSON || p.ShowID {
		t.Fatalf("unexpected defaults %+v", p)
	}
}

func TestHandleErrorPassthrough(t *testing.T) {
	err := errors.New("boom")
	if got := (&OutputOptions{}).HandleError(err); got != err {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if got := (&OutputOptions{JSON: true}).HandleError(err); got != nil {
		t.Fatalf("json mode should swallow the error after printing, got %v", got)
	}
	if got := (&OutputOptions{JSON: true}).HandleError(nil); got != nil {
		t.Fatalf("nil stays nil, got %v", got)
	}
}
