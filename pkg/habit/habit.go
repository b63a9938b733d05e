// Package habit defines the habit record, the ordered habit list and the
// calendar day used as the reset marker.
package habit

import (
	"fmt"
	"strings"
)

// ID identifies a habit for its whole lifetime. IDs are never reused.
type ID int64

func (id ID) String() string {
	return fmt.Sprintf("%d", int64(id))
}

// Habit is one tracked behaviour with its completion state for the day.
type Habit struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Streak    int    `json:"streak"`
}

// New returns a pending habit with a zero streak. The caller is expected to
// have validated name with CleanName.
func New(id ID, name string) Habit {
	return Habit{
		ID:        id,
		Name:      name,
		Completed: false,
		Streak:    0,
	}
}

// CleanName trims name and reports whether anything is left.
func CleanName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	return name, name != ""
}

// Status is the display state of a habit for the current day.
type Status string

const (
	Completed Status = "Completed"
	Pending   Status = "Pending"
)

func (h Habit) Status() Status {
	if h.Completed {
		return Completed
	}
	return Pending
}

func (h Habit) String() string {
	return fmt.Sprintf("%s %s (%s)", h.ID, h.Name, h.Status())
}

// List is the ordered set of habits, in insertion order.
type List []Habit

// Index returns the position of id in the list or -1.
func (l List) Index(id ID) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the habit with id.
func (l List) Find(id ID) (Habit, bool) {
	if i := l.Index(id); i >= 0 {
		return l[i], true
	}
	return Habit{}, false
}

// Clone returns a copy that shares no backing array with l.
func (l List) Clone() List {
	if l == nil {
		return List{}
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// CompletedCount returns how many habits are marked done.
func (l List) CompletedCount() int {
	n := 0
	for _, h := range l {
		if h.Completed {
			n++
		}
	}
	return n
}

// MaxID returns the largest id in the list, or zero for an empty list.
func (l List) MaxID() ID {
	var max ID
	for _, h := range l {
		if h.ID > max {
			max = h.ID
		}
	}
	return max
}

// Without returns a copy of l with id removed.
func (l List) Without(id ID) List {
	out := make(List, 0, len(l))
	for _, h := range l {
		if h.ID != id {
			out = append(out, h)
		}
	}
	return out
}
