// Package view derives render-ready snapshots from the habit list. A snapshot
// is recomputed in full after every mutation; nothing is cached or diffed.
package view

import (
	"fmt"

	"tableflip.dev/habitflow/pkg/habit"
)

// Row is one display line for a habit.
type Row struct {
	ID          habit.ID     `json:"id"`
	Name        string       `json:"name"`
	Status      habit.Status `json:"status"`
	StreakLabel string       `json:"streak"`
}

// Snapshot is everything a renderer needs to draw the habit list.
type Snapshot struct {
	Rows            []Row `json:"rows"`
	ProgressPercent int   `json:"progressPercent"`
	Completed       int   `json:"completed"`
	Total           int   `json:"total"`
}

// Empty reports whether there are no habits to show.
func (s Snapshot) Empty() bool {
	return len(s.Rows) == 0
}

// Project builds the snapshot for habits, preserving list order.
func Project(habits habit.List) Snapshot {
	rows := make([]Row, 0, len(habits))
	for _, h := range habits {
		rows = append(rows, Row{
			ID:          h.ID,
			Name:        h.Name,
			Status:      h.Status(),
			StreakLabel: StreakLabel(h.Streak),
		})
	}
	done := habits.CompletedCount()
	return Snapshot{
		Rows:            rows,
		ProgressPercent: Percent(done, len(habits)),
		Completed:       done,
		Total:           len(habits),
	}
}

// Percent returns 100*done/total rounded half up, and 0 when total is 0.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*done + total) / (2 * total)
}

// StreakLabel formats a streak count for display.
func StreakLabel(streak int) string {
	return fmt.Sprintf("Streak : %d", streak)
}
