// Command demo fills the configured store with a few sample habits.
package main

import (
	"context"
	"fmt"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/printers"
	"tableflip.dev/habitflow/pkg/store"
)

var sample = []string{
	"Drink a glass of water",
	"Walk 8000 steps",
	"Read 20 pages",
	"Stretch for ten minutes",
}

func main() {
	p, err := store.Load(nil)
	if err != nil {
		panic(err)
	}

	s, err := app.Open(context.Background(), p)
	if err != nil {
		panic(err)
	}

	for i, name := range sample {
		h, _ := s.Add(name)
		if i%2 == 0 {
			if _, err := s.Toggle(h.ID); err != nil {
				panic(err)
			}
		}
	}
	if err := s.PersistErr(); err != nil {
		panic(err)
	}

	fmt.Println("seeded", p.BasePath())
	if err := printers.Render(printers.Options{ShowID: true}, s.Snapshot()); err != nil {
		panic(err)
	}
}
