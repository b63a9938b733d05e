package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/habitflow/pkg/habit"
)

const (
	// KeyHabits holds the JSON array of habit records.
	KeyHabits = "habits"
	// KeyLastResetDate holds the day the completion flags were last cleared.
	KeyLastResetDate = "lastResetDate"

	tempDir = ".tmp"
)

// Persistence defines the durable storage contract for the habit list and
// the reset marker. Every save overwrites the whole value.
type Persistence interface {
	LoadHabits(ctx context.Context) (habit.List, error)
	SaveHabits(habits habit.List) error
	LoadResetMarker(ctx context.Context) (habit.Day, error)
	SaveResetMarker(day habit.Day) error
	Watch(ctx context.Context) (<-chan Event, error)
	BasePath() string
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, tempDir),
		Transform:    flatTransform,
		CacheSizeMax: 0, // other processes write the same keys
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) BasePath() string {
	return p.basePath
}

func (p *persistence) read(key string) ([]byte, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *persistence) LoadHabits(_ context.Context) (habit.List, error) {
	val, err := p.read(KeyHabits)
	if err != nil {
		return habit.List{}, err
	}
	if len(strings.TrimSpace(string(val))) == 0 {
		return habit.List{}, nil
	}
	var list habit.List
	if err := json.Unmarshal(val, &list); err != nil {
		return habit.List{}, fmt.Errorf("store: decode %s: %w", KeyHabits, err)
	}
	if list == nil {
		list = habit.List{}
	}
	return list, nil
}

func (p *persistence) SaveHabits(habits habit.List) error {
	if habits == nil {
		habits = habit.List{}
	}
	data, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", KeyHabits, err)
	}
	if err := p.d.Write(KeyHabits, data); err != nil {
		return fmt.Errorf("store: write %s: %w", KeyHabits, err)
	}
	return nil
}

func (p *persistence) LoadResetMarker(_ context.Context) (habit.Day, error) {
	val, err := p.read(KeyLastResetDate)
	if err != nil {
		return habit.Day{}, err
	}
	day, err := habit.ParseDay(string(val))
	if err != nil {
		return habit.Day{}, fmt.Errorf("store: decode %s: %w", KeyLastResetDate, err)
	}
	return day, nil
}

func (p *persistence) SaveResetMarker(day habit.Day) error {
	if err := p.d.WriteString(KeyLastResetDate, day.String()); err != nil {
		return fmt.Errorf("store: write %s: %w", KeyLastResetDate, err)
	}
	return nil
}

// flatTransform keeps every key directly under the base path.
func flatTransform(string) []string {
	return []string{}
}
