package app

import (
	"fmt"
	"strings"

	"tableflip.dev/habitflow/pkg/habit"
	"tableflip.dev/habitflow/pkg/view"
)

// Kind tags a Command.
type Kind int

const (
	KindAdd Kind = iota
	KindToggle
	KindRename
	KindDelete
	KindReset
)

var kindNames = map[Kind]string{
	KindAdd:    "add",
	KindToggle: "toggle",
	KindRename: "rename",
	KindDelete: "delete",
	KindReset:  "reset",
}

var kindAliases = map[string]Kind{
	"add":      KindAdd,
	"new":      KindAdd,
	"toggle":   KindToggle,
	"done":     KindToggle,
	"complete": KindToggle,
	"rename":   KindRename,
	"edit":     KindRename,
	"delete":   KindDelete,
	"rm":       KindDelete,
	"remove":   KindDelete,
	"reset":    KindReset,
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a verb or one of its aliases to a Kind.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("app: unknown command %q", s)
}

// Command is one user action against the Store.
type Command struct {
	Kind Kind
	ID   habit.ID
	Name string
}

// Apply runs cmd against s and returns the freshly projected view. Blank
// names are ignored; unknown ids return ErrNotFound.
func Apply(s *Store, cmd Command) (view.Snapshot, error) {
	var err error
	switch cmd.Kind {
	case KindAdd:
		s.Add(cmd.Name)
	case KindToggle:
		_, err = s.Toggle(cmd.ID)
	case KindRename:
		_, err = s.Rename(cmd.ID, cmd.Name)
	case KindDelete:
		err = s.Delete(cmd.ID)
	case KindReset:
		s.ResetAll()
	default:
		err = fmt.Errorf("app: unknown command %s", cmd.Kind)
	}
	return s.Snapshot(), err
}
