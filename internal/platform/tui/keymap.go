package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/basket-fighter/internal/config"
	"github.com/vovakirdan/basket-fighter/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right}, {k.Quit}}
}

// NewKeyMap builds bindings from the configured key names. Single-letter
// keys match in either case.
func NewKeyMap(keys config.KeyConfig) KeyMap {
	return KeyMap{
		Left:  movementBinding(keys.Left, "left"),
		Right: movementBinding(keys.Right, "right"),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func movementBinding(names []string, desc string) key.Binding {
	keys := make([]string, 0, len(names)*2)
	for _, n := range names {
		n = strings.ToLower(n)
		keys = append(keys, n)
		if utf8.RuneCountInString(n) == 1 {
			if up := strings.ToUpper(n); up != n {
				keys = append(keys, up)
			}
		}
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}
