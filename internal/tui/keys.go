package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/f3rmion/ageguess/internal/session"
)

// KeyMap defines all keyboard bindings for the TUI.
type KeyMap struct {
	Submit key.Binding
	Back   key.Binding
	Skip   key.Binding
	Copy   key.Binding
	Quit   key.Binding
	Exit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "predict"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "left", "backspace"),
			key.WithHelp("esc/←", "back"),
		),
		Skip: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "skip animation"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// stateKeys adapts a KeyMap to help.KeyMap for one view state.
type stateKeys struct {
	keys  KeyMap
	state session.State
}

// ShortHelp lists the bindings available in the current state.
func (k stateKeys) ShortHelp() []key.Binding {
	switch k.state {
	case session.StateForm:
		return []key.Binding{k.keys.Submit, k.keys.Exit}
	case session.StateSuccess:
		return []key.Binding{k.keys.Back, k.keys.Skip, k.keys.Copy, k.keys.Quit}
	default:
		return []key.Binding{k.keys.Back, k.keys.Quit}
	}
}

// FullHelp is the short help on a single row.
func (k stateKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
