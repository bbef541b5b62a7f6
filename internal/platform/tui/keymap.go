package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the control keys. Clicking spawns; the keys only tune the
// spawn controls and manage what is on screen.
type KeyMap struct {
	SpeedUp    key.Binding
	SpeedDown  key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Behavior   key.Binding
	RemoveLast key.Binding
	Clear      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SpeedUp, k.SpeedDown, k.Grow, k.Shrink, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SpeedUp, k.SpeedDown, k.Grow, k.Shrink},
		{k.Behavior, k.RemoveLast, k.Clear},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Grow: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "bigger"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "smaller"),
		),
		Behavior: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "toggle behavior"),
		),
		RemoveLast: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "remove newest"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
