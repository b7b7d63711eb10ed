package menu

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the menu key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Up, Down   key.Binding
	Prev, Next key.Binding
	Toggle     key.Binding
	Run        key.Binding
	Save       key.Binding
	Back       key.Binding
	Quit       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑", "previous field")),
		Down: key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓", "next field")),

		Prev:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous choice")),
		Next:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next choice")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),

		Run:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "run quicktype")),
		Save: key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save output")),
		Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to menu")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),

		ScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
	}
}
