package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Main screen
	Submit         key.Binding
	Clear          key.Binding
	NextCommentary key.Binding
	PrevCommentary key.Binding
	PickFirst      key.Binding
	PickSecond     key.Binding
	PickThird      key.Binding
	Reopen         key.Binding

	// Commentary overlay
	Copy     key.Binding
	Share    key.Binding
	Close    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Cycle theme"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Analyze"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear URL"),
		),
		NextCommentary: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next commentator"),
		),
		PrevCommentary: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous commentator"),
		),
		PickFirst: key.NewBinding(
			key.WithKeys("alt+1"),
			key.WithHelp("alt+1", "First commentator"),
		),
		PickSecond: key.NewBinding(
			key.WithKeys("alt+2"),
			key.WithHelp("alt+2", "Second commentator"),
		),
		PickThird: key.NewBinding(
			key.WithKeys("alt+3"),
			key.WithHelp("alt+3", "Third commentator"),
		),
		Reopen: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "Show last commentary"),
		),

		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "Copy"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Share"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "enter"),
			key.WithHelp("esc/q", "Close"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d", " "),
			key.WithHelp("pgdown", "Page down"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextCommentary, k.Reopen, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear, k.NextCommentary, k.PrevCommentary, k.PickFirst, k.PickSecond, k.PickThird, k.Reopen},
		{k.Copy, k.Share, k.Close, k.Up, k.Down, k.PageUp, k.PageDown},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// overlayKeys is the footer shown inside the commentary overlay.
type overlayKeys keyMap

func (k overlayKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Share, k.Close, k.Down, k.Up}
}

func (k overlayKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
