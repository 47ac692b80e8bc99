package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Rotate   key.Binding
	Platform key.Binding
	Device   key.Binding
	Terminal key.Binding
	Premium  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Rotate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rotate"),
		),
		Platform: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "ios/android"),
		),
		Device: key.NewBinding(
			key.WithKeys("d", "tab"),
			key.WithHelp("d", "next device"),
		),
		Terminal: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "follow terminal"),
		),
		Premium: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "toggle premium"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Device, k.Rotate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Device, k.Terminal, k.Rotate, k.Platform},
		{k.Premium, k.Help, k.Quit},
	}
}
