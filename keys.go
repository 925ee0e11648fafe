package chartview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ToggleScheme key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		ToggleScheme: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark/light")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleScheme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.ToggleScheme, k.Quit}}
}
