package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	back    key.Binding
	play    key.Binding
	open    key.Binding
	copy    key.Binding
	save    key.Binding
	history key.Binding
	clear   key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "ctrl+k"), key.WithHelp("↑", "up")),
		down:    key.NewBinding(key.WithKeys("down", "ctrl+j"), key.WithHelp("↓", "down")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		play:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in Spotify")),
		copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		history: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "history")),
		clear:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear history")),
		quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.play, k.open, k.copy, k.save},
		{k.history, k.clear, k.back, k.quit},
	}
}
