package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Link key.Binding
	Next key.Binding
	Prev key.Binding
	Go   key.Binding
	Back key.Binding
	Help key.Binding
	Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Link: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "pages")),
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous page")),
		Go:   key.NewBinding(key.WithKeys("g", ":"), key.WithHelp("g", "go to path")),
		Back: key.NewBinding(key.WithKeys("backspace", "alt+left"), key.WithHelp("⌫", "back")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpKeys joins the active view's bindings with the shell's.
type helpKeys struct {
	shell keyMap
	view  []key.Binding
}

func (k helpKeys) ShortHelp() []key.Binding {
	out := append([]key.Binding{}, k.view...)
	return append(out, k.shell.Link, k.shell.Go, k.shell.Help, k.shell.Quit)
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.view,
		{k.shell.Link, k.shell.Next, k.shell.Prev},
		{k.shell.Go, k.shell.Back, k.shell.Help, k.shell.Quit},
	}
}
