package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the quiz screens react to.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Start  key.Binding
	Option key.Binding
	Check  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Topics key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
		Start:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Option: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "choose")),
		Check:  key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter/c", "check")),
		Next:   key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "next")),
		Prev:   key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "previous")),
		Topics: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "chapters")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) topicsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Start, k.Quit}
}

func (k keyMap) questionHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Option, k.Check, k.Prev, k.Next, k.Topics, k.Reset, k.Quit}
}
