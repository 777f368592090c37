package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Digit    key.Binding
	Operator key.Binding
	Equal    key.Binding
	Clear    key.Binding
	Tape     key.Binding
	Reset    key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
			key.WithHelp("0-9 .", "digit"),
		),
		Operator: key.NewBinding(key.WithKeys("+", "-", "*", "/"), key.WithHelp("+ - * /", "operator")),
		Equal:    key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "equal")),
		Clear:    key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c", "clear")),
		Tape:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "tape")),
		Reset:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "wipe tape")),
		Confirm:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Cancel:   key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equal, k.Clear, k.Tape, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Operator, k.Equal, k.Clear},
		{k.Tape, k.Reset, k.Help, k.Quit},
	}
}

// confirmKeyMap is shown while a tape wipe waits for confirmation.
type confirmKeyMap struct {
	keyMap
}

func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}
