package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	// List
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Open   key.Binding
	Menu   key.Binding
	Share  key.Binding
	Edit   key.Binding
	Delete key.Binding
	Filter key.Binding
	Quit   key.Binding

	// Inputs
	NextField key.Binding
	PrevField key.Binding
	Save      key.Binding
	Back      key.Binding
	ForceQuit key.Binding

	// Dialogs
	Choose        key.Binding
	ChooseShare   key.Binding
	ChooseEdit    key.Binding
	ChooseDelete  key.Binding
	Confirm       key.Binding
	Cancel        key.Binding
	ConfirmCancel key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "l", "o"),
			key.WithHelp("Enter", "search"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", " ", "space"),
			key.WithHelp("m", "menu"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "prev"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "save"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "list"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "choose"),
		),
		ChooseShare: key.NewBinding(
			key.WithKeys("1", "s"),
		),
		ChooseEdit: key.NewBinding(
			key.WithKeys("2", "e"),
		),
		ChooseDelete: key.NewBinding(
			key.WithKeys("3", "d"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("Enter", "ok"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("Esc", "cancel"),
		),
		ConfirmCancel: key.NewBinding(
			key.WithKeys("esc", "n", "ctrl+c"),
			key.WithHelp("Esc", "cancel"),
		),
	}
}
