package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings shared by all views
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Enter         key.Binding
	Back          key.Binding
	Quit          key.Binding
	Tab           key.Binding
	New           key.Binding
	Edit          key.Binding
	Delete        key.Binding
	Archive       key.Binding
	ToggleArchive key.Binding
	Search        key.Binding
	Filter        key.Binding
	ExportCSV     key.Binding
	ExportXLSX    key.Binding
	ExportPDF     key.Binding
	Note          key.Binding
	Save          key.Binding
	Help          key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Archive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "archive"),
		),
		ToggleArchive: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "active/archived"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "platform"),
		),
		ExportCSV: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "export csv"),
		),
		ExportXLSX: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export xlsx"),
		),
		ExportPDF: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "export pdf"),
		),
		Note: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insight note"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
