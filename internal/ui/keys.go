package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	NextPanel key.Binding
	PrevPanel key.Binding
	Add       key.Binding
	Remove    key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Edit      key.Binding
	Template  key.Binding
	PrevValue key.Binding
	NextValue key.Binding
	Apply     key.Binding
	Reset     key.Binding
	Find      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		NextPanel: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevPanel: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Add:       key.NewBinding(key.WithKeys("a", "insert"), key.WithHelp("a", "add")),
		Remove:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		MoveUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown:  key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Edit:      key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Template:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "edit template")),
		PrevValue: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev value")),
		NextValue: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next value")),
		Apply:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "apply")),
		Reset:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Find:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit now")),
	}
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPanel, k.Add, k.Remove, k.Edit, k.Apply, k.Reset, k.Find, k.Help, k.Quit}
}

// FullHelp is shown in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.NextPanel, k.PrevPanel, k.Edit, k.Template, k.PrevValue, k.NextValue, k.Find},
		{k.Add, k.Remove, k.MoveUp, k.MoveDown},
		{k.Apply, k.Reset, k.Help, k.Quit, k.ForceQuit},
	}
}
