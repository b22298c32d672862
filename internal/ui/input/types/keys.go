package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal-mode bindings and doubles as the help.KeyMap
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Home        key.Binding
	End         key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	Toggle      key.Binding
	RangeSelect key.Binding
	SelectPage  key.Binding
	SelectAll   key.Binding
	DeselectAll key.Binding
	KeepToggle  key.Binding
	Actions     key.Binding
	MoreActions key.Binding
	Filter      key.Binding
	ActivityLog key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first row")),
		End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last row")),
		NextPage:    key.NewBinding(key.WithKeys("n", "right", "pgdown"), key.WithHelp("n/→", "next page")),
		PrevPage:    key.NewBinding(key.WithKeys("p", "left", "pgup"), key.WithHelp("p/←", "prev page")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select row")),
		RangeSelect: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "select range")),
		SelectPage:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
		SelectAll:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "select all")),
		DeselectAll: key.NewBinding(key.WithKeys("D", "esc"), key.WithHelp("D", "deselect all")),
		KeepToggle:  key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "keep selections across pages")),
		Actions:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "run action")),
		MoreActions: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "more actions")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		ActivityLog: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "activity log")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Actions, k.MoreActions, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End, k.NextPage, k.PrevPage},
		{k.Toggle, k.RangeSelect, k.SelectPage, k.SelectAll, k.DeselectAll, k.KeepToggle},
		{k.Actions, k.MoreActions, k.Filter, k.ActivityLog, k.Help, k.Quit},
	}
}
