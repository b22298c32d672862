package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"seltable/internal/ui/input/types"
)

// MenuMode drives the "more actions" dropdown
type MenuMode struct{}

func NewMenuMode() *MenuMode {
	return &MenuMode{}
}

func (m *MenuMode) Name() string {
	return "menu"
}

func (m *MenuMode) Enter(ctx types.Context) []types.Action {
	// The menu always reopens on its first option
	return []types.Action{types.MenuMoveAction{Delta: -ctx.MenuIndex()}}
}

func (m *MenuMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *MenuMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "m", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "up", "k":
		return []types.Action{types.MenuMoveAction{Delta: -1}}, true
	case "down", "j":
		return []types.Action{types.MenuMoveAction{Delta: 1}}, true
	case "enter", " ":
		// The selection may have been cleared while the menu was open
		if !ctx.ActionsEnabled() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
		}
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
			types.RunMenuItemAction{Index: ctx.MenuIndex()},
		}, true
	}
	return nil, false
}
