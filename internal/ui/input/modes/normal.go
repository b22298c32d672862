package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"seltable/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case key.Matches(msg, m.keys.NextPage):
		return []types.Action{types.PageAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.PrevPage):
		return []types.Action{types.PageAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Toggle):
		if ctx.PageLen() == 0 {
			return nil, false
		}
		return []types.Action{types.SelectAction{Index: -1}}, true
	case key.Matches(msg, m.keys.RangeSelect):
		if ctx.PageLen() == 0 {
			return nil, false
		}
		return []types.Action{types.SelectAction{Index: -1, Range: true}}, true
	case key.Matches(msg, m.keys.SelectPage):
		return []types.Action{types.SelectPageAction{}}, true
	case key.Matches(msg, m.keys.SelectAll):
		return []types.Action{types.SelectAllAction{}}, true
	case key.Matches(msg, m.keys.DeselectAll):
		return []types.Action{types.DeselectAllAction{}}, true
	case key.Matches(msg, m.keys.KeepToggle):
		return []types.Action{types.ToggleKeepSelectedAction{}}, true

	case key.Matches(msg, m.keys.Actions):
		// Disabled toolbar: the keys do nothing, like a greyed-out button
		if !ctx.ActionsEnabled() {
			return nil, false
		}
		if len(msg.Runes) == 0 {
			return nil, false
		}
		index := int(msg.Runes[0] - '1')
		if index >= ctx.ButtonCount() {
			return nil, false
		}
		return []types.Action{types.RunButtonAction{Index: index}}, true
	case key.Matches(msg, m.keys.MoreActions):
		if !ctx.ActionsEnabled() || ctx.MenuLen() == 0 {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeMenu}}, true

	case key.Matches(msg, m.keys.Filter):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true
	case key.Matches(msg, m.keys.ActivityLog):
		return []types.Action{types.OpenActivityLogAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
