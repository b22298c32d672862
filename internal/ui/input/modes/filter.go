package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"seltable/internal/ui/input/types"
)

// FilterMode edits the row filter. The query only reaches the table when
// it is submitted, and an empty query clears the filter. Esc leaves the
// current filter as it was.
type FilterMode struct {
	input  *textinput.Model
	apply  key.Binding
	cancel key.Binding
	quit   key.Binding
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		input:  ti,
		apply:  key.NewBinding(key.WithKeys("enter")),
		cancel: key.NewBinding(key.WithKeys("esc")),
		quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (m *FilterMode) Name() string {
	return "filter"
}

func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	if m.input == nil {
		return nil
	}
	m.input.Reset()
	m.input.Prompt = "" // the view renders its own "Filter: " label
	m.input.Placeholder = "last name, first name or group"
	m.input.Focus()
	return nil
}

func (m *FilterMode) Exit(ctx types.Context) []types.Action {
	if m.input != nil {
		m.input.Blur()
	}
	return nil
}

// HandleKey only claims enter, esc and ctrl+c; the handler feeds every
// other key to the text input.
func (m *FilterMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.quit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.cancel):
		return []types.Action{types.CancelTextAction{}, types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case key.Matches(msg, m.apply):
		return []types.Action{
			types.SubmitTextAction{Text: m.query(), Mode: types.ModeFilter},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, false
}

func (m *FilterMode) query() string {
	if m.input == nil {
		return ""
	}
	return strings.TrimSpace(m.input.Value())
}
