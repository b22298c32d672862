package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"seltable/internal/actions"
	"seltable/internal/activity"
	"seltable/internal/config"
	"seltable/internal/confirm"
	"seltable/internal/eventbus"
	"seltable/internal/table"
	"seltable/internal/toolbar"
	"seltable/internal/ui/handlers"
	"seltable/internal/ui/input"
	inputtypes "seltable/internal/ui/input/types"
	"seltable/internal/ui/services/events"
	"seltable/internal/ui/views"
)

// MoreActionsLabel is the title of the "more actions" menu
const MoreActionsLabel = "More Actions"

// clearStatusMsg clears the status bar after a delay
type clearStatusMsg struct{}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	width    int
	height   int
	help     help.Model
	showHelp bool
	status   string

	cursor    int // row index on the current page
	menuIndex int
	pending   *actions.Pending

	table        *table.Table
	toolbar      *toolbar.Toolbar
	registry     *actions.Registry
	runner       *actions.Runner
	activity     *activity.Log
	selection    *handlers.SelectionHandler
	eventHandler *handlers.EventHandler
	uiBus        events.EventBus
	renderer     *views.Renderer
	inputHandler *input.Handler
}

// NewModel creates a new UI model over the rows in store
func NewModel(bus eventbus.EventBus, cfg *config.Config, store table.RowStore, builder *confirm.Builder, activityLog *activity.Log) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if builder == nil {
		builder = confirm.NewDefault()
	}
	if activityLog == nil {
		activityLog = activity.New(bus)
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		help:         help.New(),
		activity:     activityLog,
		uiBus:        events.NewBus(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(inputtypes.DefaultKeyMap()),
	}

	m.eventHandler = handlers.NewEventHandler(m)
	for _, ev := range []interface{}{
		table.SelectionChangedEvent{},
		table.SelectionClearedEvent{},
		table.RowsRemovedEvent{},
	} {
		m.uiBus.Subscribe(events.TypeOf(ev), m.eventHandler.HandleTableEvent)
	}

	m.table = table.New(store, m.uiBus, table.Options{
		PageSize:     cfg.Table.PageSize,
		KeepSelected: cfg.Table.KeepSelected,
	})
	m.registry = actions.NewRegistry(cfg.Actions, cfg.MoreActions)
	m.toolbar = toolbar.NewStandard(m.registry.Specs(), MoreActionsLabel)
	m.runner = actions.NewRunner(m.registry, m.table, builder, bus, activityLog)
	m.selection = handlers.NewSelectionHandler(m.table, m.toolbar)

	// Toolbars start in the state the initial selection implies
	m.selection.Sync()
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Table returns the table the model drives
func (m *Model) Table() *table.Table { return m.table }

// Toolbar returns the selection-gated toolbar
func (m *Model) Toolbar() *toolbar.Toolbar { return m.toolbar }

// SetStatus implements handlers.StatusSink
func (m *Model) SetStatus(msg string) {
	m.status = msg
}

// Status returns the current status bar message
func (m *Model) Status() string { return m.status }

// CurrentIndex implements inputtypes.Context
func (m *Model) CurrentIndex() int { return m.cursor }

// PageLen implements inputtypes.Context
func (m *Model) PageLen() int { return len(m.table.PageRows()) }

// ActionsEnabled implements inputtypes.Context
func (m *Model) ActionsEnabled() bool { return m.toolbar.Enabled() }

// ButtonCount implements inputtypes.Context
func (m *Model) ButtonCount() int { return len(m.registry.Buttons()) }

// MenuLen implements inputtypes.Context
func (m *Model) MenuLen() int { return len(m.registry.More()) }

// MenuIndex implements inputtypes.Context
func (m *Model) MenuIndex() int { return m.menuIndex }

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		acts, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range acts {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// processAction executes one input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.PageAction:
		m.selection.Apply(func(t *table.Table) {
			if a.Delta > 0 {
				t.NextPage()
			} else {
				t.PrevPage()
			}
		})
		m.clampCursor()

	case inputtypes.SelectAction:
		index := a.Index
		if index < 0 {
			index = m.cursor
		}
		m.selection.Apply(func(t *table.Table) {
			if a.Range {
				t.SelectRange(index)
			} else {
				t.Toggle(index)
			}
		})

	case inputtypes.SelectPageAction:
		m.selection.Apply(func(t *table.Table) { t.SelectPage() })

	case inputtypes.SelectAllAction:
		m.selection.Apply(func(t *table.Table) { t.SelectAll() })

	case inputtypes.DeselectAllAction:
		m.selection.Apply(func(t *table.Table) { t.DeselectAll() })

	case inputtypes.ToggleKeepSelectedAction:
		keep := !m.table.KeepSelected()
		m.selection.Apply(func(t *table.Table) { t.SetKeepSelected(keep) })
		if keep {
			m.SetStatus("Selections kept across pages and filters")
		} else {
			m.SetStatus("Selections cleared on page and filter change")
		}
		if m.bus != nil {
			m.bus.Publish(eventbus.ConfigChangedEvent{
				KeepSelected: keep,
				PageSize:     m.table.PageSize(),
			})
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.selection.Apply(func(t *table.Table) { t.SetFilter(a.Text) })
			m.cursor = 0
			if a.Text == "" {
				m.SetStatus("Filter cleared")
			} else {
				m.SetStatus(fmt.Sprintf("Filter: %s (%d rows)", a.Text, len(m.table.FilteredRows())))
			}
		}

	case inputtypes.RunButtonAction:
		buttons := m.registry.Buttons()
		if a.Index < 0 || a.Index >= len(buttons) {
			return nil
		}
		return m.startAction(buttons[a.Index].ID)

	case inputtypes.MenuMoveAction:
		n := len(m.registry.More())
		if n == 0 {
			m.menuIndex = 0
			return nil
		}
		m.menuIndex += a.Delta
		if m.menuIndex < 0 {
			m.menuIndex = 0
		}
		if m.menuIndex >= n {
			m.menuIndex = n - 1
		}

	case inputtypes.RunMenuItemAction:
		more := m.registry.More()
		m.menuIndex = 0
		if a.Index < 0 || a.Index >= len(more) {
			return nil
		}
		return m.startAction(more[a.Index].ID)

	case inputtypes.ConfirmAction:
		pending := m.pending
		m.pending = nil
		if pending == nil {
			return nil
		}
		if !a.Accepted {
			m.SetStatus(pending.Action.Label + " cancelled")
			return nil
		}
		return m.execute(pending.Action)

	case inputtypes.OpenActivityLogAction:
		return showInPager("Activity", renderMarkdown(m.activity.Markdown("Activity")))

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// startAction confirms the action first when it asks for it
func (m *Model) startAction(id string) tea.Cmd {
	pending, err := m.runner.Prepare(id)
	if err != nil {
		return m.showError(err)
	}
	if pending.NeedsConfirm() {
		m.pending = &pending
		m.inputHandler.EnterMode(inputtypes.ModeConfirm, m)
		return nil
	}
	return m.execute(pending.Action)
}

func (m *Model) execute(a actions.Action) tea.Cmd {
	res, err := m.runner.Execute(a)
	// Deletion changes the selection out of band
	m.selection.Sync()
	m.clampCursor()
	if err != nil {
		return m.showError(err)
	}
	m.SetStatus(res.Summary())
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) showError(err error) tea.Cmd {
	if errors.Is(err, actions.ErrNoSelection) {
		m.SetStatus("Nothing selected")
	} else {
		log.Printf("Action failed: %v", err)
		m.SetStatus(fmt.Sprintf("Error: %v", err))
	}
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) navigate(direction string) {
	n := m.PageLen()
	switch direction {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		} else if m.table.Page() > 0 {
			m.selection.Apply(func(t *table.Table) { t.PrevPage() })
			m.cursor = m.PageLen() - 1
		}
	case "down":
		if m.cursor < n-1 {
			m.cursor++
		} else if m.table.Page() < m.table.PageCount()-1 {
			m.selection.Apply(func(t *table.Table) { t.NextPage() })
			m.cursor = 0
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = n - 1
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := m.PageLen()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		m.eventHandler.HandleEvent(msg.Event)
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			log.Printf("%s pager failed: %v", msg.title, msg.err)
			m.SetStatus(fmt.Sprintf("Pager failed: %v", msg.err))
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case quitMsg:
		return m, tea.Quit
	}
	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	pageRows := m.table.PageRows()
	rows := make([]views.RowView, 0, len(pageRows))
	for i, r := range pageRows {
		rows = append(rows, views.RowView{
			ID:      r.ID,
			Name:    r.DisplayName(),
			Group:   r.Group,
			Checked: m.table.RowChecked(r.ID),
			Cursor:  i == m.cursor,
		})
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Title:          m.config.Table.Title,
		Rows:           rows,
		Page:           m.table.Page(),
		PageCount:      m.table.PageCount(),
		Selection:      m.table.SelectionState(),
		KeepSelected:   m.table.KeepSelected(),
		FilterQuery:    m.table.Filter(),
		InputMode:      m.inputHandler.ModeName(),
		TopControls:    views.ControlViews(m.toolbar.Group(toolbar.Top)),
		BottomControls: views.ControlViews(m.toolbar.Group(toolbar.Bottom)),
		StatusMessage:  m.status,
		ShowHelp:       m.showHelp,
		HelpModel:      m.help,
		HelpKeys:       m.inputHandler.Keys(),
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		state.TextInput = "Filter: " + ti.View()
	}

	if m.inputHandler.CurrentMode() == inputtypes.ModeMenu {
		state.MenuOpen = true
		state.MenuTitle = MoreActionsLabel
		state.MenuIndex = m.menuIndex
		for _, a := range m.registry.More() {
			state.MenuItems = append(state.MenuItems, a.Label)
		}
	}

	if m.pending != nil && m.inputHandler.CurrentMode() == inputtypes.ModeConfirm {
		state.ConfirmTitle = m.pending.Action.Label
		state.ConfirmMessage = m.pending.Message
	}

	return state
}
