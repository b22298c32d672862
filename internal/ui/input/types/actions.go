package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type PageAction struct {
	Delta int // +1 next page, -1 previous page
}

func (a PageAction) Type() string { return "page" }

// Selection actions
type SelectAction struct {
	Index int // -1 for current
	Range bool
}

func (a SelectAction) Type() string { return "select" }

type SelectPageAction struct{}

func (a SelectPageAction) Type() string { return "select_page" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

type ToggleKeepSelectedAction struct{}

func (a ToggleKeepSelectedAction) Type() string { return "toggle_keep_selected" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Toolbar actions
type RunButtonAction struct {
	Index int // position among the toolbar buttons
}

func (a RunButtonAction) Type() string { return "run_button" }

type MenuMoveAction struct {
	Delta int
}

func (a MenuMoveAction) Type() string { return "menu_move" }

type RunMenuItemAction struct {
	Index int
}

func (a RunMenuItemAction) Type() string { return "run_menu_item" }

type ConfirmAction struct {
	Accepted bool
}

func (a ConfirmAction) Type() string { return "confirm" }

// Misc actions
type OpenActivityLogAction struct{}

func (a OpenActivityLogAction) Type() string { return "open_activity_log" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
