package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"seltable/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Title          string
	Rows           []RowView
	Page           int
	PageCount      int
	Selection      domain.SelectionState
	KeepSelected   bool
	FilterQuery    string
	TextInput      string
	InputMode      string
	TopControls    []ControlView
	BottomControls []ControlView
	MenuOpen       bool
	MenuTitle      string
	MenuItems      []string
	MenuIndex      int
	ConfirmTitle   string
	ConfirmMessage string
	StatusMessage  string
	ShowHelp       bool
	HelpModel      help.Model
	HelpKeys       help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	tableRender   *TableRenderer
	toolbarRender *ToolbarRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		tableRender:   NewTableRenderer(styles),
		toolbarRender: NewToolbarRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := state.Title
	if title == "" {
		title = "seltable"
	}
	titleLine := r.styles.Title.Render(title)
	if state.FilterQuery != "" {
		filterText := r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery))
		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80
		}
		padding := termWidth - 4 - lipgloss.Width(titleLine) - lipgloss.Width(filterText)
		if padding < 2 {
			padding = 2
		}
		titleLine = titleLine + strings.Repeat(" ", padding) + filterText
	}
	content.WriteString(titleLine)
	content.WriteString("\n")

	if state.InputMode == "filter" {
		content.WriteString(state.TextInput)
		content.WriteString("\n\n")
	}

	content.WriteString(r.toolbarRender.Render(state.TopControls))
	content.WriteString("\n")
	if state.MenuOpen {
		content.WriteString(r.toolbarRender.RenderMenu(state.MenuTitle, state.MenuItems, state.MenuIndex))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(r.tableRender.Render(state.Rows, state.Width-4))
	content.WriteString("\n\n")
	content.WriteString(r.toolbarRender.Render(state.BottomControls))
	content.WriteString("\n")
	content.WriteString(r.tableRender.RenderFooter(state.Page, state.PageCount, state.Selection, state.KeepSelected))

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	content.WriteString("\n")
	if state.ShowHelp && state.HelpKeys != nil {
		hm := state.HelpModel
		hm.ShowAll = true
		content.WriteString(hm.View(state.HelpKeys))
	} else {
		content.WriteString(r.styles.Help.Render("Press ? for help"))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ConfirmMessage != "" {
		popup := r.popupRender.RenderConfirm(state.ConfirmTitle, state.ConfirmMessage)
		return r.popupRender.Center(popup, state.Width, state.Height)
	}

	return finalContent
}
