package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Confirm        lipgloss.Style
	ConfirmBox     lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Filter         lipgloss.Style
	Header         lipgloss.Style
	Cursor         lipgloss.Style
	Checked        lipgloss.Style
	Scroll         lipgloss.Style
	ButtonEnabled  lipgloss.Style
	ButtonDisabled lipgloss.Style
	MenuBox        lipgloss.Style
	MenuTitle      lipgloss.Style
	MenuItem       lipgloss.Style
	MenuSelected   lipgloss.Style
	Hidden         lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Confirm: lipgloss.NewStyle().Bold(true),
		ConfirmBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(1, 2),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
		Cursor:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Checked: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Scroll:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		ButtonEnabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		MenuBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		MenuTitle:    lipgloss.NewStyle().Faint(true).Italic(true),
		MenuItem:     lipgloss.NewStyle(),
		MenuSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Hidden:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(1, 2),
	}
}
