package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Row         lipgloss.Style
	RowHover    lipgloss.Style
	RowCursor   lipgloss.Style
	Selected    lipgloss.Style
	Carried     lipgloss.Style
	Grip        lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33")),
		Row:       lipgloss.NewStyle(),
		RowHover:  lipgloss.NewStyle().Background(lipgloss.Color("236")),
		RowCursor: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Carried: lipgloss.NewStyle().
			Background(lipgloss.Color("57")).
			Foreground(lipgloss.Color("255")),
		Grip:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
