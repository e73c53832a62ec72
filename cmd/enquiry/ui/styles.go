// Package ui is the terminal enquiry form: contact fields, the two product
// lists with their move buttons, and the submission status line.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	primary   = lipgloss.Color("#1d4ed8")
	accent    = lipgloss.Color("#2563eb")
	muted     = lipgloss.Color("#6b7280")
	success   = lipgloss.Color("#16a34a")
	danger    = lipgloss.Color("#dc2626")
	highlight = lipgloss.Color("#f9fafb")
)

// Styles groups the lipgloss styles used by the form.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Pane     lipgloss.Style
	Focused  lipgloss.Style
	Item     lipgloss.Style
	Cursor   lipgloss.Style
	Empty    lipgloss.Style
	Button   lipgloss.Style
	Active   lipgloss.Style
	Disabled lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the form's colour scheme.
func DefaultStyles() Styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1).
		Width(32)

	button := lipgloss.NewStyle().Padding(0, 1)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(highlight).Background(primary).Padding(0, 1),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Pane:     pane,
		Focused:  pane.BorderForeground(accent),
		Item:     lipgloss.NewStyle(),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Empty:    lipgloss.NewStyle().Italic(true).Foreground(muted),
		Button:   button.Border(lipgloss.NormalBorder()),
		Active:   button.Border(lipgloss.NormalBorder()).BorderForeground(accent).Bold(true),
		Disabled: button.Border(lipgloss.NormalBorder()).Foreground(muted).BorderForeground(muted).Faint(true),
		Success:  lipgloss.NewStyle().Foreground(success),
		Error:    lipgloss.NewStyle().Foreground(danger),
		Help:     lipgloss.NewStyle().Foreground(muted),
	}
}
