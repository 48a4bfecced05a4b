package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title                 *lipgloss.Style
	Modified              *lipgloss.Style
	PanelTitle            *lipgloss.Style
	PanelTitleFocused     *lipgloss.Style
	Border                *lipgloss.Style
	BorderFocused         *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	InactiveSelection     *lipgloss.Style
	FieldLabel            *lipgloss.Style
	FieldValue            *lipgloss.Style
	Disabled              *lipgloss.Style
	Sample                *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style
	Prompt                *lipgloss.Style
	Cursor                *lipgloss.Style
	HelpTitle             *lipgloss.Style
	HelpToken             *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Modified: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
	),
	PanelTitleFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	BorderFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	InactiveSelection: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
	),
	FieldLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	FieldValue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Disabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	),
	Sample: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	HelpTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	HelpToken: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
