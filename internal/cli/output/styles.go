package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Header  lipgloss.Style
	Bold    lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds the style set. With styled=false every style is a
// no-op passthrough, which keeps piped output clean.
func NewStyles(styled bool) Styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return Styles{
			Header:  plain,
			Bold:    plain,
			Error:   plain,
			Warning: plain,
			Success: plain,
			Muted:   plain,
		}
	}
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
