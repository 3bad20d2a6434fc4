package render

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#2E8B57")
	secondaryColor = lipgloss.Color("#6C6C6C")
	warningColor   = lipgloss.Color("#E5A50A")
)

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	subtle  lipgloss.Style
	label   lipgloss.Style
	warning lipgloss.Style
	box     lipgloss.Style
}

// newStyles binds every style to r so colour output follows the destination writer.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(primaryColor),
		heading: r.NewStyle().
			Bold(true).
			Underline(true).
			MarginTop(1),
		subtle: r.NewStyle().
			Foreground(secondaryColor),
		label: r.NewStyle().
			Bold(true),
		warning: r.NewStyle().
			Foreground(warningColor),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1),
	}
}
