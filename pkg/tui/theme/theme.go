package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Tabs   TabTheme
	List   ListTheme
	Form   FormTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// TabTheme styles the tab bar.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Gap      lipgloss.Style
}

// ListTheme styles category headers and item rows.
type ListTheme struct {
	Header   lipgloss.Style
	Count    lipgloss.Style
	Row      lipgloss.Style
	Cursor   lipgloss.Style
	Listed   lipgloss.Style
	Bought   lipgloss.Style
	Empty    lipgloss.Style
	Selected lipgloss.Style
}

// FormTheme styles the add-item form.
type FormTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
}

// FooterTheme groups styles used by the bottom help/status lines.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// ModalTheme styles the confirmation dialog.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Keys  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	tab := lipgloss.NewStyle().Padding(0, 2)

	return Theme{
		Tabs: TabTheme{
			Active: tab.
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")),
			Inactive: tab.Foreground(lipgloss.Color("245")),
			Gap:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		},
		List: ListTheme{
			Header:   lipgloss.NewStyle().Bold(true),
			Count:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Row:      lipgloss.NewStyle(),
			Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Listed:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
			Bought:   lipgloss.NewStyle().Strikethrough(true).Faint(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
		Form: FormTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("203")).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Keys:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// CategoryHeader returns the header style tinted with a palette colour.
func (t Theme) CategoryHeader(color string) lipgloss.Style {
	if color == "" {
		return t.List.Header
	}
	return t.List.Header.Foreground(lipgloss.Color(color))
}
