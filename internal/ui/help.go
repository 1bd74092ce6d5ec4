package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	h := m.help
	h.ShowAll = true
	b.WriteString(h.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(m.renderThemeList())
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("API: " + m.apiURL))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderThemeList lists the themes ctrl+t cycles through, current one marked.
func (m Model) renderThemeList() string {
	styles := m.theme.Styles()
	names := ThemeNames()
	parts := make([]string, len(names))
	for i, name := range names {
		if name == m.theme.Name {
			parts[i] = styles.AccentText.Render("[" + name + "]")
			continue
		}
		parts[i] = styles.FaintText.Render(name)
	}
	return styles.FaintText.Render("Themes: ") + strings.Join(parts, styles.FaintText.Render(" · "))
}
