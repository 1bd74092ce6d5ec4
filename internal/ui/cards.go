package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/commentbox/internal/commentator"
)

const cardWidth = 30

// renderCards draws one card per commentator. Below LayoutCompactWidth the
// cards collapse into a one-line-per-commentator list.
func renderCards(theme Theme, selected commentator.Commentator, width int) string {
	all := commentator.All()
	if width > 0 && width < LayoutCompactWidth {
		return renderCardList(theme, all, selected)
	}

	cards := make([]string, 0, len(all))
	for i, c := range all {
		cards = append(cards, renderCard(theme, c, c.ID == selected.ID, i+1))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderCard(theme Theme, c commentator.Commentator, selected bool, position int) string {
	styles := theme.Styles()

	border := lipgloss.Color(styles.cardBorder)
	if selected {
		border = lipgloss.Color(c.Accent)
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Margin(0, 1, 0, 0).
		Width(cardWidth)

	name := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)).Bold(true).Render(c.Name)
	head := c.Emoji + " " + name
	if selected {
		head += " " + styles.CheckBadge.Render(" ✓ ")
	}

	var b strings.Builder
	b.WriteString(head)
	b.WriteString("\n")
	b.WriteString(styles.Text.Italic(true).Render(c.Style))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(c.Description))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("alt+" + strconv.Itoa(position)))
	return box.Render(b.String())
}

func renderCardList(theme Theme, all []commentator.Commentator, selected commentator.Commentator) string {
	styles := theme.Styles()
	lines := make([]string, 0, len(all))
	for _, c := range all {
		marker := "  "
		line := c.Emoji + " " + c.Name + " · " + c.Style
		if c.ID == selected.ID {
			marker = styles.AccentText.Render("▸ ")
			line = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)).Bold(true).Render(line) + " ✓"
		} else {
			line = styles.MutedText.Render(line)
		}
		lines = append(lines, marker+line)
	}
	return strings.Join(lines, "\n")
}
