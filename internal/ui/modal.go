package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/commentbox/internal/plaintext"
)

const loadingCommentary = "Loading commentary..."

// commentaryModal is the overlay that shows a finished commentary.
type commentaryModal struct {
	viewport    viewport.Model
	title       string
	text        string
	websiteType string
	width       int
	height      int
}

func newCommentaryModal() commentaryModal {
	return commentaryModal{viewport: viewport.New(0, 0)}
}

// setContent replaces what the overlay shows and scrolls back to the top.
// Everything is reduced to plain text first.
func (c *commentaryModal) setContent(title, text, websiteType string) {
	c.title = plaintext.Line(title)
	c.text = plaintext.Clean(text)
	c.websiteType = plaintext.Line(websiteType)
	c.refresh()
	c.viewport.GotoTop()
}

// resize fits the overlay to the terminal.
func (c *commentaryModal) resize(width, height int) {
	c.width = width
	c.height = height
	c.refresh()
}

func (c commentaryModal) innerWidth() int {
	w := c.width*3/4 - 6
	if w > 88 {
		w = 88
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (c commentaryModal) innerHeight() int {
	h := c.height*2/3 - 6
	if h < 3 {
		h = 3
	}
	return h
}

func (c *commentaryModal) refresh() {
	c.viewport.Width = c.innerWidth()
	c.viewport.Height = c.innerHeight()
	body := c.text
	if body == "" {
		body = loadingCommentary
	}
	c.viewport.SetContent(lipgloss.NewStyle().Width(c.innerWidth()).Render(body))
}

func (c commentaryModal) update(msg tea.Msg) (commentaryModal, tea.Cmd) {
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

func (c commentaryModal) view(theme Theme, keys keyMap, h help.Model) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Title.Render(c.title))
	if c.websiteType != "" {
		b.WriteString("  ")
		b.WriteString(styles.FaintText.Render("(" + c.websiteType + ")"))
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", c.innerWidth())))
	b.WriteString("\n")
	if c.text == "" {
		b.WriteString(styles.MutedText.Render(c.viewport.View()))
	} else {
		b.WriteString(styles.Text.Render(c.viewport.View()))
	}
	b.WriteString("\n")

	footer := h.View(overlayKeys(keys))
	if !c.viewport.AtTop() || !c.viewport.AtBottom() {
		footer += styles.FaintText.Render(fmt.Sprintf("  %3.f%%", c.viewport.ScrollPercent()*100))
	}
	b.WriteString(footer)

	box := styles.Overlay.Width(c.innerWidth() + 4).Render(b.String())
	return lipgloss.Place(
		c.width,
		c.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
