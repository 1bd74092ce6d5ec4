package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const urlPlaceholder = "Enter website URL (e.g., https://example.com)"

// urlField is the single-line website URL entry.
type urlField struct {
	input textinput.Model
}

func newURLField() urlField {
	ti := textinput.New()
	ti.Placeholder = urlPlaceholder
	ti.Prompt = "🔗 "
	ti.CharLimit = 2048
	ti.Focus()
	return urlField{input: ti}
}

// submit returns the trimmed URL. Blank input is not a submission.
func (f urlField) submit() (string, bool) {
	v := strings.TrimSpace(f.input.Value())
	if v == "" {
		return "", false
	}
	return v, true
}

func (f *urlField) reset() { f.input.Reset() }

func (f *urlField) setWidth(w int) {
	if w < 10 {
		w = 10
	}
	f.input.Width = w
}

func (f *urlField) applyTheme(t Theme) {
	f.input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	f.input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))
	f.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	f.input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning))
}

func (f urlField) update(msg tea.Msg) (urlField, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f urlField) view() string { return f.input.View() }
