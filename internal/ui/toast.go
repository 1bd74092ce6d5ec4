package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/commentbox/internal/plaintext"
	"github.com/five82/commentbox/internal/session"
)

// maxToasts is how many notices are stacked on screen at once.
const maxToasts = 3

type toast struct {
	id     int
	notice session.Notice
}

// toastQueue holds the notices currently on screen, oldest first.
type toastQueue struct {
	items  []toast
	nextID int
}

type toastExpiredMsg struct{ id int }

// push shows n and returns the command that dismisses it after its TTL.
func (q *toastQueue) push(n session.Notice) tea.Cmd {
	q.nextID++
	id := q.nextID
	q.items = append(q.items, toast{id: id, notice: n})
	if len(q.items) > maxToasts {
		q.items = q.items[len(q.items)-maxToasts:]
	}
	return tea.Tick(n.TTL(), func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (q *toastQueue) dismiss(id int) {
	for i, t := range q.items {
		if t.id == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

func (q toastQueue) view(theme Theme, width int) string {
	if len(q.items) == 0 {
		return ""
	}
	styles := theme.Styles()
	lines := make([]string, 0, len(q.items))
	for _, t := range q.items {
		style := styles.ToastOK
		icon := "✓ "
		if t.notice.Level == session.LevelError {
			style = styles.ToastError
			icon = "✗ "
		}
		lines = append(lines, style.Render(icon+plaintext.Line(t.notice.Text)))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center, lines...))
}
