package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/commentbox/internal/analysis"
	"github.com/five82/commentbox/internal/session"
	"github.com/five82/commentbox/internal/share"
)

// Messages

type analysisDoneMsg struct {
	ticket session.Ticket
	resp   *analysis.Response
	err    error
}

type healthMsg struct {
	status string
	err    error
}

type healthTickMsg time.Time

// actionMsg reports the outcome of a copy or share.
type actionMsg struct {
	action string
	notice session.Notice
	err    error
}

// copyText is a package-level variable to allow mocking in tests.
var copyText = share.Copy

var errNoClient = errors.New("no analysis client configured")

// Commands

// analyzeCmd runs one analysis. A panic inside the client is reported as a
// failed analysis so the loading state always clears.
func analyzeCmd(ctx context.Context, client analysis.Analyzer, t session.Ticket) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = analysisDoneMsg{ticket: t, err: fmt.Errorf("analysis failed: %v", r)}
			}
		}()
		if client == nil {
			return analysisDoneMsg{ticket: t, err: errNoClient}
		}
		resp, err := client.Analyze(ctx, t.Request)
		return analysisDoneMsg{ticket: t, resp: resp, err: err}
	}
}

func healthCmd(ctx context.Context, client analysis.Analyzer) tea.Cmd {
	if client == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
		defer cancel()
		resp, err := client.Health(ctx)
		if err != nil {
			return healthMsg{err: err}
		}
		return healthMsg{status: resp.Status}
	}
}

func healthTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return healthTickMsg(t)
	})
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return actionMsg{action: "copy", notice: session.Notice{Level: session.LevelError, Text: session.MsgCopyFailed}, err: err}
		}
		return actionMsg{action: "copy", notice: session.Success(session.MsgCopied)}
	}
}

func shareCmd(ctx context.Context, sharer share.Sharer, title, text string) tea.Cmd {
	return func() tea.Msg {
		failed := session.Notice{Level: session.LevelError, Text: session.MsgShareFailed}
		if sharer == nil {
			return actionMsg{action: "share", notice: failed, err: share.ErrUnavailable}
		}
		ctx, cancel := context.WithTimeout(ctx, ShareTimeout)
		defer cancel()
		if err := sharer.Share(ctx, title, text); err != nil {
			return actionMsg{action: "share", notice: failed, err: err}
		}
		return actionMsg{action: "share", notice: session.Success(session.MsgShared)}
	}
}
