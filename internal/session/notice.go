package session

import (
	"errors"
	"strings"
	"time"

	"github.com/five82/commentbox/internal/analysis"
)

// Level classifies a notice.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

// Display durations.
const (
	successTTL = 2 * time.Second
	errorTTL   = 4 * time.Second
)

// Notice is a short user-facing message.
type Notice struct {
	Level Level
	Text  string
}

// TTL is how long the notice stays on screen.
func (n Notice) TTL() time.Duration {
	if n.Level == LevelError {
		return errorTTL
	}
	return successTTL
}

// Success builds a success notice.
func Success(text string) Notice {
	return Notice{Level: LevelSuccess, Text: text}
}

// Failure builds an error notice from err.
func Failure(err error) Notice {
	return Notice{Level: LevelError, Text: FailureMessage(err)}
}

// FailureMessage is the text shown for a failed analysis: the error's own
// message, or a generic fallback when there is nothing usable. An empty
// result always reads MsgNoCommentary.
func FailureMessage(err error) string {
	if err == nil {
		return MsgAnalysisFailed
	}
	if errors.Is(err, analysis.ErrEmptyResult) {
		return MsgNoCommentary
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return MsgAnalysisFailed
	}
	return msg
}
