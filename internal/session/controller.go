package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/commentbox/internal/analysis"
	"github.com/five82/commentbox/internal/commentator"
)

var (
	// ErrBusy is returned by Begin while another analysis is in flight.
	ErrBusy = errors.New("an analysis is already running")

	// ErrEmptyURL is returned by Begin for blank input.
	ErrEmptyURL = errors.New("url is empty")
)

// Messages surfaced as notices.
const (
	MsgAnalysisComplete = "Analysis complete!"
	MsgAnalysisFailed   = "Failed to analyze website"
	MsgNoCommentary     = "No commentary received from the API"
	MsgCopied           = "Commentary copied to clipboard!"
	MsgCopyFailed       = "Copy failed. Select the text manually instead."
	MsgShareFailed      = "Sharing failed. Try copying instead!"
	MsgShared           = "Commentary shared!"
)

// Ticket identifies one analysis submission.
type Ticket struct {
	ID          uint64
	Request     analysis.Request
	Commentator commentator.Commentator
}

// State is a read-only view of the controller.
type State struct {
	Selected     commentator.Commentator
	ModalOpen    bool
	Commentary   string
	CommentaryBy commentator.Commentator
	WebsiteType  string
	Loading      bool
}

// Controller holds the screen state and the rules for changing it.
type Controller struct {
	selected     commentator.Commentator
	modalOpen    bool
	commentary   string
	commentaryBy commentator.Commentator
	websiteType  string

	inflight *Ticket
	nextID   uint64

	validate func(string) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithValidator runs fn against every URL before a request is issued.
func WithValidator(fn func(string) error) Option {
	return func(c *Controller) { c.validate = fn }
}

// New returns a Controller with the default commentator selected.
func New(opts ...Option) *Controller {
	c := &Controller{selected: commentator.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	return State{
		Selected:     c.selected,
		ModalOpen:    c.modalOpen,
		Commentary:   c.commentary,
		CommentaryBy: c.commentaryBy,
		WebsiteType:  c.websiteType,
		Loading:      c.inflight != nil,
	}
}

// Loading reports whether an analysis is in flight.
func (c *Controller) Loading() bool { return c.inflight != nil }

// Selected returns the current commentator.
func (c *Controller) Selected() commentator.Commentator { return c.selected }

// Select makes id the current commentator. Requests already in flight keep
// the commentator they were started with.
func (c *Controller) Select(id string) error {
	next, ok := commentator.Lookup(id)
	if !ok {
		return fmt.Errorf("unknown commentator %q (want one of %s)", id, strings.Join(commentator.IDs(), ", "))
	}
	c.selected = next
	return nil
}

// SelectOffset moves the selection by delta positions, wrapping around.
func (c *Controller) SelectOffset(delta int) {
	all := commentator.All()
	idx := commentator.Index(c.selected.ID)
	n := len(all)
	idx = ((idx+delta)%n + n) % n
	c.selected = all[idx]
}

// Begin starts an analysis of rawURL for the selected commentator.
func (c *Controller) Begin(rawURL string) (Ticket, error) {
	if c.inflight != nil {
		return Ticket{}, ErrBusy
	}
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return Ticket{}, ErrEmptyURL
	}
	if c.validate != nil {
		if err := c.validate(trimmed); err != nil {
			return Ticket{}, err
		}
	}
	c.nextID++
	t := Ticket{
		ID:          c.nextID,
		Request:     analysis.Request{URL: trimmed, Commentator: c.selected.ID},
		Commentator: c.selected,
	}
	c.inflight = &t
	return t, nil
}

// Complete records the outcome of t and returns the notice to show. Results
// for a ticket that is no longer in flight are dropped (ok is false).
func (c *Controller) Complete(t Ticket, resp *analysis.Response, err error) (n Notice, ok bool) {
	if c.inflight == nil || c.inflight.ID != t.ID {
		return Notice{}, false
	}
	c.inflight = nil

	if err == nil && (resp == nil || resp.Commentary == "") {
		err = analysis.ErrEmptyResult
	}
	if err != nil {
		return Failure(err), true
	}

	c.commentary = resp.Commentary
	c.commentaryBy = t.Commentator
	c.websiteType = resp.WebsiteType
	c.modalOpen = true
	return Success(MsgAnalysisComplete), true
}

// CloseModal hides the commentary overlay. The commentary itself is kept.
func (c *Controller) CloseModal() { c.modalOpen = false }

// OpenModal shows the last commentary again, if there is one.
func (c *Controller) OpenModal() bool {
	if c.commentary == "" {
		return false
	}
	c.modalOpen = true
	return true
}
