// Package session owns the state behind the commentary screen: which
// commentator is selected, whether an analysis is in flight, and what the
// commentary overlay shows.
//
// # Request Lifecycle
//
// Begin trims the URL, runs the optional validator and issues a Ticket that
// captures the request body, including the commentator selected at that
// moment. While the ticket is outstanding Loading reports true and a second
// Begin fails with ErrBusy. Complete takes the ticket back together with the
// client's response or error and returns the Notice to show. A ticket that
// is no longer in flight is ignored.
//
// # Notices
//
// Failures become one error Notice. The text is the error's own message,
// MsgNoCommentary for an empty result, or MsgAnalysisFailed when nothing
// usable remains. Success and error notices carry different display
// durations.
//
// A Controller is not safe for concurrent use. The Bubble Tea update loop is
// its only caller; the CLI gives each goroutine its own Controller.
package session
