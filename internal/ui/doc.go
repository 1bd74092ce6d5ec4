// Package ui provides the Bubble Tea terminal interface for commentbox.
//
// The screen has three parts: a row of commentator cards, a URL field with
// an Analyze button, and a footer of key hints. Submitting a URL starts one
// analysis for the selected commentator; while it runs the button shows a
// spinner and further submissions are ignored. A finished commentary opens
// in an overlay that can be scrolled, copied to the clipboard, or handed to
// the configured share command.
//
// State that outlives a single frame (selection, in-flight request, last
// commentary) lives in session.Controller. This package only renders it and
// translates key presses and command results into controller calls.
//
// Short notices appear as toasts above the footer and dismiss themselves
// after a few seconds. A header indicator polls the API health endpoint.
//
// Key bindings:
//
//   - enter: Analyze the URL
//   - tab / shift+tab: Next / previous commentator
//   - alt+1..alt+3: Pick a commentator directly
//   - ctrl+o: Show the last commentary again
//   - esc: Clear the URL field
//   - c or y / s / esc, q or enter: Copy / share / close (overlay)
//   - ctrl+t: Cycle theme (saved to prefs)
//   - f1: Toggle help
//   - ctrl+c: Quit
package ui
