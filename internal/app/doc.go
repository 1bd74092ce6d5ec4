// Package app is the composition root for commentbox.
//
// Setup turns configuration into a Runtime: a zap logger writing JSON to the
// log file, an analysis.Client with the configured timeout and rate limit,
// and a share.Sharer for the share_command. Run hands that Runtime to the
// Bubble Tea UI and blocks until the user quits or the context is cancelled.
// The one-shot CLI commands build the same Runtime and skip the UI.
//
// WaitForAPI polls the health endpoint with exponential backoff. The ping
// command uses it to wait for a backend that is still starting.
//
// Fatal errors (returned from Setup):
//   - Config file unreadable or invalid
//   - Log file cannot be created
//   - api_url without a host
//
// Everything after startup is recoverable: failed analyses, copy and share
// errors surface as notices and are logged.
package app
