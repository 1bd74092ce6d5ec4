// Package logtail reads the tail of the commentbox log file and turns its
// JSON lines into something readable in a terminal.
//
// # Reading
//
// Read keeps a ring buffer of the last maxLines lines while scanning the
// file once, so memory stays proportional to the requested tail rather
// than the file size. A missing file is not an error: it yields no lines.
//
//	lines, err := logtail.Read(path, 50)
//	if err != nil {
//		return err
//	}
//
// # Formatting
//
// Format renders one zap JSON entry as
//
//	2026-10-18T14:32:15.120Z WARN  analysis request failed commentator=ravi status=500
//
// The level is upper-cased and padded, and the remaining fields follow as
// key=value pairs sorted by key. With color enabled the level is styled with
// lipgloss. Lines that are not JSON objects pass through unchanged, so a
// partially written or foreign line never breaks `logs`.
package logtail
