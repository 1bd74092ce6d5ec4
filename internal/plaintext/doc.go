// Package plaintext turns text received from the network into something safe
// to write to a terminal.
package plaintext
