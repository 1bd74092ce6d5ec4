package plaintext

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Clean strips terminal escape sequences and control characters. Newlines
// are kept and tabs become spaces.
func Clean(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Line is Clean for single-line fields such as titles and error details.
// Runs of whitespace, newlines included, collapse to one space.
func Line(s string) string {
	return strings.Join(strings.Fields(Clean(s)), " ")
}
