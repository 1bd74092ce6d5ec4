// Package commentator holds the static set of commentary personas.
package commentator

import "strings"

// Commentator describes a persona the analysis API can voice commentary in.
type Commentator struct {
	ID          string
	Name        string
	Style       string
	Description string
	Emoji       string
	Portrait    string // asset path, relative to the assets root
	Accent      string // hex colour used for the card border
}

var all = []Commentator{
	{
		ID:          "ravi",
		Name:        "Ravi Shastri",
		Style:       "Ravi's Roast",
		Description: "Playful criticism with signature phrases",
		Emoji:       "🎯",
		Portrait:    "commentators/ravi-shastri.png",
		Accent:      "#ea580c",
	},
	{
		ID:          "harsha",
		Name:        "Harsha Bhogle",
		Style:       "Bhogle's Balance",
		Description: "Balanced and analytical insights",
		Emoji:       "🎙️",
		Portrait:    "commentators/harsha-bhogle.jpeg",
		Accent:      "#d97706",
	},
	{
		ID:          "jatin",
		Name:        "Jatin Sapru",
		Style:       "Jatin's Jubilation",
		Description: "Ultra-positive and high-energy takes",
		Emoji:       "⚡",
		Portrait:    "commentators/jatin-sapru.jpeg",
		Accent:      "#ca8a04",
	},
}

// All returns the commentators in display order. The slice is a copy.
func All() []Commentator {
	out := make([]Commentator, len(all))
	copy(out, all)
	return out
}

// Default returns the commentator selected when nothing else has been chosen.
func Default() Commentator {
	return all[0]
}

// Lookup finds a commentator by ID. Matching ignores case and surrounding space.
func Lookup(id string) (Commentator, bool) {
	needle := strings.ToLower(strings.TrimSpace(id))
	for _, c := range all {
		if c.ID == needle {
			return c, true
		}
	}
	return Commentator{}, false
}

// IDs returns the known commentator IDs in display order.
func IDs() []string {
	ids := make([]string, len(all))
	for i, c := range all {
		ids[i] = c.ID
	}
	return ids
}

// Index returns the display position of id, or -1.
func Index(id string) int {
	for i, c := range all {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Title is the heading used when presenting this commentator's output.
func (c Commentator) Title() string {
	return c.Name + "'s Take"
}

// ShareTitle is the title passed to the share target.
func (c Commentator) ShareTitle() string {
	return "Cricket Commentary by " + c.Name
}
