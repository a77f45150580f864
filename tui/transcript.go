// Package tui provides a Bubble Tea terminal viewer for the running
// simulation: a scrolling conversation transcript with a status bar.
package tui

import "github.com/jalvik/palaver/types"

// entry is one transcript row: either a delivered utterance or a plain event
// note (flares, evictions).
type entry struct {
	utterance types.Utterance
	note      string
	isNote    bool
}

// Transcript is a bounded buffer of delivered lines. Oldest entries fall off
// the front once the cap is reached.
type Transcript struct {
	entries []entry
	max     int
}

// NewTranscript creates a transcript keeping at most max entries.
func NewTranscript(max int) *Transcript {
	return &Transcript{entries: make([]entry, 0, max), max: max}
}

// Push appends a delivered utterance.
func (t *Transcript) Push(u types.Utterance) {
	t.append(entry{utterance: u})
}

// Note appends a plain event line.
func (t *Transcript) Note(text string) {
	t.append(entry{note: text, isNote: true})
}

func (t *Transcript) append(e entry) {
	t.entries = append(t.entries, e)
	if len(t.entries) > t.max {
		t.entries = t.entries[1:]
	}
}

// Entries returns the buffered rows, oldest first.
func (t *Transcript) Entries() []entry {
	return t.entries
}

// Len returns the number of buffered rows.
func (t *Transcript) Len() int {
	return len(t.entries)
}
