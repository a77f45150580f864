package tui

import (
	"testing"

	"github.com/jalvik/palaver/types"
)

func TestTranscript_KeepsOrder(t *testing.T) {
	tr := NewTranscript(10)
	tr.Push(types.Utterance{Text: "first"})
	tr.Note("a flare")
	tr.Push(types.Utterance{Text: "second"})

	entries := tr.Entries()
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].utterance.Text != "first" {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if !entries[1].isNote || entries[1].note != "a flare" {
		t.Errorf("entry 1 = %+v", entries[1])
	}
	if entries[2].utterance.Text != "second" {
		t.Errorf("entry 2 = %+v", entries[2])
	}
}

func TestTranscript_Bounded(t *testing.T) {
	tr := NewTranscript(3)
	for i := 0; i < 5; i++ {
		tr.Push(types.Utterance{Turn: i})
	}
	if tr.Len() != 3 {
		t.Fatalf("len = %d, want cap of 3", tr.Len())
	}
	if tr.Entries()[0].utterance.Turn != 2 {
		t.Errorf("oldest kept turn = %d, want 2", tr.Entries()[0].utterance.Turn)
	}
	if tr.Entries()[2].utterance.Turn != 4 {
		t.Errorf("newest turn = %d, want 4", tr.Entries()[2].utterance.Turn)
	}
}
