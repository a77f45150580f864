package convo

import (
	"testing"

	"github.com/jalvik/palaver/types"
)

func threeLineTemplate() types.Template {
	tpl := types.NewTemplate("t1", types.TopicGreeting)
	tpl.Lines = []types.Line{
		{Speaker: types.SpeakInitiator, Text: "one", TurnDelay: 0},
		{Speaker: types.SpeakResponder, Text: "two", TurnDelay: 1},
		{Speaker: types.SpeakInitiator, Text: "three", TurnDelay: 2},
	}
	return tpl
}

func newTestInstance(tpl types.Template) *Instance {
	resolved := make([]string, len(tpl.Lines))
	for i, l := range tpl.Lines {
		resolved[i] = l.Text
	}
	return New("c1", tpl, "alice", "bob",
		types.RelDescriptor{Faction: "ashveil", Rank: types.RankMid},
		types.RelDescriptor{Faction: "ashveil", Rank: types.RankLow},
		resolved, 10)
}

func TestInstance_DeliverySchedule(t *testing.T) {
	// Delays [0,1,2] created on turn T deliver on T, T+1, T+3.
	inst := newTestInstance(threeLineTemplate())

	d, ok := inst.Begin()
	if !ok || d.Text != "one" {
		t.Fatalf("Begin = (%+v, %v), want opener", d, ok)
	}

	var deliveredAt []int
	for step := 1; step <= 5; step++ {
		if d, ok := inst.Step(); ok {
			deliveredAt = append(deliveredAt, step)
			_ = d
		}
	}

	// Steps relative to creation: line two after 1 tick, line three 2 ticks later.
	if len(deliveredAt) != 2 || deliveredAt[0] != 1 || deliveredAt[1] != 3 {
		t.Errorf("deliveredAt = %v, want [1 3]", deliveredAt)
	}
	if !inst.IsComplete() {
		t.Error("instance should be complete after last line")
	}
}

func TestInstance_OpenerDelayIgnored(t *testing.T) {
	tpl := threeLineTemplate()
	tpl.Lines[0].TurnDelay = 5
	inst := newTestInstance(tpl)

	if d, ok := inst.Begin(); !ok || d.Text != "one" {
		t.Errorf("Begin = (%+v, %v), opener delay must be ignored", d, ok)
	}
}

func TestInstance_ZeroDelayCoerced(t *testing.T) {
	// A mid-conversation zero delay still costs one tick.
	tpl := threeLineTemplate()
	tpl.Lines[1].TurnDelay = 0
	inst := newTestInstance(tpl)
	inst.Begin()

	if _, ok := inst.Step(); !ok {
		t.Error("zero-delay line should fire on the first tick after the opener")
	}
}

func TestInstance_BeginTwice(t *testing.T) {
	inst := newTestInstance(threeLineTemplate())
	inst.Begin()
	if _, ok := inst.Begin(); ok {
		t.Error("second Begin should not deliver")
	}
}

func TestInstance_NoLines_Complete(t *testing.T) {
	tpl := types.NewTemplate("empty", types.TopicGreeting)
	inst := New("c2", tpl, "a", "b", types.RelDescriptor{}, types.RelDescriptor{}, nil, 0)
	if !inst.IsComplete() {
		t.Error("lineless instance should be complete at creation")
	}
	if _, ok := inst.Begin(); ok {
		t.Error("lineless instance should deliver nothing")
	}
}

func TestInstance_ResolvedMismatch_Complete(t *testing.T) {
	tpl := threeLineTemplate()
	inst := New("c3", tpl, "a", "b", types.RelDescriptor{}, types.RelDescriptor{},
		[]string{"only one"}, 0)
	if !inst.IsComplete() {
		t.Error("mismatched resolved lines should mark the instance complete")
	}
}

func TestInstance_StepAfterComplete(t *testing.T) {
	tpl := types.NewTemplate("one", types.TopicGreeting)
	tpl.Lines = []types.Line{{Speaker: types.SpeakInitiator, Text: "hi"}}
	inst := New("c4", tpl, "a", "b", types.RelDescriptor{}, types.RelDescriptor{},
		[]string{"hi"}, 0)
	inst.Begin()
	if !inst.IsComplete() {
		t.Fatal("single-line instance should complete on Begin")
	}
	if _, ok := inst.Step(); ok {
		t.Error("Step after completion should deliver nothing")
	}
}

func TestInstance_Involves(t *testing.T) {
	inst := newTestInstance(threeLineTemplate())
	if !inst.Involves("alice") || !inst.Involves("bob") {
		t.Error("both participants should be involved")
	}
	if inst.Involves("carol") {
		t.Error("third parties should not be involved")
	}
}

func TestInstance_SpeakerListener(t *testing.T) {
	inst := newTestInstance(threeLineTemplate())

	s, l := inst.SpeakerListener(types.SpeakInitiator)
	if s != "alice" || l != "bob" {
		t.Errorf("initiator line: speaker %s listener %s", s, l)
	}
	s, l = inst.SpeakerListener(types.SpeakResponder)
	if s != "bob" || l != "alice" {
		t.Errorf("responder line: speaker %s listener %s", s, l)
	}
}
