package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jalvik/palaver/types"
)

func demoTemplates() []types.Template {
	topics := []types.Topic{
		types.TopicGreeting, types.TopicRumor, types.TopicStatusReport,
		types.TopicOrders, types.TopicQuestHint, types.TopicWaryEncounter,
		types.TopicTradeNegotiation, types.TopicThreat, types.TopicTaunt,
		types.TopicTradeEmbargo, types.TopicAllianceAffirm,
		types.TopicTerritoryContest, types.TopicProsperityLament,
		types.TopicRaidWarning,
	}
	var out []types.Template
	for _, topic := range topics {
		t := types.NewTemplate("demo-"+string(topic), topic)
		t.Lines = []types.Line{
			{Speaker: types.SpeakInitiator, Text: "about " + string(topic)},
			{Speaker: types.SpeakResponder, Text: "noted", TurnDelay: 1},
		}
		out = append(out, t)
	}
	return out
}

func TestRun_AdvancesTurns(t *testing.T) {
	c := New(demoTemplates(), 1, false)
	c.Out = &bytes.Buffer{}

	c.Run(50)
	if c.World.CurrentTurn() != 50 {
		t.Errorf("turn = %d, want 50", c.World.CurrentTurn())
	}
}

func TestRun_TranscriptFormat(t *testing.T) {
	var buf bytes.Buffer
	c := New(demoTemplates(), 1, false)
	c.Out = &buf

	c.Run(200)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if buf.Len() == 0 {
		t.Skip("seed produced no conversations in 200 turns")
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "[T") {
			t.Errorf("transcript line %q missing turn prefix", line)
		}
		if !strings.Contains(line, " -> ") {
			t.Errorf("transcript line %q missing speaker arrow", line)
		}
	}
}

func TestRun_ShowTurns(t *testing.T) {
	var buf bytes.Buffer
	c := New(demoTemplates(), 1, false)
	c.Out = &buf
	c.ShowTurns = true

	c.Run(3)
	if got := strings.Count(buf.String(), "--- turn "); got != 3 {
		t.Errorf("printed %d turn markers, want 3", got)
	}
}

func TestDeliver_Formatting(t *testing.T) {
	var buf bytes.Buffer
	c := New(demoTemplates(), 1, false)
	c.Out = &buf

	c.deliver(types.Utterance{
		ConversationID: "c1",
		Speaker:        "actor-01",
		Listener:       "ghost-99",
		Text:           "hold the line",
		Tone:           types.ToneNeutral,
		Topic:          types.TopicOrders,
		Turn:           7,
	})

	got := buf.String()
	want := "[T007] Vessa Marrow -> ghost-99 (orders, neutral): hold the line\n"
	if got != want {
		t.Errorf("deliver = %q, want %q", got, want)
	}
}
