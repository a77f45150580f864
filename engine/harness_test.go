package engine

import (
	"github.com/jalvik/palaver/types"
	"github.com/jalvik/palaver/world"
)

// fakeWorld is an in-memory implementation of every collaborator interface,
// recording delivered utterances for assertions.
type fakeWorld struct {
	turn     int
	members  []types.Member
	names    map[types.FactionID]string
	rep      map[[2]types.FactionID]int
	friendly int
	hostile  int
	district *types.District
	trade    map[[2]types.FactionID]types.TradeRelation
	tension  map[[2]types.FactionID]types.EscalationState
	alerts   map[types.EntityID]bool
	combat   map[types.EntityID]bool

	delivered []types.Utterance
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		names:    map[types.FactionID]string{},
		rep:      map[[2]types.FactionID]int{},
		friendly: 40,
		hostile:  -40,
		trade:    map[[2]types.FactionID]types.TradeRelation{},
		tension:  map[[2]types.FactionID]types.EscalationState{},
		alerts:   map[types.EntityID]bool{},
		combat:   map[types.EntityID]bool{},
	}
}

func (f *fakeWorld) addMember(id types.EntityID, faction types.FactionID, rank types.Rank, x, y int) {
	f.members = append(f.members, types.Member{
		ID: id, Name: string(id), Faction: faction, Rank: rank,
		Pos: types.Position{X: x, Y: y}, Active: true,
	})
}

func (f *fakeWorld) setRole(id types.EntityID, role string) {
	for i := range f.members {
		if f.members[i].ID == id {
			f.members[i].Role = role
		}
	}
}

func (f *fakeWorld) setActive(id types.EntityID, active bool) {
	for i := range f.members {
		if f.members[i].ID == id {
			f.members[i].Active = active
		}
	}
}

func (f *fakeWorld) CurrentTurn() int { return f.turn }

func (f *fakeWorld) Member(id types.EntityID) (types.Member, bool) {
	for _, m := range f.members {
		if m.ID == id {
			return m, true
		}
	}
	return types.Member{}, false
}

func (f *fakeWorld) Members() []types.Member { return f.members }

func (f *fakeWorld) FactionName(id types.FactionID) string { return f.names[id] }

func (f *fakeWorld) Reputation(a, b types.FactionID) int {
	if v, ok := f.rep[[2]types.FactionID{a, b}]; ok {
		return v
	}
	return f.rep[[2]types.FactionID{b, a}]
}

func (f *fakeWorld) FriendlyThreshold() int { return f.friendly }
func (f *fakeWorld) HostileThreshold() int  { return f.hostile }

func (f *fakeWorld) DistrictAt(pos types.Position) (types.District, bool) {
	if f.district == nil {
		return types.District{}, false
	}
	return *f.district, true
}

func (f *fakeWorld) Relation(a, b types.FactionID) (types.TradeRelation, bool) {
	if r, ok := f.trade[[2]types.FactionID{a, b}]; ok {
		return r, true
	}
	r, ok := f.trade[[2]types.FactionID{b, a}]
	return r, ok
}

func (f *fakeWorld) Escalation(a, b types.FactionID, district types.DistrictID) types.EscalationState {
	if s, ok := f.tension[[2]types.FactionID{a, b}]; ok {
		return s
	}
	return f.tension[[2]types.FactionID{b, a}]
}

func (f *fakeWorld) HostileAlert(id types.EntityID) bool { return f.alerts[id] }
func (f *fakeWorld) InCombat(id types.EntityID) bool     { return f.combat[id] }

func (f *fakeWorld) services() world.Services {
	return world.Services{
		Turns:      f,
		Factions:   f,
		Reputation: f,
		Districts:  f,
		Trade:      f,
		Tension:    f,
		Combat:     f,
		Sink: world.DeliveryFunc(func(u types.Utterance) {
			f.delivered = append(f.delivered, u)
		}),
	}
}

// templatesFor builds one unconstrained template per topic, all sharing the
// given lines, so any sampled topic has a match.
func templatesFor(topics []types.Topic, lines []types.Line) []types.Template {
	var out []types.Template
	for _, topic := range topics {
		t := types.NewTemplate("tpl-"+string(topic), topic)
		t.Lines = lines
		out = append(out, t)
	}
	return out
}

func sameFactionTopics() []types.Topic {
	return []types.Topic{
		types.TopicGreeting, types.TopicRumor, types.TopicStatusReport,
		types.TopicOrders, types.TopicQuestHint,
	}
}

func crossHostileTopics() []types.Topic {
	return []types.Topic{
		types.TopicThreat, types.TopicTaunt, types.TopicWaryEncounter,
	}
}

func twoLines() []types.Line {
	return []types.Line{
		{Speaker: types.SpeakInitiator, Text: "opening", TurnDelay: 0},
		{Speaker: types.SpeakResponder, Text: "reply", TurnDelay: 1},
	}
}

// alwaysStart is a config with no stochastic gates.
func alwaysStart() Config {
	cfg := DefaultConfig()
	cfg.InitiateChance = 1
	cfg.PurgeChance = 0
	return cfg
}

func newTestOrch(f *fakeWorld, cfg Config, templates []types.Template) *Orchestrator {
	return New(cfg, templates, f.services(), NewRNG(1), nil)
}
