package types

import "testing"

func TestTileDist_Chebyshev(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{3, 0}, 3},
		{Position{0, 0}, Position{0, 4}, 4},
		{Position{0, 0}, Position{3, 3}, 3},
		{Position{5, 5}, Position{2, 9}, 4},
		{Position{-2, -2}, Position{1, 0}, 3},
	}
	for _, tt := range tests {
		if got := TileDist(tt.a, tt.b); got != tt.want {
			t.Errorf("TileDist(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestTileDist_Symmetric(t *testing.T) {
	a := Position{2, 7}
	b := Position{9, 3}
	if TileDist(a, b) != TileDist(b, a) {
		t.Errorf("TileDist not symmetric: %d vs %d", TileDist(a, b), TileDist(b, a))
	}
}

func TestRank_Outranks(t *testing.T) {
	tests := []struct {
		name string
		a, b Rank
		want bool
	}{
		{"high over low", RankHigh, RankLow, true},
		{"high over mid", RankHigh, RankMid, true},
		{"mid over low", RankMid, RankLow, true},
		{"equal ranks", RankMid, RankMid, false},
		{"low under high", RankLow, RankHigh, false},
		{"unknown left", RankUnknown, RankLow, false},
		{"unknown right", RankHigh, RankUnknown, false},
		{"both unknown", RankUnknown, RankUnknown, false},
	}
	for _, tt := range tests {
		if got := tt.a.Outranks(tt.b); got != tt.want {
			t.Errorf("%s: Outranks = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMember_Descriptor(t *testing.T) {
	m := Member{ID: "e1", Faction: "ashveil", Rank: RankMid}
	d := m.Descriptor()
	if d.Faction != "ashveil" || d.Rank != RankMid {
		t.Errorf("Descriptor = %+v", d)
	}
}

func TestNewTemplate_OpenBounds(t *testing.T) {
	tpl := NewTemplate("t1", TopicGreeting)
	if tpl.MinInterRep != RepBoundMin {
		t.Errorf("MinInterRep = %d, want open", tpl.MinInterRep)
	}
	if tpl.MaxInterRep != RepBoundMax {
		t.Errorf("MaxInterRep = %d, want open", tpl.MaxInterRep)
	}
}

func TestKnownTopic(t *testing.T) {
	if !KnownTopic(TopicGreeting) {
		t.Error("greeting should be known")
	}
	if !KnownTopic("escalation-ultimatum") {
		t.Error("escalation rungs should be known")
	}
	if KnownTopic("gossip") {
		t.Error("gossip should not be known")
	}
}
