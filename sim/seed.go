package sim

import (
	"fmt"

	"github.com/jalvik/palaver/types"
)

// seed populates the demo world: three factions with a full spread of
// relationships (allied, hostile, neutral), four districts in different
// states, and twelve actors scattered near their home quarters.
func (w *World) seed() {
	w.factionNames = map[types.FactionID]string{
		FactionAshveil:  "the Ashveil Syndicate",
		FactionIronward: "the Ironward Compact",
		FactionDuskborn: "the Duskborn Court",
	}

	w.rep = map[pairKey]int{
		{FactionAshveil, FactionIronward}: -60,
		{FactionAshveil, FactionDuskborn}: 55,
		{FactionIronward, FactionDuskborn}: 10,
	}

	w.trade = map[pairKey]types.TradeRelation{
		{FactionAshveil, FactionIronward}: {Status: types.TradeEmbargo},
		{FactionAshveil, FactionDuskborn}: {Status: types.TradeAlliance, Tariff: 0.05},
		{FactionIronward, FactionDuskborn}: {Status: types.TradeRestricted, Tariff: 0.3},
	}

	w.districts = []types.District{
		{
			ID:         "veilmarket",
			Name:       "Veilmarket",
			Prosperity: 0.85,
			Control:    map[types.FactionID]float64{FactionAshveil: 0.8},
			Heat:       map[types.FactionID]float64{FactionAshveil: 0.1},
		},
		{
			ID:            "forgeline",
			Name:          "the Forgeline",
			Prosperity:    0.55,
			Control:       map[types.FactionID]float64{FactionIronward: 0.5, FactionAshveil: 0.35},
			Heat:          map[types.FactionID]float64{FactionIronward: 0.8, FactionAshveil: 0.6},
			Contested:     true,
			ContestedDays: 12,
		},
		{
			ID:         "duskrow",
			Name:       "Dusk Row",
			Prosperity: 0.4,
			Control:    map[types.FactionID]float64{FactionDuskborn: 0.6},
			Heat:       map[types.FactionID]float64{FactionDuskborn: 0.2},
		},
		{
			ID:         "hollows",
			Name:       "the Hollows",
			Prosperity: 0.2,
			Control:    map[types.FactionID]float64{},
			Heat:       map[types.FactionID]float64{},
		},
	}

	// Forgeline standoff between the embargoed pair.
	w.tension[tensionKey{FactionAshveil, FactionIronward, "forgeline"}] = types.EscalationState{
		Stage:            types.StageTense,
		Incidents:        3,
		LastIncidentTurn: 0,
	}

	type spawn struct {
		name    string
		faction types.FactionID
		rank    types.Rank
		role    string
		home    types.Position
	}
	spawns := []spawn{
		{"Vessa Marrow", FactionAshveil, types.RankHigh, "captain", types.Position{X: 4, Y: 4}},
		{"Corin Ashe", FactionAshveil, types.RankMid, "enforcer", types.Position{X: 6, Y: 3}},
		{"Pell", FactionAshveil, types.RankLow, "runner", types.Position{X: 3, Y: 7}},
		{"Tamsin Vey", FactionAshveil, types.RankLow, "runner", types.Position{X: 14, Y: 6}},
		{"Warden Krell", FactionIronward, types.RankHigh, "captain", types.Position{X: 18, Y: 5}},
		{"Osric Thane", FactionIronward, types.RankMid, "enforcer", types.Position{X: 16, Y: 8}},
		{"Brann", FactionIronward, types.RankLow, "sentry", types.Position{X: 14, Y: 4}},
		{"Hale", FactionIronward, types.RankLow, "sentry", types.Position{X: 19, Y: 9}},
		{"Lady Nocte", FactionDuskborn, types.RankHigh, "envoy", types.Position{X: 5, Y: 17}},
		{"Sable", FactionDuskborn, types.RankMid, "courier", types.Position{X: 8, Y: 19}},
		{"Wren Duskfall", FactionDuskborn, types.RankLow, "courier", types.Position{X: 4, Y: 20}},
		{"Old Maro", FactionDuskborn, types.RankLow, "shopkeeper", types.Position{X: 7, Y: 16}},
	}
	for i, s := range spawns {
		w.actors = append(w.actors, &Actor{
			ID:      types.EntityID(fmt.Sprintf("actor-%02d", i+1)),
			Name:    s.name,
			Faction: s.faction,
			Rank:    s.rank,
			Role:    s.role,
			Pos:     s.home,
			Active:  true,
		})
	}
}
