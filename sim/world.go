// Package sim is a small self-running demo world: a square grid, three
// factions, four districts, and a dozen wandering actors. It exists to
// exercise the conversation engine end to end and backs the CLI and TUI
// frontends.
package sim

import (
	"github.com/jalvik/palaver/engine"
	"github.com/jalvik/palaver/types"
	"github.com/jalvik/palaver/world"
)

// GridSize is the side length of the demo world grid.
const GridSize = 24

// Faction IDs used by the demo world.
const (
	FactionAshveil  types.FactionID = "ashveil"
	FactionIronward types.FactionID = "ironward"
	FactionDuskborn types.FactionID = "duskborn"
)

// Actor is one simulated entity on the grid.
type Actor struct {
	ID      types.EntityID
	Name    string
	Faction types.FactionID
	Rank    types.Rank
	Role    string
	Pos     types.Position
	Active  bool

	// AlertTurns counts down the post-flare alert window during which the
	// actor refuses conversation.
	AlertTurns int
	// Target is set while the actor is engaged with a hostile neighbor.
	Target types.EntityID
}

type pairKey struct {
	a, b types.FactionID
}

type tensionKey struct {
	a, b     types.FactionID
	district types.DistrictID
}

// World is the demo simulation state. It implements every collaborator
// interface the orchestrator consumes.
type World struct {
	turn int
	rng  *engine.RNG

	actors       []*Actor
	factionNames map[types.FactionID]string
	rep          map[pairKey]int
	districts    []types.District
	trade        map[pairKey]types.TradeRelation
	tension      map[tensionKey]types.EscalationState
}

// New builds the seeded demo world. The RNG is shared with the orchestrator
// so a single seed reproduces an entire run.
func New(rng *engine.RNG) *World {
	w := &World{
		rng:          rng,
		factionNames: map[types.FactionID]string{},
		rep:          map[pairKey]int{},
		trade:        map[pairKey]types.TradeRelation{},
		tension:      map[tensionKey]types.EscalationState{},
	}
	w.seed()
	return w
}

// Services bundles this world's collaborators with the given delivery sink.
func (w *World) Services(sink world.DeliverySink) world.Services {
	return world.Services{
		Turns:      w,
		Factions:   w,
		Reputation: w,
		Districts:  w,
		Trade:      w,
		Tension:    w,
		Combat:     w,
		Sink:       sink,
	}
}

// CurrentTurn implements world.TurnSource.
func (w *World) CurrentTurn() int { return w.turn }

// Member implements world.FactionSource.
func (w *World) Member(id types.EntityID) (types.Member, bool) {
	for _, a := range w.actors {
		if a.ID == id {
			return a.member(), true
		}
	}
	return types.Member{}, false
}

// Members implements world.FactionSource.
func (w *World) Members() []types.Member {
	out := make([]types.Member, 0, len(w.actors))
	for _, a := range w.actors {
		out = append(out, a.member())
	}
	return out
}

// FactionName implements world.FactionSource.
func (w *World) FactionName(id types.FactionID) string {
	return w.factionNames[id]
}

// Reputation implements world.ReputationSource. The relation is symmetric;
// lookups try both orderings.
func (w *World) Reputation(a, b types.FactionID) int {
	if v, ok := w.rep[pairKey{a, b}]; ok {
		return v
	}
	return w.rep[pairKey{b, a}]
}

// FriendlyThreshold implements world.ReputationSource.
func (w *World) FriendlyThreshold() int { return 40 }

// HostileThreshold implements world.ReputationSource.
func (w *World) HostileThreshold() int { return -40 }

// DistrictAt implements world.DistrictSource. The grid is split into four
// quadrant districts; every position is covered.
func (w *World) DistrictAt(pos types.Position) (types.District, bool) {
	if pos.X < 0 || pos.Y < 0 || pos.X >= GridSize || pos.Y >= GridSize {
		return types.District{}, false
	}
	idx := 0
	if pos.X >= GridSize/2 {
		idx++
	}
	if pos.Y >= GridSize/2 {
		idx += 2
	}
	return w.districts[idx], true
}

// Relation implements world.TradeSource.
func (w *World) Relation(a, b types.FactionID) (types.TradeRelation, bool) {
	if r, ok := w.trade[pairKey{a, b}]; ok {
		return r, true
	}
	r, ok := w.trade[pairKey{b, a}]
	return r, ok
}

// Escalation implements world.TensionSource.
func (w *World) Escalation(a, b types.FactionID, district types.DistrictID) types.EscalationState {
	if s, ok := w.tension[tensionKey{a, b, district}]; ok {
		return s
	}
	return w.tension[tensionKey{b, a, district}]
}

// HostileAlert implements world.CombatSource.
func (w *World) HostileAlert(id types.EntityID) bool {
	a := w.actor(id)
	return a != nil && a.AlertTurns > 0
}

// InCombat implements world.CombatSource.
func (w *World) InCombat(id types.EntityID) bool {
	a := w.actor(id)
	return a != nil && a.Target != ""
}

func (w *World) actor(id types.EntityID) *Actor {
	for _, a := range w.actors {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (a *Actor) member() types.Member {
	return types.Member{
		ID:      a.ID,
		Name:    a.Name,
		Faction: a.Faction,
		Rank:    a.Rank,
		Role:    a.Role,
		Pos:     a.Pos,
		Active:  a.Active,
	}
}
