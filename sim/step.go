package sim

import (
	"github.com/jalvik/palaver/engine"
	"github.com/jalvik/palaver/types"
)

// flareRange is the tile distance at which a hostile pair can flare into a
// standoff.
const flareRange = 1

// flareAlertTurns is how long a flared actor stays unwilling to talk.
const flareAlertTurns = 3

// flareChance is the per-step probability that an adjacent hostile pair
// actually flares.
const flareChance = 0.25

// Step advances the world one turn: actors wander, alerts decay, adjacent
// hostile pairs may flare (interrupting their conversations), idle actors try
// to strike up conversations, and the orchestrator ticks.
func (w *World) Step(orch *engine.Orchestrator) {
	w.turn++

	for _, a := range w.actors {
		if !a.Active {
			continue
		}
		if a.AlertTurns > 0 {
			a.AlertTurns--
			if a.AlertTurns == 0 {
				a.Target = ""
			}
			continue
		}
		// Standing still while mid-conversation keeps pairs in range.
		if orch.InConversation(a.ID) {
			continue
		}
		w.wander(a)
	}

	w.flareHostiles(orch)

	for _, a := range w.actors {
		if a.Active && a.AlertTurns == 0 {
			orch.TryInitiate(a.ID)
		}
	}

	orch.Tick(w.turn)
}

// wander moves the actor one step in a random direction, clamped to the grid.
func (w *World) wander(a *Actor) {
	dx := w.rng.Intn(3) - 1
	dy := w.rng.Intn(3) - 1
	a.Pos.X = clamp(a.Pos.X+dx, 0, GridSize-1)
	a.Pos.Y = clamp(a.Pos.Y+dy, 0, GridSize-1)
}

// flareHostiles scans for adjacent actors from hostile factions. A flare puts
// both on alert, records an incident on the district's escalation track, and
// interrupts any conversation either was in.
func (w *World) flareHostiles(orch *engine.Orchestrator) {
	for i, a := range w.actors {
		if !a.Active || a.AlertTurns > 0 {
			continue
		}
		for _, b := range w.actors[i+1:] {
			if !b.Active || b.AlertTurns > 0 {
				continue
			}
			if a.Faction == b.Faction || a.Faction == "" || b.Faction == "" {
				continue
			}
			if w.Reputation(a.Faction, b.Faction) > w.HostileThreshold() {
				continue
			}
			if types.TileDist(a.Pos, b.Pos) > flareRange {
				continue
			}
			if !w.rng.Chance(flareChance) {
				continue
			}

			a.AlertTurns = flareAlertTurns
			b.AlertTurns = flareAlertTurns
			a.Target = b.ID
			b.Target = a.ID
			w.recordIncident(a.Faction, b.Faction, a.Pos)
			orch.Interrupt(a.ID)
			orch.Interrupt(b.ID)
			break
		}
	}
}

// recordIncident bumps the escalation track for the pair in the district
// covering the flare position, advancing the stage every third incident.
func (w *World) recordIncident(a, b types.FactionID, pos types.Position) {
	d, ok := w.DistrictAt(pos)
	if !ok {
		return
	}
	key := tensionKey{a, b, d.ID}
	if _, exists := w.tension[key]; !exists {
		if _, swapped := w.tension[tensionKey{b, a, d.ID}]; swapped {
			key = tensionKey{b, a, d.ID}
		}
	}
	s := w.tension[key]
	s.Incidents++
	s.LastIncidentTurn = w.turn
	if s.Incidents%3 == 0 && s.Stage < types.StageExplosive {
		s.Stage++
	}
	w.tension[key] = s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
