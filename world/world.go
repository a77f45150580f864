// Package world defines the read-only collaborator contracts the
// conversation engine consumes. Each interface replaces what the host game
// would otherwise expose as a global registry; everything is injected so
// tests can swap in fakes.
package world

import "github.com/jalvik/palaver/types"

// TurnSource exposes the current turn number, monotonically increasing and
// incremented once per global simulation step.
type TurnSource interface {
	CurrentTurn() int
}

// FactionSource enumerates the currently active faction-bearing entities and
// resolves faction display names.
type FactionSource interface {
	Member(id types.EntityID) (types.Member, bool)
	Members() []types.Member
	FactionName(id types.FactionID) string
}

// ReputationSource reports integer inter-faction reputation and the
// thresholds at which a pairing reads as friendly or hostile.
type ReputationSource interface {
	Reputation(a, b types.FactionID) int
	FriendlyThreshold() int
	HostileThreshold() int
}

// DistrictSource resolves a grid position to district state, if any district
// covers that position.
type DistrictSource interface {
	DistrictAt(pos types.Position) (types.District, bool)
}

// TradeSource reports the bilateral trade relation between two factions.
type TradeSource interface {
	Relation(a, b types.FactionID) (types.TradeRelation, bool)
}

// TensionSource reports the escalation state between two factions within a
// district.
type TensionSource interface {
	Escalation(a, b types.FactionID, district types.DistrictID) types.EscalationState
}

// CombatSource reports per-entity combat involvement, used to gate
// initiation and force interruption.
type CombatSource interface {
	HostileAlert(id types.EntityID) bool
	InCombat(id types.EntityID) bool
}

// DeliverySink accepts delivered lines for presentation and logging. The
// engine has no further responsibility once Deliver returns.
type DeliverySink interface {
	Deliver(u types.Utterance)
}

// DeliveryFunc adapts a plain function to a DeliverySink.
type DeliveryFunc func(u types.Utterance)

func (f DeliveryFunc) Deliver(u types.Utterance) { f(u) }

// Services bundles every collaborator the orchestrator needs.
type Services struct {
	Turns      TurnSource
	Factions   FactionSource
	Reputation ReputationSource
	Districts  DistrictSource
	Trade      TradeSource
	Tension    TensionSource
	Combat     CombatSource
	Sink       DeliverySink
}
