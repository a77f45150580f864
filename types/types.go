// Package types defines the shared data structures for the Palaver engine.
// This package contains only type definitions and small derivation helpers —
// no simulation logic.
package types

// EntityID identifies a simulation entity (a faction-bearing actor on the grid).
type EntityID string

// FactionID identifies a faction. The empty string means "no faction".
type FactionID string

// DistrictID identifies a named region of the world grid.
type DistrictID string

// Rank is an ordered tier within a faction. Higher values outrank lower ones.
type Rank int8

const (
	RankUnknown Rank = iota - 1
	RankLow
	RankMid
	RankHigh
)

// Outranks reports whether r strictly exceeds o. Either side being unknown
// means the comparison cannot be determined and the answer is false.
func (r Rank) Outranks(o Rank) bool {
	return r != RankUnknown && o != RankUnknown && r > o
}

func (r Rank) String() string {
	switch r {
	case RankLow:
		return "low"
	case RankMid:
		return "mid"
	case RankHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Position is a 2D grid coordinate.
type Position struct {
	X, Y int
}

// TileDist returns the symmetric tile distance between two positions
// (Chebyshev metric: diagonal steps count as one tile).
func TileDist(a, b Position) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// RelDescriptor is the relationship-relevant slice of an entity: who it
// answers to and at what tier. Derived at selection time, never stored.
type RelDescriptor struct {
	Faction FactionID
	Rank    Rank
}

// Member is a snapshot of a faction-bearing entity as exposed by the
// faction/membership collaborator.
type Member struct {
	ID      EntityID
	Name    string
	Faction FactionID
	Rank    Rank
	Role    string
	Pos     Position
	Active  bool
}

// Descriptor returns the relationship descriptor for this member.
func (m Member) Descriptor() RelDescriptor {
	return RelDescriptor{Faction: m.Faction, Rank: m.Rank}
}

// SpeakerRole says which participant delivers a line.
type SpeakerRole int8

const (
	SpeakInitiator SpeakerRole = iota
	SpeakResponder
)

func (s SpeakerRole) String() string {
	if s == SpeakResponder {
		return "responder"
	}
	return "initiator"
}

// Line is one authored utterance within a template. TurnDelay is the number
// of turns to wait after the previous line before this one is delivered; the
// first line's delay is ignored (it fires on creation).
type Line struct {
	Speaker   SpeakerRole
	Text      string
	TurnDelay int
}

// Predicate names a world-state truth check attached to a template. The
// name dispatches through a fixed table of pure functions over the
// initiator faction, responder faction, and district state.
type Predicate struct {
	Name   string
	Params map[string]any
}

// Open reputation bounds for templates that don't constrain inter-rep.
const (
	RepBoundMin = -1 << 30
	RepBoundMax = 1 << 30
)

// Template is one authored exchange: a topic, applicability constraints, and
// an ordered sequence of lines.
type Template struct {
	ID    string
	Topic Topic

	SameFactionOnly  bool
	CrossFactionOnly bool

	// Inclusive inter-faction reputation bounds, consulted only for
	// cross-faction pairs.
	MinInterRep int
	MaxInterRep int

	// When true and the pair is same-faction, the initiator must strictly
	// outrank the responder.
	RequireRankDifference bool

	// When set, only initiators of this faction may use the template.
	RequiredInitiatorFaction FactionID

	Predicate *Predicate

	// Minimum turns between two firings of this template. 0 = unconstrained.
	CooldownTurns int

	Lines []Line
}

// NewTemplate returns a template with open reputation bounds.
func NewTemplate(id string, topic Topic) Template {
	return Template{
		ID:          id,
		Topic:       topic,
		MinInterRep: RepBoundMin,
		MaxInterRep: RepBoundMax,
	}
}

// District is the read-only state of a world region.
type District struct {
	ID            DistrictID
	Name          string
	Prosperity    float64                // 0..1
	Control       map[FactionID]float64  // 0..1 per faction
	Heat          map[FactionID]float64  // 0..1 per faction
	Contested     bool
	ContestedDays int
}

// TradeStatus classifies the bilateral trade relation between two factions.
type TradeStatus int8

const (
	TradeNone TradeStatus = iota
	TradeRestricted
	TradeEmbargo
	TradeExclusive
	TradeAlliance
)

func (t TradeStatus) String() string {
	switch t {
	case TradeRestricted:
		return "restricted"
	case TradeEmbargo:
		return "embargo"
	case TradeExclusive:
		return "exclusive"
	case TradeAlliance:
		return "alliance"
	default:
		return "none"
	}
}

// TradeRelation is the bilateral trade state between two factions.
type TradeRelation struct {
	Status TradeStatus
	Tariff float64
}

// EscalationStage is the ordered tension level between two factions in a
// district.
type EscalationStage int8

const (
	StageCalm EscalationStage = iota
	StageUneasy
	StageTense
	StageVolatile
	StageExplosive
)

func (s EscalationStage) String() string {
	switch s {
	case StageUneasy:
		return "uneasy"
	case StageTense:
		return "tense"
	case StageVolatile:
		return "volatile"
	case StageExplosive:
		return "explosive"
	default:
		return "calm"
	}
}

// EscalationState pairs a stage with its incident record.
type EscalationState struct {
	Stage            EscalationStage
	Incidents        int
	LastIncidentTurn int
}

// Tone classifies a delivered line by the speakers' relationship, for
// presentation (same-faction neutral; cross-faction friendly/wary/hostile).
type Tone int8

const (
	ToneNeutral Tone = iota
	ToneFriendly
	ToneWary
	ToneHostile
)

func (t Tone) String() string {
	switch t {
	case ToneFriendly:
		return "friendly"
	case ToneWary:
		return "wary"
	case ToneHostile:
		return "hostile"
	default:
		return "neutral"
	}
}

// Utterance is one delivered line handed to the delivery sink.
type Utterance struct {
	ConversationID string
	Speaker        EntityID
	Listener       EntityID
	Text           string
	Tone           Tone
	Topic          Topic
	Turn           int
}
