// Package engine provides the conversation orchestrator: the stateful
// service gluing partner discovery, topic selection, template lookup,
// instance lifecycle, and turn-driven line delivery.
package engine

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/jalvik/palaver/engine/convo"
	"github.com/jalvik/palaver/engine/registry"
	"github.com/jalvik/palaver/types"
	"github.com/jalvik/palaver/world"
)

// Config holds the orchestrator's tunables.
type Config struct {
	// ConversationRange is the tile radius within which partners are found.
	ConversationRange int

	// InitiateChance is the per-attempt probability that an idle entity
	// tries to start a conversation at all.
	InitiateChance float64

	// EntityCooldownTurns is the minimum number of turns between two
	// conversations for the same entity.
	EntityCooldownTurns int

	// MaxActive caps the number of simultaneously active conversations.
	MaxActive int

	// SameFactionBias is the probability of picking a same-faction partner
	// when both partitions have candidates.
	SameFactionBias float64

	// PurgeChance is the per-tick probability of sweeping stale cooldown
	// bookkeeping for entities that no longer exist.
	PurgeChance float64

	// NonConversationalRoles lists entity roles that never talk.
	NonConversationalRoles []string
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		ConversationRange:      4,
		InitiateChance:         0.15,
		EntityCooldownTurns:    8,
		MaxActive:              6,
		SameFactionBias:        0.7,
		PurgeChance:            0.02,
		NonConversationalRoles: []string{"shopkeeper"},
	}
}

// Orchestrator owns all mutable conversation state: the active-instance set,
// the busy set, and the cooldown maps. Single-threaded and turn-driven —
// exactly two entry points mutate state, TryInitiate and Tick, plus the
// Interrupt cancellation primitive.
type Orchestrator struct {
	cfg Config
	rng *RNG
	svc world.Services
	reg *registry.Registry
	log *slog.Logger

	active    []*convo.Instance
	busy      map[types.EntityID]string // entity → conversation ID
	lastConvo map[types.EntityID]int    // entity → turn of last conversation
	lastFired map[string]int            // template ID → turn it last fired

	nonConversational map[string]bool
}

// New builds an orchestrator over the given content and collaborators. A nil
// logger disables logging.
func New(cfg Config, templates []types.Template, svc world.Services, rng *RNG, log *slog.Logger) *Orchestrator {
	o := &Orchestrator{
		cfg:               cfg,
		rng:               rng,
		svc:               svc,
		log:               log,
		busy:              map[types.EntityID]string{},
		lastConvo:         map[types.EntityID]int{},
		lastFired:         map[string]int{},
		nonConversational: map[string]bool{},
	}
	for _, role := range cfg.NonConversationalRoles {
		o.nonConversational[role] = true
	}
	o.reg = registry.New(templates, svc.Reputation, o)
	return o
}

// LastFired implements registry.CooldownQuery.
func (o *Orchestrator) LastFired(templateID string) (int, bool) {
	turn, ok := o.lastFired[templateID]
	return turn, ok
}

// ActiveCount returns the number of active conversations.
func (o *Orchestrator) ActiveCount() int {
	return len(o.active)
}

// InConversation reports whether the entity is currently a participant.
func (o *Orchestrator) InConversation(id types.EntityID) bool {
	_, ok := o.busy[id]
	return ok
}

// TryInitiate attempts to start a conversation for an idle entity. Every
// failed precondition is an ordinary false return with no state mutated.
func (o *Orchestrator) TryInitiate(id types.EntityID) bool {
	now := o.svc.Turns.CurrentTurn()

	if len(o.active) >= o.cfg.MaxActive {
		return false
	}
	if _, busy := o.busy[id]; busy {
		return false
	}
	if last, ok := o.lastConvo[id]; ok && now-last < o.cfg.EntityCooldownTurns {
		return false
	}
	if !o.rng.Chance(o.cfg.InitiateChance) {
		return false
	}

	m, ok := o.svc.Factions.Member(id)
	if !ok || !m.Active {
		return false
	}
	if o.nonConversational[m.Role] {
		return false
	}
	if m.Faction == "" {
		return false
	}
	if o.svc.Combat.HostileAlert(id) {
		return false
	}

	partner, ok := o.findPartner(m)
	if !ok {
		return false
	}

	var district *types.District
	if d, ok := o.svc.Districts.DistrictAt(m.Pos); ok {
		district = &d
	}

	topic := sampleTopic(o.rng, o.topicDistribution(m, partner, district, now))

	tpl, ok := o.reg.FindTemplate(o.rng, m.Descriptor(), partner.Descriptor(), topic, district, now)
	if !ok {
		return false
	}

	inst := o.createInstance(tpl, m, partner, now)

	o.active = append(o.active, inst)
	o.busy[m.ID] = inst.ID
	o.busy[partner.ID] = inst.ID
	o.lastConvo[m.ID] = now
	o.lastConvo[partner.ID] = now
	o.lastFired[tpl.ID] = now

	// The opener fires within this call, before any tick processing.
	if d, ok := inst.Begin(); ok {
		o.deliver(inst, d, now)
	}

	if o.log != nil {
		o.log.Debug("conversation started",
			"conversation", inst.ID,
			"template", tpl.ID,
			"topic", string(tpl.Topic),
			"initiator", string(m.ID),
			"responder", string(partner.ID),
			"turn", now)
	}
	return true
}

// findPartner searches the configured radius for a conversation partner,
// partitioned into same-faction and cross-faction pools. Within a pool the
// pick is uniform.
func (o *Orchestrator) findPartner(m types.Member) (types.Member, bool) {
	var same, cross []types.Member
	for _, c := range o.svc.Factions.Members() {
		if c.ID == m.ID || !c.Active || c.Faction == "" {
			continue
		}
		if o.nonConversational[c.Role] {
			continue
		}
		if _, busy := o.busy[c.ID]; busy {
			continue
		}
		if o.svc.Combat.HostileAlert(c.ID) {
			continue
		}
		if types.TileDist(m.Pos, c.Pos) > o.cfg.ConversationRange {
			continue
		}
		if c.Faction == m.Faction {
			same = append(same, c)
		} else {
			cross = append(cross, c)
		}
	}

	var pool []types.Member
	switch {
	case len(same) > 0 && len(cross) > 0:
		if o.rng.Chance(o.cfg.SameFactionBias) {
			pool = same
		} else {
			pool = cross
		}
	case len(same) > 0:
		pool = same
	case len(cross) > 0:
		pool = cross
	default:
		return types.Member{}, false
	}

	return pool[o.rng.Intn(len(pool))], true
}

// createInstance resolves every line's tokens against the current world
// state and freezes the result. Later state changes cannot retroactively
// corrupt scheduled dialogue.
func (o *Orchestrator) createInstance(tpl types.Template, initiator, responder types.Member, now int) *convo.Instance {
	resolved := make([]string, len(tpl.Lines))
	for i, line := range tpl.Lines {
		speaker, other := initiator, responder
		if line.Speaker == types.SpeakResponder {
			speaker, other = responder, initiator
		}
		resolved[i] = convo.Resolve(line.Text, o.tokenContext(speaker, other))
	}
	return convo.New(uuid.NewString(), tpl, initiator.ID, responder.ID,
		initiator.Descriptor(), responder.Descriptor(), resolved, now)
}

// tokenContext builds the substitution values for one line's speaker.
// Missing collaborator state degrades to safe defaults instead of failing.
func (o *Orchestrator) tokenContext(speaker, other types.Member) convo.TokenContext {
	tc := convo.TokenContext{
		SelfFaction:  o.factionName(speaker.Faction),
		OtherFaction: o.factionName(other.Faction),
		District:     "open ground",
		Prosperity:   types.ProsperityDescriptor(0.5),
		Control:      "unclaimed",
		TradeStatus:  types.TradeDescriptor(types.TradeNone),
	}

	if d, ok := o.svc.Districts.DistrictAt(speaker.Pos); ok {
		tc.District = d.Name
		tc.Prosperity = types.ProsperityDescriptor(d.Prosperity)
		if c, held := d.Control[speaker.Faction]; held && c > 0 {
			tc.Control = types.ControlDescriptor(c)
		}
	}
	if rel, ok := o.svc.Trade.Relation(speaker.Faction, other.Faction); ok {
		tc.TradeStatus = types.TradeDescriptor(rel.Status)
	}
	return tc
}

func (o *Orchestrator) factionName(id types.FactionID) string {
	if name := o.svc.Factions.FactionName(id); name != "" {
		return name
	}
	return string(id)
}

// Tick advances every active conversation by one turn. Instances created
// this same turn are skipped so the opener is never double-delivered.
// Completed and interrupted instances are evicted; occasionally, stale
// cooldown bookkeeping is purged.
func (o *Orchestrator) Tick(now int) {
	kept := o.active[:0]
	for _, inst := range o.active {
		if inst.CreatedOnTurn == now {
			kept = append(kept, inst)
			continue
		}
		if !o.participantsValid(inst) {
			o.release(inst, "participant invalid", now)
			continue
		}
		if o.participantInCombat(inst) {
			o.release(inst, "participant in combat", now)
			continue
		}

		if d, ok := inst.Step(); ok {
			o.deliver(inst, d, now)
		}
		if inst.IsComplete() {
			o.release(inst, "", now)
			continue
		}
		kept = append(kept, inst)
	}
	o.active = kept

	if o.rng.Chance(o.cfg.PurgeChance) {
		o.purgeStale()
	}
}

// Interrupt evicts every active conversation the entity participates in,
// freeing both participants immediately. Idempotent: an entity with no
// active conversation is a no-op.
func (o *Orchestrator) Interrupt(id types.EntityID) {
	kept := o.active[:0]
	for _, inst := range o.active {
		if inst.Involves(id) {
			o.release(inst, "interrupted", o.svc.Turns.CurrentTurn())
			continue
		}
		kept = append(kept, inst)
	}
	o.active = kept
}

// participantsValid checks both entities still exist and are active.
func (o *Orchestrator) participantsValid(inst *convo.Instance) bool {
	a, ok := o.svc.Factions.Member(inst.Initiator)
	if !ok || !a.Active {
		return false
	}
	b, ok := o.svc.Factions.Member(inst.Responder)
	if !ok || !b.Active {
		return false
	}
	return true
}

func (o *Orchestrator) participantInCombat(inst *convo.Instance) bool {
	for _, id := range []types.EntityID{inst.Initiator, inst.Responder} {
		if o.svc.Combat.HostileAlert(id) || o.svc.Combat.InCombat(id) {
			return true
		}
	}
	return false
}

// release frees both participants' busy flags. Eviction from the active set
// is the caller's job (it owns the iteration).
func (o *Orchestrator) release(inst *convo.Instance, reason string, now int) {
	delete(o.busy, inst.Initiator)
	delete(o.busy, inst.Responder)
	if reason != "" && o.log != nil {
		o.log.Debug("conversation evicted",
			"conversation", inst.ID, "reason", reason, "turn", now)
	}
}

// deliver hands one due line to the sink with its relationship tone.
func (o *Orchestrator) deliver(inst *convo.Instance, d convo.Delivery, now int) {
	speaker, listener := inst.SpeakerListener(d.Speaker)
	o.svc.Sink.Deliver(types.Utterance{
		ConversationID: inst.ID,
		Speaker:        speaker,
		Listener:       listener,
		Text:           d.Text,
		Tone:           o.tone(inst.InitiatorRel.Faction, inst.ResponderRel.Faction),
		Topic:          inst.Template.Topic,
		Turn:           now,
	})
}

// tone derives the presentation tone from the pair's relationship:
// same-faction is neutral; cross-faction splits on the reputation thresholds.
func (o *Orchestrator) tone(a, b types.FactionID) types.Tone {
	if a != "" && a == b {
		return types.ToneNeutral
	}
	rep := o.svc.Reputation.Reputation(a, b)
	switch {
	case rep >= o.svc.Reputation.FriendlyThreshold():
		return types.ToneFriendly
	case rep <= o.svc.Reputation.HostileThreshold():
		return types.ToneHostile
	default:
		return types.ToneWary
	}
}

// purgeStale drops cooldown entries for entities the faction source no
// longer knows about.
func (o *Orchestrator) purgeStale() {
	for id := range o.lastConvo {
		if _, ok := o.svc.Factions.Member(id); !ok {
			delete(o.lastConvo, id)
		}
	}
}
