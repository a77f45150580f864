// Package registry stores conversation templates indexed by topic and
// answers "find one eligible template for this topic and this pair".
package registry

import (
	"github.com/jalvik/palaver/engine/rules"
	"github.com/jalvik/palaver/types"
	"github.com/jalvik/palaver/world"
)

// CooldownQuery reports when a template last fired. The orchestrator owns
// the bookkeeping; the registry only asks.
type CooldownQuery interface {
	LastFired(templateID string) (turn int, ok bool)
}

// Roller is the random source used for the uniform pick among eligible
// candidates.
type Roller interface {
	Intn(n int) int
}

// Registry indexes templates by topic. Read-mostly after content load.
type Registry struct {
	byTopic   map[types.Topic][]types.Template
	rep       world.ReputationSource
	cooldowns CooldownQuery
}

// New builds a registry over the given templates.
func New(templates []types.Template, rep world.ReputationSource, cooldowns CooldownQuery) *Registry {
	r := &Registry{
		byTopic:   map[types.Topic][]types.Template{},
		rep:       rep,
		cooldowns: cooldowns,
	}
	for _, t := range templates {
		r.byTopic[t.Topic] = append(r.byTopic[t.Topic], t)
	}
	return r
}

// Count returns the number of templates stored for a topic.
func (r *Registry) Count(topic types.Topic) int {
	return len(r.byTopic[topic])
}

// FindTemplate filters the topic's templates through every constraint and
// returns one survivor chosen uniformly at random. Weighting happens one
// level up, at topic selection — the pick here is flat on purpose. Pure over
// registry contents plus the supplied context; no state is mutated.
func (r *Registry) FindTemplate(roll Roller, initiator, responder types.RelDescriptor, topic types.Topic, district *types.District, now int) (types.Template, bool) {
	bucket := r.byTopic[topic]
	if len(bucket) == 0 {
		return types.Template{}, false
	}

	sameFaction := initiator.Faction != "" && initiator.Faction == responder.Faction

	// Missing faction state degrades to neutral reputation.
	interRep := 0
	if !sameFaction && initiator.Faction != "" && responder.Faction != "" {
		interRep = r.rep.Reputation(initiator.Faction, responder.Faction)
	}

	var eligible []types.Template
	for _, t := range bucket {
		if r.admits(t, initiator, responder, sameFaction, interRep, district, now) {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) == 0 {
		return types.Template{}, false
	}
	return eligible[roll.Intn(len(eligible))], true
}

// admits runs every constraint of a single template against the pair context.
func (r *Registry) admits(t types.Template, initiator, responder types.RelDescriptor, sameFaction bool, interRep int, district *types.District, now int) bool {
	if t.SameFactionOnly && !sameFaction {
		return false
	}
	if t.CrossFactionOnly && sameFaction {
		return false
	}
	if !sameFaction && (interRep < t.MinInterRep || interRep > t.MaxInterRep) {
		return false
	}
	if t.RequireRankDifference && sameFaction && !initiator.Rank.Outranks(responder.Rank) {
		return false
	}
	if t.RequiredInitiatorFaction != "" && initiator.Faction != t.RequiredInitiatorFaction {
		return false
	}
	if !rules.Eval(t.Predicate, rules.Context{
		Initiator: initiator.Faction,
		Responder: responder.Faction,
		District:  district,
	}) {
		return false
	}
	if t.CooldownTurns > 0 {
		if last, ok := r.cooldowns.LastFired(t.ID); ok && now-last < t.CooldownTurns {
			return false
		}
	}
	return true
}
