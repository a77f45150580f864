// Package convo implements the per-conversation state machine: one template,
// two participants, pre-resolved line texts, and turn-delay bookkeeping.
// Instances are driven purely by the orchestrator's per-turn tick and
// perform no I/O themselves.
package convo

import "github.com/jalvik/palaver/types"

// Delivery is one line that became due: who speaks it and the frozen text.
type Delivery struct {
	Speaker types.SpeakerRole
	Text    string
}

// Instance is an active conversation. Owned exclusively by the orchestrator;
// destroyed when complete, when a participant becomes invalid, or when a
// participant enters combat. Never persisted.
type Instance struct {
	ID        string
	Template  types.Template
	Initiator types.EntityID
	Responder types.EntityID

	InitiatorRel types.RelDescriptor
	ResponderRel types.RelDescriptor

	CreatedOnTurn int

	// resolved is parallel to Template.Lines, computed once at creation
	// against a snapshot of world state. Later state changes cannot touch it.
	resolved []string

	lineIndex      int
	turnsUntilNext int
	complete       bool
}

// New creates an instance over pre-resolved line texts. A template with no
// lines is treated as already complete rather than an error.
func New(id string, tpl types.Template, initiator, responder types.EntityID, initRel, respRel types.RelDescriptor, resolved []string, createdOn int) *Instance {
	inst := &Instance{
		ID:            id,
		Template:      tpl,
		Initiator:     initiator,
		Responder:     responder,
		InitiatorRel:  initRel,
		ResponderRel:  respRel,
		CreatedOnTurn: createdOn,
		resolved:      resolved,
	}
	if len(tpl.Lines) == 0 || len(resolved) != len(tpl.Lines) {
		inst.complete = true
	}
	return inst
}

// Begin delivers the first line. Its authored delay is ignored — the opener
// always fires on the creation turn. Returns false for a malformed instance.
func (i *Instance) Begin() (Delivery, bool) {
	if i.complete || i.lineIndex != 0 {
		return Delivery{}, false
	}
	return i.emit(), true
}

// Step advances the state machine by one driving tick. Returns the line that
// became due, if any.
func (i *Instance) Step() (Delivery, bool) {
	if i.complete {
		return Delivery{}, false
	}
	if i.lineIndex >= len(i.Template.Lines) {
		i.complete = true
		return Delivery{}, false
	}

	i.turnsUntilNext--
	if i.turnsUntilNext > 0 {
		return Delivery{}, false
	}
	return i.emit(), true
}

// emit delivers the current line and arms the delay for the next one. Every
// delay after the opener is coerced to at least one turn.
func (i *Instance) emit() Delivery {
	line := i.Template.Lines[i.lineIndex]
	d := Delivery{Speaker: line.Speaker, Text: i.resolved[i.lineIndex]}

	i.lineIndex++
	if i.lineIndex < len(i.Template.Lines) {
		delay := i.Template.Lines[i.lineIndex].TurnDelay
		if delay < 1 {
			delay = 1
		}
		i.turnsUntilNext = delay
	} else {
		i.complete = true
	}
	return d
}

// IsComplete reports whether the instance has delivered its last line.
func (i *Instance) IsComplete() bool {
	return i.complete
}

// Involves reports whether the entity participates in this conversation.
func (i *Instance) Involves(id types.EntityID) bool {
	return id == i.Initiator || id == i.Responder
}

// SpeakerListener maps a speaker role to the (speaker, listener) entity pair.
func (i *Instance) SpeakerListener(role types.SpeakerRole) (types.EntityID, types.EntityID) {
	if role == types.SpeakResponder {
		return i.Responder, i.Initiator
	}
	return i.Initiator, i.Responder
}
