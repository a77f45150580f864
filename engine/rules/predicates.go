// Package rules implements the template predicate table: named world-state
// truth checks dispatched through pure functions over the initiator faction,
// responder faction, and district state.
package rules

import "github.com/jalvik/palaver/types"

// Context is the read-only state a predicate may consult. District is nil
// when the pair stands outside any district; district-dependent predicates
// then evaluate to false rather than failing the selection pipeline.
type Context struct {
	Initiator types.FactionID
	Responder types.FactionID
	District  *types.District
}

type predicateFunc func(p types.Predicate, ctx Context) bool

var table = map[string]predicateFunc{
	"contested": func(_ types.Predicate, ctx Context) bool {
		return ctx.District != nil && ctx.District.Contested
	},
	"not_contested": func(_ types.Predicate, ctx Context) bool {
		return ctx.District != nil && !ctx.District.Contested
	},
	"prosperity_below": func(p types.Predicate, ctx Context) bool {
		return ctx.District != nil && ctx.District.Prosperity < paramFloat(p, "value")
	},
	"prosperity_at_least": func(p types.Predicate, ctx Context) bool {
		return ctx.District != nil && ctx.District.Prosperity >= paramFloat(p, "value")
	},
	"heat_above": func(p types.Predicate, ctx Context) bool {
		if ctx.District == nil {
			return false
		}
		return ctx.District.Heat[ctx.Initiator] > paramFloat(p, "value")
	},
	"control_at_least": func(p types.Predicate, ctx Context) bool {
		if ctx.District == nil {
			return false
		}
		return ctx.District.Control[ctx.Initiator] >= paramFloat(p, "value")
	},
	"control_below": func(p types.Predicate, ctx Context) bool {
		if ctx.District == nil {
			return false
		}
		return ctx.District.Control[ctx.Initiator] < paramFloat(p, "value")
	},
	"responder_controls": func(p types.Predicate, ctx Context) bool {
		if ctx.District == nil {
			return false
		}
		return ctx.District.Control[ctx.Responder] >= paramFloat(p, "value")
	},
}

// Eval evaluates a template predicate. A nil predicate is vacuously true; an
// unknown predicate name is false.
func Eval(p *types.Predicate, ctx Context) bool {
	if p == nil {
		return true
	}
	fn, ok := table[p.Name]
	if !ok {
		return false
	}
	return fn(*p, ctx)
}

// Known reports whether name is a registered predicate, for content
// validation.
func Known(name string) bool {
	_, ok := table[name]
	return ok
}

// paramFloat reads a numeric parameter, handling float64 from Lua and int
// from hand-built templates.
func paramFloat(p types.Predicate, key string) float64 {
	switch n := p.Params[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
