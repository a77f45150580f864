package loader

import (
	"fmt"

	"github.com/jalvik/palaver/types"
	lua "github.com/yuin/gopher-lua"
)

// rawTemplate holds a template table before compilation.
type rawTemplate struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or false if missing.
func getBool(tbl *lua.LTable, key string) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return false
}

// getInt returns an integer field and whether it was present.
func getInt(tbl *lua.LTable, key string) (int, bool) {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n), true
	}
	return 0, false
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// compile converts collected Lua data into templates.
func compile(coll *collector) ([]types.Template, error) {
	templates := make([]types.Template, 0, len(coll.templates))
	for _, raw := range coll.templates {
		t, err := compileTemplate(raw)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", raw.id, err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

func compileTemplate(raw rawTemplate) (types.Template, error) {
	tbl := raw.table
	t := types.NewTemplate(raw.id, types.Topic(getString(tbl, "topic")))

	t.SameFactionOnly = getBool(tbl, "same_faction_only")
	t.CrossFactionOnly = getBool(tbl, "cross_faction_only")
	t.RequireRankDifference = getBool(tbl, "require_rank_difference")
	t.RequiredInitiatorFaction = types.FactionID(getString(tbl, "initiator_faction"))

	// Absent bounds stay open.
	if v, ok := getInt(tbl, "min_rep"); ok {
		t.MinInterRep = v
	}
	if v, ok := getInt(tbl, "max_rep"); ok {
		t.MaxInterRep = v
	}
	if v, ok := getInt(tbl, "cooldown"); ok {
		t.CooldownTurns = v
	}

	if reqTbl := getTable(tbl, "requires"); reqTbl != nil {
		t.Predicate = compilePredicate(reqTbl)
	}

	linesTbl := getTable(tbl, "lines")
	if linesTbl == nil {
		return t, fmt.Errorf("missing lines")
	}
	lines, err := compileLines(linesTbl)
	if err != nil {
		return t, err
	}
	t.Lines = lines

	return t, nil
}

func compilePredicate(tbl *lua.LTable) *types.Predicate {
	p := &types.Predicate{
		Name:   getString(tbl, "name"),
		Params: map[string]any{},
	}
	tbl.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok || string(ks) == "name" {
			return
		}
		switch val := v.(type) {
		case lua.LNumber:
			p.Params[string(ks)] = float64(val)
		case lua.LBool:
			p.Params[string(ks)] = bool(val)
		case lua.LString:
			p.Params[string(ks)] = string(val)
		}
	})
	return p
}

func compileLines(tbl *lua.LTable) ([]types.Line, error) {
	var lines []types.Line
	var badSpeaker string
	tbl.ForEach(func(k, v lua.LValue) {
		if _, ok := k.(lua.LNumber); !ok {
			return
		}
		lineTbl, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		speaker := getString(lineTbl, "speaker")
		delay, _ := getInt(lineTbl, "delay")
		line := types.Line{
			Text:      getString(lineTbl, "text"),
			TurnDelay: delay,
		}
		switch speaker {
		case "initiator":
			line.Speaker = types.SpeakInitiator
		case "responder":
			line.Speaker = types.SpeakResponder
		default:
			badSpeaker = speaker
			return
		}
		lines = append(lines, line)
	})
	if badSpeaker != "" {
		return nil, fmt.Errorf("unknown speaker %q (want initiator or responder)", badSpeaker)
	}
	return lines, nil
}
