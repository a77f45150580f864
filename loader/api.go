package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the template DSL as Lua globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Template "id" { ... } — curried: Template("id") returns a function
	// that takes the definition table.
	L.SetGlobal("Template", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.templates = append(coll.templates, rawTemplate{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Line(speaker, text, delay)
	L.SetGlobal("Line", L.NewFunction(func(L *lua.LState) int {
		speaker := L.CheckString(1)
		text := L.CheckString(2)
		delay := L.OptInt(3, 0)
		tbl := L.NewTable()
		tbl.RawSetString("speaker", lua.LString(speaker))
		tbl.RawSetString("text", lua.LString(text))
		tbl.RawSetString("delay", lua.LNumber(delay))
		L.Push(tbl)
		return 1
	}))

	registerPredicateHelpers(L)
}

func registerPredicateHelpers(L *lua.LState) {
	// Contested()
	L.SetGlobal("Contested", L.NewFunction(func(L *lua.LState) int {
		L.Push(predicateTable(L, "contested", nil))
		return 1
	}))

	// NotContested()
	L.SetGlobal("NotContested", L.NewFunction(func(L *lua.LState) int {
		L.Push(predicateTable(L, "not_contested", nil))
		return 1
	}))

	// ProsperityBelow(value)
	L.SetGlobal("ProsperityBelow", L.NewFunction(func(L *lua.LState) int {
		v := L.CheckNumber(1)
		L.Push(predicateTable(L, "prosperity_below", map[string]lua.LValue{"value": v}))
		return 1
	}))

	// ProsperityAtLeast(value)
	L.SetGlobal("ProsperityAtLeast", L.NewFunction(func(L *lua.LState) int {
		v := L.CheckNumber(1)
		L.Push(predicateTable(L, "prosperity_at_least", map[string]lua.LValue{"value": v}))
		return 1
	}))

	// HeatAbove(value) — initiator faction's heat in the district.
	L.SetGlobal("HeatAbove", L.NewFunction(func(L *lua.LState) int {
		v := L.CheckNumber(1)
		L.Push(predicateTable(L, "heat_above", map[string]lua.LValue{"value": v}))
		return 1
	}))

	// ControlAtLeast(value)
	L.SetGlobal("ControlAtLeast", L.NewFunction(func(L *lua.LState) int {
		v := L.CheckNumber(1)
		L.Push(predicateTable(L, "control_at_least", map[string]lua.LValue{"value": v}))
		return 1
	}))

	// ControlBelow(value)
	L.SetGlobal("ControlBelow", L.NewFunction(func(L *lua.LState) int {
		v := L.CheckNumber(1)
		L.Push(predicateTable(L, "control_below", map[string]lua.LValue{"value": v}))
		return 1
	}))

	// ResponderControls(value)
	L.SetGlobal("ResponderControls", L.NewFunction(func(L *lua.LState) int {
		v := L.CheckNumber(1)
		L.Push(predicateTable(L, "responder_controls", map[string]lua.LValue{"value": v}))
		return 1
	}))
}

func predicateTable(L *lua.LState, name string, params map[string]lua.LValue) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("name", lua.LString(name))
	for k, v := range params {
		tbl.RawSetString(k, v)
	}
	return tbl
}
