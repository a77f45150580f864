// Package loader loads Lua-authored conversation templates into Go structs.
// The Lua VM is discarded after loading — zero Lua at runtime.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jalvik/palaver/types"
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	templates []rawTemplate
}

// Load reads all .lua files from dir, compiles them into templates, and
// validates the result.
func Load(dir string) ([]types.Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	sort.Strings(luaFiles)

	// Create sandboxed VM with only safe libraries.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		path := filepath.Join(dir, f)
		if err := L.DoFile(path); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	templates, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling content: %w", err)
	}

	if err := validate(templates); err != nil {
		return nil, err
	}

	return templates, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Remove math.randomseed so content can't disturb determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
