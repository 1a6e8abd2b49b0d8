package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/buffetcore/config"
	"github.com/nathoo/buffetcore/content"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	generate *lua.LTable
	defs     []rawDef
}

// Load reads all .lua files from dir, runs them, merges their definitions
// over the generated tables and validates the result. base supplies the
// generation parameters a Generate{} block may override. The Lua VM is
// discarded after loading.
func Load(dir string, base config.Content) (content.Tables, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return content.Tables{}, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return content.Tables{}, fmt.Errorf("no .lua files found in %s", dir)
	}
	luaFiles = sortedLuaFiles(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return content.Tables{}, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	tables, err := compile(coll, base)
	if err != nil {
		return content.Tables{}, fmt.Errorf("compiling content: %w", err)
	}
	if err := Validate(tables); err != nil {
		return content.Tables{}, err
	}
	return tables, nil
}

// sortedLuaFiles puts content.lua first and the rest in name order.
func sortedLuaFiles(files []string) []string {
	sort.Slice(files, func(i, j int) bool {
		if files[i] == "content.lua" {
			return files[j] != "content.lua"
		}
		if files[j] == "content.lua" {
			return false
		}
		return files[i] < files[j]
	})
	return files
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Content must not depend on a reseeded Lua RNG.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
