package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/superadventure/engine/world"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	world     *lua.LTable
	items     []rawDef
	monsters  []rawDef
	quests    []rawDef
	locations []rawDef
}

// Load reads all .lua files from dir, compiles them into a world catalog,
// validates references, and returns the immutable catalog. The Lua VM is
// discarded after loading.
func Load(dir string) (*world.Catalog, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("reading world directory %s: %w", dir, err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS is Load over an fs.FS. Only .lua files at the root are read.
func LoadFS(fsys fs.FS) (*world.Catalog, error) {
	cat, ve, err := compileFS(fsys)
	if err != nil {
		return nil, err
	}
	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return cat, nil
}

// Check loads like LoadFS but also returns warnings. A non-nil
// *ValidationError is returned whenever there is anything to report.
func Check(fsys fs.FS) (*world.Catalog, *ValidationError, error) {
	cat, ve, err := compileFS(fsys)
	if err != nil {
		return nil, nil, err
	}
	if len(ve.Errors) == 0 && len(ve.Warnings) == 0 {
		return cat, nil, nil
	}
	return cat, ve, nil
}

func compileFS(fsys fs.FS) (*world.Catalog, *ValidationError, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("reading world files: %w", err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, nil, fmt.Errorf("no .lua files found")
	}
	luaFiles = sortedLuaFiles(luaFiles)

	// Create sandboxed VM.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, name := range luaFiles {
		if err := runFile(L, fsys, name); err != nil {
			return nil, nil, err
		}
	}

	cat, err := compile(coll)
	if err != nil {
		return nil, nil, fmt.Errorf("compiling world data: %w", err)
	}
	return cat, validate(cat), nil
}

func runFile(L *lua.LState, fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	fn, err := L.Load(f, path.Base(name))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("executing %s: %w", name, err)
	}
	return nil
}

// sortedLuaFiles puts world.lua first, the rest alphabetical.
func sortedLuaFiles(files []string) []string {
	sort.Slice(files, func(i, j int) bool {
		if files[i] == "world.lua" {
			return true
		}
		if files[j] == "world.lua" {
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
		"collectgarbage", "require", "module",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// World data must not depend on random state.
	if mathTbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		mathTbl.RawSetString("random", lua.LNil)
		mathTbl.RawSetString("randomseed", lua.LNil)
	}
}
