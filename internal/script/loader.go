package script

import (
	"context"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/taskmill/taskmill/internal/config"
	"github.com/taskmill/taskmill/internal/ctxlog"
	"github.com/taskmill/taskmill/internal/task"
)

// EntryFile is the conventional entry-point filename of a script task.
const EntryFile = "index.lua"

// Load reads the script at path and returns a task whose entry point
// executes it. The file's top level runs once here, to surface parse
// errors early and to pick up the declared description.
func Load(ctx context.Context, name, path string) (*task.Task, error) {
	logger := ctxlog.FromContext(ctx)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("script task %q: %w", name, err)
	}

	L := lua.NewState()
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("script task %q failed to load: %w", name, err)
	}

	description := ""
	if d, ok := L.GetGlobal("description").(lua.LString); ok {
		description = string(d)
	}
	logger.Debug("Loaded script task.", "name", name, "path", path)

	return &task.Task{
		Name:        name,
		Description: description,
		Run: func(ctx context.Context, cfg *config.Values, argv map[string]string) error {
			return invoke(ctx, name, path, cfg, argv)
		},
	}, nil
}

// invoke executes the script's global run function with the config and
// argv bridged into Lua tables.
func invoke(ctx context.Context, name, path string, cfg *config.Values, argv map[string]string) error {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("script task %q failed to load: %w", name, err)
	}

	run := L.GetGlobal("run")
	if run.Type() != lua.LTFunction {
		return fmt.Errorf("script task %q does not define a run function", name)
	}

	cfgTable := toLuaValue(L, cfg.All())
	argvTable := L.NewTable()
	for key, value := range argv {
		argvTable.RawSetString(key, lua.LString(value))
	}

	// require_keys mirrors the config accessor's Require contract from
	// inside the script.
	L.SetGlobal("require_keys", L.NewFunction(func(L *lua.LState) int {
		var keys []string
		for i := 1; i <= L.GetTop(); i++ {
			keys = append(keys, L.CheckString(i))
		}
		if err := cfg.Require(keys...); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}))

	if err := L.CallByParam(lua.P{Fn: run, NRet: 0, Protect: true}, cfgTable, argvTable); err != nil {
		return fmt.Errorf("script task %q failed: %w", name, err)
	}
	return nil
}

// toLuaValue bridges the Go value shapes a config mapping can hold into
// their Lua counterparts.
func toLuaValue(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case []any:
		t := L.NewTable()
		for _, item := range val {
			t.Append(toLuaValue(L, item))
		}
		return t
	case map[string]any:
		t := L.NewTable()
		for key, item := range val {
			t.RawSetString(key, toLuaValue(L, item))
		}
		return t
	case map[string]string:
		t := L.NewTable()
		for key, item := range val {
			t.RawSetString(key, lua.LString(item))
		}
		return t
	default:
		return lua.LString(fmt.Sprintf("%v", val))
	}
}
