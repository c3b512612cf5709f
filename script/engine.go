// Package script programs task sequences in Lua.
//
// A sequence script runs once when it is loaded. It describes the tasks of a
// sequence using the seq table:
//
//	seq.once(fn)            -- runs fn once, returns the index of the task
//	seq.task(fn)            -- runs fn every cycle until it returns a falsy value
//	seq.interval(steps, fn) -- runs fn(progress) for steps seconds, returning true ends it early
//	seq.jump(index)         -- continues with the task at index once the current task ended
//	seq.index()             -- returns the index of the current task
//
// Errors raised by a function of a running task are logged and end that task.
package script

import (
	"fmt"

	"github.com/frameloop/pulse"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM. It must only be used from the
// goroutine running the frame loop.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	return &Engine{vm: vm, log: log}
}

func (e *Engine) Close() {
	e.vm.Close()
}

// Define registers a global Lua function. All arguments are converted to numbers.
func (e *Engine) Define(name string, fn func(args ...float64) float64) {
	e.vm.SetGlobal(name, e.numberFunction(fn))
}

func (e *Engine) numberFunction(fn func(args ...float64) float64) *lua.LFunction {
	return e.vm.NewFunction(func(L *lua.LState) int {
		args := make([]float64, L.GetTop())
		for idx := range args {
			args[idx] = float64(L.CheckNumber(idx + 1))
		}

		L.Push(lua.LNumber(fn(args...)))
		return 1
	})
}

// DoFile executes a Lua file in the global environment, e.g. to define shared functions.
func (e *Engine) DoFile(path string) error {
	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	e.log.Debug("Loaded lua script", zap.String("file", path))
	return nil
}

// Funcs are functions only visible to a single script.
// All arguments are converted to numbers.
type Funcs map[string]func(args ...float64) float64

// Sequence runs the given source to add tasks to the sequence.
func (e *Engine) Sequence(seq *pulse.Sequence, source string, funcs Funcs) error {
	fn, err := e.vm.LoadString(source)
	if err != nil {
		return fmt.Errorf("compile sequence: %w", err)
	}

	return e.runSequence(seq, fn, "<string>", funcs)
}

// SequenceFile runs the given file to add tasks to the sequence.
func (e *Engine) SequenceFile(seq *pulse.Sequence, path string, funcs Funcs) error {
	fn, err := e.vm.LoadFile(path)
	if err != nil {
		return fmt.Errorf("compile sequence %s: %w", path, err)
	}

	return e.runSequence(seq, fn, path, funcs)
}

func (e *Engine) runSequence(seq *pulse.Sequence, fn *lua.LFunction, name string, funcs Funcs) error {
	// each script sees its own seq table, all other lookups fall through to the globals
	env := e.vm.NewTable()
	env.RawSetString("seq", e.sequenceTable(seq, name))

	for funcName, goFn := range funcs {
		env.RawSetString(funcName, e.numberFunction(goFn))
	}

	meta := e.vm.NewTable()
	meta.RawSetString("__index", e.vm.G.Global)
	e.vm.SetMetatable(env, meta)

	fn.Env = env

	e.vm.Push(fn)
	if err := e.vm.PCall(0, 0, nil); err != nil {
		return fmt.Errorf("run sequence %s: %w", name, err)
	}

	e.log.Debug("Loaded lua sequence",
		zap.String("script", name),
		zap.Int("tasks", seq.Len()))

	return nil
}

func (e *Engine) sequenceTable(seq *pulse.Sequence, name string) *lua.LTable {
	table := e.vm.NewTable()

	e.vm.SetFuncs(table, map[string]lua.LGFunction{
		"once": func(L *lua.LState) int {
			fn := L.CheckFunction(1)

			idx := seq.Once(func() {
				_, _ = e.call(name, fn)
			})

			L.Push(lua.LNumber(idx))
			return 1
		},

		"task": func(L *lua.LState) int {
			fn := L.CheckFunction(1)

			idx := seq.Do(func() bool {
				result, err := e.call(name, fn)
				return err != nil || !lua.LVAsBool(result)
			})

			L.Push(lua.LNumber(idx))
			return 1
		},

		"interval": func(L *lua.LState) int {
			steps := float64(L.CheckNumber(1))
			fn := L.CheckFunction(2)

			if steps <= 0 {
				L.ArgError(1, "steps must be positive")
				return 0
			}

			idx := seq.Interval(steps, func(progress float64) bool {
				result, err := e.call(name, fn, lua.LNumber(progress))
				return err != nil || lua.LVAsBool(result)
			})

			L.Push(lua.LNumber(idx))
			return 1
		},

		"jump": func(L *lua.LState) int {
			seq.Goto(L.CheckInt(1))
			return 0
		},

		"index": func(L *lua.LState) int {
			L.Push(lua.LNumber(seq.Index()))
			return 1
		},
	})

	return table
}

// call runs a lua function in protected mode and returns its first result.
func (e *Engine) call(name string, fn *lua.LFunction, args ...lua.LValue) (lua.LValue, error) {
	err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...)

	if err != nil {
		e.log.Warn("Lua task failed", zap.String("script", name), zap.Error(err))
		return lua.LNil, err
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	return result, nil
}
