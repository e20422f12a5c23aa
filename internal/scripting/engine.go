package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arenasim/arena/internal/component"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM holding the game rules.
// Single-goroutine access only (tick loop).
type Engine struct {
	vm      *lua.LState
	log     *zap.Logger
	contact [component.MoveTypeCount][component.MoveTypeCount]uint
}

// NewEngine creates a Lua engine and loads every script under dir. A missing
// dir is not an error: all rules then use their built-in values.
func NewEngine(dir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	for _, sub := range []string{"combat", "level"} {
		if err := e.loadDir(filepath.Join(dir, sub)); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}
	e.buildContactTable()
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// defaultContactDamage is the damage the subject of a directional collision
// takes from the other party. Projectiles lose their single hit point on any
// reported contact.
func defaultContactDamage(subject, other component.MoveType) uint {
	switch {
	case subject.IsProjectile():
		return 1
	case subject == component.Enemy && other == component.PlayerProjectile:
		return 1
	case subject == component.Player && other == component.EnemyProjectile:
		return 1
	case subject == component.Player && other == component.Enemy:
		return 1
	}
	return 0
}

// buildContactTable evaluates contact_damage(subject, other) for every type
// pair once, so the hot path never enters the VM.
func (e *Engine) buildContactTable() {
	fn := e.vm.GetGlobal("contact_damage")
	for s := component.MoveType(0); s < component.MoveTypeCount; s++ {
		for o := component.MoveType(0); o < component.MoveTypeCount; o++ {
			def := defaultContactDamage(s, o)
			e.contact[s][o] = def
			if fn == lua.LNil {
				continue
			}
			if err := e.vm.CallByParam(lua.P{
				Fn:      fn,
				NRet:    1,
				Protect: true,
			}, lua.LString(s.String()), lua.LString(o.String()), lua.LNumber(def)); err != nil {
				e.log.Error("lua contact_damage error", zap.Stringer("subject", s), zap.Stringer("other", o), zap.Error(err))
				continue
			}
			ret := e.vm.Get(-1)
			e.vm.Pop(1)
			if n, ok := ret.(lua.LNumber); ok && n >= 0 {
				e.contact[s][o] = uint(n)
			}
		}
	}
}

// ContactDamage returns the damage subject takes when it touches other.
func (e *Engine) ContactDamage(subject, other component.MoveType) uint {
	if subject >= component.MoveTypeCount || other >= component.MoveTypeCount {
		return 0
	}
	return e.contact[subject][other]
}

// EnemyCount is the number of enemies spawned when level starts.
func (e *Engine) EnemyCount(level int) int {
	return e.callIntFunc("enemy_count", 3, level)
}

// LevelHeal is the health restored to the player for clearing level.
func (e *Engine) LevelHeal(level int) uint {
	n := e.callIntFunc("level_heal", 20, level)
	if n < 0 {
		return 0
	}
	return uint(n)
}

// callIntFunc calls a Lua function with int args and returns an int result,
// or def when the function is missing or fails.
func (e *Engine) callIntFunc(name string, def int, args ...int) int {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		return def
	}

	lArgs := make([]lua.LValue, len(args))
	for i, a := range args {
		lArgs[i] = lua.LNumber(a)
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lArgs...); err != nil {
		e.log.Error("lua call error", zap.String("func", name), zap.Error(err))
		return def
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	n, ok := result.(lua.LNumber)
	if !ok {
		return def
	}
	return int(n)
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
