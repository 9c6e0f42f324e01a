package filter

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/termsense/internal/osc"
)

// Decision is the outcome of running one notification through the filter.
type Decision struct {
	// Allow is false when the script suppressed the notification.
	Allow bool

	// Title, Body and Urgency are the possibly rewritten fields. They are
	// only meaningful when Allow is true.
	Title   *string
	Body    string
	Urgency osc.Urgency
}

// Lua is a notification filter backed by a user script.
type Lua struct {
	state  *lua.LState
	fn     *lua.LFunction
	closed bool
}

// LoadScript compiles the script at path and binds its filter function.
func LoadScript(path string) (*Lua, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // Open selectively below
	})

	openSafeLibraries(L)

	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading filter script %s: %w", path, err)
	}

	fn, ok := L.GetGlobal("filter").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("%w: %s", ErrNoFilterFunction, path)
	}

	return &Lua{state: L, fn: fn}, nil
}

// openSafeLibraries opens only safe Lua standard libraries.
// io, os, debug and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// Apply runs one notification through the script. On script error the
// notification is not lost: the returned Decision passes it through
// unchanged alongside the error, and the caller chooses whether to log.
func (f *Lua) Apply(title *string, body string, urgency osc.Urgency) (Decision, error) {
	passThrough := Decision{Allow: true, Title: title, Body: body, Urgency: urgency}

	if f.closed {
		return passThrough, ErrFilterClosed
	}

	luaTitle := lua.LValue(lua.LNil)
	if title != nil {
		luaTitle = lua.LString(*title)
	}

	err := f.state.CallByParam(lua.P{
		Fn:      f.fn,
		NRet:    4,
		Protect: true,
	}, luaTitle, lua.LString(body), lua.LNumber(urgency))
	if err != nil {
		return passThrough, fmt.Errorf("filter call: %w", err)
	}

	retUrgency := f.state.Get(-1)
	retBody := f.state.Get(-2)
	retTitle := f.state.Get(-3)
	retAllow := f.state.Get(-4)
	f.state.Pop(4)

	if !lua.LVAsBool(retAllow) {
		return Decision{Allow: false}, nil
	}

	decision := passThrough
	if s, ok := retTitle.(lua.LString); ok {
		t := string(s)
		decision.Title = &t
	}
	if s, ok := retBody.(lua.LString); ok {
		decision.Body = string(s)
	}
	if n, ok := retUrgency.(lua.LNumber); ok {
		decision.Urgency = clampUrgency(int(n))
	}
	return decision, nil
}

// Close releases the Lua state. Apply calls after Close pass through.
func (f *Lua) Close() {
	if f.closed {
		return
	}
	f.closed = true
	f.state.Close()
}

// clampUrgency forces script-supplied urgency onto the three-level scale.
func clampUrgency(n int) osc.Urgency {
	switch {
	case n <= 0:
		return osc.UrgencyLow
	case n == 1:
		return osc.UrgencyNormal
	default:
		return osc.UrgencyCritical
	}
}
