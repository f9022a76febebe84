//go:build js || wasm
// +build js wasm

package timers

import (
	"syscall/js"
	"time"
)

// Browser schedules callbacks with window.setTimeout and window.setInterval,
// so they run on the page's event loop alongside DOM event handlers.
type Browser struct{}

// New returns the scheduler for the current platform.
func New() Scheduler { return Browser{} }

func (Browser) After(d time.Duration, fn func()) Timer {
	t := &jsTimer{clear: "clearTimeout"}
	t.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		// A fired timeout cannot fire again; release before running fn so a
		// panic in fn does not leak the callback.
		t.Stop()
		fn()
		return nil
	})
	t.id = js.Global().Call("setTimeout", t.cb, d.Milliseconds())
	return t
}

func (Browser) Every(d time.Duration, fn func()) Timer {
	t := &jsTimer{clear: "clearInterval"}
	t.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		if !t.stopped {
			fn()
		}
		return nil
	})
	t.id = js.Global().Call("setInterval", t.cb, d.Milliseconds())
	return t
}

type jsTimer struct {
	id      js.Value
	cb      js.Func
	clear   string
	stopped bool
}

func (t *jsTimer) Stop() {
	if t.stopped {
		return
	}
	t.stopped = true
	js.Global().Call(t.clear, t.id)
	t.cb.Release()
}
