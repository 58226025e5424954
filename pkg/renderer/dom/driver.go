//go:build js && wasm
// +build js,wasm

package dom

import (
	"syscall/js"
	"time"

	"github.com/recera/haven/pkg/scheduler"
)

// Driver runs scheduler tasks on the browser's timers and frame callbacks
type Driver struct {
	window js.Value
}

// NewDriver returns a driver on the global window
func NewDriver() (scheduler.Driver, error) {
	return &Driver{window: js.Global().Get("window")}, nil
}

// SetTimeout implements scheduler.Driver
func (d *Driver) SetTimeout(delay time.Duration, fn func()) func() {
	var cb js.Func
	released := false
	release := func() {
		if !released {
			released = true
			cb.Release()
		}
	}
	cb = js.FuncOf(func(js.Value, []js.Value) interface{} {
		release()
		fn()
		return nil
	})
	id := d.window.Call("setTimeout", cb, delay.Milliseconds())
	return func() {
		if released {
			return
		}
		d.window.Call("clearTimeout", id)
		release()
	}
}

// RequestFrame implements scheduler.Driver
func (d *Driver) RequestFrame(fn func(ts float64)) func() {
	var cb js.Func
	released := false
	release := func() {
		if !released {
			released = true
			cb.Release()
		}
	}
	cb = js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		release()
		var ts float64
		if len(args) > 0 {
			ts = args[0].Float()
		}
		fn(ts)
		return nil
	})
	id := d.window.Call("requestAnimationFrame", cb)
	return func() {
		if released {
			return
		}
		d.window.Call("cancelAnimationFrame", id)
		release()
	}
}
