//go:build js && wasm
// +build js,wasm

package dom

import (
	"syscall/js"

	"github.com/recera/haven/pkg/view"
)

// debugLog is set by platform-specific code
var debugLog func(args ...interface{})

// SetDebugLog sets the debug logging function
func SetDebugLog(fn func(args ...interface{})) {
	debugLog = fn
}

var passiveEvents = map[string]bool{
	"touchstart": true,
	"touchmove":  true,
	"scroll":     true,
}

// listen binds h to target and returns a func that removes it and releases
// the JS callback
func (p *Page) listen(target js.Value, event string, h view.Handler) view.Unbind {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			h(p.event(args[0]))
		}
		return nil
	})

	if passiveEvents[event] {
		target.Call("addEventListener", event, fn, map[string]interface{}{"passive": true})
	} else {
		target.Call("addEventListener", event, fn)
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", event, fn)
		fn.Release()
	}
}

func number(v js.Value) (float64, bool) {
	if v.Type() != js.TypeNumber {
		return 0, false
	}
	return v.Float(), true
}

// event copies the fields the behaviours read out of a native event
func (p *Page) event(native js.Value) *view.Event {
	ev := view.NewEvent(native.Get("type").String(), p.wrap(native.Get("target")))
	ev.OnStop(func() { native.Call("stopPropagation") })

	if key := native.Get("key"); key.Type() == js.TypeString {
		ev.Key = key.String()
	}

	x, okX := number(native.Get("clientX"))
	y, okY := number(native.Get("clientY"))
	if okX && okY {
		ev.ClientX, ev.ClientY, ev.HasPointer = x, y, true
	}

	if touches := native.Get("touches"); touches.Truthy() {
		n := touches.Length()
		ev.Touches = make([]view.Point, 0, n)
		for i := 0; i < n; i++ {
			t := touches.Index(i)
			ev.Touches = append(ev.Touches, view.Point{X: t.Get("clientX").Float(), Y: t.Get("clientY").Float()})
		}
	}

	gamma, okG := number(native.Get("gamma"))
	beta, okB := number(native.Get("beta"))
	if okG && okB {
		ev.Gamma, ev.Beta, ev.HasOrientation = gamma, beta, true
	}
	return ev
}
