//go:build js && wasm
// +build js,wasm

package debug

import (
	"fmt"
	"syscall/js"

	"github.com/recera/haven/pkg/components"
	"github.com/recera/haven/pkg/components/parallax"
	"github.com/recera/haven/pkg/components/vrviewer"
	"github.com/recera/haven/pkg/reactive"
	"github.com/recera/haven/pkg/renderer/dom"
	"github.com/recera/haven/pkg/scheduler"
	"github.com/recera/haven/pkg/site"
)

// EnableLogging points every package's debug hook at the browser console
func EnableLogging() {
	logFn := func(args ...interface{}) {
		js.Global().Get("console").Call("log", args...)
	}

	scheduler.SetDebugLog(logFn)
	reactive.SetDebugLog(logFn)
	components.SetDebugLog(logFn)
	parallax.SetDebugLog(logFn)
	vrviewer.SetDebugLog(logFn)
	site.SetDebugLog(logFn)
	dom.SetDebugLog(logFn)
}

// Log logs a message to the console
func Log(args ...interface{}) {
	js.Global().Get("console").Call("log", args...)
}

// Logf logs a formatted message to the console
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	js.Global().Get("console").Call("log", msg)
}
