//go:build !js || !wasm
// +build !js !wasm

package dom

import (
	"errors"

	"github.com/recera/haven/pkg/scheduler"
	"github.com/recera/haven/pkg/view"
)

// ErrUnsupported is returned outside WASM builds
var ErrUnsupported = errors.New("DOM is only available in WASM builds")

// SetDebugLog sets the debug logging function (stub)
func SetDebugLog(fn func(args ...interface{})) {}

// NewPage wraps the browser document (stub)
func NewPage() (view.Page, error) {
	return nil, ErrUnsupported
}

// NewDriver returns a browser timer driver (stub)
func NewDriver() (scheduler.Driver, error) {
	return nil, ErrUnsupported
}
