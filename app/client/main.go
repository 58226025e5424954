//go:build js && wasm
// +build js,wasm

package main

import (
	"net/url"
	"strings"
	"syscall/js"
	"time"

	"github.com/recera/haven/app/routes"
	"github.com/recera/haven/pkg/debug"
	"github.com/recera/haven/pkg/renderer/dom"
	"github.com/recera/haven/pkg/scheduler"
	"github.com/recera/haven/pkg/site"
)

var console = js.Global().Get("console")

func main() {
	if debugRequested() {
		debug.EnableLogging()
	}

	document := js.Global().Get("document")
	if document.Get("readyState").String() != "loading" {
		start()
	} else {
		var ready js.Func
		ready = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			ready.Release()
			start()
			return nil
		})
		document.Call("addEventListener", "DOMContentLoaded", ready, map[string]interface{}{"once": true})
	}

	// Keep the WASM runtime alive
	select {}
}

// debugRequested is true when the page URL carries ?debug
func debugRequested() bool {
	q, err := url.ParseQuery(strings.TrimPrefix(js.Global().Get("location").Get("search").String(), "?"))
	if err != nil {
		return false
	}
	_, ok := q["debug"]
	return ok
}

func start() {
	page, err := dom.NewPage()
	if err != nil {
		console.Call("error", err.Error())
		return
	}
	driver, err := dom.NewDriver()
	if err != nil {
		console.Call("error", err.Error())
		return
	}

	s := site.Mount(page, scheduler.NewScheduler(driver), content(), site.Options{Now: time.Now()})
	for _, r := range s.Inert() {
		debug.Logf("[Haven] %s inactive: %v", r.Component, r.Err)
	}
	debug.Logf("[Haven] %d components active", len(s.Active()))
}

// content reads the YAML block the page was rendered with, falling back to
// the built-in content
func content() site.Content {
	el := js.Global().Get("document").Call("getElementById", routes.ContentScriptID)
	if el.IsNull() {
		return site.Default()
	}
	c, err := site.Parse([]byte(el.Get("textContent").String()))
	if err != nil {
		console.Call("warn", "site content: "+err.Error())
		return site.Default()
	}
	return c
}
