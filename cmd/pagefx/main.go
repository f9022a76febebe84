//go:build js || wasm
// +build js wasm

package main

import (
	"github.com/vcrobe/pagefx/console"
	"github.com/vcrobe/pagefx/dom"
	"github.com/vcrobe/pagefx/page"
	"github.com/vcrobe/pagefx/timers"
)

func main() {
	// 1. Find the page. Without a document (e.g. loaded in a worker) there is nothing to do.
	doc := dom.Browser()
	if doc == nil {
		console.Warn("pagefx: no document, widgets not mounted")
		return
	}

	// 2. Build the configuration: defaults, then <body data-pagefx-*> overrides.
	cfg := page.DefaultConfig().ApplyOverrides(doc.Body())
	if err := cfg.Validate(); err != nil {
		console.Error("pagefx: invalid configuration, using defaults: ", err.Error())
		cfg = page.DefaultConfig()
	}

	logger := console.New(cfg.Level())

	// 3. Mount every widget once; the listeners and timers keep them alive.
	w := page.Mount(doc, timers.New(), cfg, logger)
	logger.Debug("pagefx mounted",
		"counters", len(w.Counters),
		"navbar", w.Navbar != nil,
		"banners", len(w.Banners),
		"search", w.Search != nil,
	)

	// Keep the Go program running so event callbacks stay valid.
	select {}
}
