// Package page mounts every widget on a document, once per page view.
package page

import (
	"io"
	"log/slog"

	"github.com/vcrobe/pagefx/banner"
	"github.com/vcrobe/pagefx/counter"
	"github.com/vcrobe/pagefx/dom"
	"github.com/vcrobe/pagefx/navbar"
	"github.com/vcrobe/pagefx/numfmt"
	"github.com/vcrobe/pagefx/search"
	"github.com/vcrobe/pagefx/timers"
)

// Widgets are the mounted widgets. Absent page elements leave the matching
// field nil or empty.
type Widgets struct {
	Counters []*counter.Animation
	Navbar   *navbar.Shader
	Banners  []*banner.Dismissal
	Search   *search.Controller
}

// Mount wires every widget to doc. The widgets share no state, so the order
// is irrelevant. A nil logger discards output.
func Mount(doc dom.Document, sched timers.Scheduler, cfg Config, logger *slog.Logger) *Widgets {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	w := &Widgets{}
	w.Counters = counter.Mount(doc, sched, counter.Options{
		Selector: cfg.Counter.Selector,
		Attr:     cfg.Counter.Attr,
		Interval: cfg.Counter.Interval,
		Steps:    cfg.Counter.Steps,
		Format:   numfmt.New(doc.Language()).Int,
		Logger:   logger.With("widget", "counter"),
	})
	w.Navbar = navbar.Mount(doc, navbar.Options{
		Selector:  cfg.Navbar.Selector,
		Threshold: cfg.Navbar.Threshold,
		Top:       cfg.Navbar.Top,
		Scrolled:  cfg.Navbar.Scrolled,
		Logger:    logger.With("widget", "navbar"),
	})
	w.Banners = banner.Mount(doc, sched, banner.Options{
		Rules:       cfg.Banners.Rules,
		DetachDelay: cfg.Banners.DetachDelay,
		Logger:      logger.With("widget", "banner"),
	})
	w.Search = search.Mount(doc, sched, cfg.Search.Selectors, search.Options{
		FocusDelay: cfg.Search.FocusDelay,
		Endpoint:   cfg.Search.Endpoint,
		Param:      cfg.Search.Param,
		Logger:     logger.With("widget", "search"),
	})
	return w
}

// Level is the log level implied by cfg.
func (c Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
