// Package search drives the search overlay: opening and closing the modal,
// filtering the pre-rendered suggestion entries as the user types, and
// sending the query to the results page on Enter.
package search

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/vcrobe/pagefx/dom"
	"github.com/vcrobe/pagefx/timers"
)

// CSS state classes toggled by the controller.
const (
	OpenClass     = "open"
	BodyOpenClass = "search-open"
)

const (
	DefaultFocusDelay = 200 * time.Millisecond
	DefaultEndpoint   = "/search/"
	DefaultParam      = "keywords"
)

// Elements are the page parts the controller drives. Overlay is required;
// the rest are optional and only disable their own behavior when nil.
type Elements struct {
	Overlay dom.Element
	Body    dom.Element
	Input   dom.Element
	Open    dom.Element
	Close   dom.Element
	Entries []dom.Element
}

// Options configures the controller. Zero values fall back to the defaults.
type Options struct {
	FocusDelay time.Duration
	Endpoint   string
	Param      string
	Logger     *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.FocusDelay <= 0 {
		o.FocusDelay = DefaultFocusDelay
	}
	if o.Endpoint == "" {
		o.Endpoint = DefaultEndpoint
	}
	if o.Param == "" {
		o.Param = DefaultParam
	}
	return o
}

// Controller is the overlay state machine. The zero state is closed.
type Controller struct {
	doc     dom.Document
	sched   timers.Scheduler
	els     Elements
	opts    Options
	open    bool
	query   string
	visible []bool
	focus   timers.Timer
	release []func()
}

// New wires the controller to els. It returns nil when the overlay is missing.
// Without an input the overlay still opens and closes; filtering, submission
// and the delayed focus are skipped.
func New(doc dom.Document, sched timers.Scheduler, els Elements, opts Options) *Controller {
	if els.Overlay == nil {
		return nil
	}
	c := &Controller{
		doc:     doc,
		sched:   sched,
		els:     els,
		opts:    opts.withDefaults(),
		visible: make([]bool, len(els.Entries)),
	}
	for i := range c.visible {
		c.visible[i] = true
	}

	if els.Open != nil {
		c.listen(els.Open, dom.Click, func(dom.Event) { c.Open() })
	}
	if els.Close != nil {
		c.listen(els.Close, dom.Click, func(dom.Event) { c.Close() })
	}
	c.listen(els.Overlay, dom.Click, func(ev dom.Event) {
		// Only the backdrop itself; clicks bubbling up from the panel are ignored.
		if t := ev.Target(); t != nil && t.Is(els.Overlay) {
			c.Close()
		}
	})
	c.release = append(c.release, doc.AddEventListener(dom.KeyDown, func(ev dom.Event) {
		if ev.Key() == dom.KeyEscape {
			c.Close()
		}
	}))
	if els.Input == nil {
		return c
	}
	c.listen(els.Input, dom.Input, func(dom.Event) { c.Filter(els.Input.Value()) })
	c.listen(els.Input, dom.KeyDown, func(ev dom.Event) {
		if ev.Key() == dom.KeyEnter {
			c.Submit(els.Input.Value())
		}
	})
	return c
}

func (c *Controller) listen(el dom.Element, event string, fn func(dom.Event)) {
	c.release = append(c.release, el.AddEventListener(event, fn))
}

// IsOpen reports the overlay state.
func (c *Controller) IsOpen() bool { return c.open }

// Open shows the overlay and moves focus to the input after FocusDelay.
func (c *Controller) Open() {
	c.els.Overlay.AddClass(OpenClass)
	if c.els.Body != nil {
		c.els.Body.AddClass(BodyOpenClass)
	}
	c.open = true

	if c.focus != nil {
		c.focus.Stop()
		c.focus = nil
	}
	if c.els.Input == nil {
		return
	}
	c.focus = c.sched.After(c.opts.FocusDelay, func() {
		c.focus = nil
		c.els.Input.Focus()
	})
}

// Close hides the overlay. Closing a closed overlay changes nothing.
func (c *Controller) Close() {
	if !c.open {
		return
	}
	c.open = false
	c.els.Overlay.RemoveClass(OpenClass)
	if c.els.Body != nil {
		c.els.Body.RemoveClass(BodyOpenClass)
	}
	if c.focus != nil {
		c.focus.Stop()
		c.focus = nil
	}
}

// Normalize trims and lowercases a raw query.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Matches reports whether an entry with the given text is shown for the
// normalized query q.
func Matches(text, q string) bool {
	return q == "" || strings.Contains(strings.ToLower(text), q)
}

// Filter recomputes the visibility of every entry for raw.
func (c *Controller) Filter(raw string) {
	c.query = Normalize(raw)
	for i, el := range c.els.Entries {
		show := Matches(el.Text(), c.query)
		c.visible[i] = show
		if show {
			el.SetStyle("display", "")
		} else {
			el.SetStyle("display", "none")
		}
	}
}

// Query is the normalized query of the last Filter.
func (c *Controller) Query() string { return c.query }

// Visible reports, per entry, whether it is currently shown.
func (c *Controller) Visible() []bool {
	return append([]bool(nil), c.visible...)
}

// URL builds the results location for raw. It reports false when the
// trimmed query is empty.
func (o Options) URL(raw string) (string, bool) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", false
	}
	o = o.withDefaults()
	return o.Endpoint + "?" + o.Param + "=" + escape(q), true
}

// componentUnescaper restores the characters encodeURIComponent leaves
// alone but url.QueryEscape encodes.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escape percent-encodes like encodeURIComponent, so spaces become %20.
func escape(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// Submit navigates to the results page for raw. Empty queries are ignored.
func (c *Controller) Submit(raw string) bool {
	u, ok := c.opts.URL(raw)
	if !ok {
		return false
	}
	c.doc.Navigate(u)
	return true
}

// Release unregisters every listener; the overlay stays in its current state.
func (c *Controller) Release() {
	for _, r := range c.release {
		r()
	}
	c.release = nil
	if c.focus != nil {
		c.focus.Stop()
		c.focus = nil
	}
}

// Selectors locate the overlay elements on the page.
type Selectors struct {
	Overlay string
	Input   string
	Open    string
	Close   string
	Entries string
}

// DefaultSelectors returns the selectors used by the site templates.
func DefaultSelectors() Selectors {
	return Selectors{
		Overlay: "#searchOverlay",
		Input:   "#searchInput",
		Open:    "#searchTrigger",
		Close:   "#searchClose",
		Entries: "#searchSuggestions .suggestion-item",
	}
}

// Find resolves sel against doc. Missing elements are left nil.
func (sel Selectors) Find(doc dom.Document) Elements {
	els := Elements{
		Overlay: query(doc, sel.Overlay),
		Body:    doc.Body(),
		Input:   query(doc, sel.Input),
		Open:    query(doc, sel.Open),
		Close:   query(doc, sel.Close),
	}
	if sel.Entries != "" {
		els.Entries = doc.QueryAll(sel.Entries)
	}
	return els
}

// query treats an empty selector as "not configured"; querySelector throws on it.
func query(doc dom.Document, selector string) dom.Element {
	if selector == "" {
		return nil
	}
	return doc.Query(selector)
}

// Mount finds the overlay with sel and wires a controller to it.
func Mount(doc dom.Document, sched timers.Scheduler, sel Selectors, opts Options) *Controller {
	els := sel.Find(doc)
	c := New(doc, sched, els, opts)
	if opts.Logger != nil {
		opts.Logger.Debug("search overlay mounted", "present", c != nil, "entries", len(els.Entries))
	}
	return c
}
