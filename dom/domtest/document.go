// Package domtest is an in-memory page for exercising widgets without a browser.
//
// It implements dom.Document and dom.Element, records the side effects the
// widgets perform (text updates, navigations, focus) and lets tests dispatch
// events that bubble from the target up to the document, like the real DOM.
package domtest

import (
	"strings"

	"github.com/vcrobe/pagefx/dom"
)

// Compile-time assertions to ensure the fakes implement the dom interfaces.
var (
	_ dom.Document = (*Document)(nil)
	_ dom.Element  = (*Element)(nil)
	_ dom.Event    = (*Event)(nil)
)

// Document is a fake page rooted at <html><body>.
type Document struct {
	root        *Element
	body        *Element
	listeners   listenerSet
	window      listenerSet
	scrollY     float64
	lang        string
	navigations []string
	focused     *Element
}

// NewDocument creates an empty page whose language is "en-US".
func NewDocument() *Document {
	d := &Document{lang: "en-US"}
	d.root = &Element{doc: d, tag: "html"}
	d.body = d.root.Append("body")
	return d
}

// SetLanguage changes the value reported by Language.
func (d *Document) SetLanguage(lang string) { d.lang = lang }

func (d *Document) Query(selector string) dom.Element {
	if el := d.find(selector); len(el) > 0 {
		return el[0]
	}
	return nil
}

func (d *Document) QueryAll(selector string) []dom.Element {
	found := d.find(selector)
	out := make([]dom.Element, len(found))
	for i, el := range found {
		out[i] = el
	}
	return out
}

func (d *Document) find(selector string) []*Element {
	sel := parseSelector(selector)
	if sel == nil {
		return nil
	}
	var out []*Element
	d.root.walk(func(el *Element) {
		if el != d.root && sel.matches(el) {
			out = append(out, el)
		}
	})
	return out
}

// Body returns the <body> element.
func (d *Document) Body() dom.Element { return d.body }

// BodyElement returns the <body> element as its concrete type, for building pages.
func (d *Document) BodyElement() *Element { return d.body }

func (d *Document) AddEventListener(event string, fn func(dom.Event)) func() {
	return d.listeners.add(event, fn)
}

func (d *Document) AddWindowListener(event string, fn func(dom.Event)) func() {
	return d.window.add(event, fn)
}

func (d *Document) ScrollY() float64 { return d.scrollY }

// ScrollTo sets the scroll offset and fires a window scroll event.
func (d *Document) ScrollTo(y float64) {
	d.scrollY = y
	d.window.fire(&Event{typ: dom.Scroll})
}

func (d *Document) Navigate(url string) {
	d.navigations = append(d.navigations, url)
}

// Navigations lists every url passed to Navigate, oldest first.
func (d *Document) Navigations() []string {
	return append([]string(nil), d.navigations...)
}

func (d *Document) Language() string { return d.lang }

// ActiveElement returns the element that last received focus, or nil.
func (d *Document) ActiveElement() *Element { return d.focused }

// ListenerCount reports how many document and window listeners are registered for event.
func (d *Document) ListenerCount(event string) int {
	return d.listeners.count(event) + d.window.count(event)
}

// Dispatch delivers ev to target and bubbles it through every ancestor and
// finally the document. A nil target dispatches on the document only.
func (d *Document) Dispatch(target *Element, ev *Event) {
	ev.target = target
	for el := target; el != nil; el = el.parent {
		el.listeners.fire(ev)
	}
	d.listeners.fire(ev)
}

// Click dispatches a click event on el.
func (d *Document) Click(el *Element) {
	d.Dispatch(el, &Event{typ: dom.Click})
}

// KeyDown dispatches a keydown event for key on el (nil targets the document).
func (d *Document) KeyDown(el *Element, key string) {
	d.Dispatch(el, &Event{typ: dom.KeyDown, key: key})
}

// Type sets the value of el and dispatches an input event, as typing would.
func (d *Document) Type(el *Element, value string) {
	el.value = value
	d.Dispatch(el, &Event{typ: dom.Input})
}

// Event is a fake dom.Event.
type Event struct {
	typ    string
	key    string
	target *Element
}

func (e *Event) Type() string { return e.typ }
func (e *Event) Key() string  { return e.key }

func (e *Event) Target() dom.Element {
	if e.target == nil {
		return nil
	}
	return e.target
}

type listener struct {
	fn     func(dom.Event)
	active bool
}

type listenerSet map[string][]*listener

func (s *listenerSet) add(event string, fn func(dom.Event)) func() {
	if *s == nil {
		*s = make(listenerSet)
	}
	l := &listener{fn: fn, active: true}
	(*s)[event] = append((*s)[event], l)
	return func() { l.active = false }
}

func (s listenerSet) fire(ev *Event) {
	// Snapshot so listeners added during dispatch do not run for this event.
	ls := append([]*listener(nil), s[ev.typ]...)
	for _, l := range ls {
		if l.active {
			l.fn(ev)
		}
	}
}

func (s listenerSet) count(event string) int {
	n := 0
	for _, l := range s[event] {
		if l.active {
			n++
		}
	}
	return n
}

// selector is a descendant chain of compound selectors, e.g. "#menu .item[data-x]".
type selector []compound

type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrMatch
}

type attrMatch struct {
	name     string
	value    string
	hasValue bool
}

func parseSelector(s string) selector {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return nil
	}
	sel := make(selector, 0, len(parts))
	for _, p := range parts {
		c, ok := parseCompound(p)
		if !ok {
			return nil
		}
		sel = append(sel, c)
	}
	return sel
}

func parseCompound(s string) (compound, bool) {
	var c compound
	for len(s) > 0 {
		switch s[0] {
		case '#', '.':
			end := 1
			for end < len(s) && !strings.ContainsRune("#.[", rune(s[end])) {
				end++
			}
			if s[0] == '#' {
				c.id = s[1:end]
			} else {
				c.classes = append(c.classes, s[1:end])
			}
			s = s[end:]
		case '[':
			end := strings.IndexByte(s, ']')
			if end < 0 {
				return c, false
			}
			body := s[1:end]
			var m attrMatch
			if name, val, ok := strings.Cut(body, "="); ok {
				m = attrMatch{name: name, value: strings.Trim(val, `"'`), hasValue: true}
			} else {
				m = attrMatch{name: body}
			}
			c.attrs = append(c.attrs, m)
			s = s[end+1:]
		default:
			end := 0
			for end < len(s) && !strings.ContainsRune("#.[", rune(s[end])) {
				end++
			}
			c.tag = s[:end]
			s = s[end:]
		}
	}
	return c, true
}

func (c compound) matches(el *Element) bool {
	if c.tag != "" && c.tag != "*" && c.tag != el.tag {
		return false
	}
	if c.id != "" {
		if id, ok := el.attrs["id"]; !ok || id != c.id {
			return false
		}
	}
	for _, cls := range c.classes {
		if !el.HasClass(cls) {
			return false
		}
	}
	for _, a := range c.attrs {
		v, ok := el.attrs[a.name]
		if !ok || (a.hasValue && v != a.value) {
			return false
		}
	}
	return true
}

func (s selector) matches(el *Element) bool {
	last := len(s) - 1
	if !s[last].matches(el) {
		return false
	}
	i := last - 1
	for anc := el.parent; anc != nil && i >= 0; anc = anc.parent {
		if s[i].matches(anc) {
			i--
		}
	}
	return i < 0
}
