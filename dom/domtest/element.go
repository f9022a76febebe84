package domtest

import (
	"slices"

	"github.com/vcrobe/pagefx/dom"
)

// Element is a fake DOM element. Builder methods (With*, Append) return the
// element so pages can be declared inline in tests.
type Element struct {
	doc       *Document
	parent    *Element
	children  []*Element
	tag       string
	attrs     map[string]string
	classes   []string
	styles    map[string]string
	text      string
	texts     []string
	value     string
	listeners listenerSet
}

// Append creates a child element with the given tag.
func (e *Element) Append(tag string) *Element {
	child := &Element{doc: e.doc, parent: e, tag: tag}
	e.children = append(e.children, child)
	return child
}

// WithID sets the id attribute.
func (e *Element) WithID(id string) *Element { return e.WithAttr("id", id) }

// WithAttr sets an attribute.
func (e *Element) WithAttr(name, value string) *Element {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
	return e
}

// WithClass adds classes.
func (e *Element) WithClass(names ...string) *Element {
	for _, n := range names {
		e.AddClass(n)
	}
	return e
}

// WithText sets the initial text without recording it in TextHistory.
func (e *Element) WithText(text string) *Element {
	e.text = text
	return e
}

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) Text() string { return e.text }

func (e *Element) SetText(text string) {
	e.text = text
	e.texts = append(e.texts, text)
}

// TextHistory lists every value passed to SetText, oldest first.
func (e *Element) TextHistory() []string {
	return append([]string(nil), e.texts...)
}

func (e *Element) Value() string { return e.value }

func (e *Element) AddClass(name string) {
	if !e.HasClass(name) {
		e.classes = append(e.classes, name)
	}
}

func (e *Element) RemoveClass(name string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == name })
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

func (e *Element) SetStyle(property, value string) {
	if e.styles == nil {
		e.styles = make(map[string]string)
	}
	e.styles[property] = value
}

// Style returns an inline style property, "" if unset.
func (e *Element) Style(property string) string { return e.styles[property] }

// Visible reports whether the element is not hidden with display: none.
func (e *Element) Visible() bool { return e.styles["display"] != "none" }

func (e *Element) Focus() {
	if e.doc != nil {
		e.doc.focused = e
	}
}

// Focused reports whether e is the document's active element.
func (e *Element) Focused() bool { return e.doc != nil && e.doc.focused == e }

func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	e.parent.children = slices.DeleteFunc(e.parent.children, func(c *Element) bool { return c == e })
	e.parent = nil
}

// Attached reports whether the element is still part of the document tree.
func (e *Element) Attached() bool {
	for el := e; el != nil; el = el.parent {
		if el.doc != nil && el == el.doc.root {
			return true
		}
	}
	return false
}

func (e *Element) AddEventListener(event string, fn func(dom.Event)) func() {
	return e.listeners.add(event, fn)
}

// ListenerCount reports how many active listeners are registered for event.
func (e *Element) ListenerCount(event string) int { return e.listeners.count(event) }

func (e *Element) Is(other dom.Element) bool {
	o, ok := other.(*Element)
	return ok && o == e
}

func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.walk(fn)
	}
}
