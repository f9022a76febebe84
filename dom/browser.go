//go:build js || wasm
// +build js wasm

package dom

import (
	"syscall/js"
)

// Compile-time assertions that the browser types implement the interfaces.
var (
	_ Document = (*BrowserDocument)(nil)
	_ Element  = browserElement{}
	_ Event    = browserEvent{}
)

// BrowserDocument is the Document backed by the global window and document objects.
type BrowserDocument struct {
	window js.Value
	doc    js.Value
}

// Browser returns the live page, or nil when no document is available
// (e.g. running inside a worker).
func Browser() *BrowserDocument {
	window := js.Global()
	doc := window.Get("document")
	if !doc.Truthy() {
		return nil
	}
	return &BrowserDocument{window: window, doc: doc}
}

func (d *BrowserDocument) Query(selector string) Element {
	return wrapElement(d.doc.Call("querySelector", selector))
}

func (d *BrowserDocument) QueryAll(selector string) []Element {
	list := d.doc.Call("querySelectorAll", selector)
	n := list.Length()
	out := make([]Element, 0, n)
	for i := 0; i < n; i++ {
		if el := wrapElement(list.Call("item", i)); el != nil {
			out = append(out, el)
		}
	}
	return out
}

func (d *BrowserDocument) Body() Element {
	return wrapElement(d.doc.Get("body"))
}

func (d *BrowserDocument) AddEventListener(event string, fn func(Event)) func() {
	return addListener(d.doc, event, fn)
}

func (d *BrowserDocument) AddWindowListener(event string, fn func(Event)) func() {
	return addListener(d.window, event, fn)
}

func (d *BrowserDocument) ScrollY() float64 {
	return d.window.Get("scrollY").Float()
}

func (d *BrowserDocument) Navigate(url string) {
	d.window.Get("location").Set("href", url)
}

func (d *BrowserDocument) Language() string {
	nav := d.window.Get("navigator")
	if !nav.Truthy() {
		return ""
	}
	lang := nav.Get("language")
	if lang.Type() != js.TypeString {
		return ""
	}
	return lang.String()
}

// addListener wraps fn in js.FuncOf and attaches it to target.
// The returned func detaches the listener and releases the js.Func.
func addListener(target js.Value, event string, fn func(Event)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(browserEvent{v: args[0]})
		}
		return nil
	})
	target.Call("addEventListener", event, cb)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

type browserElement struct {
	v js.Value
}

func wrapElement(v js.Value) Element {
	if !v.Truthy() {
		return nil
	}
	return browserElement{v: v}
}

func (e browserElement) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e browserElement) Text() string {
	return e.v.Get("textContent").String()
}

func (e browserElement) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e browserElement) Value() string {
	v := e.v.Get("value")
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (e browserElement) AddClass(name string) {
	e.v.Get("classList").Call("add", name)
}

func (e browserElement) RemoveClass(name string) {
	e.v.Get("classList").Call("remove", name)
}

func (e browserElement) SetStyle(property, value string) {
	e.v.Get("style").Call("setProperty", property, value)
}

func (e browserElement) Focus() {
	e.v.Call("focus")
}

func (e browserElement) Remove() {
	e.v.Call("remove")
}

func (e browserElement) AddEventListener(event string, fn func(Event)) func() {
	return addListener(e.v, event, fn)
}

func (e browserElement) Is(other Element) bool {
	o, ok := other.(browserElement)
	return ok && e.v.Equal(o.v)
}

type browserEvent struct {
	v js.Value
}

func (e browserEvent) Type() string {
	return e.v.Get("type").String()
}

func (e browserEvent) Key() string {
	k := e.v.Get("key")
	if k.Type() != js.TypeString {
		return ""
	}
	return k.String()
}

// Target only wraps Element nodes; text nodes and the document yield nil.
func (e browserEvent) Target() Element {
	t := e.v.Get("target")
	if !t.Truthy() || t.Get("nodeType").Int() != 1 {
		return nil
	}
	return browserElement{v: t}
}
