// Package navbar shades the navigation bar once the page has scrolled.
package navbar

import (
	"log/slog"

	"github.com/vcrobe/pagefx/dom"
)

const (
	DefaultSelector  = "#navbar"
	DefaultThreshold = 50
	DefaultTop       = "rgba(15,17,23,0.95)"
	DefaultScrolled  = "rgba(15,17,23,0.98)"
)

// Options configures the shader. Zero values fall back to the defaults.
type Options struct {
	Selector string

	// Threshold is the scroll offset, in pixels, beyond which the bar counts
	// as scrolled. It must be positive; zero selects DefaultThreshold.
	Threshold float64

	// Top and Scrolled are the background values for the two modes.
	Top      string
	Scrolled string

	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Selector == "" {
		o.Selector = DefaultSelector
	}
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Top == "" {
		o.Top = DefaultTop
	}
	if o.Scrolled == "" {
		o.Scrolled = DefaultScrolled
	}
	return o
}

// Shader keeps the navbar background in step with the scroll position.
type Shader struct {
	el      dom.Element
	opts    Options
	release func()
}

// Background returns the background for scroll offset y.
func (o Options) Background(y float64) string {
	o = o.withDefaults()
	if y > o.Threshold {
		return o.Scrolled
	}
	return o.Top
}

// New attaches a shader to el. It returns nil when el is nil.
func New(doc dom.Document, el dom.Element, opts Options) *Shader {
	if el == nil {
		return nil
	}
	s := &Shader{el: el, opts: opts.withDefaults()}
	s.release = doc.AddWindowListener(dom.Scroll, func(dom.Event) {
		s.Apply(doc.ScrollY())
	})
	s.Apply(doc.ScrollY())
	return s
}

// Mount looks up the navbar by opts.Selector and attaches a shader to it.
func Mount(doc dom.Document, opts Options) *Shader {
	opts = opts.withDefaults()
	s := New(doc, doc.Query(opts.Selector), opts)
	if opts.Logger != nil {
		opts.Logger.Debug("navbar mounted", "present", s != nil)
	}
	return s
}

// Apply sets the background for scroll offset y.
func (s *Shader) Apply(y float64) {
	s.el.SetStyle("background", s.opts.Background(y))
}

// Close stops listening for scroll events.
func (s *Shader) Close() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
}
