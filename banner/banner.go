// Package banner dismisses alert and toast notifications a fixed time after
// the page loads.
package banner

import (
	"log/slog"
	"time"

	"github.com/vcrobe/pagefx/dom"
	"github.com/vcrobe/pagefx/timers"
)

// ShowClass is the class whose presence makes a banner visible.
const ShowClass = "show"

// DefaultDetachDelay detaches an alert in the same callback that clears ShowClass.
const DefaultDetachDelay time.Duration = 0

// Rule dismisses every element matching Selector after Delay.
type Rule struct {
	Selector string
	Delay    time.Duration

	// Detach removes the element from the document after hiding it.
	// Without it the element is only hidden and left for its container to clean up.
	Detach bool
}

// DefaultRules returns the alert and toast rules.
func DefaultRules() []Rule {
	return []Rule{
		{Selector: ".alert", Delay: 5000 * time.Millisecond, Detach: true},
		{Selector: ".toast", Delay: 4000 * time.Millisecond},
	}
}

// Options configures the dismisser.
type Options struct {
	// Rules defaults to DefaultRules when nil.
	Rules []Rule

	// DetachDelay is the gap between hiding and detaching, for pages whose
	// banners fade out. Zero or negative detaches immediately.
	DetachDelay time.Duration

	Logger *slog.Logger
}

// Dismissal is the pending dismissal of one banner.
type Dismissal struct {
	el     dom.Element
	timer  timers.Timer
	hidden bool
	gone   bool
}

// Hidden reports whether ShowClass has been cleared.
func (d *Dismissal) Hidden() bool { return d.hidden }

// Detached reports whether the element has been removed from the document.
func (d *Dismissal) Detached() bool { return d.gone }

// Cancel keeps the banner on the page if it has not been hidden yet.
func (d *Dismissal) Cancel() { d.timer.Stop() }

// Schedule arranges the dismissal of el under rule.
func Schedule(sched timers.Scheduler, el dom.Element, rule Rule, detachDelay time.Duration) *Dismissal {
	d := &Dismissal{el: el}
	d.timer = sched.After(rule.Delay, func() {
		el.RemoveClass(ShowClass)
		d.hidden = true
		if !rule.Detach {
			return
		}
		if detachDelay <= 0 {
			d.detach()
			return
		}
		d.timer = sched.After(detachDelay, d.detach)
	})
	return d
}

func (d *Dismissal) detach() {
	d.el.Remove()
	d.gone = true
}

// Mount schedules every banner present on the page now. Banners added later
// are not covered.
func Mount(doc dom.Document, sched timers.Scheduler, opts Options) []*Dismissal {
	rules := opts.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	var out []*Dismissal
	for _, rule := range rules {
		for _, el := range doc.QueryAll(rule.Selector) {
			out = append(out, Schedule(sched, el, rule, opts.DetachDelay))
		}
	}
	if opts.Logger != nil {
		opts.Logger.Debug("banners scheduled", "count", len(out))
	}
	return out
}
