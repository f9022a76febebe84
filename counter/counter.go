// Package counter animates numeric elements from zero up to a target value.
//
// Every element carrying a numeric target attribute counts up in fixed steps
// of ceil(target/Steps), one step per Interval, clamping the last step so the
// displayed value never passes the target.
package counter

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vcrobe/pagefx/dom"
	"github.com/vcrobe/pagefx/timers"
)

const (
	DefaultAttr     = "data-target"
	DefaultSelector = ".stat-num"
	DefaultInterval = 20 * time.Millisecond
	DefaultSteps    = 60
)

// Options configures the animator. Zero values fall back to the defaults.
type Options struct {
	Selector string
	Attr     string
	Interval time.Duration
	Steps    int

	// Format renders the displayed value; strconv.Itoa when nil.
	Format func(int) string

	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Selector == "" {
		o.Selector = DefaultSelector
	}
	if o.Attr == "" {
		o.Attr = DefaultAttr
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.Steps <= 0 {
		o.Steps = DefaultSteps
	}
	if o.Format == nil {
		o.Format = strconv.Itoa
	}
	return o
}

// Animation is the running count-up of one element.
type Animation struct {
	el      dom.Element
	target  int
	step    int
	current int
	format  func(int) string
	timer   timers.Timer
}

// ParseTarget reads the target from an attribute value the way a JS unary
// plus does: decimals, exponents and 0x/0o/0b literals are accepted, and
// fractions are truncated. It reports false for anything that should not
// animate: empty, non-numeric, non-finite, out of range, or below one.
func ParseTarget(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if strings.ContainsRune(s, '_') {
		// Go literal separators; not a number to the browser.
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return 0, false
		}
		return n, true
	}
	if len(s) > 2 && s[0] == '0' && s[2] != '+' && s[2] != '-' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseInt(s[2:], base, 0)
			if err != nil || n <= 0 {
				return 0, false
			}
			return int(n), true
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 1 || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// StepSize is ceil(target/steps), computed without overflowing near math.MaxInt.
func StepSize(target, steps int) int {
	step := target / steps
	if target%steps != 0 {
		step++
	}
	return step
}

// Start begins animating el. It returns nil, leaving the element untouched,
// when el has no usable target.
func Start(sched timers.Scheduler, el dom.Element, opts Options) *Animation {
	opts = opts.withDefaults()
	if el == nil {
		return nil
	}
	raw, ok := el.Attr(opts.Attr)
	if !ok {
		return nil
	}
	target, ok := ParseTarget(raw)
	if !ok {
		return nil
	}

	a := &Animation{
		el:     el,
		target: target,
		step:   StepSize(target, opts.Steps),
		format: opts.Format,
	}
	a.timer = sched.Every(opts.Interval, a.tick)
	return a
}

func (a *Animation) tick() {
	// Compare against the remaining distance so current+step never overflows.
	if a.current >= a.target-a.step {
		a.current = a.target
	} else {
		a.current += a.step
	}
	a.el.SetText(a.format(a.current))
	if a.current == a.target {
		a.timer.Stop()
	}
}

// Target is the value the animation counts up to.
func (a *Animation) Target() int { return a.target }

// Current is the value displayed so far.
func (a *Animation) Current() int { return a.current }

// Done reports whether the displayed value has reached the target.
func (a *Animation) Done() bool { return a.current == a.target }

// Stop halts the animation where it is.
func (a *Animation) Stop() { a.timer.Stop() }

// Mount starts an animation for every element matching opts.Selector.
// Elements without a usable target are skipped.
func Mount(doc dom.Document, sched timers.Scheduler, opts Options) []*Animation {
	opts = opts.withDefaults()
	var out []*Animation
	for _, el := range doc.QueryAll(opts.Selector) {
		if a := Start(sched, el, opts); a != nil {
			out = append(out, a)
		}
	}
	if opts.Logger != nil {
		opts.Logger.Debug("counters mounted", "animating", len(out))
	}
	return out
}
