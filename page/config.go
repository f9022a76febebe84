package page

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vcrobe/pagefx/banner"
	"github.com/vcrobe/pagefx/counter"
	"github.com/vcrobe/pagefx/dom"
	"github.com/vcrobe/pagefx/navbar"
	"github.com/vcrobe/pagefx/search"
)

// Config holds everything the widgets need to find their elements and time
// their effects. Start from DefaultConfig and override fields.
type Config struct {
	Counter CounterConfig
	Navbar  NavbarConfig
	Banners BannerConfig
	Search  SearchConfig

	// Debug lowers the log level so mount summaries reach the console.
	Debug bool
}

type CounterConfig struct {
	Selector string
	Attr     string
	Interval time.Duration
	Steps    int
}

type NavbarConfig struct {
	Selector  string
	Threshold float64
	Top       string
	Scrolled  string
}

type BannerConfig struct {
	Rules       []banner.Rule
	DetachDelay time.Duration
}

type SearchConfig struct {
	Selectors  search.Selectors
	FocusDelay time.Duration
	Endpoint   string
	Param      string
}

// DefaultConfig returns the configuration matching the site templates.
func DefaultConfig() Config {
	return Config{
		Counter: CounterConfig{
			Selector: counter.DefaultSelector,
			Attr:     counter.DefaultAttr,
			Interval: counter.DefaultInterval,
			Steps:    counter.DefaultSteps,
		},
		Navbar: NavbarConfig{
			Selector:  navbar.DefaultSelector,
			Threshold: navbar.DefaultThreshold,
			Top:       navbar.DefaultTop,
			Scrolled:  navbar.DefaultScrolled,
		},
		Banners: BannerConfig{
			Rules:       banner.DefaultRules(),
			DetachDelay: banner.DefaultDetachDelay,
		},
		Search: SearchConfig{
			Selectors:  search.DefaultSelectors(),
			FocusDelay: search.DefaultFocusDelay,
			Endpoint:   search.DefaultEndpoint,
			Param:      search.DefaultParam,
		},
	}
}

// Validate reports configuration that cannot produce the intended effects.
func (c Config) Validate() error {
	var errs []error
	if c.Counter.Selector == "" || c.Counter.Attr == "" {
		errs = append(errs, errors.New("counter: selector and attribute are required"))
	}
	if c.Counter.Interval <= 0 {
		errs = append(errs, fmt.Errorf("counter: interval must be positive, got %v", c.Counter.Interval))
	}
	if c.Counter.Steps <= 0 {
		errs = append(errs, fmt.Errorf("counter: steps must be positive, got %d", c.Counter.Steps))
	}
	if c.Navbar.Selector == "" {
		errs = append(errs, errors.New("navbar: selector is required"))
	}
	if c.Navbar.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("navbar: threshold must be positive, got %v", c.Navbar.Threshold))
	}
	for i, r := range c.Banners.Rules {
		if r.Selector == "" {
			errs = append(errs, fmt.Errorf("banners: rule %d: selector is required", i))
		}
		if r.Delay <= 0 {
			errs = append(errs, fmt.Errorf("banners: rule %d (%s): delay must be positive, got %v", i, r.Selector, r.Delay))
		}
	}
	if c.Search.Selectors.Overlay == "" {
		errs = append(errs, errors.New("search: overlay selector is required"))
	}
	if c.Search.FocusDelay < 0 {
		errs = append(errs, fmt.Errorf("search: focus delay must not be negative, got %v", c.Search.FocusDelay))
	}
	if !strings.HasPrefix(c.Search.Endpoint, "/") {
		errs = append(errs, fmt.Errorf("search: endpoint must be an absolute path, got %q", c.Search.Endpoint))
	}
	if c.Search.Param == "" {
		errs = append(errs, errors.New("search: query parameter is required"))
	}
	return errors.Join(errs...)
}

// Attributes on <body> that override the defaults.
const (
	AttrDebug          = "data-pagefx-debug"
	AttrSearchEndpoint = "data-pagefx-search-endpoint"
	AttrSearchParam    = "data-pagefx-search-param"
	AttrNavbarOffset   = "data-pagefx-navbar-offset"
)

// ApplyOverrides returns c with the data-pagefx-* attributes of el applied.
// Malformed values are ignored.
func (c Config) ApplyOverrides(el dom.Element) Config {
	if el == nil {
		return c
	}
	if v, ok := el.Attr(AttrDebug); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		} else if v == "" {
			c.Debug = true
		}
	}
	if v, ok := el.Attr(AttrSearchEndpoint); ok && v != "" {
		c.Search.Endpoint = v
	}
	if v, ok := el.Attr(AttrSearchParam); ok && v != "" {
		c.Search.Param = v
	}
	if v, ok := el.Attr(AttrNavbarOffset); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && f > 0 {
			c.Navbar.Threshold = f
		}
	}
	return c
}
