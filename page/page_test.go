package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/pagefx/banner"
	"github.com/vcrobe/pagefx/dom"
	"github.com/vcrobe/pagefx/dom/domtest"
	"github.com/vcrobe/pagefx/navbar"
	"github.com/vcrobe/pagefx/search"
	"github.com/vcrobe/pagefx/timers/timerstest"
)

// landingPage builds a page carrying every widget the site templates use.
func landingPage() (*domtest.Document, map[string]*domtest.Element) {
	doc := domtest.NewDocument()
	body := doc.BodyElement()
	els := map[string]*domtest.Element{}

	els["nav"] = body.Append("nav").WithID("navbar")
	els["toggle"] = els["nav"].Append("button").WithID("searchTrigger")
	els["alert"] = body.Append("div").WithClass("alert", banner.ShowClass).WithText("Saved")
	els["toast"] = body.Append("div").WithClass("toast", banner.ShowClass)
	stats := body.Append("section").WithClass("stats")
	els["users"] = stats.Append("span").WithClass("stat-num").WithAttr("data-target", "12500").WithText("0")
	els["static"] = stats.Append("span").WithClass("stat-num").WithAttr("data-target", "0").WithText("n/a")
	els["overlay"] = body.Append("div").WithID("searchOverlay")
	els["input"] = els["overlay"].Append("input").WithID("searchInput")
	els["close"] = els["overlay"].Append("button").WithID("searchClose")
	list := els["overlay"].Append("ul").WithID("searchSuggestions")
	els["apples"] = list.Append("li").WithClass("suggestion-item").WithText("Apples")
	els["bananas"] = list.Append("li").WithClass("suggestion-item").WithText("Bananas")
	els["grapes"] = list.Append("li").WithClass("suggestion-item").WithText("Grapes")
	return doc, els
}

func TestMount_AllWidgets(t *testing.T) {
	doc, els := landingPage()
	sched := timerstest.New()

	w := Mount(doc, sched, DefaultConfig(), nil)

	require.Len(t, w.Counters, 1)
	require.NotNil(t, w.Navbar)
	require.Len(t, w.Banners, 2)
	require.NotNil(t, w.Search)

	// Counter: locale formatted, ends at target, zero target untouched.
	sched.Advance(60 * 20 * time.Millisecond)
	assert.Equal(t, "12,500", els["users"].Text())
	assert.Equal(t, "n/a", els["static"].Text())

	// Navbar.
	doc.ScrollTo(120)
	assert.Equal(t, navbar.DefaultScrolled, els["nav"].Style("background"))

	// Banners.
	sched.Advance(5 * time.Second)
	assert.False(t, els["alert"].Attached())
	assert.True(t, els["toast"].Attached())
	assert.False(t, els["toast"].HasClass(banner.ShowClass))

	// Search.
	doc.Click(els["toggle"])
	assert.True(t, els["overlay"].HasClass(search.OpenClass))
	assert.True(t, doc.BodyElement().HasClass(search.BodyOpenClass))
	sched.Advance(search.DefaultFocusDelay)
	assert.True(t, els["input"].Focused())

	doc.Type(els["input"], "an")
	assert.False(t, els["apples"].Visible())
	assert.True(t, els["bananas"].Visible())
	assert.False(t, els["grapes"].Visible())

	doc.KeyDown(els["input"], dom.KeyEnter)
	assert.Equal(t, []string{"/search/?keywords=an"}, doc.Navigations())

	doc.KeyDown(nil, dom.KeyEscape)
	assert.False(t, els["overlay"].HasClass(search.OpenClass))
}

func TestMount_EmptyPage(t *testing.T) {
	doc := domtest.NewDocument()
	sched := timerstest.New()

	w := Mount(doc, sched, DefaultConfig(), nil)

	assert.Empty(t, w.Counters)
	assert.Nil(t, w.Navbar)
	assert.Empty(t, w.Banners)
	assert.Nil(t, w.Search)
	assert.Equal(t, 0, sched.Pending())
}

func TestMount_GermanLocale(t *testing.T) {
	doc, els := landingPage()
	doc.SetLanguage("de-DE")
	sched := timerstest.New()

	Mount(doc, sched, DefaultConfig(), nil)
	sched.RunAll(time.Minute)

	assert.Equal(t, "12.500", els["users"].Text())
}

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidate_InputOptional(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.Selectors.Input = ""
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Counter.Interval = 0
	cfg.Banners.Rules = append(cfg.Banners.Rules, banner.Rule{Selector: ".flash"})
	cfg.Search.Endpoint = "search"
	cfg.Search.Selectors.Overlay = ""
	cfg.Navbar.Threshold = 0

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "counter: interval must be positive")
	assert.Contains(t, msg, "banners: rule 2 (.flash)")
	assert.Contains(t, msg, "search: endpoint must be an absolute path")
	assert.Contains(t, msg, "search: overlay selector is required")
	assert.Contains(t, msg, "navbar: threshold must be positive")
}

func TestApplyOverrides(t *testing.T) {
	doc := domtest.NewDocument()
	body := doc.BodyElement().
		WithAttr(AttrDebug, "").
		WithAttr(AttrSearchEndpoint, "/find/").
		WithAttr(AttrSearchParam, "q").
		WithAttr(AttrNavbarOffset, "80")

	cfg := DefaultConfig().ApplyOverrides(body)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "/find/", cfg.Search.Endpoint)
	assert.Equal(t, "q", cfg.Search.Param)
	assert.Equal(t, 80.0, cfg.Navbar.Threshold)
	assert.NoError(t, cfg.Validate())
}

func TestApplyOverrides_Malformed(t *testing.T) {
	doc := domtest.NewDocument()
	body := doc.BodyElement().
		WithAttr(AttrDebug, "maybe").
		WithAttr(AttrNavbarOffset, "0")

	cfg := DefaultConfig().ApplyOverrides(body)
	assert.Equal(t, DefaultConfig(), cfg)

	assert.Equal(t, DefaultConfig(), DefaultConfig().ApplyOverrides(nil))
}

func TestConfigLevel(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "INFO", cfg.Level().String())
	cfg.Debug = true
	assert.Equal(t, "DEBUG", cfg.Level().String())
}
