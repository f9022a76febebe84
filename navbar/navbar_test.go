package navbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/pagefx/dom"
	"github.com/vcrobe/pagefx/dom/domtest"
)

func TestBackground(t *testing.T) {
	var o Options
	for _, y := range []float64{0, 1, 49.5, 50} {
		assert.Equal(t, DefaultTop, o.Background(y), "y=%v", y)
	}
	for _, y := range []float64{50.5, 51, 400, 1e6} {
		assert.Equal(t, DefaultScrolled, o.Background(y), "y=%v", y)
	}
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "#navbar", DefaultSelector)
	assert.Equal(t, "rgba(15,17,23,0.95)", DefaultTop)
	assert.Equal(t, "rgba(15,17,23,0.98)", DefaultScrolled)
}

func TestMount_FollowsScroll(t *testing.T) {
	doc := domtest.NewDocument()
	nav := doc.BodyElement().Append("nav").WithID("navbar")

	s := Mount(doc, Options{})
	require.NotNil(t, s)
	assert.Equal(t, DefaultTop, nav.Style("background"), "shade applied at mount")

	doc.ScrollTo(51)
	assert.Equal(t, DefaultScrolled, nav.Style("background"))

	doc.ScrollTo(51)
	assert.Equal(t, DefaultScrolled, nav.Style("background"))

	doc.ScrollTo(50)
	assert.Equal(t, DefaultTop, nav.Style("background"))

	doc.ScrollTo(0)
	assert.Equal(t, DefaultTop, nav.Style("background"))
}

func TestMount_AlreadyScrolled(t *testing.T) {
	doc := domtest.NewDocument()
	nav := doc.BodyElement().Append("nav").WithID("navbar")
	doc.ScrollTo(300)

	Mount(doc, Options{})
	assert.Equal(t, DefaultScrolled, nav.Style("background"))
}

func TestMount_CustomColours(t *testing.T) {
	doc := domtest.NewDocument()
	nav := doc.BodyElement().Append("header").WithID("top")

	Mount(doc, Options{Selector: "#top", Threshold: 10, Top: "transparent", Scrolled: "black"})
	doc.ScrollTo(11)
	assert.Equal(t, "black", nav.Style("background"))
	doc.ScrollTo(10)
	assert.Equal(t, "transparent", nav.Style("background"))
}

func TestMount_NoNavbar(t *testing.T) {
	doc := domtest.NewDocument()

	assert.Nil(t, Mount(doc, Options{}))
	assert.Equal(t, 0, doc.ListenerCount(dom.Scroll))
	doc.ScrollTo(100)
}

func TestClose(t *testing.T) {
	doc := domtest.NewDocument()
	nav := doc.BodyElement().Append("nav").WithID("navbar")
	s := Mount(doc, Options{})

	s.Close()
	s.Close()
	doc.ScrollTo(500)
	assert.Equal(t, DefaultTop, nav.Style("background"))
	assert.Equal(t, 0, doc.ListenerCount(dom.Scroll))
}
