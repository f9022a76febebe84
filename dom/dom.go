package dom

// Element is the subset of a DOM element the page widgets touch.
// This interface has NO build tags, so widget code and tests compile natively.
// The browser implementation lives in browser.go; an in-memory one in domtest.
type Element interface {
	// Attr returns the attribute value and whether it is present.
	Attr(name string) (string, bool)

	// Text returns the element's textContent.
	Text() string
	SetText(text string)

	// Value returns the current value of form fields (input, textarea).
	Value() string

	AddClass(name string)
	RemoveClass(name string)

	// SetStyle sets a single inline style property, e.g. ("display", "none").
	SetStyle(property, value string)

	Focus()

	// Remove detaches the element from the document.
	Remove()

	// AddEventListener registers fn for the named event and returns a func
	// that unregisters it.
	AddEventListener(event string, fn func(Event)) (release func())

	// Is reports whether other refers to the same DOM node.
	Is(other Element) bool
}

// Event is a DOM event delivered to a listener.
type Event interface {
	Type() string

	// Key is the KeyboardEvent key ("Escape", "Enter", ...). Empty for other events.
	Key() string

	// Target is the element the event was dispatched to. Nil when the target
	// is not an element (e.g. the document itself).
	Target() Element
}

// Document is the page the widgets are mounted on.
type Document interface {
	// Query returns the first element matching selector, or nil.
	Query(selector string) Element

	// QueryAll returns every element matching selector in document order.
	QueryAll(selector string) []Element

	Body() Element

	// AddEventListener registers a document-level listener.
	AddEventListener(event string, fn func(Event)) (release func())

	// AddWindowListener registers a window-level listener (scroll, resize).
	AddWindowListener(event string, fn func(Event)) (release func())

	// ScrollY is the window's vertical scroll offset in CSS pixels.
	ScrollY() float64

	// Navigate sends the browser to url.
	Navigate(url string)

	// Language is the preferred BCP 47 language of the user agent.
	Language() string
}

// Event names used by the widgets.
const (
	Click   = "click"
	Input   = "input"
	KeyDown = "keydown"
	Scroll  = "scroll"
)

// Key values used by the widgets.
const (
	KeyEnter  = "Enter"
	KeyEscape = "Escape"
)
