// Package numfmt formats integers with the thousands separators of a locale.
package numfmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders integers for one locale.
type Formatter struct {
	p *message.Printer
}

// New returns a Formatter for the BCP 47 tag. Unknown or malformed tags fall
// back to English grouping ("1,234").
func New(tag string) *Formatter {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}
	return &Formatter{p: message.NewPrinter(t)}
}

// Int formats n with grouping separators.
func (f *Formatter) Int(n int) string {
	return f.p.Sprintf("%d", n)
}
