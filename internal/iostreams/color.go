package iostreams

import (
	"fmt"
	"io"

	"github.com/mgutz/ansi"
)

// Style is an mgutz/ansi style string, e.g. "yellow" or "black+h".
type Style string

const (
	StyleYellow Style = "yellow"
	StyleGreen  Style = "green"
	StyleRed    Style = "red"
	StyleCyan   Style = "cyan"
	StyleGray   Style = "black+h"
	StyleBold   Style = "default+b"
)

type ColorScheme struct {
	enabled bool
}

func NewColorScheme(enabled bool) *ColorScheme {
	return &ColorScheme{enabled: enabled}
}

func (c *ColorScheme) Enabled() bool {
	return c.enabled
}

func (c *ColorScheme) apply(style Style, t string) string {
	if !c.enabled {
		return t
	}
	return ansi.Color(t, string(style))
}

func (c *ColorScheme) Bold(t string) string {
	return c.apply(StyleBold, t)
}

func (c *ColorScheme) Red(t string) string {
	return c.apply(StyleRed, t)
}

func (c *ColorScheme) Yellow(t string) string {
	return c.apply(StyleYellow, t)
}

func (c *ColorScheme) Green(t string) string {
	return c.apply(StyleGreen, t)
}

func (c *ColorScheme) Gray(t string) string {
	return c.apply(StyleGray, t)
}

func (c *ColorScheme) Cyan(t string) string {
	return c.apply(StyleCyan, t)
}

func (c *ColorScheme) SuccessIcon() string {
	return c.Green("✓")
}

func (c *ColorScheme) WarningIcon() string {
	return c.Yellow("!")
}

func (c *ColorScheme) FailureIcon() string {
	return c.Red("X")
}

// WithStyle sets the terminal attributes of style on w, runs fn and resets
// the attributes afterwards, also when fn fails or panics. Nothing is emitted
// when colors are disabled.
func (ios *IOStreams) WithStyle(w io.Writer, style Style, fn func(w io.Writer) error) error {
	if !ios.ColorEnabled() {
		return fn(w)
	}
	fmt.Fprint(w, ansi.ColorCode(string(style)))
	defer fmt.Fprint(w, ansi.Reset)
	return fn(w)
}
