// Package markup renders inline semantic tags such as <info>...</info> as
// terminal colors, or strips them when color is disabled.
//
// Supported tags: info, warning, error, comment, reset, red, green, blue,
// yellow, magenta and cyan. A span closes with its own tag or with "</>".
// Spans do not nest.
package markup

import (
	"os"
	"regexp"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var styles = map[string]color.Attribute{
	"info":    color.FgGreen,
	"warning": color.FgYellow,
	"error":   color.FgRed,
	"comment": color.FgHiBlack,
	"reset":   color.Reset,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"blue":    color.FgBlue,
	"yellow":  color.FgYellow,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
}

const tagNames = `info|warning|error|comment|reset|red|green|blue|yellow|magenta|cyan`

var (
	spanPattern  = regexp.MustCompile(`(?s)<(` + tagNames + `)>(.*?)</(?:` + tagNames + `)?>`)
	strayPattern = regexp.MustCompile(`</?(?:` + tagNames + `)?>`)
)

// Renderer converts markup to styled or plain text.
type Renderer struct {
	enabled bool
	colors  map[string]*color.Color
}

// New creates a Renderer. When enabled is false every tag is stripped.
func New(enabled bool) *Renderer {
	r := &Renderer{enabled: enabled}
	if enabled {
		r.colors = make(map[string]*color.Color, len(styles))
		for name, attr := range styles {
			c := color.New(attr)
			// Override the package-wide NoColor detection; the caller decided.
			c.EnableColor()
			r.colors[name] = c
		}
	}
	return r
}

// Enabled reports whether the Renderer emits color codes.
func (r *Renderer) Enabled() bool {
	return r.enabled
}

// Render replaces markup in s with terminal styling, or removes it.
func (r *Renderer) Render(s string) string {
	out := spanPattern.ReplaceAllStringFunc(s, func(span string) string {
		m := spanPattern.FindStringSubmatch(span)
		if !r.enabled {
			return m[2]
		}
		return r.colors[m[1]].Sprint(m[2])
	})
	return strayPattern.ReplaceAllString(out, "")
}

// Detect reports whether f should receive colored output: f must be a
// terminal and the NO_COLOR environment variable must be unset or empty.
func Detect(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
