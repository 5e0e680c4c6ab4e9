// Package report renders the inconsistent versions listing.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/macropower/versionsync/pkg/versionsync"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var ErrInvalidColorMode = errors.New("invalid color mode")

// ParseColorMode validates a --color value.
func ParseColorMode(mode string) (string, error) {
	switch m := strings.ToLower(mode); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	}

	return "", fmt.Errorf("%w: %q, expected one of: auto, always, never", ErrInvalidColorMode, mode)
}

type options struct {
	colorMode string
}

type Option func(*options)

// WithColorMode sets the color mode, one of [ColorAuto], [ColorAlways] or
// [ColorNever]. Unknown modes behave like [ColorAuto].
func WithColorMode(mode string) Option {
	return func(o *options) {
		o.colorMode = mode
	}
}

// Write prints every version in r with the manifests declaring it, sorted by
// version.
func Write(w io.Writer, r *versionsync.Report, opts ...Option) error {
	o := &options{colorMode: ColorAuto}
	for _, opt := range opts {
		opt(o)
	}

	renderer := newRenderer(w, o.colorMode)
	heading := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	version := renderer.NewStyle().Bold(true)

	var b strings.Builder

	b.WriteString(heading.Render("ERROR: found inconsistent versions:"))
	b.WriteByte('\n')

	for _, v := range r.Versions() {
		b.WriteString(version.Render(v + ":"))
		b.WriteByte('\n')

		for _, f := range r.Files(v) {
			b.WriteString("  ")
			b.WriteString(f)
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func newRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(w)

	switch mode {
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI)
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	}

	return renderer
}
