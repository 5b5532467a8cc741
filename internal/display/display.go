// Package display renders evaluator state for a terminal.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Order selects how the stack is listed.
type Order string

const (
	// OrderBottomUp lists the bottom of the stack first, the top last.
	OrderBottomUp Order = "bottom-up"
	// OrderTopDown lists the top of the stack first.
	OrderTopDown Order = "top-down"
)

// Separator selects what goes between rendered values.
type Separator string

const (
	// SeparatorNewline renders one value per line.
	SeparatorNewline Separator = "newline"
	// SeparatorSpace renders values on a single line.
	SeparatorSpace Separator = "space"
)

// ColorMode controls ANSI coloring of status lines.
type ColorMode string

const (
	// ColorAuto colors only when the output is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces colors.
	ColorAlways ColorMode = "always"
	// ColorNever disables colors.
	ColorNever ColorMode = "never"
)

// Options configures a Renderer.
type Options struct {
	// Order is the listing order of the stack.
	Order Order
	// Separator is placed between values.
	Separator Separator
	// Precision is the number of significant digits; -1 means shortest exact form.
	Precision int
	// Align right-aligns values when they are rendered one per line.
	Align bool
	// Color controls status line coloring.
	Color ColorMode
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Order:     OrderBottomUp,
		Separator: SeparatorNewline,
		Precision: -1,
		Align:     false,
		Color:     ColorAuto,
	}
}

// Validate checks that all enumerated options hold known values.
func (o Options) Validate() error {
	switch o.Order {
	case OrderBottomUp, OrderTopDown:
	default:
		return fmt.Errorf("unknown stack order %q (want %s or %s)", o.Order, OrderBottomUp, OrderTopDown)
	}
	switch o.Separator {
	case SeparatorNewline, SeparatorSpace:
	default:
		return fmt.Errorf("unknown separator %q (want %s or %s)", o.Separator, SeparatorNewline, SeparatorSpace)
	}
	switch o.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (want %s, %s or %s)", o.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if o.Precision < -1 {
		return fmt.Errorf("precision must be >= -1, got %d", o.Precision)
	}
	return nil
}

// Renderer formats stack snapshots and status messages.
type Renderer struct {
	opts     Options
	errColor *color.Color
	okColor  *color.Color
}

// NewRenderer constructs a Renderer for opts.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		opts:     opts,
		errColor: color.New(color.FgRed),
		okColor:  color.New(color.FgGreen),
	}
	switch opts.Color {
	case ColorAlways:
		r.errColor.EnableColor()
		r.okColor.EnableColor()
	case ColorNever:
		r.errColor.DisableColor()
		r.okColor.DisableColor()
	}
	return r
}

// Number formats a single value.
func (r *Renderer) Number(v float64) string {
	return strconv.FormatFloat(v, 'g', r.opts.Precision, 64)
}

// Stack formats values, given bottom to top. An empty stack renders as "".
func (r *Renderer) Stack(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	items := make([]string, len(values))
	for i, v := range values {
		items[i] = r.Number(v)
	}
	if r.opts.Order == OrderTopDown {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}

	if r.opts.Separator == SeparatorSpace {
		return strings.Join(items, " ")
	}
	if r.opts.Align {
		width := 0
		for _, item := range items {
			if w := runewidth.StringWidth(item); w > width {
				width = w
			}
		}
		for i, item := range items {
			items[i] = runewidth.FillLeft(item, width)
		}
	}
	return strings.Join(items, "\n")
}

// Status formats a status line, colored by outcome.
func (r *Renderer) Status(msg string, failed bool) string {
	if failed {
		return r.errColor.Sprint(msg)
	}
	return r.okColor.Sprint(msg)
}
