/*
Package console prints layouts of range-fold structures to a terminal.

Every structure of package ranged is able to render its backing storage as a
folds.Layout. A Printer outputs such a layout row by row, with aligned cells and
colors by row kind. Rows too wide for the line are wrapped.

Cell widths are measured in fixed-width positions (“en”s) according to UAX#11,
so layouts of strings from scripts with wide characters line up.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/folds"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// tracer writes to trace with key 'folds'
func tracer() tracing.Trace {
	return tracing.Select("folds")
}

// Config configures a Printer.
type Config struct {
	LineWidth int            // target line length in ‘en’s
	Context   *uax11.Context // context for East Asian width
	Palette   map[folds.RowKind]*color.Color
}

const minLineWidth = 10

func (cfg Config) normalized() Config {
	if cfg.LineWidth == 0 {
		cfg.LineWidth = 65
	}
	if cfg.Context == nil {
		cfg.Context = uax11.LatinContext
	}
	if cfg.Palette == nil {
		cfg.Palette = makeDefaultPalette()
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.LineWidth < minLineWidth {
		return fmt.Errorf("%w: line width %d is less than %d", folds.ErrInvalidConfig,
			cfg.LineWidth, minLineWidth)
	}
	return nil
}

func makeDefaultPalette() map[folds.RowKind]*color.Color {
	palette := map[folds.RowKind]*color.Color{
		folds.ElementRow:   color.New(color.FgBlue),
		folds.AggregateRow: color.New(color.FgRed),
		folds.UnusedRow:    color.New(color.Faint),
	}
	return palette
}

// ConfigFromTerminal is a simple helper for creating a printer Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() Config {
	config := Config{LineWidth: 65}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err == nil {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else {
				config.LineWidth = max(w, minLineWidth)
			}
		}
		config.Context = uax11.ContextFromEnvironment()
	}
	tracer().Infof("console: setting line length to %d en", config.LineWidth)
	return config
}

var setupGraphemes sync.Once

// Printer outputs layouts with aligned cells.
type Printer struct {
	cfg Config
}

// NewPrinter creates a printer. A zero Config selects defaults.
func NewPrinter(cfg Config) (*Printer, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	return &Printer{cfg: cfg}, nil
}

// Width returns the display width of s in ‘en’s.
//
// ASCII characters are one en wide. uax11 would count digits as emoji (keycap
// bases) and report 2 en for them, which is wrong for terminal output.
func (p *Printer) Width(s string) int {
	if s == "" {
		return 0
	}
	if isASCII(s) {
		return len(s)
	}
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if len(g) == 1 && g[0] < utf8.RuneSelf {
			w++
			continue
		}
		w += uax11.Width([]byte(g), p.cfg.Context)
	}
	return w
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Print outputs layout l to w.
//
// All cells of the layout share a common width. The row label is repeated in
// front of every wrapped part of a row.
func (p *Printer) Print(l folds.Layout, w io.Writer) error {
	labelWidth, cellWidth := 0, 1
	for _, row := range l.Rows {
		labelWidth = max(labelWidth, p.Width(row.Label))
		for _, c := range row.Cells {
			cellWidth = max(cellWidth, p.Width(c))
		}
	}
	perLine := max(1, (p.cfg.LineWidth-labelWidth-2)/(cellWidth+3))
	tracer().Debugf("console: layout %q, %d cells per line", l.Title, perLine)
	out := &errWriter{w: w}
	if l.Title != "" {
		out.print(l.Title + "\n")
	}
	for _, row := range l.Rows {
		c := p.cfg.Palette[row.Kind]
		if len(row.Cells) == 0 {
			out.print(p.pad(row.Label, labelWidth) + " :\n")
			continue
		}
		for start := 0; start < len(row.Cells); start += perLine {
			end := min(start+perLine, len(row.Cells))
			out.print(p.pad(row.Label, labelWidth) + " :")
			for _, cell := range row.Cells[start:end] {
				out.print(" │ ")
				out.colored(c, p.pad(cell, cellWidth))
			}
			out.print("\n")
		}
	}
	return out.err
}

// pad right-aligns s to width ‘en’s.
func (p *Printer) pad(s string, width int) string {
	if n := width - p.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// errWriter remembers the first error and skips subsequent writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) print(s string) {
	if ew.err == nil {
		_, ew.err = io.WriteString(ew.w, s)
	}
}

func (ew *errWriter) colored(c *color.Color, s string) {
	if ew.err != nil {
		return
	}
	if c == nil {
		ew.print(s)
		return
	}
	_, ew.err = c.Fprint(ew.w, s)
}

// Print outputs a layout to stdout, with a configuration derived from the
// terminal.
func Print(l folds.Layout) error {
	p, err := NewPrinter(ConfigFromTerminal())
	if err != nil {
		return err
	}
	return p.Print(l, os.Stdout)
}
