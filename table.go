package gridtable

import (
	"bytes"
	"io"
	"strings"

	"github.com/olekukonko/ll"
)

// DefaultPageWidth is the page width used when none is configured.
const DefaultPageWidth = 72

// Option configures [Render], [Write] and the streaming writers.
type Option func(*Engine)

// WithPageWidth sets the target page width in characters.
func WithPageWidth(n int) Option {
	return func(e *Engine) { e.PageWidth = n }
}

// WithWrap sets the wrap policy.
func WithWrap(p WrapPolicy) Option {
	return func(e *Engine) { e.Wrap = p }
}

// WithCellRenderer replaces [TextRenderer] as the renderer of cell content.
func WithCellRenderer(fn CellRenderer) Option {
	return func(e *Engine) { e.RenderCell = fn }
}

// WithLogger enables debug tracing of span resolution and width
// negotiation.
func WithLogger(l *ll.Logger) Option {
	return func(e *Engine) { e.Logger = l }
}

// WithConfig applies the page width and wrap policy of c.
func WithConfig(c Config) Option {
	return func(e *Engine) {
		e.PageWidth = c.Columns
		e.Wrap = c.Wrap
	}
}

// NewEngine returns an engine with the default page width and wrap policy,
// modified by opts.
func NewEngine(opts ...Option) Engine {
	e := Engine{PageWidth: DefaultPageWidth, Wrap: WrapAuto}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Render lays out t as a bordered grid. A caption, if any, follows the grid
// after a blank line. Render never fails: malformed tables are padded and
// clamped into shape.
func Render(t Table, opts ...Option) string {
	return renderTable(NewEngine(opts...), t)
}

func renderTable(e Engine, t Table) string {
	nt := t.normalize(e.Logger)
	g := e.Layout(t.ColumnSpecs(), nt.Head, nt.Body, nt.Headless())
	if t.Caption.IsEmpty() {
		return g.Text
	}
	width := e.pageWidth()
	if e.Wrap == WrapNone || width == 0 {
		width = Unbounded
	}
	caption := renderBlocks(t.Caption, width)
	return g.Text + "\n\n" + strings.Join(caption, "\n")
}

// Write renders t and writes it to w followed by a newline.
func Write(w io.Writer, t Table, opts ...Option) error {
	_, err := io.WriteString(w, Render(t, opts...)+"\n")
	return err
}

// Marshal renders t and returns the bytes written by [Write].
func Marshal(t Table, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
