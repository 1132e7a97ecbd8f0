package gridtable

import (
	"math"

	"github.com/olekukonko/ll"
)

const (
	// cellOverhead is the border and padding charged against an explicit
	// column width.
	cellOverhead = 3
	// minEvenWidth is the smallest even share used when rebalancing.
	minEvenWidth = 5
)

// Engine negotiates column widths and renders normalized tables as bordered
// grids. The zero value renders at zero page width with [WrapAuto] and
// [TextRenderer]. An Engine holds no state between calls and may be shared.
type Engine struct {
	PageWidth  int
	Wrap       WrapPolicy
	RenderCell CellRenderer
	Logger     *ll.Logger
}

// GridLayout is the result of laying out a table: the resolved width of
// every column, the wrapped text of every cell and the assembled grid.
type GridLayout struct {
	Widths   []int
	Aligns   []Alignment
	Head     []string
	Body     [][]string
	Headless bool
	Text     string
}

// cells holds the rendered text of a header row and the body rows.
type cells struct {
	head []string
	body [][]string
}

// Layout resolves column widths for specs under the engine's wrap policy,
// renders every cell at its column width and assembles the grid. When
// headless is set the header row is not rendered at all.
func (e Engine) Layout(specs []ColumnSpec, head []Content, body [][]Content, headless bool) GridLayout {
	numCols := len(specs)
	numCols = max(numCols, len(head))
	for _, row := range body {
		numCols = max(numCols, len(row))
	}
	specs = extendSpecs(specs, numCols)
	head = extendRow(head, numCols)
	padded := make([][]Content, len(body))
	for i, row := range body {
		padded[i] = extendRow(row, numCols)
	}
	if headless {
		head = make([]Content, numCols)
	}

	var (
		widths   []int
		rendered cells
	)
	switch {
	case e.Wrap == WrapNone:
		e.debugf("layout: %d columns, natural widths (wrap none)", numCols)
		widths, rendered = e.naturalWidths(specs, head, padded)
	case allZero(specs):
		e.debugf("layout: %d columns, auto widths for page width %d", numCols, e.pageWidth())
		widths, rendered = e.autoWidths(specs, head, padded)
	default:
		e.debugf("layout: %d columns, explicit widths for page width %d", numCols, e.pageWidth())
		widths, rendered = e.givenWidths(officialWidths(specs, e.pageWidth()), head, padded)
	}

	aligns := make([]Alignment, numCols)
	for i, s := range specs {
		aligns[i] = s.Align
	}
	g := GridLayout{
		Widths:   widths,
		Aligns:   aligns,
		Head:     rendered.head,
		Body:     rendered.body,
		Headless: headless,
	}
	g.Text = assemble(g)
	return g
}

func (e Engine) pageWidth() int { return max(e.PageWidth, 0) }

func (e Engine) renderer() CellRenderer {
	if e.RenderCell != nil {
		return e.RenderCell
	}
	return TextRenderer
}

func (e Engine) debugf(format string, args ...any) {
	if e.Logger != nil {
		e.Logger.Debugf(format, args...)
	}
}

// render renders every cell of column i at targets[i].
func (e Engine) render(targets []int, head []Content, body [][]Content) cells {
	fn := e.renderer()
	renderRow := func(row []Content) []string {
		out := make([]string, len(row))
		for i, c := range row {
			out[i] = fn(i, targets[i], c)
		}
		return out
	}
	r := cells{head: renderRow(head), body: make([][]string, len(body))}
	for i, row := range body {
		r.body[i] = renderRow(row)
	}
	return r
}

// naturalWidths renders every cell unwrapped. A column is as wide as its
// widest cell, and never narrower than the width its column spec asks for.
func (e Engine) naturalWidths(specs []ColumnSpec, head []Content, body [][]Content) ([]int, cells) {
	rendered := e.render(make([]int, len(specs)), head, body)
	widths := measure(rendered, len(specs))
	for i, w := range officialWidths(specs, e.pageWidth()) {
		widths[i] = max(widths[i], w)
	}
	return widths, rendered
}

// givenWidths renders every cell wrapped to the width of its column.
func (e Engine) givenWidths(widths []int, head []Content, body [][]Content) ([]int, cells) {
	rendered := e.render(widths, head, body)
	resolved := measure(rendered, len(widths))
	for i, w := range widths {
		if resolved[i] > w {
			e.debugf("column %d: content is %d wide, wider than %d; widening", i, resolved[i], w)
		}
		resolved[i] = max(resolved[i], w)
	}
	return resolved, rendered
}

// autoWidths keeps the natural widths when they fit the page and otherwise
// rebalances them and re-wraps every cell.
func (e Engine) autoWidths(specs []ColumnSpec, head []Content, body [][]Content) ([]int, cells) {
	widths, rendered := e.naturalWidths(specs, head, body)
	if sum(widths) <= e.pageWidth() {
		return widths, rendered
	}
	balanced := rebalance(widths, e.pageWidth())
	e.debugf("natural widths %v exceed page width %d; rebalanced to %v", widths, e.pageWidth(), balanced)
	return e.givenWidths(balanced, head, body)
}

// officialWidths converts the fractional widths of specs to character
// widths on a page of pageWidth characters.
func officialWidths(specs []ColumnSpec, pageWidth int) []int {
	widths := make([]int, len(specs))
	for i, s := range specs {
		frac := min(max(s.Width, 0), 1)
		widths[i] = max(int(math.Floor(frac*float64(pageWidth)))-cellOverhead, 1)
	}
	return widths
}

// rebalance shares pageWidth out evenly. Columns narrower than the even
// share keep their width; the room they leave is split equally between the
// wider columns, none of which grows past its natural width.
func rebalance(natural []int, pageWidth int) []int {
	if len(natural) == 0 {
		return nil
	}
	even := max(minEvenWidth, (pageWidth-1)/len(natural)-cellOverhead)
	wide, spare := 0, 0
	for _, w := range natural {
		if w < even {
			spare += even - w
		} else {
			wide++
		}
	}
	allowance := 0
	if wide > 0 {
		allowance = spare / wide
	}
	out := make([]int, len(natural))
	for i, w := range natural {
		if w < even {
			out[i] = w
		} else {
			out[i] = min(even+allowance, w)
		}
	}
	return out
}

// measure returns the widest rendered cell of every column.
func measure(r cells, numCols int) []int {
	widths := make([]int, numCols)
	update := func(row []string) {
		for i, s := range row {
			if i < numCols {
				widths[i] = max(widths[i], textWidth(s))
			}
		}
	}
	update(r.head)
	for _, row := range r.body {
		update(row)
	}
	return widths
}

func allZero(specs []ColumnSpec) bool {
	for _, s := range specs {
		if s.Width > 0 {
			return false
		}
	}
	return true
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}

func extendRow(row []Content, numCols int) []Content {
	if len(row) >= numCols {
		return row[:numCols]
	}
	extended := make([]Content, numCols)
	copy(extended, row)
	return extended
}
