package gridtable

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownWrapPolicy = errors.New("unknown wrap policy")
	ErrUnknownAlignment  = errors.New("unknown alignment")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrInvalidTable      = errors.New("invalid table")
	ErrMissingInterface  = errors.New("missing required interface")
)

// WrapPolicy selects how cell text is fitted to the page.
type WrapPolicy string

const (
	WrapAuto     WrapPolicy = "auto"
	WrapNone     WrapPolicy = "none"
	WrapPreserve WrapPolicy = "preserve"
)

const wrapPrefix = "wrap-"

var wrapPolicies = []WrapPolicy{WrapAuto, WrapNone, WrapPreserve}

// String returns the policy name.
func (p WrapPolicy) String() string { return string(p) }

// WrapPolicies returns all supported wrap policies.
func WrapPolicies() []WrapPolicy {
	out := make([]WrapPolicy, len(wrapPolicies))
	copy(out, wrapPolicies)
	return out
}

// ParseWrapPolicy parses a policy name. Both "auto" and "wrap-auto" forms are
// accepted.
func ParseWrapPolicy(s string) (WrapPolicy, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), wrapPrefix)
	for _, p := range wrapPolicies {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWrapPolicy, s)
}

// Alignment is the horizontal alignment declared for a column. It is encoded
// in the border lines of the grid.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

var alignNames = map[Alignment]string{
	AlignDefault: "default",
	AlignLeft:    "left",
	AlignRight:   "right",
	AlignCenter:  "center",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if name, ok := alignNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment parses an alignment name. The empty string is AlignDefault.
func ParseAlignment(s string) (Alignment, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return AlignDefault, nil
	}
	for a, n := range alignNames {
		if n == name {
			return a, nil
		}
	}
	return AlignDefault, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// Block is one block-level element of cell content. Paragraph text is
// re-flowed when the cell is wrapped; verbatim text keeps its lines.
type Block struct {
	Text     string `yaml:"text"`
	Verbatim bool   `yaml:"verbatim"`
}

// Para returns a paragraph block.
func Para(text string) Block { return Block{Text: text} }

// Verbatim returns a block whose lines are never re-flowed.
func Verbatim(text string) Block { return Block{Text: text, Verbatim: true} }

// Content is the ordered block content of a cell.
type Content []Block

// IsEmpty reports whether the content has no blocks.
func (c Content) IsEmpty() bool { return len(c) == 0 }

// Cell is a table cell anchored at its top-left grid position. A cell with
// span (RowSpan, ColSpan) covers a RowSpan x ColSpan rectangle. Spans below 1
// are treated as 1.
type Cell struct {
	Content Content
	RowSpan int
	ColSpan int
}

// NewCell returns a 1x1 cell holding the given blocks.
func NewCell(blocks ...Block) Cell {
	return Cell{Content: Content(blocks), RowSpan: 1, ColSpan: 1}
}

// Text returns a 1x1 cell holding a single paragraph, or an empty cell when s
// is empty.
func Text(s string) Cell {
	if s == "" {
		return NewCell()
	}
	return NewCell(Para(s))
}

// Span returns a copy of c covering rows x cols grid positions.
func (c Cell) Span(rows, cols int) Cell {
	c.RowSpan = rows
	c.ColSpan = cols
	return c
}

func (c Cell) spans() (h, w int) {
	return max(c.RowSpan, 1), max(c.ColSpan, 1)
}

// Row is an ordered sequence of cells. Attrs is carried through untouched.
type Row struct {
	Cells []Cell
	Attrs map[string]string
}

// TextRow returns a row of 1x1 paragraph cells.
func TextRow(texts ...string) Row {
	cells := make([]Cell, len(texts))
	for i, s := range texts {
		cells[i] = Text(s)
	}
	return Row{Cells: cells}
}

// Body is a body section. RowHeadColumns is the number of leading columns
// acting as row headers; it is not interpreted by the layout.
type Body struct {
	RowHeadColumns int   `yaml:"rowheads"`
	Head           []Row `yaml:"head"`
	Rows           []Row `yaml:"rows"`
}

// ColumnSpec declares the alignment and fractional page width of a column. A
// width of 0 means the width is computed from the content.
type ColumnSpec struct {
	Align Alignment `yaml:"align"`
	Width float64   `yaml:"width"`
}

// Table is the abstract table model: an optional head, any number of body
// sections and an optional foot.
type Table struct {
	Caption Content
	Columns []ColumnSpec
	Head    []Row
	Bodies  []Body
	Foot    []Row
}

// NumCols returns the column count of the table: the number of column specs,
// or, when none are declared, the widest row measured in column spans.
func (t Table) NumCols() int {
	if len(t.Columns) > 0 {
		return len(t.Columns)
	}
	n := 0
	widest := func(rows []Row) {
		for _, r := range rows {
			w := 0
			for _, c := range r.Cells {
				_, cw := c.spans()
				w += cw
			}
			n = max(n, w)
		}
	}
	widest(t.Head)
	for _, b := range t.Bodies {
		widest(b.Head)
		widest(b.Rows)
	}
	widest(t.Foot)
	return n
}

// ColumnSpecs returns the declared column specs padded with default specs up
// to NumCols.
func (t Table) ColumnSpecs() []ColumnSpec {
	return extendSpecs(t.Columns, t.NumCols())
}

func extendSpecs(specs []ColumnSpec, numCols int) []ColumnSpec {
	if len(specs) >= numCols {
		return specs[:numCols]
	}
	extended := make([]ColumnSpec, numCols)
	copy(extended, specs)
	return extended
}

func (t Table) bodyRows() []Row {
	var rows []Row
	for _, b := range t.Bodies {
		rows = append(rows, b.Head...)
		rows = append(rows, b.Rows...)
	}
	return rows
}
