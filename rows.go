package gridtable

import "fmt"

// --- Row Interfaces ---

// Rower provides the text of one body row. Required by [FromRows].
type Rower interface {
	Row() []string
}

// Headed provides the header row.
// Without it, the table is headless.
type Headed interface {
	Header() []string
}

// Aligned sets per-column alignment.
// Default: AlignDefault.
type Aligned interface {
	Alignments() []Alignment
}

// Sized sets fractional per-column widths of the page.
// Default: widths are computed from the content.
type Sized interface {
	Widths() []float64
}

// Footered provides a footer row, rendered as the last body row.
type Footered interface {
	Footer() []string
}

// Captioned renders a line below the table.
type Captioned interface {
	Caption() string
}

// FromRows builds a table from items. The first item must implement
// [Rower]; the optional interfaces are read from the first item only.
func FromRows[T any](items ...T) (Table, error) {
	if len(items) == 0 {
		return Table{}, nil
	}
	first := any(items[0])
	if _, ok := first.(Rower); !ok {
		return Table{}, fmt.Errorf("%w: table requires Rower, not implemented by %T", ErrMissingInterface, items[0])
	}

	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = TextRow(any(item).(Rower).Row()...)
	}
	t := Table{Bodies: []Body{{Rows: rows}}}

	if h, ok := first.(Headed); ok {
		t.Head = []Row{TextRow(h.Header()...)}
	}
	if f, ok := first.(Footered); ok {
		t.Foot = []Row{TextRow(f.Footer()...)}
	}
	if c, ok := first.(Captioned); ok && c.Caption() != "" {
		t.Caption = Content{Para(c.Caption())}
	}

	var aligns []Alignment
	if a, ok := first.(Aligned); ok {
		aligns = a.Alignments()
	}
	var widths []float64
	if s, ok := first.(Sized); ok {
		widths = s.Widths()
	}
	if n := max(len(aligns), len(widths)); n > 0 {
		n = max(n, t.NumCols())
		t.Columns = make([]ColumnSpec, n)
		for i := range t.Columns {
			if i < len(aligns) {
				t.Columns[i].Align = aligns[i]
			}
			if i < len(widths) {
				t.Columns[i].Width = widths[i]
			}
		}
	}
	return t, nil
}
