package gridtable

import (
	"slices"

	"github.com/olekukonko/ll"
)

// NormalizedTable is a table cut into unit cells. Head and every row of Body
// have exactly numCols entries; positions covered by a spanning cell, other
// than its top-left corner, hold empty content.
type NormalizedTable struct {
	Head []Content
	Body [][]Content
}

// Headless reports whether every header cell is empty.
func (n NormalizedTable) Headless() bool {
	for _, c := range n.Head {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Normalize resolves the row and column spans of head, body and foot rows
// into a grid of unit cells numCols wide. The first head row becomes the
// header; the remaining head rows, the body rows and the foot rows, in that
// order, become the body. Malformed spans and ragged rows are clamped and
// padded, never rejected.
func Normalize(head, body, foot []Row, numCols int) NormalizedTable {
	return resolver{numCols: max(numCols, 0)}.normalize(head, body, foot)
}

// Normalize resolves the spans of t. See the package-level [Normalize].
func (t Table) Normalize() NormalizedTable {
	return t.normalize(nil)
}

func (t Table) normalize(log *ll.Logger) NormalizedTable {
	r := resolver{numCols: t.NumCols(), log: log}
	return r.normalize(t.Head, t.bodyRows(), t.Foot)
}

type resolver struct {
	numCols int
	log     *ll.Logger
}

func (r resolver) normalize(head, body, foot []Row) NormalizedTable {
	var out NormalizedTable
	// owed[i] is the number of empty placeholders column i still owes to the
	// rows below, left by a cell spanning down from an earlier row.
	owed := make([]int, r.numCols)

	stream := make([]Row, 0, len(head)+len(body)+len(foot))
	if len(head) > 0 {
		owed, out.Head = r.cutRow(owed, head[0].Cells)
		stream = append(stream, head[1:]...)
	} else {
		out.Head = make([]Content, r.numCols)
	}
	stream = append(stream, body...)
	stream = append(stream, foot...)

	out.Body = make([][]Content, 0, len(stream))
	for _, row := range stream {
		var cut []Content
		owed, cut = r.cutRow(owed, row.Cells)
		out.Body = append(out.Body, cut)
	}

	for col, n := range owed {
		if n > 0 {
			r.debugf("span in column %d extends %d rows past the table; discarding", col, n)
		}
	}
	return out
}

// cutRow places one source row. Columns that still owe placeholders are
// filled first; each remaining column takes the next source cell, whose
// content lands in its top-left position and whose other positions become
// empty placeholders, now or in later rows.
func (r resolver) cutRow(owed []int, cells []Cell) ([]int, []Content) {
	next := slices.Clone(owed)
	out := make([]Content, 0, r.numCols)

	for col := 0; col < r.numCols; {
		if next[col] > 0 {
			next[col]--
			out = append(out, nil)
			col++
			continue
		}
		if len(cells) == 0 {
			out = append(out, nil)
			col++
			continue
		}

		c := cells[0]
		cells = cells[1:]
		h, w := c.spans()
		if fit := r.fitWidth(next, col, w); fit < w {
			r.debugf("cell at column %d spans %d columns, only %d free; clamping", col, w, fit)
			w = fit
		}

		out = append(out, c.Content)
		for range w - 1 {
			out = append(out, nil)
		}
		for k := col; k < col+w; k++ {
			next[k] = h - 1
		}
		col += w
	}

	if len(cells) > 0 {
		r.debugf("row has %d cells beyond %d columns; dropping", len(cells), r.numCols)
	}
	return next, out
}

// fitWidth returns how many of w columns starting at col a new cell may
// claim: it stops at the table edge and before any column still owed a
// placeholder.
func (r resolver) fitWidth(owed []int, col, w int) int {
	n := 1
	for n < w && col+n < r.numCols && owed[col+n] == 0 {
		n++
	}
	return n
}

func (r resolver) debugf(format string, args ...any) {
	if r.log != nil {
		r.log.Debugf(format, args...)
	}
}
