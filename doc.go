// Package gridtable lays out tables as fixed-width, bordered plain-text
// grids.
//
// A [Table] has an optional head, any number of [Body] sections and an
// optional foot. Its cells may span several rows and columns. Rendering is
// done in two steps, both available on their own:
//
//   - [Normalize] cuts every spanning cell into unit cells, keeping the
//     content in the top-left position of the rectangle the cell covers.
//   - [Engine.Layout] negotiates a character width for every column, wraps
//     the cell content to fit and assembles the grid.
//
// [Render] and [Write] do both:
//
//	t := gridtable.Table{
//		Columns: []gridtable.ColumnSpec{{Align: gridtable.AlignLeft}, {}},
//		Head:    []gridtable.Row{gridtable.TextRow("Name", "Value")},
//		Bodies:  []gridtable.Body{{Rows: []gridtable.Row{gridtable.TextRow("a", "1")}}},
//	}
//	gridtable.Write(os.Stdout, t, gridtable.WithPageWidth(40))
//
// produces
//
//	+------+-------+
//	| Name | Value |
//	+:=====+=======+
//	| a    | 1     |
//	+------+-------+
//
// # Widths
//
// Column widths are chosen by the [WrapPolicy] and the column specs:
//
//   - [WrapNone]: every cell keeps its unwrapped width.
//   - Explicit widths: a column gets its fraction of the page, less three
//     characters of border, and its cells are wrapped to that.
//   - Otherwise the unwrapped widths are used when they fit the page, and
//     rebalanced towards an even share when they do not.
//
// Cell content is rendered by a [CellRenderer]; [TextRenderer] is the
// default.
//
// # Borders
//
// Rows are separated by "-" rules and the header by a "=" rule. The ends of
// each segment of the top rule of a headless table, and of the header rule,
// carry the column alignment: ":--" left, "--:" right, ":-:" center.
//
// # Errors
//
// Layout never fails. Errors come only from the I/O and decoding boundary:
//
//   - [ErrUnknownWrapPolicy] — unknown wrap policy name
//   - [ErrUnknownAlignment] — unknown alignment name
//   - [ErrInvalidConfig] — config that cannot drive a layout
//   - [ErrInvalidTable] — malformed YAML table document
//   - [ErrMissingInterface] — items passed to [FromRows] are not [Rower]s
package gridtable
