package gridtable

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	ruleBody   = '-'
	ruleHeader = '='
)

// borderEdges marks which ends of a border segment carry a colon.
type borderEdges struct {
	left, right bool
}

var alignEdges = map[Alignment]borderEdges{
	AlignDefault: {},
	AlignLeft:    {left: true},
	AlignRight:   {right: true},
	AlignCenter:  {left: true, right: true},
}

// border draws a horizontal rule. Each segment is two characters wider than
// its column to cover the cell padding, and its ends encode the alignment of
// the column.
func border(fill byte, aligns []Alignment, widths []int) string {
	if len(widths) == 0 {
		return "++"
	}
	var sb strings.Builder
	sb.WriteByte('+')
	for i, w := range widths {
		var edges borderEdges
		if i < len(aligns) {
			edges = alignEdges[aligns[i]]
		}
		sb.WriteByte(edgeChar(edges.left, fill))
		sb.WriteString(strings.Repeat(string(fill), w))
		sb.WriteByte(edgeChar(edges.right, fill))
		sb.WriteByte('+')
	}
	return sb.String()
}

func edgeChar(colon bool, fill byte) byte {
	if colon {
		return ':'
	}
	return fill
}

// gridRow lays the rendered cells of a row side by side. Every cell is
// padded to its column width and to the height of the tallest cell.
func gridRow(texts []string, widths []int) []string {
	blocks := make([][]string, len(widths))
	height := 1
	for i := range widths {
		if i < len(texts) {
			blocks[i] = textLines(texts[i])
		}
		height = max(height, len(blocks[i]))
	}

	lines := make([]string, height)
	parts := make([]string, len(widths))
	for n := range height {
		for i, w := range widths {
			cell := ""
			if n < len(blocks[i]) {
				cell = blocks[i][n]
			}
			parts[i] = runewidth.FillRight(cell, w)
		}
		lines[n] = "| " + strings.Join(parts, " | ") + " |"
	}
	return lines
}

// assemble stacks the header, the body rows and the border lines of g.
func assemble(g GridLayout) string {
	plain := make([]Alignment, len(g.Widths))
	bottom := border(ruleBody, plain, g.Widths)
	if len(g.Widths) == 0 {
		return bottom + "\n" + bottom
	}

	var lines []string
	if g.Headless {
		lines = append(lines, border(ruleBody, g.Aligns, g.Widths))
	} else {
		lines = append(lines, bottom)
		lines = append(lines, gridRow(g.Head, g.Widths)...)
		lines = append(lines, border(ruleHeader, g.Aligns, g.Widths))
	}
	for i, row := range g.Body {
		if i > 0 {
			lines = append(lines, bottom)
		}
		lines = append(lines, gridRow(row, g.Widths)...)
	}
	lines = append(lines, bottom)
	return strings.Join(lines, "\n")
}
