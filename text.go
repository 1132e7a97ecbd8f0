package gridtable

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter/pkg/twwarp"
)

// Unbounded is the width passed to a [CellRenderer] when the text must not
// be wrapped.
const Unbounded = 0

// CellRenderer renders the content of a cell in column col to plain text no
// wider than width display columns, or unwrapped when width is [Unbounded].
type CellRenderer func(col, width int, content Content) string

// TextRenderer is the default [CellRenderer]. Paragraphs are word-wrapped,
// verbatim blocks are kept as they are, and blocks are separated by a blank
// line.
func TextRenderer(_ int, width int, content Content) string {
	return strings.Join(renderBlocks(content, width), "\n")
}

func renderBlocks(content Content, width int) []string {
	var lines []string
	for _, b := range content {
		var block []string
		if b.Verbatim {
			block = strings.Split(strings.TrimRight(b.Text, "\n"), "\n")
		} else {
			block = wrapParagraph(b.Text, width)
		}
		if len(block) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	return lines
}

func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= Unbounded {
		return []string{strings.Join(words, " ")}
	}
	// twwarp raises its limit to the longest word, so break those first.
	pieces := make([]string, 0, len(words))
	for _, w := range words {
		pieces = append(pieces, wrapCell(w, width)...)
	}
	wrapped, _ := twwarp.WrapString(strings.Join(pieces, " "), width)
	var lines []string
	for _, line := range wrapped {
		lines = append(lines, wrapCell(line, width)...)
	}
	return lines
}

// --- Cell wrapping ---

func wrapCell(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		line := runewidth.Truncate(s, width, "")
		if line == "" {
			// Safety: advance at least one rune to avoid infinite loop.
			line = string([]rune(s)[0])
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}

// textLines splits rendered cell text into lines, dropping trailing blank
// lines.
func textLines(s string) []string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// textWidth returns the display width of the widest line of s.
func textWidth(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		n = max(n, runewidth.StringWidth(line))
	}
	return n
}
