package gridtable

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"gopkg.in/yaml.v3"
)

// tableDoc is the YAML form of a [Table]. Rows is shorthand for a single
// body section.
type tableDoc struct {
	Caption Content      `yaml:"caption"`
	Columns []ColumnSpec `yaml:"columns"`
	Head    []Row        `yaml:"head"`
	Bodies  []Body       `yaml:"bodies"`
	Rows    []Row        `yaml:"rows"`
	Foot    []Row        `yaml:"foot"`
}

func (d tableDoc) table() Table {
	t := Table{
		Caption: d.Caption,
		Columns: d.Columns,
		Head:    d.Head,
		Bodies:  d.Bodies,
		Foot:    d.Foot,
	}
	if len(d.Rows) > 0 {
		t.Bodies = append(t.Bodies, Body{Rows: d.Rows})
	}
	return t
}

// DecodeTable reads one YAML table document from r.
func DecodeTable(r io.Reader) (Table, error) {
	var doc tableDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Table{}, fmt.Errorf("%w: %s", ErrInvalidTable, err)
	}
	return doc.table(), nil
}

// DecodeTables reads a stream of YAML table documents from r. Iteration
// stops after the first error.
func DecodeTables(r io.Reader) iter.Seq2[Table, error] {
	return func(yield func(Table, error) bool) {
		dec := yaml.NewDecoder(r)
		for {
			var doc tableDoc
			err := dec.Decode(&doc)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Table{}, fmt.Errorf("%w: %s", ErrInvalidTable, err))
				return
			}
			if !yield(doc.table(), nil) {
				return
			}
		}
	}
}

// UnmarshalYAML accepts a scalar as a single paragraph, or a sequence of
// blocks.
func (c *Content) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*c = nil
		if n.Value != "" {
			*c = Content{Para(n.Value)}
		}
		return nil
	}
	var blocks []Block
	if err := n.Decode(&blocks); err != nil {
		return err
	}
	*c = blocks
	return nil
}

// UnmarshalYAML accepts a scalar as a paragraph, or a {text, verbatim}
// mapping.
func (b *Block) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*b = Para(n.Value)
		return nil
	}
	type plain Block
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*b = Block(p)
	return nil
}

// UnmarshalYAML accepts a scalar as a 1x1 paragraph cell, or a mapping with
// text, content, rowspan and colspan keys.
func (c *Cell) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*c = Text(n.Value)
		return nil
	}
	var raw struct {
		Text    string  `yaml:"text"`
		Content Content `yaml:"content"`
		RowSpan int     `yaml:"rowspan"`
		ColSpan int     `yaml:"colspan"`
	}
	if err := n.Decode(&raw); err != nil {
		return err
	}
	content := raw.Content
	if raw.Text != "" {
		content = append(Content{Para(raw.Text)}, content...)
	}
	*c = Cell{Content: content, RowSpan: max(raw.RowSpan, 1), ColSpan: max(raw.ColSpan, 1)}
	return nil
}

// UnmarshalYAML accepts a sequence of cells, or a {cells, attrs} mapping.
func (r *Row) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		var cells []Cell
		if err := n.Decode(&cells); err != nil {
			return err
		}
		*r = Row{Cells: cells}
		return nil
	}
	var raw struct {
		Cells []Cell            `yaml:"cells"`
		Attrs map[string]string `yaml:"attrs"`
	}
	if err := n.Decode(&raw); err != nil {
		return err
	}
	*r = Row{Cells: raw.Cells, Attrs: raw.Attrs}
	return nil
}

// UnmarshalYAML parses an alignment name.
func (a *Alignment) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAlignment(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
