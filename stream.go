package gridtable

import (
	"io"
	"iter"
)

// WriteIter renders tables from an iterator and writes them to w as they
// arrive, separated by blank lines. Each table is laid out on its own.
func WriteIter(w io.Writer, seq iter.Seq[Table], opts ...Option) error {
	e := NewEngine(opts...)
	first := true
	for t := range seq {
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		if _, err := io.WriteString(w, renderTable(e, t)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteChan renders tables from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, ch <-chan Table, opts ...Option) error {
	return WriteIter(w, chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
