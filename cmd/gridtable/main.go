// Command gridtable renders YAML table documents as bordered plain-text
// grids.
//
// Usage:
//
//	gridtable [-config file] [-columns N] [-wrap none|auto|preserve] [-debug] [file ...]
//
// Tables are read from the named files, or from standard input when none
// are given. Settings are taken from the flags, then the GRIDTABLE_COLUMNS
// and GRIDTABLE_WRAP environment variables, then the config file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bjaus/gridtable"
	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gridtable:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gridtable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	columns := fs.Int("columns", gridtable.DefaultPageWidth, "page width in characters")
	wrap := fs.String("wrap", string(gridtable.WrapAuto), "wrap policy: none, auto or preserve")
	debug := fs.Bool("debug", false, "trace layout decisions to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	cfg = cfg.WithEnv(os.Getenv)

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "columns":
			cfg.Columns = *columns
		case "wrap":
			p, err := gridtable.ParseWrapPolicy(*wrap)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Wrap = p
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := []gridtable.Option{gridtable.WithConfig(cfg)}
	if *debug {
		logger := ll.New("gridtable").Handler(lh.NewTextHandler(stderr))
		logger.Enable()
		logger.Resume()
		opts = append(opts, gridtable.WithLogger(logger))
	}

	if fs.NArg() == 0 {
		return render(stdout, stdin, opts)
	}
	for i, name := range fs.Args() {
		if i > 0 {
			if _, err := io.WriteString(stdout, "\n"); err != nil {
				return err
			}
		}
		if err := renderFile(stdout, name, opts); err != nil {
			return err
		}
	}
	return nil
}

func loadConfig(path string) (gridtable.Config, error) {
	if path == "" {
		return gridtable.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return gridtable.Config{}, err
	}
	defer f.Close()
	return gridtable.LoadConfig(f)
}

func renderFile(w io.Writer, name string, opts []gridtable.Option) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := render(w, f, opts); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func render(w io.Writer, r io.Reader, opts []gridtable.Option) error {
	var decodeErr error
	tables := func(yield func(gridtable.Table) bool) {
		for t, err := range gridtable.DecodeTables(r) {
			if err != nil {
				decodeErr = err
				return
			}
			if !yield(t) {
				return
			}
		}
	}
	if err := gridtable.WriteIter(w, tables, opts...); err != nil {
		return err
	}
	return decodeErr
}
