// Command polyclean applies one cleaning operation to a set of polylines.
//
// It reads a JSON document of polylines from standard input and writes the
// result to standard output, either as the same kind of document or, with
// -svg, as an SVG image. Tolerances come from a YAML or TOML file given with
// -config; without one, the defaults of polyclean.DefaultConfig apply.
//
//	polyclean [-config file] [-svg] [-v] <op> < in.json > out.json
//
// The input document looks like this:
//
//	{"polylines": [{"vertices": [{"x": 0, "y": 0, "bulge": 1}, {"x": 10, "y": 0}], "closed": false}]}
//
// The ops info and selfcheck write a JSON report instead of polylines.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"honnef.co/go/polyclean"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML or TOML `file` with tolerances")
		svg        = flag.Bool("svg", false, "write SVG instead of JSON")
		verbose    = flag.Bool("v", false, "log progress to standard error")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	polyclean.SetLogger(log)

	cfg := polyclean.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = polyclean.LoadConfig(*configPath)
		if err != nil {
			log.Error("loading config", slog.Any("err", err))
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, flag.Arg(0), cfg, *svg, os.Stdin, os.Stdout); err != nil {
		log.Error("polyclean failed", slog.String("op", flag.Arg(0)), slog.Any("err", err))
		os.Exit(1)
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "usage: polyclean [-config file] [-svg] [-v] <op> < in.json > out.json\n\nops:\n")
	for _, name := range opNames() {
		fmt.Fprintf(w, "  %-11s %s\n", name, ops[name].help)
	}
	fmt.Fprintf(w, "\nflags:\n")
	flag.PrintDefaults()
}

// run applies the named op to the document read from r and writes the
// outcome to w.
func run(ctx context.Context, name string, cfg polyclean.Config, svg bool, r io.Reader, w io.Writer) error {
	o, ok := ops[name]
	if !ok {
		return errors.Errorf("unknown op %q", name)
	}
	ps, err := readDocument(r)
	if err != nil {
		return err
	}
	log := polyclean.Logger().With(slog.String("op", name))
	log.Debug("read document", slog.Int("polylines", len(ps)))

	out, err := o.run(ctx, cfg, ps)
	if err != nil {
		return err
	}
	if out.report != nil {
		return writeJSON(w, out.report)
	}
	log.Info("done",
		slog.Int("in", len(ps)),
		slog.Int("out", len(out.polylines)),
		slog.Int("removed", out.removed))
	if svg {
		return writeSVG(w, out.polylines)
	}
	return writeDocument(w, out.polylines)
}
