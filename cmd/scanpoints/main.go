// Command scanpoints loads an HCL scan description and streams its points.
//
// Usage:
//
//	scanpoints -file scan.hcl [-var name=value ...] [-limit n] [-count] [-json] [-v]
//
// The header line reports size (before region filtering), shape and rank.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/katalvlaran/scanpath/generator"
	"github.com/katalvlaran/scanpath/internal/ctxlog"
	"github.com/katalvlaran/scanpath/position"
	"github.com/katalvlaran/scanpath/scanfile"
	"github.com/zclconf/go-cty/cty"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// varFlags collects repeated -var name=value flags. Values that parse as
// numbers become cty numbers, anything else a string.
type varFlags map[string]cty.Value

func (v varFlags) String() string {
	names := make([]string, 0, len(v))
	for k := range v {
		names = append(names, k)
	}
	return strings.Join(names, ",")
}

func (v varFlags) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		v[name] = cty.NumberFloatVal(f)
	} else {
		v[name] = cty.StringVal(value)
	}
	return nil
}

type config struct {
	file    string
	vars    varFlags
	limit   int
	count   bool
	json    bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	cfg := config{vars: varFlags{}}
	fs := flag.NewFlagSet("scanpoints", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.file, "file", "", "HCL scan description (required)")
	fs.Var(cfg.vars, "var", "set a scan-file variable, name=value (repeatable)")
	fs.IntVar(&cfg.limit, "limit", 0, "print at most n points (0: all)")
	fs.BoolVar(&cfg.count, "count", false, "count emitted points instead of printing them")
	fs.BoolVar(&cfg.json, "json", false, "print points as JSON lines")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.file == "" {
		return cfg, errors.New("-file is required")
	}
	if cfg.limit < 0 {
		return cfg, fmt.Errorf("-limit=%d (must be ≥ 0)", cfg.limit)
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "scanpoints:", err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	ctx = ctxlog.WithLogger(ctx, logger)

	if err := scan(ctx, cfg, stdout); err != nil {
		logger.Error("Scan failed.", "file", cfg.file, "error", err)
		return 1
	}
	return 0
}

func scan(ctx context.Context, cfg config, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	m, err := scanfile.Load(ctx, cfg.file, scanfile.WithVariables(cfg.vars))
	if err != nil {
		return err
	}
	g, err := generator.NewCompoundFromModel(m)
	if err != nil {
		return err
	}
	size, err := g.Size()
	if err != nil {
		return err
	}
	shape, err := g.Shape()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "size=%d shape=%v rank=%d axes=%v\n", size, shape, g.Rank(), g.Axes())

	it, err := g.Iterator()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	emitted := 0
	for it.Next() {
		if err := ctx.Err(); err != nil {
			logger.Warn("Scan interrupted.", "emitted", emitted)
			return err
		}
		emitted++
		switch {
		case cfg.count:
		case cfg.json:
			if err := enc.Encode(record(emitted-1, it.Value())); err != nil {
				return err
			}
		default:
			fmt.Fprintln(out, it.Value())
		}
		if cfg.limit > 0 && emitted >= cfg.limit {
			break
		}
	}
	if err := it.Err(); err != nil {
		return err
	}
	if cfg.count {
		fmt.Fprintf(out, "emitted=%d\n", emitted)
	}
	logger.Debug("Scan finished.", "emitted", emitted, "size", size)
	return nil
}

type pointRecord struct {
	Point   int            `json:"point"`
	Values  map[string]any `json:"values"`
	Indices map[string]int `json:"indices,omitempty"`
	Dims    [][]string     `json:"dimensions"`
	DwellNs int64          `json:"dwell_ns,omitempty"`
}

func record(n int, p position.Position) pointRecord {
	r := pointRecord{Point: n, Values: make(map[string]any, p.Len())}
	for _, name := range p.Names() {
		v, _ := p.Get(name)
		r.Values[name] = v
		if idx := p.Index(name); idx != position.NoIndex {
			if r.Indices == nil {
				r.Indices = make(map[string]int)
			}
			r.Indices[name] = idx
		}
	}
	for level := 0; level < p.ScanRank(); level++ {
		r.Dims = append(r.Dims, p.DimensionNames(level))
	}
	r.DwellNs = int64(p.Dwell())
	return r
}
