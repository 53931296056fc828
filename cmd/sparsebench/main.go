// SPDX-License-Identifier: MIT

// Command sparsebench times the compressed matrix kernels against gonum's
// dense kernels and a plain CSR loop on seeded random operands.
//
// Usage:
//
//	sparsebench -kernel=all -n=1000 -k=10 -reps=20 -orient=row -seed=1
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/lvlsparse/matrix"
)

var errBadFlag = errors.New("invalid flag value")

// config holds the parsed command line.
type config struct {
	kernel string
	n, k   int
	reps   int
	orient matrix.Orientation
	seed   uint64
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg    config
		orient string
	)
	fs := flag.NewFlagSet("sparsebench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.kernel, "kernel", "all", kernelUsage())
	fs.IntVar(&cfg.n, "n", 1000, "matrix dimension")
	fs.IntVar(&cfg.k, "k", 10, "non-zeros per line")
	fs.IntVar(&cfg.reps, "reps", 10, "repetitions per kernel")
	fs.StringVar(&orient, "orient", "row", "storage orientation: row or col")
	fs.Uint64Var(&cfg.seed, "seed", 1, "random seed")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch orient {
	case "row":
		cfg.orient = matrix.RowMajor
	case "col":
		cfg.orient = matrix.ColumnMajor
	default:
		return cfg, fmt.Errorf("-orient=%q: %w", orient, errBadFlag)
	}
	if cfg.n <= 0 || cfg.k < 0 || cfg.k > cfg.n || cfg.reps <= 0 {
		return cfg, fmt.Errorf("-n=%d -k=%d -reps=%d: %w", cfg.n, cfg.k, cfg.reps, errBadFlag)
	}

	return cfg, nil
}

// run executes the selected kernels and writes one row per implementation.
func run(cfg config, out io.Writer) error {
	names, err := selectKernels(cfg.kernel)
	if err != nil {
		return err
	}
	ops, err := newOperands(cfg.n, cfg.k, cfg.orient, cfg.seed)
	if err != nil {
		return fmt.Errorf("operands: %w", err)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "kernel\tlibrary\tns/op\n")
	for _, name := range names {
		for _, im := range kernels[name].impls(ops) {
			start := time.Now()
			for r := 0; r < cfg.reps; r++ {
				if err = im.run(); err != nil {
					return fmt.Errorf("%s/%s: %w", name, im.lib, err)
				}
			}
			perOp := time.Since(start).Nanoseconds() / int64(cfg.reps)
			fmt.Fprintf(tw, "%s\t%s\t%d\n", name, im.lib, perOp)
		}
	}

	return tw.Flush()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sparsebench: ")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	log.Printf("n=%d k=%d orient=%s reps=%d seed=%d", cfg.n, cfg.k, cfg.orient, cfg.reps, cfg.seed)
	if err = run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
