package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"conway/internal/app"
	"conway/internal/sweep"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts := sweep.DefaultOptions()
	logLevel, logFormat := "info", "text"
	top := 10

	fs := flag.NewFlagSet("life-sweep", flag.ContinueOnError)
	fs.IntVar(&opts.Rows, "rows", opts.Rows, "grid rows")
	fs.IntVar(&opts.Cols, "cols", opts.Cols, "grid columns")
	fs.IntVar(&opts.Runs, "runs", opts.Runs, "number of soups to simulate")
	fs.Int64Var(&opts.Seed, "seed", opts.Seed, "seed of the first soup; later soups use seed+1, seed+2, ...")
	fs.IntVar(&opts.Generations, "generations", opts.Generations, "generation limit per soup")
	fs.IntVar(&opts.Window, "window", opts.Window, "longest period to detect")
	fs.IntVar(&opts.Workers, "workers", opts.Workers, "number of soups simulated in parallel")
	fs.IntVar(&top, "top", top, "number of longest-lived soups to list")
	fs.StringVar(&logLevel, "log-level", logLevel, "log level: debug, info, warn, error")
	fs.StringVar(&logFormat, "log-format", logFormat, "log format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := app.NewLogger(os.Stderr, logLevel, logFormat)
	if err != nil {
		return err
	}
	opts.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.Run(ctx, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	sum := sweep.Summarize(results)
	fmt.Printf("Simulated %d soups of %dx%d (%d workers, limit %d generations) in %s\n",
		sum.Runs, opts.Rows, opts.Cols, opts.Workers, opts.Generations, elapsed.Round(time.Millisecond))
	fmt.Printf("Stabilized: %d/%d  mean generations: %.1f  mean final population: %.1f\n",
		sum.Stabilized, sum.Runs, sum.MeanGenerations, sum.MeanPopulation)

	periods := make([]int, 0, len(sum.Periods))
	for p := range sum.Periods {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	for _, p := range periods {
		fmt.Printf("  period %2d: %d\n", p, sum.Periods[p])
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Generations > results[j].Generations })
	fmt.Printf("\nLongest-lived soups:\n")
	for i := 0; i < len(results) && i < top; i++ {
		r := results[i]
		state := "unsettled"
		if r.Stabilized {
			state = fmt.Sprintf("period %d", r.Period)
		}
		fmt.Printf("%2d) seed=%d generations=%d population=%d %s\n", i+1, r.Seed, r.Generations, r.Population, state)
	}
	return nil
}
