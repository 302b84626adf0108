// Command binfuzz exercises the binstr parser and comparators against
// randomly generated digit strings and reports mismatches with the
// reference conversion.
package main

import (
	"log"
	"time"

	"github.com/alecthomas/kong"

	"github.com/gptjddldi/binstr"
	"github.com/gptjddldi/binstr/fuzz"
)

var CLI struct {
	Count    int     `name:"count" short:"n" default:"1000000" help:"Number of random cases to run"`
	MaxLen   int     `name:"max-len" default:"53" help:"Maximum significant digits per generated string"`
	Seed     int64   `name:"seed" default:"0" help:"Generator seed (0 uses the current time)"`
	Pad      float64 `name:"pad" default:"0.25" help:"Probability of prepending leading zeros"`
	Corrupt  float64 `name:"corrupt" default:"0.1" help:"Probability of injecting a non-digit byte"`
	Dedup    bool    `name:"dedup" help:"Skip digit strings already exercised in this run"`
	Failures string  `name:"failures" type:"path" help:"Append mismatching inputs to this file"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("binfuzz"),
		kong.Description("Randomized checker for the binstr digit-string parser."))

	report, err := run()
	if err != nil {
		log.Fatal(err)
	}
	if report.Mismatches > 0 {
		ctx.Exit(1)
	}
}

func run() (fuzz.Report, error) {
	seed := CLI.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if CLI.MaxLen > binstr.MaxDigits {
		log.Printf("max-len %d exceeds the %d-digit bound; oversized inputs will exercise the invalid path", CLI.MaxLen, binstr.MaxDigits)
	}

	gen := fuzz.NewGenerator(seed, CLI.MaxLen, CLI.Pad, CLI.Corrupt)
	runner := fuzz.NewRunner(gen)
	if CLI.Dedup {
		runner = runner.WithDedup(fuzz.NewDedup(uint(CLI.Count)))
	}
	if CLI.Failures != "" {
		w, err := fuzz.NewFailureWriter(CLI.Failures)
		if err != nil {
			return fuzz.Report{}, err
		}
		defer w.Close()
		runner = runner.WithFailureWriter(w)
	}

	start := time.Now()
	report, err := runner.Run(CLI.Count)
	if err != nil {
		return report, err
	}
	log.Printf("seed=%d cases=%d duplicates=%d mismatches=%d elapsed=%s",
		seed, report.Cases, report.Duplicates, report.Mismatches, time.Since(start))
	return report, nil
}
