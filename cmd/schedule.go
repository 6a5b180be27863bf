package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/paydown"
	"github.com/etnz/paydown/renderer"
	"github.com/google/subcommands"
)

type scheduleCmd struct {
	json  bool
	exact bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "show the payment schedule of a loan" }
func (*scheduleCmd) Usage() string {
	return `amort [-f loan.json] schedule [-json] [-exact]

  Computes the loan and prints every step of its schedule: start, rate
  changes, fees, installments and the unpaid interest at maturity, followed by
  the totals.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the result as JSON")
	f.BoolVar(&c.exact, "exact", false, "do not round the totals")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	terms, r, err := calculate(c.exact)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		return printJSON(r)
	}
	printMarkdown(renderer.RenderSchedule(terms, r))
	return subcommands.ExitSuccess
}

// calculate decodes the loan file and computes it.
func calculate(exact bool) (paydown.LoanTerms, *paydown.Result, error) {
	terms, events, err := DecodeLoanFile()
	if err != nil {
		return terms, nil, err
	}
	if exact {
		terms.Exact = true
	}
	r, err := paydown.Calculate(terms, events, paydown.WithLogger(Logger()))
	if err != nil {
		return terms, nil, fmt.Errorf("cannot compute %q: %w", LoanFile(), err)
	}
	return terms, r, nil
}

func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
