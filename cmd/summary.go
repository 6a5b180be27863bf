package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/paydown/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	json  bool
	exact bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the totals and the annual summary of a loan" }
func (*summaryCmd) Usage() string {
	return `amort [-f loan.json] summary [-json] [-exact]

  Computes the loan and prints its totals and the principal, interest and fees
  paid each year.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the result as JSON")
	f.BoolVar(&c.exact, "exact", false, "do not round the totals")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	terms, r, err := calculate(c.exact)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		r.Log = nil
		return printJSON(r)
	}
	printMarkdown(renderer.RenderSummary(terms, r))
	return subcommands.ExitSuccess
}
