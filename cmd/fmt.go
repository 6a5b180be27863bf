package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/paydown"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the loan file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `amort [-f loan.json] fmt [-check]

  Validates the loan file: dates, amounts, event ordering. Then rewrites it in
  place in its canonical form: zero padded dates, one record per event, events
  in chronological order.

Usage Examples:
# Formats the default loan file.
$ amort fmt

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "only validate, and fail if the file is not formatted")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filename := LoanFile()
	terms, events, err := DecodeLoanFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	j, err := paydown.NewJournal(terms, events)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid loan %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	var b bytes.Buffer
	if err := paydown.EncodeLoan(&b, j.Terms(), j.Recorded()); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	old, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if bytes.Equal(old, b.Bytes()) {
		return subcommands.ExitSuccess
	}
	if c.check {
		fmt.Fprintf(os.Stderr, "%s is not formatted\n", filename)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(filename, b.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted loan %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %s\n", filename)
	return subcommands.ExitSuccess
}
