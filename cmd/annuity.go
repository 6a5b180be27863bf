package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/paydown"
	"github.com/etnz/paydown/date"
	"github.com/etnz/paydown/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// decimalFlag is a flag.Value holding a decimal.
type decimalFlag struct {
	decimal.Decimal
	set bool
}

func (d *decimalFlag) Set(s string) error {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	d.Decimal, d.set = v, true
	return nil
}

// dateFlag is a flag.Value holding a date.
type dateFlag struct{ date.Date }

func (d *dateFlag) Set(s string) (err error) {
	d.Date, err = date.Parse(s)
	return err
}

type annuityCmd struct {
	principal   decimalFlag
	rate        decimalFlag
	months      int
	installment decimalFlag
	newRate     decimalFlag
	on          dateFlag
	maturity    dateFlag
}

func (*annuityCmd) Name() string     { return "annuity" }
func (*annuityCmd) Synopsis() string { return "compute an equal installment, or its repricing after a rate change" }
func (*annuityCmd) Usage() string {
	return `amort annuity -principal <amount> -rate <percent> -months <n>
amort annuity -principal <balance> -installment <amount> -rate <old> -new-rate <new> -on <date> -maturity <date>

  The first form prints the monthly installment repaying the principal.

  The second form settles one installment against a month of interest at the
  old rate, then prints the installment repaying the rest at the new rate
  until maturity.
`
}

func (c *annuityCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.principal, "principal", "principal, or balance when repricing")
	f.Var(&c.rate, "rate", "annual rate in percent, the old one when repricing")
	f.IntVar(&c.months, "months", 0, "number of monthly installments")
	f.Var(&c.installment, "installment", "current installment (repricing)")
	f.Var(&c.newRate, "new-rate", "new annual rate in percent (repricing)")
	f.Var(&c.on, "on", "date of the rate change, DD.MM.YYYY (repricing)")
	f.Var(&c.maturity, "maturity", "maturity date, DD.MM.YYYY (repricing)")
}

func (c *annuityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.principal.set || !c.rate.set {
		fmt.Fprintln(os.Stderr, "Error: -principal and -rate are required")
		return subcommands.ExitUsageError
	}
	cur := setting(*currency, EnvCurrency, "")
	m := func(d decimal.Decimal) renderer.Money { return renderer.NewMoney(d, cur) }

	var b strings.Builder
	if !c.newRate.set {
		installment := paydown.EqualInstallment(c.principal.Decimal, c.rate.Decimal, c.months)
		fmt.Fprintf(&b, "# Annuity\n\n")
		fmt.Fprintf(&b, "| | |\n|:---|---:|\n")
		fmt.Fprintf(&b, "| Principal | %s |\n", m(c.principal.Decimal))
		fmt.Fprintf(&b, "| Rate | %s%% |\n", c.rate.StringFixed(2))
		fmt.Fprintf(&b, "| Months | %d |\n", c.months)
		fmt.Fprintf(&b, "| Installment | %s |\n", m(installment))
		fmt.Fprintf(&b, "| Total paid | %s |\n", m(installment.Mul(decimal.NewFromInt(int64(max(c.months, 1))))))
		printMarkdown(b.String())
		return subcommands.ExitSuccess
	}

	if c.on.IsZero() || c.maturity.IsZero() || !c.installment.set {
		fmt.Fprintln(os.Stderr, "Error: repricing requires -installment, -on and -maturity")
		return subcommands.ExitUsageError
	}
	p, err := paydown.Reprice(c.principal.Decimal, c.installment.Decimal, c.rate.Decimal, c.newRate.Decimal, c.on.Date, c.maturity.Date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(&b, "# Repricing on %s\n\n", c.on.Date)
	fmt.Fprintf(&b, "| | |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Rate | %s%% → %s%% |\n", c.rate.StringFixed(2), c.newRate.StringFixed(2))
	fmt.Fprintf(&b, "| Interest settled | %s |\n", m(p.Interest))
	fmt.Fprintf(&b, "| Principal settled | %s |\n", m(p.Reduction))
	fmt.Fprintf(&b, "| Balance | %s |\n", m(p.Balance))
	fmt.Fprintf(&b, "| Months left | %d |\n", p.Months)
	fmt.Fprintf(&b, "| Installment | %s → %s |\n", m(c.installment.Decimal), m(p.Installment))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
