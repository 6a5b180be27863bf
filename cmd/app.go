// Package cmd implements the amort command line application.
package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/paydown"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&scheduleCmd{}, "loan")
	c.Register(&summaryCmd{}, "loan")
	c.Register(&annuityCmd{}, "loan")

	c.Register(&importCmd{}, "files")
	c.Register(&fmtCmd{}, "files")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	loanFile = flag.String("f", "", "Path to the loan file (defaults to $"+EnvLoanFile+" or loan.json)")
	currency = flag.String("currency", "", "Display currency, overrides the loan file (defaults to $"+EnvCurrency+")")
	style    = flag.String("style", "", "Markdown style: auto, dark, light, notty or plain (defaults to $"+EnvStyle+" or auto)")
	Verbose  = flag.Bool("v", false, "Trace the calculation on stderr")
)

// setting returns the flag value if set, then the environment variable, then def.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// LoanFile returns the path of the loan file to work on.
func LoanFile() string { return setting(*loanFile, EnvLoanFile, "loan.json") }

// Logger returns the logger passed to the calculation.
func Logger() *slog.Logger {
	level := slog.LevelWarn
	if *Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// DecodeLoanFile reads the loan file, applying the currency override.
func DecodeLoanFile() (paydown.LoanTerms, []paydown.Event, error) {
	filename := LoanFile()
	f, err := os.Open(filename)
	if err != nil {
		return paydown.LoanTerms{}, nil, fmt.Errorf("cannot open loan file %q: %w", filename, err)
	}
	defer f.Close()

	terms, events, err := paydown.DecodeLoan(f)
	if err != nil {
		return paydown.LoanTerms{}, nil, fmt.Errorf("in %q: %w", filename, err)
	}
	terms.Currency = setting(*currency, EnvCurrency, terms.Currency)
	return terms, events, nil
}

// printMarkdown renders md on the terminal in the configured style.
func printMarkdown(md string) {
	s := setting(*style, EnvStyle, "auto")
	if s == "plain" {
		fmt.Print(md)
		return
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(0)}
	if s == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(s))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
