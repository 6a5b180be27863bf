package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/paydown"
	"github.com/google/subcommands"
)

type importCmd struct {
	root   string
	items  string
	output string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "convert a stored loan record into a loan file" }
func (*importCmd) Usage() string {
	return `amort import [-root <jsonpath>] [-items <jsonpath>] [-o loan.json] <record.json>

  Reads a loan record as served by the loans API (short field names like
  "sdt", "edt", "fp", payments under "items") and writes the equivalent loan
  file. Use "-" to read the record from stdin.

Usage Examples:
# Import the first loan of an API answer.
$ amort import -root '$.data[0]' -o car.json answer.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.root, "root", "$", "JSONPath of the loan record inside the document")
	f.StringVar(&c.items, "items", paydown.DefaultRecordPaths.Items, "JSONPath of the payments, relative to the record")
	f.StringVar(&c.output, "o", "", "output loan file, stdout by default")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one record file")
		return subcommands.ExitUsageError
	}
	doc, err := readJSON(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	record, err := jsonpath.Get(c.root, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: no record at %q: %v\n", c.root, err)
		return subcommands.ExitFailure
	}

	paths := paydown.DefaultRecordPaths
	paths.Items = c.items
	terms, events, err := paydown.ImportRecord(record, paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if _, err := paydown.NewJournal(terms, events); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: the imported loan is not valid: %v\n", err)
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}
	if err := paydown.EncodeLoan(w, terms, events); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing loan file: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Imported %d events into %s\n", len(events), c.output)
	}
	return subcommands.ExitSuccess
}

// readJSON decodes a JSON document from a file, or stdin for "-".
func readJSON(filename string) (any, error) {
	var r io.Reader = os.Stdin
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("cannot open %q: %w", filename, err)
		}
		defer f.Close()
		r = f
	}
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot decode %q: %w", filename, err)
	}
	return doc, nil
}
