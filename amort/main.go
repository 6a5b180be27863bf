// Command amort computes the amortization schedule of a loan described in a
// loan file.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/paydown/cmd"
	"github.com/etnz/paydown/docs"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env file in the working directory may set the PAYDOWN_* variables.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, "amort")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	completion(commander).Complete("amort")

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a subcommand of c.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		found = found || sub.Name() == name
	})
	return found
}

// completion describes the command line for shell completion.
func completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"f":        predict.Files("*.json"),
			"currency": predict.Set{"EUR", "USD", "GBP", "CHF"},
			"style":    predict.Set{"auto", "dark", "light", "notty", "plain"},
			"v":        predict.Nothing,
		},
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		sc := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			switch f.Name {
			case "o":
				sc.Flags[f.Name] = predict.Files("*.json")
			case "on", "maturity":
				sc.Flags[f.Name] = predict.Something
			default:
				sc.Flags[f.Name] = predict.Nothing
			}
		})
		switch sub.Name() {
		case "import":
			sc.Args = predict.Files("*.json")
		case "topic":
			topics, _ := docs.GetAllTopics()
			sc.Args = predict.Set(topics)
		}
		root.Sub[sub.Name()] = sc
	})
	return root
}
